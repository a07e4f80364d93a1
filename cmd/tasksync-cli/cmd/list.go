package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/internal/domain"
)

var (
	listStatus   string
	listCategory string
	listProject  string
)

var listCmd = &cobra.Command{
	Use:   "list [tasks|projects|areas]",
	Short: "List entities in the vault",
	Long: `List tasks, projects, or areas from the vault index.

Examples:
  tasksync-cli list tasks
  tasksync-cli list tasks --status Todo --category Bug
  tasksync-cli list projects
  tasksync-cli list areas`,
}

var listTasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List tasks, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := openIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		tasks, err := index.ListEntities(domain.EntityTask)
		if err != nil {
			return err
		}

		for _, t := range tasks {
			if listStatus != "" && t.Status != listStatus {
				continue
			}
			if listCategory != "" && t.Category != listCategory {
				continue
			}
			if listProject != "" && t.Project != listProject {
				continue
			}
			printTask(t)
		}
		return nil
	},
}

func printTask(t domain.Entity) {
	done := " "
	if t.Done {
		done = "x"
	}
	line := fmt.Sprintf("[%s] %s", done, t.Name())
	if t.Status != "" {
		line += "  " + t.Status
	}
	if t.Category != "" {
		line += "  " + t.Category
	}
	if t.Project != "" {
		line += "  (" + t.Project + ")"
	}
	fmt.Println(line)
}

var listProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listByKind(domain.EntityProject)
	},
}

var listAreasCmd = &cobra.Command{
	Use:   "areas",
	Short: "List all areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listByKind(domain.EntityArea)
	},
}

func listByKind(kind domain.EntityKind) error {
	index, err := openIndex()
	if err != nil {
		return err
	}
	defer index.Close()

	entities, err := index.ListEntities(kind)
	if err != nil {
		return err
	}
	for _, e := range entities {
		fmt.Println(e.Name())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listTasksCmd)
	listCmd.AddCommand(listProjectsCmd)
	listCmd.AddCommand(listAreasCmd)

	listTasksCmd.Flags().StringVar(&listStatus, "status", "", "filter by status")
	listTasksCmd.Flags().StringVar(&listCategory, "category", "", "filter by category")
	listTasksCmd.Flags().StringVar(&listProject, "project", "", "filter by project")
}
