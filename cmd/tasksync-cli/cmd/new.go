package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tasksync/internal/application/commands"
	"tasksync/internal/domain"
)

var newCmd = &cobra.Command{
	Use:   "new [task|project|area] <title>",
	Short: "Create a new entity from its template",
	Long: `Create a task, project, or area file with canonical front matter.

Examples:
  tasksync-cli new task "Fix login"
  tasksync-cli new project "Fitness Plan"
  tasksync-cli new area Health`,
}

func newEntityCmd(kind domain.EntityKind) *cobra.Command {
	name := strings.ToLower(kind.String())
	return &cobra.Command{
		Use:   name + " <title>",
		Short: "Create a new " + name,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			create := commands.NewNewEntityCommand(store, settings, kind, title)
			result, err := create.Execute(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.AddCommand(newEntityCmd(domain.EntityTask))
	newCmd.AddCommand(newEntityCmd(domain.EntityProject))
	newCmd.AddCommand(newEntityCmd(domain.EntityArea))
}
