package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/internal/application/commands"
	"tasksync/internal/domain"
)

var (
	refreshKind string
	refreshAll  bool
)

var refreshCmd = &cobra.Command{
	Use:   "refresh [path]",
	Short: "Reconcile front matter against the canonical schema",
	Long: `Rewrite front matter so every file carries the canonical keys in
canonical order, filling defaults for missing values. Legacy Type values
(Bug, Feature, Improvement, Chore) are migrated to Category.

Without arguments the whole tasks folder is refreshed. Pass a
vault-relative path to refresh a single file, or --all to refresh tasks,
projects and areas in one go.

Examples:
  tasksync-cli refresh
  tasksync-cli refresh "Tasks/Fix login.md"
  tasksync-cli refresh --kind Project
  tasksync-cli refresh --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}

		kinds := []domain.EntityKind{domain.EntityTask}
		if refreshAll {
			if path != "" {
				return fmt.Errorf("--all cannot be combined with a path")
			}
			kinds = []domain.EntityKind{domain.EntityTask, domain.EntityProject, domain.EntityArea}
		} else if refreshKind != "" {
			kind, err := domain.ParseEntityKind(refreshKind)
			if err != nil {
				return err
			}
			kinds = []domain.EntityKind{kind}
		}

		ctx := context.Background()
		for _, kind := range kinds {
			refresh := commands.NewRefreshCommand(store, settings, kind, path)
			result, err := refresh.Execute(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %s\n", kind, result.Message)
			for _, skipped := range result.Skipped {
				fmt.Printf("  skipped %s: %v\n", skipped.Path, skipped.Err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().StringVar(&refreshKind, "kind", "", "entity kind: Task (default), Project or Area")
	refreshCmd.Flags().BoolVar(&refreshAll, "all", false, "refresh tasks, projects and areas")
}
