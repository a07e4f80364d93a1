package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/internal/application/commands"
)

var templatesForce bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage entity templates",
}

var templatesInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the built-in templates into the vault",
	Long: `Write the built-in task, project, area and parent-task templates
into the configured template folder. Existing templates are preserved
unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		install := commands.NewInstallTemplatesCommand(store, settings, templatesForce)
		result, err := install.Execute(context.Background())
		if err != nil {
			return err
		}
		for _, path := range result.Installed {
			fmt.Println("installed", path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesInstallCmd)
	templatesInstallCmd.Flags().BoolVar(&templatesForce, "force", false, "overwrite existing templates")
}
