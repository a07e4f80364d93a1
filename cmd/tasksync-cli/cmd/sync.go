package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/internal/application/commands"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Regenerate the .base files",
	Long: `Regenerate the global base file plus one base per project and area.

Each base gets a view per configured task category, so running sync after
adding a category makes the new view appear everywhere at once.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := openIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		sync := commands.NewSyncBasesCommand(store, index, settings)
		result, err := sync.Execute(context.Background())
		if err != nil {
			return err
		}

		for _, path := range result.Written {
			fmt.Println("wrote", path)
		}
		fmt.Println(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
