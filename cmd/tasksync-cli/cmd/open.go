package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/internal/adapters/obsidian"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Open a vault file in Obsidian",
	Long: `Open a vault-relative file in Obsidian via the obsidian:// URI scheme.

Example:
  tasksync-cli open "Tasks/Fix login.md"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opener := obsidian.NewOpener(vaultPath)
		if err := opener.OpenFile(args[0]); err != nil {
			return err
		}
		fmt.Println("opened", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
