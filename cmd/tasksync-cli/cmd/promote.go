package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasksync/internal/application/commands"
)

var promoteCmd = &cobra.Command{
	Use:   "promote <note-path> <todo-text>",
	Short: "Promote a todo line in a note to a task",
	Long: `Turn a '- [ ] text' checklist line into a standalone task file.

The todo text becomes the task title and the line in the note is rewritten
to link the new task.

Example:
  tasksync-cli promote "Notes/Weekly review.md" "Call the dentist"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		promote := commands.NewPromoteTodoCommand(store, settings, args[0], args[1])
		result, err := promote.Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(result.Message)
		fmt.Println("created", result.TaskPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(promoteCmd)
}
