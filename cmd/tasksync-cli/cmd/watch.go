package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tasksync/internal/adapters/watcher"
	"tasksync/internal/application/commands"
	"tasksync/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the vault and keep the index and bases in sync",
	Long: `Watch the tasks, projects and areas folders for changes. After each
burst of edits the index is updated incrementally; when
autoSyncAreaProjectBases is enabled the base files are regenerated too.

Runs until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := openIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		onChange := func() {
			stats, err := index.SyncIncremental()
			if err != nil {
				fmt.Fprintf(os.Stderr, "sync error: %v\n", err)
				return
			}
			if stats.EntitiesAdded+stats.EntitiesUpdated+stats.EntitiesDeleted > 0 {
				fmt.Printf("index: +%d ~%d -%d\n",
					stats.EntitiesAdded, stats.EntitiesUpdated, stats.EntitiesDeleted)
			}

			// Settings may have changed since the last burst; category edits
			// must reach the regenerated bases.
			current, err := config.Load(vaultPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "settings reload error: %v\n", err)
				current = settings
			}
			if !current.AutoSyncAreaProjectBases {
				return
			}
			sync := commands.NewSyncBasesCommand(store, index, current)
			if _, err := sync.Execute(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "base sync error: %v\n", err)
			}
		}

		w, err := watcher.New(vaultPath, settings, onChange)
		if err != nil {
			return err
		}
		defer w.Close()

		fmt.Println("watching", vaultPath)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
