package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tasksync/internal/adapters/filesystem"
	"tasksync/internal/adapters/sqlite"
	"tasksync/internal/config"
)

var (
	vaultPath string
	store     *filesystem.Vault
	settings  config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "tasksync-cli",
	Short: "CLI for GTD task vaults in Obsidian",
	Long: `tasksync-cli manages tasks, projects and areas stored as markdown
files in an Obsidian vault.

It keeps front matter canonical, migrates legacy Type values to Category,
and regenerates the .base files that drive Obsidian's task views.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		store = filesystem.NewVault(vaultPath)
		var err error
		settings, err = config.Load(vaultPath)
		return err
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the vault")
}

// openIndex opens the entity index and brings it up to date
func openIndex() (*sqlite.Index, error) {
	index := sqlite.NewIndex(settings)
	if err := index.Open(vaultPath); err != nil {
		return nil, err
	}
	if index.NeedsFullRebuild() {
		if _, err := index.SyncFull(); err != nil {
			index.Close()
			return nil, err
		}
	} else if _, err := index.SyncIncremental(); err != nil {
		index.Close()
		return nil, err
	}
	return index, nil
}
