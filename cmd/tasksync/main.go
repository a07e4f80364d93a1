package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/adapters/claudecli"
	"tasksync/internal/adapters/editor"
	"tasksync/internal/adapters/filesystem"
	"tasksync/internal/adapters/obsidian"
	"tasksync/internal/adapters/sqlite"
	"tasksync/internal/adapters/tui"
	"tasksync/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", config.VaultPath(), "path to the vault")
	flag.Parse()

	settings, err := config.Load(*vaultFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := filesystem.NewVault(*vaultFlag)

	index := sqlite.NewIndex(settings)
	if err := index.Open(*vaultFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer index.Close()

	if index.NeedsFullRebuild() {
		if _, err := index.SyncFull(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	app := tui.NewApp(
		store,
		index,
		claudecli.NewAssistant(),
		obsidian.NewOpener(*vaultFlag),
		editor.NewOpener(),
		settings,
	)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
