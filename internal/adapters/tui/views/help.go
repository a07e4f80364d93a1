package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToTaskListMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Task Sync Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Filtering"))
	b.WriteString("\n")
	b.WriteString(helpLine("s", "Cycle status filter"))
	b.WriteString(helpLine("c", "Cycle category filter"))
	b.WriteString(helpLine("x", "Clear filters"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Actions"))
	b.WriteString("\n")
	b.WriteString(helpLine("n", "Create a new task"))
	b.WriteString(helpLine("e / Enter", "Edit in $EDITOR"))
	b.WriteString(helpLine("o", "Open in Obsidian"))
	b.WriteString(helpLine("y", "Copy obsidian:// link"))
	b.WriteString(helpLine("r", "Refresh front matter and regenerate bases"))
	b.WriteString(helpLine("t", "AI triage of uncategorized tasks"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle this help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.MutedText.Render("esc/q/? to close"))

	return styles.App.Render(b.String())
}

func helpLine(keys, desc string) string {
	return fmt.Sprintf("  %s  %s\n",
		styles.HelpKey.Render(fmt.Sprintf("%-14s", keys)),
		styles.HelpDesc.Render(desc),
	)
}
