package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/application/commands"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// NewTaskModel is the view for creating a new task
type NewTaskModel struct {
	ViewState

	store    ports.VaultStore
	settings config.Settings

	form      *InputForm
	hasEditor bool
}

// NewNewTaskModel creates a new task creation view
func NewNewTaskModel(store ports.VaultStore, settings config.Settings, hasEditor bool) *NewTaskModel {
	form := NewInputForm(
		NewInputField("Title", "Fix the login flow", 120),
	)
	return &NewTaskModel{
		store:     store,
		settings:  settings,
		form:      form,
		hasEditor: hasEditor,
	}
}

// Init initializes the view
func (m *NewTaskModel) Init() tea.Cmd {
	m.form.Reset()
	m.ClearMessage()
	return m.form.Init()
}

// Update handles messages for the new task view
func (m *NewTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg {
				return SwitchToTaskListMsg{}
			}

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.createTask(m.form.Value(0))
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *NewTaskModel) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		cmd := commands.NewNewEntityCommand(m.store, m.settings, domain.EntityTask, title)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return CreateErrMsg{Err: err}
		}
		return TaskCreatedMsg{Path: result.Path}
	}
}

// View renders the new task view
func (m *NewTaskModel) View() string {
	v := NewViewBuilder().
		Title("New Task").
		Line(m.form.RenderField(0)).
		BlankLine().
		Message(m.Message, m.MessageErr)

	if m.hasEditor {
		v.Muted("The file is created from your task template; press e in the list to edit it.")
		v.BlankLine()
	}

	v.Raw(m.form.RenderHelp("create"))
	return v.String()
}
