package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/adapters/editor"
	"tasksync/internal/adapters/obsidian"
	"tasksync/internal/adapters/tui/views"
	"tasksync/internal/config"
	"tasksync/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewTaskList ViewState = iota
	ViewNewTask
	ViewTriage
	ViewHelp
)

// App is the main TUI application model
type App struct {
	editor *editor.Opener

	state    ViewState
	taskList *views.TaskListModel
	newTask  *views.NewTaskModel
	triage   *views.TriageModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.VaultStore, index ports.EntityIndex, assistant ports.TriageAssistant, opener *obsidian.Opener, ed *editor.Opener, settings config.Settings) *App {
	return &App{
		editor:   ed,
		state:    ViewTaskList,
		taskList: views.NewTaskListModel(store, index, opener, opener.BuildURI, settings),
		newTask:  views.NewNewTaskModel(store, settings, ed != nil),
		triage:   views.NewTriageModel(store, index, assistant, settings),
		help:     views.NewHelpModel(),
	}
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.taskList.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.taskList.SetSize(msg.Width, msg.Height)
		a.newTask.SetSize(msg.Width, msg.Height)
		a.triage.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToNewTaskMsg:
		a.state = ViewNewTask
		return a, a.newTask.Init()

	case views.SwitchToTriageMsg:
		a.state = ViewTriage
		return a, a.triage.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToTaskListMsg:
		a.state = ViewTaskList
		return a, a.taskList.Reload()

	// New task view messages
	case views.TaskCreatedMsg:
		a.state = ViewTaskList
		return a, a.taskList.Reload()

	case views.CreateErrMsg:
		a.newTask.SetMessage(msg.Err.Error(), true)
		return a, nil

	case views.OpenEditorMsg:
		return a, a.openEditor(msg.Path)

	case editorFinishedMsg:
		return a, a.taskList.Reload()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewTaskList:
		_, cmd = a.taskList.Update(msg)
	case ViewNewTask:
		_, cmd = a.newTask.Update(msg)
	case ViewTriage:
		_, cmd = a.triage.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

type editorFinishedMsg struct{ err error }

func (a *App) openEditor(path string) tea.Cmd {
	if a.editor == nil {
		return nil
	}

	cmd, err := a.editor.Command(path)
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewNewTask:
		return a.newTask.View()
	case ViewTriage:
		return a.triage.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.taskList.View()
	}
}
