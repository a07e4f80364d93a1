package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/adapters/tui/styles"
	"tasksync/internal/application/commands"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// TaskListKeyMap defines key bindings for the task list view
type TaskListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Status   key.Binding
	Category key.Binding
	Clear    key.Binding
	Copy     key.Binding
	Edit     key.Binding
	Open     key.Binding
	New      key.Binding
	Refresh  key.Binding
	Triage   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var TaskListKeys = TaskListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Status: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "cycle status filter"),
	),
	Category: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "cycle category filter"),
	),
	Clear: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "clear filters"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy link"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open in Obsidian"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new task"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Triage: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "triage"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// TaskListModel is the main task list view
type TaskListModel struct {
	ViewState

	store    ports.VaultStore
	index    ports.EntityIndex
	opener   ports.ObsidianOpener
	settings config.Settings

	// buildURI produces the obsidian:// link the copy action puts on the
	// clipboard
	buildURI func(path string) (string, error)

	tasks   []domain.Entity // All indexed tasks
	visible []domain.Entity // After filters
	pag     *Paginator

	statusFilter   string
	categoryFilter string
}

// NewTaskListModel creates a new task list model
func NewTaskListModel(store ports.VaultStore, index ports.EntityIndex, opener ports.ObsidianOpener, buildURI func(string) (string, error), settings config.Settings) *TaskListModel {
	return &TaskListModel{
		store:    store,
		index:    index,
		opener:   opener,
		settings: settings,
		buildURI: buildURI,
		pag:      NewPaginator(20),
	}
}

// Init initializes the task list
func (m *TaskListModel) Init() tea.Cmd {
	return m.loadTasks
}

type tasksLoadedMsg struct {
	tasks []domain.Entity
}

func (m *TaskListModel) loadTasks() tea.Msg {
	if _, err := m.index.SyncIncremental(); err != nil {
		return errMsg{err}
	}
	tasks, err := m.index.ListEntities(domain.EntityTask)
	if err != nil {
		return errMsg{err}
	}
	return tasksLoadedMsg{tasks}
}

// Update handles messages for the task list
func (m *TaskListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.applyFilters()
		return m, nil

	case errMsg:
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case statusMsg:
		m.SetMessage(msg.message, false)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()

		switch {
		case key.Matches(msg, TaskListKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, TaskListKeys.Up):
			m.pag.CursorUp()
			return m, nil

		case key.Matches(msg, TaskListKeys.Down):
			m.pag.CursorDown()
			return m, nil

		case key.Matches(msg, TaskListKeys.Status):
			m.statusFilter = cycle(m.statusFilter, m.settings.TaskStatuses)
			m.applyFilters()
			return m, nil

		case key.Matches(msg, TaskListKeys.Category):
			m.categoryFilter = cycle(m.categoryFilter, categoryNames(m.settings.TaskTypes))
			m.applyFilters()
			return m, nil

		case key.Matches(msg, TaskListKeys.Clear):
			m.statusFilter = ""
			m.categoryFilter = ""
			m.applyFilters()
			return m, nil

		case key.Matches(msg, TaskListKeys.Copy):
			if task := m.selectedTask(); task != nil {
				return m, m.copyLink(task.Path)
			}
			return m, nil

		case key.Matches(msg, TaskListKeys.Edit):
			if task := m.selectedTask(); task != nil {
				path := task.Path
				return m, func() tea.Msg {
					return OpenEditorMsg{Path: m.store.Abs(path)}
				}
			}
			return m, nil

		case key.Matches(msg, TaskListKeys.Open):
			if task := m.selectedTask(); task != nil {
				return m, m.openInObsidian(task.Path)
			}
			return m, nil

		case key.Matches(msg, TaskListKeys.New):
			return m, func() tea.Msg {
				return SwitchToNewTaskMsg{}
			}

		case key.Matches(msg, TaskListKeys.Refresh):
			return m, m.refreshVault

		case key.Matches(msg, TaskListKeys.Triage):
			return m, func() tea.Msg {
				return SwitchToTriageMsg{}
			}

		case key.Matches(msg, TaskListKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *TaskListModel) copyLink(path string) tea.Cmd {
	return func() tea.Msg {
		uri, err := m.buildURI(path)
		if err != nil {
			return errMsg{err}
		}
		if err := clipboard.WriteAll(uri); err != nil {
			return errMsg{fmt.Errorf("failed to copy link: %w", err)}
		}
		return statusMsg{"Copied " + uri}
	}
}

func (m *TaskListModel) openInObsidian(path string) tea.Cmd {
	return func() tea.Msg {
		if err := m.opener.OpenFile(path); err != nil {
			return errMsg{err}
		}
		return statusMsg{"Opened " + path}
	}
}

// refreshVault reconciles all task files, regenerates the base files and
// reloads the list
func (m *TaskListModel) refreshVault() tea.Msg {
	ctx := context.Background()

	refresh := commands.NewRefreshCommand(m.store, m.settings, domain.EntityTask, "")
	if _, err := refresh.Execute(ctx); err != nil {
		return errMsg{err}
	}
	if _, err := m.index.SyncIncremental(); err != nil {
		return errMsg{err}
	}
	sync := commands.NewSyncBasesCommand(m.store, m.index, m.settings)
	if _, err := sync.Execute(ctx); err != nil {
		return errMsg{err}
	}

	tasks, err := m.index.ListEntities(domain.EntityTask)
	if err != nil {
		return errMsg{err}
	}
	return tasksLoadedMsg{tasks}
}

func (m *TaskListModel) selectedTask() *domain.Entity {
	i := m.pag.Cursor()
	if i >= 0 && i < len(m.visible) {
		return &m.visible[i]
	}
	return nil
}

func (m *TaskListModel) applyFilters() {
	m.visible = filterTasks(m.tasks, m.statusFilter, m.categoryFilter)
	m.pag.SetTotal(len(m.visible))
}

// filterTasks returns the tasks matching the given status and category.
// An empty filter matches everything.
func filterTasks(tasks []domain.Entity, status, category string) []domain.Entity {
	if status == "" && category == "" {
		return tasks
	}
	var out []domain.Entity
	for _, t := range tasks {
		if status != "" && t.Status != status {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		out = append(out, t)
	}
	return out
}

// cycle advances through the options: "" -> first -> ... -> last -> ""
func cycle(current string, options []string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return ""
		}
	}
	return ""
}

func categoryNames(types []domain.TaskType) []string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Name
	}
	return names
}

// Reload reloads the task list from the index
func (m *TaskListModel) Reload() tea.Cmd {
	return m.loadTasks
}

// View renders the task list
func (m *TaskListModel) View() string {
	v := NewViewBuilder().Title("Task Sync")

	if filters := m.renderFilters(); filters != "" {
		v.Line(filters).BlankLine()
	}

	if len(m.visible) == 0 {
		v.Muted("No tasks. Press n to create one.")
	} else {
		start, end := m.pag.VisibleRange()
		for i := start; i < end; i++ {
			v.Line(m.renderTask(m.visible[i], i == m.pag.Cursor()))
		}
		if m.pag.TotalPages() > 1 {
			v.BlankLine()
			v.Muted(fmt.Sprintf("page %d/%d", m.pag.CurrentPage(), m.pag.TotalPages()))
		}
	}

	v.BlankLine().Message(m.Message, m.MessageErr)
	v.Help(TaskListKeys.Status, TaskListKeys.Category, TaskListKeys.Copy,
		TaskListKeys.New, TaskListKeys.Refresh, TaskListKeys.Help, TaskListKeys.Quit)
	return v.String()
}

func (m *TaskListModel) renderFilters() string {
	var parts []string
	if m.statusFilter != "" {
		parts = append(parts, styles.FilterActive.Render("status: "+m.statusFilter))
	}
	if m.categoryFilter != "" {
		parts = append(parts, styles.FilterActive.Render("category: "+m.categoryFilter))
	}
	return strings.Join(parts, " ")
}

func (m *TaskListModel) renderTask(t domain.Entity, selected bool) string {
	title := t.Title
	if title == "" {
		title = t.Name()
	}

	var meta []string
	if t.Status != "" {
		meta = append(meta, styles.StatusBadge.Render(t.Status))
	}
	if t.Category != "" {
		meta = append(meta, m.categoryBadge(t.Category))
	}
	if t.Project != "" {
		meta = append(meta, styles.ProjectLabel.Render(t.Project))
	}

	line := title
	if len(meta) > 0 {
		line += "  " + strings.Join(meta, " ")
	}

	switch {
	case selected:
		return styles.TaskSelected.Render("> " + title)
	case t.Done:
		return "  " + styles.TaskDone.Render(title)
	default:
		return "  " + line
	}
}

func (m *TaskListModel) categoryBadge(category string) string {
	for _, tt := range m.settings.TaskTypes {
		if tt.Name == category {
			return styles.CategoryStyle(tt.Color).Render(category)
		}
	}
	return category
}
