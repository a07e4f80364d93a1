package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// TriageKeyMap defines key bindings for the triage view
type TriageKeyMap struct {
	Accept key.Binding
	Skip   key.Binding
	Cancel key.Binding
}

var TriageKeys = TriageKeyMap{
	Accept: key.NewBinding(
		key.WithKeys("a", "enter"),
		key.WithHelp("a/enter", "accept"),
	),
	Skip: key.NewBinding(
		key.WithKeys("s", "n"),
		key.WithHelp("s", "skip"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "back"),
	),
}

// TriageModel walks through AI category suggestions for uncategorized
// tasks, one at a time. Accepting a suggestion writes the category (and
// project, when suggested) into the task's front matter.
type TriageModel struct {
	ViewState

	store     ports.VaultStore
	index     ports.EntityIndex
	assistant ports.TriageAssistant
	settings  config.Settings

	suggestions []ports.TriageSuggestion
	current     int
	loading     bool
	applied     int
}

// NewTriageModel creates a new triage view
func NewTriageModel(store ports.VaultStore, index ports.EntityIndex, assistant ports.TriageAssistant, settings config.Settings) *TriageModel {
	return &TriageModel{
		store:     store,
		index:     index,
		assistant: assistant,
		settings:  settings,
	}
}

type suggestionsLoadedMsg struct {
	suggestions []ports.TriageSuggestion
}

// Init starts loading suggestions
func (m *TriageModel) Init() tea.Cmd {
	m.suggestions = nil
	m.current = 0
	m.applied = 0
	m.loading = true
	m.ClearMessage()
	return m.loadSuggestions
}

func (m *TriageModel) loadSuggestions() tea.Msg {
	if m.assistant == nil || !m.assistant.IsAvailable() {
		return errMsg{fmt.Errorf("claude CLI not found; triage needs it installed")}
	}

	tasks, err := m.index.ListEntities(domain.EntityTask)
	if err != nil {
		return errMsg{err}
	}
	var untriaged []domain.Entity
	for _, t := range tasks {
		if t.Category == "" && !t.Done {
			untriaged = append(untriaged, t)
		}
	}
	if len(untriaged) == 0 {
		return errMsg{fmt.Errorf("no uncategorized tasks to triage")}
	}

	projects, err := m.index.ListEntities(domain.EntityProject)
	if err != nil {
		return errMsg{err}
	}
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name()
	}

	suggestions, err := m.assistant.SuggestTriage(untriaged, m.settings.TaskTypes, names)
	if err != nil {
		return errMsg{err}
	}
	return suggestionsLoadedMsg{suggestions}
}

// Update handles messages for the triage view
func (m *TriageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case suggestionsLoadedMsg:
		m.loading = false
		m.suggestions = msg.suggestions
		return m, nil

	case errMsg:
		m.loading = false
		m.SetMessage(msg.err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, TriageKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToTaskListMsg{}
			}

		case key.Matches(msg, TriageKeys.Accept):
			if s := m.currentSuggestion(); s != nil {
				if err := m.apply(*s); err != nil {
					m.SetMessage(err.Error(), true)
				} else {
					m.applied++
				}
				return m, m.advance()
			}
			return m, nil

		case key.Matches(msg, TriageKeys.Skip):
			if m.currentSuggestion() != nil {
				return m, m.advance()
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *TriageModel) currentSuggestion() *ports.TriageSuggestion {
	if m.current >= 0 && m.current < len(m.suggestions) {
		return &m.suggestions[m.current]
	}
	return nil
}

func (m *TriageModel) advance() tea.Cmd {
	m.current++
	if m.current >= len(m.suggestions) {
		return func() tea.Msg {
			return SwitchToTaskListMsg{}
		}
	}
	return nil
}

// apply writes the suggested category and project into the task file
func (m *TriageModel) apply(s ports.TriageSuggestion) error {
	content, err := m.store.Read(s.Path)
	if err != nil {
		return err
	}
	fm, body, err := domain.Parse(content)
	if err != nil || fm == nil {
		return fmt.Errorf("cannot update %s: unparsable front matter", s.Path)
	}

	fm.Set("Category", domain.String(s.Category))
	if s.Project != "" {
		fm.Set("Project", domain.String("[["+s.Project+"]]"))
	}

	rewritten, err := fm.Render(body)
	if err != nil {
		return err
	}
	return m.store.Write(s.Path, rewritten)
}

// View renders the triage view
func (m *TriageModel) View() string {
	v := NewViewBuilder().Title("Triage")

	switch {
	case m.loading:
		v.Muted("Asking the assistant for suggestions...")
	case m.Message != "":
		v.Message(m.Message, m.MessageErr)
	case m.currentSuggestion() != nil:
		s := m.currentSuggestion()
		v.Muted(fmt.Sprintf("suggestion %d of %d", m.current+1, len(m.suggestions)))
		v.BlankLine()
		v.Line(RenderLabelValue("Task", s.Path))
		v.Line(RenderLabelValue("Category", s.Category))
		if s.Project != "" {
			v.Line(RenderLabelValue("Project", s.Project))
		}
		if s.Reasoning != "" {
			v.BlankLine()
			v.Muted(s.Reasoning)
		}
	default:
		v.Muted("Nothing to triage.")
	}

	v.BlankLine()
	v.Help(TriageKeys.Accept, TriageKeys.Skip, TriageKeys.Cancel)
	return v.String()
}
