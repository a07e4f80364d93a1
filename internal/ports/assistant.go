package ports

import "tasksync/internal/domain"

// TriageSuggestion is a proposed classification for one task
type TriageSuggestion struct {
	Path      string // Task file this suggestion is for
	Category  string // Suggested category (one of the configured ones)
	Project   string // Suggested project name, empty when none fits
	Reasoning string
}

// TriageAssistant defines the interface for AI-assisted task triage
type TriageAssistant interface {
	// SuggestTriage proposes a category (and optionally a project) for
	// each task, choosing only among the configured categories.
	SuggestTriage(tasks []domain.Entity, categories []domain.TaskType, projects []string) ([]TriageSuggestion, error)

	// IsAvailable returns true if the assistant backend can be used
	IsAvailable() bool
}
