package claudecli

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// Assistant implements ports.TriageAssistant using the Claude Code CLI
type Assistant struct {
	model string
}

// Ensure Assistant implements TriageAssistant
var _ ports.TriageAssistant = (*Assistant)(nil)

// Option configures the Assistant
type Option func(*Assistant)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(a *Assistant) {
		a.model = model
	}
}

// NewAssistant creates a new Claude CLI assistant
func NewAssistant(opts ...Option) *Assistant {
	a := &Assistant{
		model: "haiku", // Default to haiku for speed
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	IsError   bool   `json:"is_error"`
	Result    string `json:"result"`
	SessionID string `json:"session_id"`
}

// triageJSON represents the expected JSON format from Claude's response
type triageJSON struct {
	Path      string `json:"path"`
	Category  string `json:"category"`
	Project   string `json:"project,omitempty"`
	Reasoning string `json:"reasoning"`
}

// SuggestTriage proposes a category, and optionally a project, for each
// uncategorized task. Suggestions naming an unknown category are dropped
// rather than surfaced: the model must pick from the configured set.
func (a *Assistant) SuggestTriage(tasks []domain.Entity, categories []domain.TaskType, projects []string) ([]ports.TriageSuggestion, error) {
	prompt := buildTriagePrompt(tasks, categories, projects)

	args := []string{
		"-p", prompt,
		"--output-format", "json",
		"--model", a.model,
	}

	cmd := exec.Command("claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("claude CLI error: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("claude CLI error: %w", err)
	}

	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return nil, fmt.Errorf("failed to parse claude response: %w", err)
	}
	if response.IsError {
		return nil, fmt.Errorf("claude returned an error: %s", response.Result)
	}

	return parseTriageSuggestions(response.Result, categories)
}

func buildTriagePrompt(tasks []domain.Entity, categories []domain.TaskType, projects []string) string {
	var taskList strings.Builder
	for i, task := range tasks {
		taskList.WriteString(fmt.Sprintf("\n### Task %d\npath: %s\ntitle: %s\n", i+1, task.Path, task.Title))
		if task.Status != "" {
			taskList.WriteString("status: " + task.Status + "\n")
		}
	}

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Name
	}

	return fmt.Sprintf(`You are triaging tasks in a GTD vault.

Assign each task below a category, and a project when one clearly fits:
%s
Available categories (choose exactly one per task):
%s

Known projects (optional, leave empty when none fits):
%s

Return ONLY a JSON array (no markdown, no code blocks):
[
  {"path": "Tasks/Fix login.md", "category": "Bug", "project": "Auth Rework", "reasoning": "Brief explanation"},
  {"path": "Tasks/Water plants.md", "category": "Chore", "project": "", "reasoning": "Brief explanation"}
]`, taskList.String(), strings.Join(names, ", "), strings.Join(projects, ", "))
}

var codeBlockRe = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")

// parseTriageSuggestions extracts the suggestions JSON array from Claude's
// response text
func parseTriageSuggestions(result string, categories []domain.TaskType) ([]ports.TriageSuggestion, error) {
	result = strings.TrimSpace(result)

	// Strip a markdown code block if present
	if matches := codeBlockRe.FindStringSubmatch(result); len(matches) > 1 {
		result = strings.TrimSpace(matches[1])
	}

	// Find the JSON array in the text (handles surrounding prose)
	start := strings.Index(result, "[")
	end := strings.LastIndex(result, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no valid JSON array found in response")
	}
	jsonStr := result[start : end+1]

	var raw []triageJSON
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions JSON: %w (json: %s)", err, jsonStr)
	}

	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.Name] = true
	}

	var suggestions []ports.TriageSuggestion
	for _, r := range raw {
		if r.Path == "" || !known[r.Category] {
			continue
		}
		suggestions = append(suggestions, ports.TriageSuggestion{
			Path:      r.Path,
			Category:  r.Category,
			Project:   r.Project,
			Reasoning: r.Reasoning,
		})
	}

	if len(suggestions) == 0 {
		return nil, fmt.Errorf("no valid suggestions found in response")
	}
	return suggestions, nil
}

// IsAvailable checks if the claude CLI is installed and accessible
func (a *Assistant) IsAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}
