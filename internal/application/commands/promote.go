package commands

import (
	"context"
	"fmt"
	"strings"

	"tasksync/internal/application"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// PromoteTodoResult contains the result of promoting a todo
type PromoteTodoResult struct {
	TaskPath string // Vault-relative path of the new task file
	Message  string
}

// PromoteTodoCommand turns a `- [ ] text` line in a note into a task file.
//
// The todo text becomes the task title, the new file goes through the usual
// template + reconcile pipeline, and the original line is rewritten to link
// the task so the checklist state stays in the source note.
type PromoteTodoCommand struct {
	store    ports.VaultStore
	settings config.Settings

	SourcePath string // Note containing the todo line
	TodoText   string // Text of the todo, without the checkbox prefix
}

// NewPromoteTodoCommand creates a new PromoteTodoCommand
func NewPromoteTodoCommand(store ports.VaultStore, settings config.Settings, sourcePath, todoText string) *PromoteTodoCommand {
	return &PromoteTodoCommand{store: store, settings: settings, SourcePath: sourcePath, TodoText: todoText}
}

// Validate checks if the promote operation is valid
func (c *PromoteTodoCommand) Validate() error {
	if c.store == nil {
		return application.ErrNotReady
	}
	if err := application.ValidateRequired("sourcePath", c.SourcePath); err != nil {
		return err
	}
	return application.ValidateFileTitle("todoText", c.TodoText)
}

// Execute promotes the todo line to a task
func (c *PromoteTodoCommand) Execute(ctx context.Context) (*PromoteTodoResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	content, err := c.store.Read(c.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.SourcePath, err)
	}

	rewritten, found := rewriteTodoLine(content, c.TodoText)
	if !found {
		return nil, &application.ValidationError{
			Field:   "todoText",
			Message: fmt.Sprintf("no todo line %q in %s", c.TodoText, c.SourcePath),
		}
	}

	create := NewNewEntityCommand(c.store, c.settings, domain.EntityTask, c.TodoText)
	created, err := create.Execute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.store.Write(c.SourcePath, rewritten); err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", c.SourcePath, err)
	}

	return &PromoteTodoResult{
		TaskPath: created.Path,
		Message:  fmt.Sprintf("Promoted todo to task: %s", c.TodoText),
	}, nil
}

// rewriteTodoLine replaces the matching `- [ ] text` line with a link to
// the promoted task, keeping the checkbox and indentation.
func rewriteTodoLine(content, todoText string) (string, bool) {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		rest, ok := strings.CutPrefix(trimmed, "- [ ] ")
		if !ok || strings.TrimSpace(rest) != todoText {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		lines[i] = indent + "- [ ] [[" + todoText + "]]"
		return strings.Join(lines, "\n"), true
	}
	return content, false
}
