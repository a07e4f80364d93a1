package commands

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"tasksync/internal/application"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// NewEntityResult contains the result of creating an entity
type NewEntityResult struct {
	Path    string // Vault-relative path of the created file
	Message string
}

// NewEntityCommand creates a task, project or area file from its template.
//
// The template is read from the vault when present, otherwise the built-in
// content is used. The new file is reconciled immediately so its front
// matter is canonical from the start. A file already at the target path is
// a conflict, never overwritten.
type NewEntityCommand struct {
	store    ports.VaultStore
	settings config.Settings

	Kind  domain.EntityKind
	Title string
}

// NewNewEntityCommand creates a new NewEntityCommand
func NewNewEntityCommand(store ports.VaultStore, settings config.Settings, kind domain.EntityKind, title string) *NewEntityCommand {
	return &NewEntityCommand{store: store, settings: settings, Kind: kind, Title: title}
}

// Validate checks if the create operation is valid
func (c *NewEntityCommand) Validate() error {
	if c.store == nil {
		return application.ErrNotReady
	}
	return application.ValidateFileTitle("title", c.Title)
}

// Execute creates the entity file
func (c *NewEntityCommand) Execute(ctx context.Context) (*NewEntityResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folder := c.settings.FolderFor(c.Kind)
	target := path.Join(folder, c.Title+".md")

	exists, err := c.store.Exists(target)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", target, err)
	}
	if exists {
		return nil, &application.ConflictError{Path: target}
	}

	if err := c.store.CreateFolder(folder); err != nil {
		return nil, fmt.Errorf("failed to create %s folder: %w", c.Kind, err)
	}

	content := c.templateContent()
	content = strings.ReplaceAll(content, "{{title}}", c.Title)
	content = strings.ReplaceAll(content, "{{date}}", time.Now().Format("2006-01-02"))

	reconciled, err := ReconcileContent(content, c.Kind, c.settings, target)
	if err != nil {
		return nil, err
	}
	if err := c.store.Write(target, reconciled); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", c.Kind, err)
	}

	return &NewEntityResult{
		Path:    target,
		Message: fmt.Sprintf("Created %s: %s", strings.ToLower(c.Kind.String()), c.Title),
	}, nil
}

func (c *NewEntityCommand) templateContent() string {
	templatePath := c.settings.TemplateFor(c.Kind)
	if content, err := c.store.Read(templatePath); err == nil && content != "" {
		return content
	}
	return domain.BuiltinTemplate(c.Kind)
}
