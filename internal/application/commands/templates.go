package commands

import (
	"context"
	"fmt"

	"tasksync/internal/application"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// InstallTemplatesResult contains the result of installing templates
type InstallTemplatesResult struct {
	Installed []string
	Message   string
}

// InstallTemplatesCommand writes the built-in templates into the vault's
// template folder. An existing template is a conflict unless Force is set;
// the error surfaces per file so the caller can decide what to keep.
type InstallTemplatesCommand struct {
	store    ports.VaultStore
	settings config.Settings

	Force bool
}

// NewInstallTemplatesCommand creates a new InstallTemplatesCommand
func NewInstallTemplatesCommand(store ports.VaultStore, settings config.Settings, force bool) *InstallTemplatesCommand {
	return &InstallTemplatesCommand{store: store, settings: settings, Force: force}
}

// Validate checks if the install operation is valid
func (c *InstallTemplatesCommand) Validate() error {
	if c.store == nil {
		return application.ErrNotReady
	}
	return nil
}

// Execute installs the template files
func (c *InstallTemplatesCommand) Execute(ctx context.Context) (*InstallTemplatesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.CreateFolder(c.settings.TemplateFolder); err != nil {
		return nil, fmt.Errorf("failed to create template folder: %w", err)
	}

	templates := []struct {
		path    string
		content string
	}{
		{c.settings.DefaultTaskTemplate, domain.BuiltinTemplate(domain.EntityTask)},
		{c.settings.DefaultProjectTemplate, domain.BuiltinTemplate(domain.EntityProject)},
		{c.settings.DefaultAreaTemplate, domain.BuiltinTemplate(domain.EntityArea)},
		{c.settings.DefaultParentTaskTemplate, domain.ParentTaskTemplate()},
	}

	result := &InstallTemplatesResult{}
	for _, tpl := range templates {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if !c.Force {
			exists, err := c.store.Exists(tpl.path)
			if err != nil {
				return result, fmt.Errorf("failed to check %s: %w", tpl.path, err)
			}
			if exists {
				return result, &application.ConflictError{Path: tpl.path}
			}
		}
		if err := c.store.Write(tpl.path, tpl.content); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", tpl.path, err)
		}
		result.Installed = append(result.Installed, tpl.path)
	}

	result.Message = fmt.Sprintf("Installed %d template(s)", len(result.Installed))
	return result, nil
}
