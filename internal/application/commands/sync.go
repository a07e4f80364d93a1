package commands

import (
	"context"
	"fmt"
	"path"

	"tasksync/internal/application"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// SyncBasesResult contains the outcome of a base sync
type SyncBasesResult struct {
	Written []string // Vault-relative paths of regenerated base files
	Message string
}

// SyncBasesCommand regenerates base files from the current settings and
// the known projects and areas.
//
// Every run rebuilds the global base. Project and area bases are rebuilt
// only when their enable flags are on; a disabled class is neither created
// nor updated. Category changes are global, so there is no narrower scope:
// any trigger rebuilds everything currently enabled. Each file is derived
// wholesale from the settings snapshot, which is what makes overlapping
// triggers safe: last write wins and produces the same text.
type SyncBasesCommand struct {
	store    ports.VaultStore
	index    ports.EntityIndex
	settings config.Settings
}

// NewSyncBasesCommand creates a new SyncBasesCommand
func NewSyncBasesCommand(store ports.VaultStore, index ports.EntityIndex, settings config.Settings) *SyncBasesCommand {
	return &SyncBasesCommand{store: store, index: index, settings: settings}
}

// Validate checks if the sync operation is valid
func (c *SyncBasesCommand) Validate() error {
	if c.store == nil || c.index == nil {
		return application.ErrNotReady
	}
	return nil
}

// Execute regenerates all enabled base files
func (c *SyncBasesCommand) Execute(ctx context.Context) (*SyncBasesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.CreateFolder(c.settings.BasesFolder); err != nil {
		return nil, fmt.Errorf("failed to create bases folder: %w", err)
	}

	scopes := []domain.BaseScope{domain.GlobalBaseScope}

	if c.settings.ProjectBasesEnabled {
		projects, err := c.index.ListEntities(domain.EntityProject)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}
		for _, p := range projects {
			scopes = append(scopes, domain.ProjectBaseScope(p.Name()))
		}
	}
	if c.settings.AreaBasesEnabled {
		areas, err := c.index.ListEntities(domain.EntityArea)
		if err != nil {
			return nil, fmt.Errorf("failed to list areas: %w", err)
		}
		for _, a := range areas {
			scopes = append(scopes, domain.AreaBaseScope(a.Name()))
		}
	}

	result := &SyncBasesResult{}
	for _, scope := range scopes {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		target := path.Join(c.settings.BasesFolder, scope.FileName())
		text := domain.GenerateBase(scope, c.settings.TaskTypes)
		if err := c.store.Write(target, text); err != nil {
			return result, fmt.Errorf("failed to write %s: %w", target, err)
		}
		result.Written = append(result.Written, target)
	}

	result.Message = fmt.Sprintf("Regenerated %d base file(s)", len(result.Written))
	return result, nil
}
