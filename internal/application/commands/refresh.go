package commands

import (
	"context"
	"errors"
	"fmt"

	"tasksync/internal/application"
	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// RefreshResult contains the outcome of a refresh run
type RefreshResult struct {
	Refreshed []string // Files whose front matter was rewritten
	Unchanged []string // Files already canonical
	Skipped   []application.ParseFailure
	Message   string
}

// RefreshCommand reconciles front matter against the canonical schema.
//
// With Path set it refreshes a single file; otherwise it walks the folder
// configured for Kind. Each file goes through migration first, then
// reconciliation, and is only written back when the text actually changed.
// Files with unparsable front matter are reported and skipped, except that
// a salvageable legacy Type line is still migrated textually.
type RefreshCommand struct {
	store    ports.VaultStore
	settings config.Settings

	Path string
	Kind domain.EntityKind
}

// NewRefreshCommand creates a refresh for one file (path != "") or a whole
// entity folder.
func NewRefreshCommand(store ports.VaultStore, settings config.Settings, kind domain.EntityKind, path string) *RefreshCommand {
	return &RefreshCommand{store: store, settings: settings, Kind: kind, Path: path}
}

// Validate checks if the refresh operation is valid
func (c *RefreshCommand) Validate() error {
	if c.store == nil {
		return application.ErrNotReady
	}
	return nil
}

// Execute runs the refresh
func (c *RefreshCommand) Execute(ctx context.Context) (*RefreshResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	paths := []string{c.Path}
	if c.Path == "" {
		var err error
		paths, err = c.store.List(c.settings.FolderFor(c.Kind))
		if err != nil {
			return nil, fmt.Errorf("failed to list %s folder: %w", c.Kind, err)
		}
	}

	result := &RefreshResult{}
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		changed, err := c.refreshFile(path)
		if err != nil {
			var parseErr *application.ParseFailure
			if errors.As(err, &parseErr) {
				result.Skipped = append(result.Skipped, *parseErr)
				continue
			}
			return result, err
		}
		if changed {
			result.Refreshed = append(result.Refreshed, path)
		} else {
			result.Unchanged = append(result.Unchanged, path)
		}
	}

	result.Message = fmt.Sprintf("Refreshed %d file(s), %d unchanged, %d skipped",
		len(result.Refreshed), len(result.Unchanged), len(result.Skipped))
	return result, nil
}

func (c *RefreshCommand) refreshFile(path string) (bool, error) {
	content, err := c.store.Read(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	rewritten, err := ReconcileContent(content, c.Kind, c.settings, path)
	if err != nil {
		return false, err
	}
	if rewritten == content {
		return false, nil
	}
	if err := c.store.Write(path, rewritten); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// ReconcileContent runs the migrate-then-reconcile pipeline over one file's
// content and returns the corrected text. Malformed front matter yields a
// ParseFailure unless the legacy Type line can be salvaged textually, in
// which case only that line is rewritten.
func ReconcileContent(content string, kind domain.EntityKind, settings config.Settings, path string) (string, error) {
	fm, body, err := domain.Parse(content)
	if err != nil {
		if kind == domain.EntityTask {
			if salvaged, ok := domain.SalvageLegacyTypeLine(content); ok {
				return salvaged, nil
			}
		}
		return "", &application.ParseFailure{Path: path, Err: err}
	}

	if kind == domain.EntityTask {
		fm, _ = domain.MigrateLegacyType(fm)
	}

	ctx := domain.DefaultContext{
		Filename: domain.FilenameStem(path),
		Statuses: settings.TaskStatuses,
	}
	reconciled := domain.Reconcile(domain.SchemaFor(kind), fm, ctx)

	return reconciled.Render(body)
}
