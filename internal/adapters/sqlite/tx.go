package sqlite

import (
	"database/sql"

	"tasksync/internal/domain"
	"tasksync/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// UpsertEntity inserts or updates an entity
func (t *indexTx) UpsertEntity(e *domain.Entity) error {
	done := 0
	if e.Done {
		done = 1
	}
	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO entities (path, kind, title, status, category, project, areas, done, mtime)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.Path, e.Kind.String(), e.Title, e.Status, e.Category, e.Project,
		encodeAreas(e.Areas), done, e.Mtime)
	return err
}

// DeleteEntity removes an entity by path
func (t *indexTx) DeleteEntity(path string) error {
	_, err := t.tx.Exec(`DELETE FROM entities WHERE path = ?`, path)
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
