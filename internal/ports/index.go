package ports

import "tasksync/internal/domain"

// EntityIndex provides cached access to the vault's tasks, projects and
// areas with their parsed front-matter fields. Query operations should hit
// the cache, not the filesystem.
type EntityIndex interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Sync operations
	NeedsFullRebuild() bool
	SyncIncremental() (*domain.SyncStats, error)
	SyncFull() (*domain.SyncStats, error)

	// Queries
	ListEntities(kind domain.EntityKind) ([]domain.Entity, error)
	GetEntity(path string) (*domain.Entity, error)

	// Batch updates
	BeginTx() (IndexTx, error)
}

// IndexTx is a transaction for atomic cache updates
type IndexTx interface {
	UpsertEntity(e *domain.Entity) error
	DeleteEntity(path string) error

	Commit() error
	Rollback() error
}
