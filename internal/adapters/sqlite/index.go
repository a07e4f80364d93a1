package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tasksync/internal/config"
	"tasksync/internal/domain"
	"tasksync/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Index implements ports.EntityIndex using SQLite. The database lives in
// the XDG data directory, keyed by a hash of the vault path, so the vault
// itself stays free of cache files.
type Index struct {
	db        *sql.DB
	vaultPath string
	dbPath    string
	settings  config.Settings
}

// Ensure Index implements EntityIndex
var _ ports.EntityIndex = (*Index)(nil)

// NewIndex creates a new SQLite index scanning the folders configured in
// settings.
func NewIndex(settings config.Settings) *Index {
	return &Index{settings: settings}
}

// Open initializes the index for the given vault path
func (idx *Index) Open(vaultPath string) error {
	vaultPath = config.ExpandHome(vaultPath)

	idx.vaultPath = vaultPath
	idx.dbPath = databasePath(vaultPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entities (
			path TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT '',
			category TEXT NOT NULL DEFAULT '',
			project TEXT NOT NULL DEFAULT '',
			areas TEXT NOT NULL DEFAULT '[]',
			done INTEGER NOT NULL DEFAULT 0,
			mtime INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entities_kind ON entities(kind);
		CREATE INDEX IF NOT EXISTS idx_entities_status ON entities(status);
		CREATE INDEX IF NOT EXISTS idx_entities_category ON entities(category);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsFullRebuild returns true if the index should be fully rebuilt
func (idx *Index) NeedsFullRebuild() bool {
	var version, vaultHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'vault_path_hash'").Scan(&vaultHash)

	return version != schemaVersion || vaultHash != hashVaultPath(idx.vaultPath)
}

// databasePath returns the path for the SQLite database
func databasePath(vaultPath string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	hash := hashVaultPath(vaultPath)
	return filepath.Join(dataHome, "tasksync", hash+".db")
}

// hashVaultPath returns a short hash of the vault path
func hashVaultPath(vaultPath string) string {
	h := sha256.Sum256([]byte(vaultPath))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and vault path hash. One Exec per
// statement: the driver binds arguments per statement, not across a batch.
func (idx *Index) updateMeta() error {
	for key, value := range map[string]string{
		"schema_version":  schemaVersion,
		"vault_path_hash": hashVaultPath(idx.vaultPath),
	} {
		_, err := idx.db.Exec(
			"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)", key, value)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetEntity retrieves an entity by vault-relative path.
// Returns nil when the path is not indexed.
func (idx *Index) GetEntity(path string) (*domain.Entity, error) {
	row := idx.db.QueryRow(`
		SELECT path, kind, title, status, category, project, areas, done, mtime
		FROM entities WHERE path = ?
	`, path)

	e, err := scanEntity(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListEntities returns all indexed entities of a kind, ordered by path
func (idx *Index) ListEntities(kind domain.EntityKind) ([]domain.Entity, error) {
	rows, err := idx.db.Query(`
		SELECT path, kind, title, status, category, project, areas, done, mtime
		FROM entities WHERE kind = ? ORDER BY path
	`, kind.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entities []domain.Entity
	for rows.Next() {
		e, err := scanEntity(rows)
		if err != nil {
			return nil, err
		}
		entities = append(entities, *e)
	}
	return entities, rows.Err()
}

// BeginTx starts a transaction for batch updates
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntity(row rowScanner) (*domain.Entity, error) {
	var e domain.Entity
	var kind, areas string
	var done int

	if err := row.Scan(&e.Path, &kind, &e.Title, &e.Status, &e.Category,
		&e.Project, &areas, &done, &e.Mtime); err != nil {
		return nil, err
	}

	e.Kind, _ = domain.ParseEntityKind(kind)
	e.Done = done != 0
	if areas != "" && areas != "[]" {
		if err := json.Unmarshal([]byte(areas), &e.Areas); err != nil {
			return nil, fmt.Errorf("corrupt areas column for %s: %w", e.Path, err)
		}
	}
	return &e, nil
}

func encodeAreas(areas []string) string {
	if len(areas) == 0 {
		return "[]"
	}
	data, err := json.Marshal(areas)
	if err != nil {
		return "[]"
	}
	return string(data)
}
