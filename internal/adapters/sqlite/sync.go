package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"tasksync/internal/domain"
)

// SyncFull performs a complete rebuild of the index
func (idx *Index) SyncFull() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	if _, err := idx.db.Exec(`DELETE FROM entities`); err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}

	for kind, folder := range idx.folders() {
		entities, scanned, failures := idx.scanFolder(kind, folder)
		stats.FilesScanned += scanned
		stats.ParseFailures += failures
		for i := range entities {
			if err := tx.UpsertEntity(&entities[i]); err != nil {
				tx.Rollback()
				return nil, err
			}
			stats.EntitiesAdded++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	if err := idx.updateMeta(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// SyncIncremental updates only entities whose files changed since the
// last sync, and drops entries whose files disappeared.
func (idx *Index) SyncIncremental() (*domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	known := make(map[string]int64)
	rows, err := idx.db.Query(`SELECT path, mtime FROM entities`)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var path string
		var mtime int64
		if err := rows.Scan(&path, &mtime); err != nil {
			rows.Close()
			return nil, err
		}
		known[path] = mtime
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for kind, folder := range idx.folders() {
		entities, scanned, failures := idx.scanFolder(kind, folder)
		stats.FilesScanned += scanned
		stats.ParseFailures += failures
		for i := range entities {
			e := &entities[i]
			seen[e.Path] = true

			prev, ok := known[e.Path]
			if ok && prev == e.Mtime {
				continue
			}
			if err := tx.UpsertEntity(e); err != nil {
				tx.Rollback()
				return nil, err
			}
			if ok {
				stats.EntitiesUpdated++
			} else {
				stats.EntitiesAdded++
			}
		}
	}

	for path := range known {
		if seen[path] {
			continue
		}
		if err := tx.DeleteEntity(path); err != nil {
			tx.Rollback()
			return nil, err
		}
		stats.EntitiesDeleted++
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

// folders maps entity kinds to their configured vault folders
func (idx *Index) folders() map[domain.EntityKind]string {
	return map[domain.EntityKind]string{
		domain.EntityTask:    idx.settings.TasksFolder,
		domain.EntityProject: idx.settings.ProjectsFolder,
		domain.EntityArea:    idx.settings.AreasFolder,
	}
}

// scanFolder reads every markdown file in a folder and builds index
// records from their front matter. Files that fail to parse are counted
// and skipped; a broken file must not block the rest of the vault.
func (idx *Index) scanFolder(kind domain.EntityKind, folder string) (entities []domain.Entity, scanned, failures int) {
	abs := filepath.Join(idx.vaultPath, filepath.FromSlash(folder))

	dirEntries, err := os.ReadDir(abs)
	if err != nil {
		// A missing or unreadable folder contributes nothing
		return nil, 0, 0
	}

	for _, entry := range dirEntries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".md") {
			continue
		}
		scanned++

		info, err := entry.Info()
		if err != nil {
			continue
		}

		data, err := os.ReadFile(filepath.Join(abs, name))
		if err != nil {
			failures++
			continue
		}

		relPath := folder + "/" + name
		fm, _, err := domain.Parse(string(data))
		if err != nil {
			failures++
			continue
		}

		entities = append(entities, domain.EntityFromFrontMatter(relPath, kind, fm, info.ModTime().Unix()))
	}
	return entities, scanned, failures
}
