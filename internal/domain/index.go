package domain

import (
	"strings"
	"time"
)

// SyncStats holds statistics from an index sync operation
type SyncStats struct {
	EntitiesAdded   int
	EntitiesUpdated int
	EntitiesDeleted int
	FilesScanned    int
	ParseFailures   int
	Duration        time.Duration
}

// EntityFromFrontMatter builds an index record from parsed front matter.
// mtime is the file's modification time, used for incremental sync.
func EntityFromFrontMatter(path string, kind EntityKind, fm *FrontMatter, mtime int64) Entity {
	e := Entity{
		Path:  path,
		Kind:  kind,
		Mtime: mtime,
	}
	if fm == nil {
		e.Title = FilenameStem(path)
		return e
	}

	e.Title = fm.StringValue("Title")
	if e.Title == "" {
		e.Title = FilenameStem(path)
	}
	e.Status = fm.StringValue("Status")
	e.Category = fm.StringValue("Category")
	e.Project = strings.Trim(fm.StringValue("Project"), "[]")
	if v, ok := fm.Get("Areas"); ok {
		for _, area := range v.AsStringList() {
			e.Areas = append(e.Areas, strings.Trim(area, "[]"))
		}
	}
	if v, ok := fm.Get("Done"); ok {
		if done, isBool := v.AsBool(); isBool {
			e.Done = done
		}
	}
	return e
}
