package domain

import (
	"fmt"
	"strings"
)

// EntityKind identifies the kind of a vault entity
type EntityKind int

const (
	EntityTask EntityKind = iota
	EntityProject
	EntityArea
)

// String returns the canonical name of the entity kind
func (k EntityKind) String() string {
	switch k {
	case EntityTask:
		return "Task"
	case EntityProject:
		return "Project"
	case EntityArea:
		return "Area"
	default:
		return "Unknown"
	}
}

// ParseEntityKind parses an entity kind name (case-insensitive)
func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "task", "tasks":
		return EntityTask, nil
	case "project", "projects":
		return EntityProject, nil
	case "area", "areas":
		return EntityArea, nil
	default:
		return 0, fmt.Errorf("unknown entity kind: %q", s)
	}
}

// TaskType is a user-configured task category with a display color
type TaskType struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// Entity is a vault file with its indexed front-matter fields
type Entity struct {
	Path     string // Relative path from vault root
	Kind     EntityKind
	Title    string
	Status   string
	Category string
	Project  string
	Areas    []string
	Done     bool
	Mtime    int64 // Unix timestamp for incremental sync
}

// Name returns the entity's display name: the filename stem.
// This is what Obsidian links resolve against, so base-file filters
// must use it rather than the Title property.
func (e Entity) Name() string {
	base := e.Path
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(base, ".md")
}

// DefaultContext carries the inputs default generators may derive from
type DefaultContext struct {
	Filename string   // Filename stem, used for Title
	Statuses []string // Configured statuses; the first is the default
}

// Property is one canonical front-matter property with its default generator
type Property struct {
	Name    string
	Default func(ctx DefaultContext) *Value
}

// Schema is the ordered canonical property set for an entity kind
type Schema struct {
	Kind  EntityKind
	Props []Property
}

// SchemaFor returns the canonical schema for an entity kind. Default
// values that depend on configuration (the status list, the filename)
// come from the DefaultContext passed to Reconcile.
func SchemaFor(kind EntityKind) Schema {
	defaultStatus := func(ctx DefaultContext) *Value {
		if len(ctx.Statuses) > 0 {
			return String(ctx.Statuses[0])
		}
		return Null()
	}

	title := Property{Name: "Title", Default: func(ctx DefaultContext) *Value {
		return String(ctx.Filename)
	}}
	typ := Property{Name: "Type", Default: func(DefaultContext) *Value {
		return String(kind.String())
	}}
	status := Property{Name: "Status", Default: defaultStatus}
	done := Property{Name: "Done", Default: func(DefaultContext) *Value {
		return Bool(false)
	}}
	areas := Property{Name: "Areas", Default: func(DefaultContext) *Value {
		return EmptyList()
	}}
	tags := Property{Name: "tags", Default: func(DefaultContext) *Value {
		return List(strings.ToLower(kind.String()))
	}}

	switch kind {
	case EntityTask:
		return Schema{Kind: kind, Props: []Property{
			title,
			typ,
			{Name: "Category", Default: nullDefault},
			{Name: "Priority", Default: nullDefault},
			areas,
			{Name: "Project", Default: nullDefault},
			done,
			status,
			{Name: "Parent task", Default: nullDefault},
			{Name: "Sub-tasks", Default: func(DefaultContext) *Value { return EmptyList() }},
			tags,
		}}
	case EntityProject:
		return Schema{Kind: kind, Props: []Property{
			title, typ, areas, done, status, tags,
		}}
	default:
		return Schema{Kind: kind, Props: []Property{
			title, typ, tags,
		}}
	}
}

func nullDefault(DefaultContext) *Value {
	return Null()
}

// FilenameStem strips a trailing .md extension and any directory prefix,
// yielding the name Obsidian displays for a file.
func FilenameStem(path string) string {
	base := path
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(base, ".md")
}
