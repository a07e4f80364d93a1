package domain

import (
	"fmt"
	"strings"
)

// BaseScopeKind selects which slice of the vault a base file covers
type BaseScopeKind int

const (
	BaseGlobal BaseScopeKind = iota
	BaseProject
	BaseArea
)

// BaseScope identifies one base file: the global task list, or the tasks
// of a single project or area. Name is the entity's display name (filename
// stem), never a path and never with the .md suffix.
type BaseScope struct {
	Kind BaseScopeKind
	Name string
}

// GlobalBaseScope is the scope of the vault-wide task base
var GlobalBaseScope = BaseScope{Kind: BaseGlobal}

// ProjectBaseScope returns the scope for one project's base
func ProjectBaseScope(name string) BaseScope {
	return BaseScope{Kind: BaseProject, Name: name}
}

// AreaBaseScope returns the scope for one area's base
func AreaBaseScope(name string) BaseScope {
	return BaseScope{Kind: BaseArea, Name: name}
}

// FileName returns the base file's name within the bases folder
func (s BaseScope) FileName() string {
	if s.Kind == BaseGlobal {
		return "Tasks.base"
	}
	return s.Name + ".base"
}

// GenerateBase renders the complete text of one base file.
//
// Generation is total: the output is derived from the scope and the
// configured categories alone, so rewriting the file wholesale can never
// leave stale views behind. Every configured category yields one table view
// named "All <plural>" filtered to that category, after the unfiltered
// "All Tasks" view. Done ascending is always the first sort key so
// completed tasks sink to the bottom whatever else changes.
func GenerateBase(scope BaseScope, categories []TaskType) string {
	var b strings.Builder

	b.WriteString("properties:\n")
	b.WriteString("  formula.Title:\n")
	b.WriteString("    displayName: Title\n")
	for _, col := range []string{"Status", "Category", "Priority", "Done"} {
		fmt.Fprintf(&b, "  note.%s:\n", col)
		fmt.Fprintf(&b, "    displayName: %s\n", col)
	}

	b.WriteString("formulas:\n")
	b.WriteString("  Title: link(file.name, Title)\n")

	b.WriteString("filters:\n")
	b.WriteString("  and:\n")
	for _, f := range scopeFilters(scope) {
		fmt.Fprintf(&b, "    - %s\n", yamlScalar(f))
	}

	b.WriteString("views:\n")
	writeView(&b, "All Tasks", "")
	for _, cat := range categories {
		writeView(&b, "All "+Pluralize(cat.Name), cat.Name)
	}

	b.WriteString("sort:\n")
	b.WriteString("  - property: Done\n")
	b.WriteString("    direction: ASC\n")
	b.WriteString("  - property: file.mtime\n")
	b.WriteString("    direction: DESC\n")
	b.WriteString("  - property: Title\n")
	b.WriteString("    direction: ASC\n")

	return b.String()
}

func scopeFilters(scope BaseScope) []string {
	filters := []string{`Type == "Task"`}
	switch scope.Kind {
	case BaseProject:
		filters = append(filters, fmt.Sprintf(`Project.contains(link(%q))`, scope.Name))
	case BaseArea:
		filters = append(filters, fmt.Sprintf(`Areas.contains(link(%q))`, scope.Name))
	}
	return filters
}

func writeView(b *strings.Builder, name, category string) {
	b.WriteString("  - type: table\n")
	fmt.Fprintf(b, "    name: %s\n", yamlScalar(name))
	if category != "" {
		b.WriteString("    filters:\n")
		b.WriteString("      and:\n")
		fmt.Fprintf(b, "        - %s\n", yamlScalar(fmt.Sprintf(`Category == %q`, category)))
	}
	b.WriteString("    order:\n")
	for _, col := range []string{"formula.Title", "Status", "Priority", "Done"} {
		fmt.Fprintf(b, "      - %s\n", col)
	}
}

// yamlScalar renders a string as a YAML scalar, single-quoting when plain
// style would be ambiguous (leading indicator characters, ": ", or "#").
func yamlScalar(s string) string {
	if s == "" {
		return "''"
	}
	needsQuote := strings.Contains(s, ": ") ||
		strings.Contains(s, " #") ||
		strings.ContainsAny(string(s[0]), "!&*?{}[],#|>@`\"'%- ")
	if !needsQuote {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
