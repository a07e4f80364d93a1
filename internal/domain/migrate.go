package domain

import (
	"regexp"
	"strings"
)

// legacyTaskTypes are the Type values that predate the Category property.
// Files written before the split stored the category in Type; migration
// moves the value over and resets Type to "Task". The set is closed: any
// other Type value is treated as a deliberate custom type.
var legacyTaskTypes = map[string]bool{
	"Bug":         true,
	"Feature":     true,
	"Improvement": true,
	"Chore":       true,
}

// IsLegacyTaskType reports whether a Type value belongs to the legacy set
func IsLegacyTaskType(s string) bool {
	return legacyTaskTypes[s]
}

// MigrateLegacyType rewrites a legacy Type value into Category.
//
// The rewrite happens only when Category is absent or null AND Type holds a
// member of the legacy set. A file that already has a Category is never
// re-migrated, even if Type still holds a legacy value, which makes the
// operation idempotent. Returns the (possibly new) front matter and whether
// anything changed.
func MigrateLegacyType(fm *FrontMatter) (*FrontMatter, bool) {
	if fm == nil {
		return fm, false
	}
	if !fm.IsNull("Category") {
		return fm, false
	}
	typ, ok := fm.Get("Type")
	if !ok {
		return fm, false
	}
	typValue, isScalar := typ.AsString()
	if !isScalar || !IsLegacyTaskType(typValue) {
		return fm, false
	}

	out := fm.Clone()
	out.Set("Category", String(typValue))
	out.Set("Type", String("Task"))
	return out, true
}

var legacyTypeLine = regexp.MustCompile(`(?m)^Type:[ \t]*"?(Bug|Feature|Improvement|Chore)"?[ \t]*$`)
var categoryLine = regexp.MustCompile(`(?m)^Category:`)

// SalvageLegacyTypeLine migrates a legacy Type line textually.
//
// Used when the front-matter block fails YAML parsing but the Type line
// itself is well formed: the file is otherwise left as-is, so the user's
// broken-but-theirs content survives while the migration still lands.
// Fully broken input (no parsable Type line, or a Category line already
// present) is returned unchanged.
func SalvageLegacyTypeLine(content string) (string, bool) {
	block, _, found := splitFrontMatter(content)
	if !found {
		return content, false
	}
	if categoryLine.MatchString(block) {
		return content, false
	}
	match := legacyTypeLine.FindStringSubmatch(block)
	if match == nil {
		return content, false
	}

	migrated := legacyTypeLine.ReplaceAllString(block, "Type: Task\nCategory: "+match[1])
	return strings.Replace(content, block, migrated, 1), true
}
