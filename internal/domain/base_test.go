package domain

import (
	"strings"
	"testing"
)

var testCategories = []TaskType{
	{Name: "Bug", Color: "red"},
	{Name: "Feature", Color: "blue"},
}

func TestGenerateBase_GlobalScope(t *testing.T) {
	text := GenerateBase(GlobalBaseScope, testCategories)

	for _, want := range []string{
		`Type == "Task"`,
		"Title: link(file.name, Title)",
		"name: All Tasks",
		"name: All Bugs",
		"name: All Features",
		`Category == "Bug"`,
		`Category == "Feature"`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("base missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Project.contains") || strings.Contains(text, "Areas.contains") {
		t.Error("global base must not carry project or area filters")
	}
}

func TestGenerateBase_LinkUsesDisplayNameOnly(t *testing.T) {
	text := GenerateBase(AreaBaseScope("R&D (Research)"), nil)

	if !strings.Contains(text, `Areas.contains(link("R&D (Research)"))`) {
		t.Errorf("area filter missing or malformed:\n%s", text)
	}
	if strings.Contains(text, `R&D (Research).md`) {
		t.Error("area filter must never include the .md suffix")
	}
}

func TestGenerateBase_ProjectFilter(t *testing.T) {
	text := GenerateBase(ProjectBaseScope("Fitness Plan"), nil)
	if !strings.Contains(text, `Project.contains(link("Fitness Plan"))`) {
		t.Errorf("project filter missing:\n%s", text)
	}
}

func TestGenerateBase_DoneIsFirstSortKey(t *testing.T) {
	text := GenerateBase(GlobalBaseScope, testCategories)

	idx := strings.Index(text, "sort:")
	if idx < 0 {
		t.Fatalf("no sort section:\n%s", text)
	}
	sortSection := text[idx:]
	first := strings.Index(sortSection, "- property: Done")
	if first < 0 {
		t.Fatalf("Done missing from sort section:\n%s", sortSection)
	}
	for _, other := range []string{"- property: file.mtime", "- property: Title"} {
		pos := strings.Index(sortSection, other)
		if pos >= 0 && pos < first {
			t.Errorf("%q precedes the Done sort key", other)
		}
	}
	if !strings.Contains(sortSection, "- property: Done\n    direction: ASC") {
		t.Errorf("Done sort key must be ascending:\n%s", sortSection)
	}
}

func TestGenerateBase_CategoryRoundTrip(t *testing.T) {
	withEpic := append(append([]TaskType{}, testCategories...), TaskType{Name: "Epic", Color: "orange"})

	text := GenerateBase(GlobalBaseScope, withEpic)
	if !strings.Contains(text, "name: All Epics") {
		t.Errorf("base missing Epic view:\n%s", text)
	}
	if !strings.Contains(text, `Category == "Epic"`) {
		t.Errorf("base missing Epic filter:\n%s", text)
	}

	// Removing the category must remove every trace on regeneration
	text = GenerateBase(GlobalBaseScope, testCategories)
	if strings.Contains(text, "Epics") || strings.Contains(text, `"Epic"`) {
		t.Errorf("stale Epic view survived regeneration:\n%s", text)
	}
}

func TestGenerateBase_TotalRegeneration(t *testing.T) {
	a := GenerateBase(GlobalBaseScope, testCategories)
	b := GenerateBase(GlobalBaseScope, testCategories)
	if a != b {
		t.Error("generation must be deterministic for identical inputs")
	}
}

func TestBaseScope_FileName(t *testing.T) {
	tests := []struct {
		scope BaseScope
		want  string
	}{
		{GlobalBaseScope, "Tasks.base"},
		{ProjectBaseScope("Fitness Plan"), "Fitness Plan.base"},
		{AreaBaseScope("Health"), "Health.base"},
	}
	for _, tt := range tests {
		if got := tt.scope.FileName(); got != tt.want {
			t.Errorf("FileName() = %q, want %q", got, tt.want)
		}
	}
}
