package domain

import (
	"strings"
	"testing"
)

func parseFM(t *testing.T, content string) *FrontMatter {
	t.Helper()
	fm, _, err := Parse(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return fm
}

func TestMigrateLegacyType(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantChanged  bool
		wantType     string
		wantCategory string
	}{
		{
			name:         "legacy Bug migrates",
			content:      "---\nType: Bug\n---\n",
			wantChanged:  true,
			wantType:     "Task",
			wantCategory: "Bug",
		},
		{
			name:         "legacy Feature migrates",
			content:      "---\nType: Feature\n---\n",
			wantChanged:  true,
			wantType:     "Task",
			wantCategory: "Feature",
		},
		{
			name:         "custom type passes through",
			content:      "---\nType: CustomType\n---\n",
			wantChanged:  false,
			wantType:     "CustomType",
			wantCategory: "",
		},
		{
			name:         "existing Category blocks migration",
			content:      "---\nType: Bug\nCategory: Feature\n---\n",
			wantChanged:  false,
			wantType:     "Bug",
			wantCategory: "Feature",
		},
		{
			name:         "null Category still migrates",
			content:      "---\nType: Chore\nCategory:\n---\n",
			wantChanged:  true,
			wantType:     "Task",
			wantCategory: "Chore",
		},
		{
			name:        "no Type is a no-op",
			content:     "---\nTitle: Foo\n---\n",
			wantChanged: false,
		},
		{
			name:         "Type Task is not legacy",
			content:      "---\nType: Task\n---\n",
			wantChanged:  false,
			wantType:     "Task",
			wantCategory: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm := parseFM(t, tt.content)
			out, changed := MigrateLegacyType(fm)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if got := out.StringValue("Type"); got != tt.wantType {
				t.Errorf("Type = %q, want %q", got, tt.wantType)
			}
			if got := out.StringValue("Category"); got != tt.wantCategory {
				t.Errorf("Category = %q, want %q", got, tt.wantCategory)
			}
		})
	}
}

func TestMigrateLegacyType_Idempotent(t *testing.T) {
	fm := parseFM(t, "---\nType: Bug\n---\n")

	once, changed := MigrateLegacyType(fm)
	if !changed {
		t.Fatal("first migration should change the front matter")
	}
	twice, changed := MigrateLegacyType(once)
	if changed {
		t.Error("second migration must be a no-op")
	}
	if got := twice.StringValue("Category"); got != "Bug" {
		t.Errorf("Category = %q, want %q", got, "Bug")
	}
	if got := twice.StringValue("Type"); got != "Task" {
		t.Errorf("Type = %q, want %q", got, "Task")
	}
}

func TestSalvageLegacyTypeLine(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantChanged bool
		wantHas     []string
		wantMissing []string
	}{
		{
			name:        "broken yaml with clean Type line",
			content:     "---\nTitle: [unclosed\nType: Bug\n---\nbody\n",
			wantChanged: true,
			wantHas:     []string{"Type: Task", "Category: Bug"},
		},
		{
			name:        "fully broken yaml without Type line",
			content:     "---\nTitle: [unclosed\n---\nbody\n",
			wantChanged: false,
		},
		{
			name:        "existing Category line blocks salvage",
			content:     "---\nTitle: [unclosed\nType: Bug\nCategory: Bug\n---\n",
			wantChanged: false,
		},
		{
			name:        "no front matter",
			content:     "Type: Bug\n",
			wantChanged: false,
			wantMissing: []string{"Category"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, changed := SalvageLegacyTypeLine(tt.content)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if !changed && out != tt.content {
				t.Error("unchanged salvage must return input verbatim")
			}
			for _, want := range tt.wantHas {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			for _, missing := range tt.wantMissing {
				if strings.Contains(out, missing) {
					t.Errorf("output should not contain %q:\n%s", missing, out)
				}
			}
		})
	}
}
