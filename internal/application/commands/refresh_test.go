package commands

import (
	"context"
	"strings"
	"testing"

	"tasksync/internal/adapters/filesystem"
	"tasksync/internal/config"
	"tasksync/internal/domain"
)

func TestRefreshCommand_FolderMode(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())
	settings := config.Default()

	files := map[string]string{
		// Missing most keys, gets defaults filled in
		"Tasks/Sparse.md": "---\nTitle: Sparse\n---\nBody\n",
		// Legacy Type value, migrated to Category
		"Tasks/Old bug.md": "---\nTitle: Old bug\nType: Bug\n---\n",
		// Unparsable, reported and skipped
		"Tasks/Broken.md": "---\nTitle: [oops\n---\n",
	}
	for path, content := range files {
		if err := store.Write(path, content); err != nil {
			t.Fatal(err)
		}
	}

	cmd := NewRefreshCommand(store, settings, domain.EntityTask, "")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	if len(result.Refreshed) != 2 {
		t.Errorf("Refreshed = %v, want 2 files", result.Refreshed)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Path != "Tasks/Broken.md" {
		t.Errorf("Skipped = %v", result.Skipped)
	}

	sparse, _ := store.Read("Tasks/Sparse.md")
	for _, want := range []string{"Type: Task", "Status: Backlog", "Done: false", "tags:"} {
		if !strings.Contains(sparse, want) {
			t.Errorf("Sparse.md missing %q:\n%s", want, sparse)
		}
	}
	if !strings.HasSuffix(sparse, "Body\n") {
		t.Errorf("body not preserved:\n%s", sparse)
	}

	migrated, _ := store.Read("Tasks/Old bug.md")
	if !strings.Contains(migrated, "Category: Bug") {
		t.Errorf("legacy Type not migrated:\n%s", migrated)
	}
	if !strings.Contains(migrated, "Type: Task") {
		t.Errorf("Type not reset after migration:\n%s", migrated)
	}

	// Broken file is untouched
	broken, _ := store.Read("Tasks/Broken.md")
	if broken != files["Tasks/Broken.md"] {
		t.Errorf("broken file was modified:\n%s", broken)
	}
}

func TestRefreshCommand_Idempotent(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())
	settings := config.Default()

	if err := store.Write("Tasks/a.md", "---\nTitle: a\nType: Bug\n---\n"); err != nil {
		t.Fatal(err)
	}

	cmd := NewRefreshCommand(store, settings, domain.EntityTask, "")
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatal(err)
	}
	first, _ := store.Read("Tasks/a.md")

	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Refreshed) != 0 || len(result.Unchanged) != 1 {
		t.Errorf("second run refreshed %v, unchanged %v", result.Refreshed, result.Unchanged)
	}
	second, _ := store.Read("Tasks/a.md")
	if first != second {
		t.Errorf("second run changed content:\n%s\nvs\n%s", first, second)
	}
}

func TestRefreshCommand_SingleFile(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())
	settings := config.Default()

	if err := store.Write("Tasks/one.md", "---\nTitle: one\n---\n"); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("Tasks/other.md", "---\nTitle: other\n---\n"); err != nil {
		t.Fatal(err)
	}

	cmd := NewRefreshCommand(store, settings, domain.EntityTask, "Tasks/one.md")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Refreshed) != 1 || result.Refreshed[0] != "Tasks/one.md" {
		t.Errorf("Refreshed = %v", result.Refreshed)
	}

	other, _ := store.Read("Tasks/other.md")
	if other != "---\nTitle: other\n---\n" {
		t.Errorf("untargeted file was modified:\n%s", other)
	}
}

func TestReconcileContent_TitleDefaultsToFilename(t *testing.T) {
	got, err := ReconcileContent("---\nStatus: Todo\n---\n", domain.EntityTask, config.Default(), "Tasks/Fix login.md")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !strings.Contains(got, "Title: Fix login") {
		t.Errorf("Title default not taken from filename:\n%s", got)
	}
	if !strings.Contains(got, "Status: Todo") {
		t.Errorf("existing Status not kept:\n%s", got)
	}
}

func TestReconcileContent_SalvagesLegacyTypeLine(t *testing.T) {
	// Front matter is not valid YAML, but the legacy Type line is intact
	content := "---\nTitle: [broken\nType: Feature\n---\n"
	got, err := ReconcileContent(content, domain.EntityTask, config.Default(), "Tasks/x.md")
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !strings.Contains(got, "Category: Feature") {
		t.Errorf("legacy line not salvaged:\n%s", got)
	}
	if !strings.Contains(got, "Title: [broken") {
		t.Errorf("rest of file should be untouched:\n%s", got)
	}
}

func TestReconcileContent_MalformedWithoutLegacyLine(t *testing.T) {
	_, err := ReconcileContent("---\nTitle: [broken\n---\n", domain.EntityTask, config.Default(), "Tasks/x.md")
	if err == nil {
		t.Fatal("expected parse failure")
	}
}
