package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	vault := t.TempDir()

	s, err := Load(vault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TasksFolder != "Tasks" {
		t.Errorf("TasksFolder = %q, want %q", s.TasksFolder, "Tasks")
	}
	if len(s.TaskTypes) != 4 {
		t.Errorf("TaskTypes = %v, want the 4 defaults", s.TaskTypes)
	}
	if !s.AutoSyncAreaProjectBases {
		t.Error("AutoSyncAreaProjectBases should default to true")
	}
}

func TestLoad_MalformedSettingsIsAnError(t *testing.T) {
	vault := t.TempDir()
	path := filepath.Join(vault, ".tasksync", "settings.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("tasksFolder: [broken\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(vault); err == nil {
		t.Error("expected an error for malformed settings")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	vault := t.TempDir()

	s := Default()
	s.TasksFolder = "GTD/Tasks"
	s.TaskStatuses = []string{"Later", "Now"}
	s.ProjectBasesEnabled = false

	if err := Save(vault, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(vault)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.TasksFolder != "GTD/Tasks" {
		t.Errorf("TasksFolder = %q, want %q", loaded.TasksFolder, "GTD/Tasks")
	}
	if len(loaded.TaskStatuses) != 2 || loaded.TaskStatuses[0] != "Later" {
		t.Errorf("TaskStatuses = %v, want [Later Now]", loaded.TaskStatuses)
	}
	if loaded.ProjectBasesEnabled {
		t.Error("ProjectBasesEnabled should stay false")
	}
}

func TestSave_EmptiedFieldsResetToDefaults(t *testing.T) {
	vault := t.TempDir()

	s := Default()
	s.DefaultTaskTemplate = ""
	s.BasesFolder = ""
	s.TaskStatuses = nil

	if err := Save(vault, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(vault)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.DefaultTaskTemplate != "Templates/Task.md" {
		t.Errorf("DefaultTaskTemplate = %q, want the default", loaded.DefaultTaskTemplate)
	}
	if loaded.BasesFolder != "Bases" {
		t.Errorf("BasesFolder = %q, want %q", loaded.BasesFolder, "Bases")
	}
	if len(loaded.TaskStatuses) == 0 || loaded.TaskStatuses[0] != "Backlog" {
		t.Errorf("TaskStatuses = %v, want defaults starting with Backlog", loaded.TaskStatuses)
	}
}

func TestVaultPath_EnvOverride(t *testing.T) {
	t.Setenv("TASKSYNC_VAULT", "/tmp/somewhere")
	if got := VaultPath(); got != "/tmp/somewhere" {
		t.Errorf("VaultPath() = %q, want env override", got)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got := ExpandHome("~/vault")
	if !strings.HasPrefix(got, home) {
		t.Errorf("ExpandHome(~/vault) = %q, want prefix %q", got, home)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute paths must pass through, got %q", got)
	}
}
