package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tasksync/internal/adapters/filesystem"
	"tasksync/internal/application"
	"tasksync/internal/config"
	"tasksync/internal/domain"
)

func TestNewEntityCommand_CreatesTask(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())

	cmd := NewNewEntityCommand(store, config.Default(), domain.EntityTask, "Fix login")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.Path != "Tasks/Fix login.md" {
		t.Errorf("Path = %q", result.Path)
	}

	content, err := store.Read(result.Path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, want := range []string{"Title: Fix login", "Type: Task", "Status: Backlog", "Done: false"} {
		if !strings.Contains(content, want) {
			t.Errorf("missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "{{title}}") || strings.Contains(content, "{{date}}") {
		t.Errorf("placeholders not substituted:\n%s", content)
	}
}

func TestNewEntityCommand_Conflict(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())
	settings := config.Default()

	if err := store.Write("Projects/Fitness Plan.md", "existing"); err != nil {
		t.Fatal(err)
	}

	cmd := NewNewEntityCommand(store, settings, domain.EntityProject, "Fitness Plan")
	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected conflict error")
	}
	if !errors.Is(err, application.ErrAlreadyExists) {
		t.Errorf("error = %v, want ErrAlreadyExists", err)
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error message = %q", err.Error())
	}

	// Existing file untouched
	content, _ := store.Read("Projects/Fitness Plan.md")
	if content != "existing" {
		t.Errorf("existing file was overwritten: %q", content)
	}
}

func TestNewEntityCommand_VaultTemplateWins(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())
	settings := config.Default()

	custom := "---\nTitle: \"{{title}}\"\nPriority: High\n---\nCustom body for {{title}}\n"
	if err := store.Write(settings.DefaultTaskTemplate, custom); err != nil {
		t.Fatal(err)
	}

	cmd := NewNewEntityCommand(store, settings, domain.EntityTask, "Ship it")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	content, _ := store.Read(result.Path)
	if !strings.Contains(content, "Priority: High") {
		t.Errorf("custom template field lost:\n%s", content)
	}
	if !strings.Contains(content, "Custom body for Ship it") {
		t.Errorf("custom body lost:\n%s", content)
	}
}

func TestNewEntityCommand_InvalidTitle(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())

	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"slash", "a/b"},
		{"backslash", `a\b`},
		{"colon", "a:b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewNewEntityCommand(store, config.Default(), domain.EntityTask, tt.title)
			if _, err := cmd.Execute(context.Background()); err == nil {
				t.Errorf("title %q accepted", tt.title)
			}
		})
	}
}

func TestNewEntityCommand_AreaUsesAreaSchema(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())

	cmd := NewNewEntityCommand(store, config.Default(), domain.EntityArea, "Health")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	content, _ := store.Read(result.Path)
	if !strings.Contains(content, "Type: Area") {
		t.Errorf("missing Type: Area:\n%s", content)
	}
	if strings.Contains(content, "Status:") {
		t.Errorf("area should have no Status:\n%s", content)
	}
}
