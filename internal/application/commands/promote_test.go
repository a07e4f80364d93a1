package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tasksync/internal/adapters/filesystem"
	"tasksync/internal/application"
	"tasksync/internal/config"
)

func TestPromoteTodoCommand(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())

	note := "# Weekly review\n\n- [ ] done thing\n  - [ ] Call the dentist\n- [x] already checked\n"
	if err := store.Write("Notes/Weekly.md", note); err != nil {
		t.Fatal(err)
	}

	cmd := NewPromoteTodoCommand(store, config.Default(), "Notes/Weekly.md", "Call the dentist")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if result.TaskPath != "Tasks/Call the dentist.md" {
		t.Errorf("TaskPath = %q", result.TaskPath)
	}

	task, err := store.Read(result.TaskPath)
	if err != nil {
		t.Fatalf("read task: %v", err)
	}
	if !strings.Contains(task, "Title: Call the dentist") {
		t.Errorf("task front matter:\n%s", task)
	}

	rewritten, _ := store.Read("Notes/Weekly.md")
	if !strings.Contains(rewritten, "  - [ ] [[Call the dentist]]") {
		t.Errorf("todo line not linked with indent kept:\n%s", rewritten)
	}
	if !strings.Contains(rewritten, "- [ ] done thing") {
		t.Errorf("sibling todo was touched:\n%s", rewritten)
	}
}

func TestPromoteTodoCommand_MissingLine(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())
	if err := store.Write("Notes/n.md", "- [ ] something else\n"); err != nil {
		t.Fatal(err)
	}

	cmd := NewPromoteTodoCommand(store, config.Default(), "Notes/n.md", "not there")
	_, err := cmd.Execute(context.Background())

	var vErr *application.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}

	// No task file, note untouched
	exists, _ := store.Exists("Tasks/not there.md")
	if exists {
		t.Error("task created despite missing todo line")
	}
}

func TestPromoteTodoCommand_TaskConflictLeavesNoteAlone(t *testing.T) {
	store := filesystem.NewVault(t.TempDir())

	note := "- [ ] Fix login\n"
	if err := store.Write("Notes/n.md", note); err != nil {
		t.Fatal(err)
	}
	if err := store.Write("Tasks/Fix login.md", "existing"); err != nil {
		t.Fatal(err)
	}

	cmd := NewPromoteTodoCommand(store, config.Default(), "Notes/n.md", "Fix login")
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrAlreadyExists) {
		t.Fatalf("error = %v, want ErrAlreadyExists", err)
	}

	got, _ := store.Read("Notes/n.md")
	if got != note {
		t.Errorf("note rewritten despite failed promotion:\n%s", got)
	}
}

func TestRewriteTodoLine(t *testing.T) {
	tests := []struct {
		name    string
		content string
		todo    string
		want    string
		found   bool
	}{
		{
			name:    "plain",
			content: "- [ ] buy milk",
			todo:    "buy milk",
			want:    "- [ ] [[buy milk]]",
			found:   true,
		},
		{
			name:    "keeps indent",
			content: "\t- [ ] buy milk",
			todo:    "buy milk",
			want:    "\t- [ ] [[buy milk]]",
			found:   true,
		},
		{
			name:    "checked box not matched",
			content: "- [x] buy milk",
			todo:    "buy milk",
			want:    "- [x] buy milk",
			found:   false,
		},
		{
			name:    "partial text not matched",
			content: "- [ ] buy milk today",
			todo:    "buy milk",
			want:    "- [ ] buy milk today",
			found:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := rewriteTodoLine(tt.content, tt.todo)
			if got != tt.want || found != tt.found {
				t.Errorf("rewriteTodoLine() = %q, %v; want %q, %v", got, found, tt.want, tt.found)
			}
		})
	}
}
