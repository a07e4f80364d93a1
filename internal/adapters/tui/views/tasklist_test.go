package views

import (
	"testing"

	"tasksync/internal/domain"
)

func TestFilterTasks(t *testing.T) {
	tasks := []domain.Entity{
		{Path: "Tasks/a.md", Status: "Todo", Category: "Bug"},
		{Path: "Tasks/b.md", Status: "Todo", Category: "Feature"},
		{Path: "Tasks/c.md", Status: "Done", Category: "Bug"},
	}

	tests := []struct {
		name     string
		status   string
		category string
		want     []string
	}{
		{"no filters", "", "", []string{"Tasks/a.md", "Tasks/b.md", "Tasks/c.md"}},
		{"status only", "Todo", "", []string{"Tasks/a.md", "Tasks/b.md"}},
		{"category only", "", "Bug", []string{"Tasks/a.md", "Tasks/c.md"}},
		{"both", "Todo", "Bug", []string{"Tasks/a.md"}},
		{"no matches", "Backlog", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterTasks(tasks, tt.status, tt.category)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d tasks, want %d", len(got), len(tt.want))
			}
			for i, task := range got {
				if task.Path != tt.want[i] {
					t.Errorf("task[%d] = %s, want %s", i, task.Path, tt.want[i])
				}
			}
		})
	}
}

func TestCycle(t *testing.T) {
	statuses := []string{"Backlog", "Todo", "Done"}

	tests := []struct {
		current string
		want    string
	}{
		{"", "Backlog"},
		{"Backlog", "Todo"},
		{"Todo", "Done"},
		{"Done", ""},
		{"Unknown", ""},
	}
	for _, tt := range tests {
		if got := cycle(tt.current, statuses); got != tt.want {
			t.Errorf("cycle(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}

	if got := cycle("", nil); got != "" {
		t.Errorf("cycle with no options = %q, want empty", got)
	}
}

func TestPaginatorWindow(t *testing.T) {
	p := NewPaginator(5)
	p.SetTotal(12)

	for i := 0; i < 7; i++ {
		p.CursorDown()
	}
	if p.Cursor() != 7 {
		t.Errorf("cursor = %d, want 7", p.Cursor())
	}
	start, end := p.VisibleRange()
	if start != 5 || end != 10 {
		t.Errorf("visible range = [%d, %d), want [5, 10)", start, end)
	}
	if p.CurrentPage() != 2 || p.TotalPages() != 3 {
		t.Errorf("page = %d/%d, want 2/3", p.CurrentPage(), p.TotalPages())
	}
}
