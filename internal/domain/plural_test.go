package domain

import "testing"

func TestPluralize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Task", "Tasks"},
		{"Epic", "Epics"},
		{"Bug", "Bugs"},
		{"Story", "Stories"},
		{"Research", "Research"},
		{"Testing", "Testings"},
		{"Chore", "Chores"},
		{"Fix", "Fixes"},
		{"Process", "Processes"},
		{"Day", "Days"},
		{"News", "News"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Pluralize(tt.in); got != tt.want {
				t.Errorf("Pluralize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
