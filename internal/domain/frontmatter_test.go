package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_SplitsFrontMatterAndBody(t *testing.T) {
	content := `---
Title: Write report
Done: false
---

Some body text.
`
	fm, body, err := Parse(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm == nil {
		t.Fatal("expected front matter, got nil")
	}
	if got := fm.StringValue("Title"); got != "Write report" {
		t.Errorf("Title = %q, want %q", got, "Write report")
	}
	if !strings.Contains(body, "Some body text.") {
		t.Errorf("body = %q, missing body text", body)
	}
}

func TestParse_NoFrontMatter(t *testing.T) {
	fm, body, err := Parse("# Just a heading\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fm != nil {
		t.Errorf("expected nil front matter, got %v", fm.Keys())
	}
	if body != "# Just a heading\n" {
		t.Errorf("body = %q, want full content", body)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	content := "---\nTitle: [unclosed\nDone: false\n---\nbody\n"
	_, _, err := Parse(content)
	if !errors.Is(err, ErrMalformedFrontMatter) {
		t.Errorf("expected ErrMalformedFrontMatter, got %v", err)
	}
}

func TestParse_PreservesKeyOrder(t *testing.T) {
	content := "---\nzebra: 1\napple: 2\nmiddle: 3\n---\n"
	fm, _, err := Parse(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"zebra", "apple", "middle"}
	got := fm.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse_NullValues(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		key      string
		wantNull bool
	}{
		{"bare key", "---\nTitle:\n---\n", "Title", true},
		{"explicit null", "---\nTitle: null\n---\n", "Title", true},
		{"empty quoted string", "---\nTitle: \"\"\n---\n", "Title", false},
		{"real value", "---\nTitle: Foo\n---\n", "Title", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, _, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := fm.IsNull(tt.key); got != tt.wantNull {
				t.Errorf("IsNull(%q) = %v, want %v", tt.key, got, tt.wantNull)
			}
		})
	}
}

func TestRender_RoundTrip(t *testing.T) {
	content := `---
Title: Write report
Done: false
tags:
  - task
---
Body here.
`
	fm, body, err := Parse(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rendered, err := fm.Render(body)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	fm2, body2, err := Parse(rendered)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if body2 != body {
		t.Errorf("body changed across round trip: %q vs %q", body2, body)
	}
	keys, keys2 := fm.Keys(), fm2.Keys()
	if len(keys) != len(keys2) {
		t.Fatalf("key count changed: %v vs %v", keys, keys2)
	}
	for i := range keys {
		if keys[i] != keys2[i] {
			t.Errorf("key order changed at %d: %q vs %q", i, keys[i], keys2[i])
		}
	}
}

func TestRender_StableAfterFirstPass(t *testing.T) {
	fm := NewFrontMatter()
	fm.Set("Title", String("Foo"))
	fm.Set("Done", Bool(false))
	fm.Set("tags", List("task"))

	first, err := fm.Render("body\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	fm2, body, err := Parse(first)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	second, err := fm2.Render(body)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Errorf("render not stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestValue_AsStringList(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"sequence", "---\nAreas:\n  - Health\n  - Work\n---\n", []string{"Health", "Work"}},
		{"scalar", "---\nAreas: Health\n---\n", []string{"Health"}},
		{"null", "---\nAreas:\n---\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, _, err := Parse(tt.content)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			v, _ := fm.Get("Areas")
			got := v.AsStringList()
			if len(got) != len(tt.want) {
				t.Fatalf("AsStringList() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("AsStringList()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
