// File: render_test.go
// Title: Tree Renderer Unit Tests
// Description: Tests for rendering hierarchies back to tree text in both
//              glyph styles, including multi-root forests and empty
//              directories.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial test suite

package ast

import (
	"testing"
)

func TestRender_Unicode(t *testing.T) {
	forest := buildFixture(t)

	want := "project/\n" +
		"├── src/\n" +
		"│   └── main.py\n" +
		"└── README.md\n"

	if got := Render(forest); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_ASCII(t *testing.T) {
	forest := buildFixture(t)

	want := "project/\n" +
		"|-- src/\n" +
		"|   `-- main.py\n" +
		"`-- README.md\n"

	got := RenderWithOptions(forest, RenderOptions{ASCII: true})
	if got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_MultiRoot(t *testing.T) {
	forest := []*Node{
		{Name: "projA", Kind: KindDirectory},
		{Name: "projB", Kind: KindDirectory},
	}

	want := "projA/\nprojB/\n"
	if got := Render(forest); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_EmptyDirectory(t *testing.T) {
	root := &Node{Name: "root", Kind: KindDirectory}
	if err := root.AddChild(&Node{Name: "empty_dir", Kind: KindDirectory, Depth: 1}); err != nil {
		t.Fatal(err)
	}

	want := "root/\n└── empty_dir/\n"
	if got := Render([]*Node{root}); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_EmptyForest(t *testing.T) {
	if got := Render(nil); got != "" {
		t.Errorf("Render(nil) = %q, want empty", got)
	}
}
