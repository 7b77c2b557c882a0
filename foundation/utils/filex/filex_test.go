// File: filex_test.go
// Title: Filesystem Helper Unit Tests
// Description: Tests for existence checks, Touch semantics, path expansion,
//              and directory listing order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial test suite

package filex

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestExistenceChecks(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !Exists(dir) || !Exists(file) {
		t.Error("Exists() should be true for present paths")
	}
	if Exists(filepath.Join(dir, "missing")) {
		t.Error("Exists() should be false for missing paths")
	}
	if !IsDir(dir) || IsDir(file) {
		t.Error("IsDir() misclassified")
	}
	if !IsFile(file) || IsFile(dir) {
		t.Error("IsFile() misclassified")
	}
}

func TestTouch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deep", "nested", "file.txt")

	if err := Touch(path, 0o644, 0o755); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}
	if !IsFile(path) {
		t.Fatal("Touch did not create the file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Errorf("created file should be empty, size = %d", info.Size())
	}

	// Touching an existing file must not truncate or fail
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Touch(path, 0o644, 0o755); err != nil {
		t.Fatalf("Touch on existing file failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "content" {
		t.Error("Touch truncated an existing file")
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory in test environment")
	}

	got, err := ExpandPath("~/projects")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	want := filepath.Join(home, "projects")
	if got != want {
		t.Errorf("ExpandPath(~/projects) = %q, want %q", got, want)
	}

	abs, err := ExpandPath("relative/path")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("ExpandPath should return absolute paths, got %q", abs)
	}
}

func TestListDirNames(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{"src", "Assets"} {
		if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range []string{"README.md", "main.go"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	dirs, files, err := ListDirNames(dir)
	if err != nil {
		t.Fatalf("ListDirNames failed: %v", err)
	}

	if !reflect.DeepEqual(dirs, []string{"Assets", "src"}) {
		t.Errorf("dirs = %v", dirs)
	}
	if !reflect.DeepEqual(files, []string{"main.go", "README.md"}) {
		t.Errorf("files = %v", files)
	}
}
