// File: executor_test.go
// Title: Executor Tests
// Description: Tests for the execution engine against a real temporary
//              directory: creation order, dry-run, skip and failure
//              handling, and subtree skipping under a failed parent.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial tests

package executor

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	perror "github.com/msto63/treegen/foundation/core/error"
	"github.com/msto63/treegen/foundation/core/log"
	"github.com/msto63/treegen/internal/tree/ast"
	"github.com/msto63/treegen/internal/tree/parser"
)

const projectTree = `project/
├── cmd/
│   └── main.go
├── internal/
│   ├── handler.go
│   └── handler_test.go
└── README.md
`

func quietLogger() *log.Logger {
	return log.New().WithLevel(log.LevelFatal).WithOutput(io.Discard)
}

func mustParse(t *testing.T, text string) []*ast.Node {
	t.Helper()
	forest, err := parser.Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return forest
}

func newEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	engine, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return engine
}

func TestNew_RequiresTarget(t *testing.T) {
	_, err := New(Options{Logger: quietLogger()})
	if err == nil {
		t.Fatal("New() expected error for missing target")
	}
	if !perror.IsCode(err, perror.CodeTargetInvalid) {
		t.Errorf("New() code = %v, want %v", perror.GetCode(err), perror.CodeTargetInvalid)
	}
}

func TestExecute_CreatesStructure(t *testing.T) {
	target := t.TempDir()
	engine := newEngine(t, Options{TargetDir: target})

	report, err := engine.Execute(context.Background(), mustParse(t, projectTree))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(report.Created) != 7 {
		t.Errorf("created = %d, want 7", len(report.Created))
	}
	if len(report.Skipped) != 0 || len(report.Failed) != 0 {
		t.Errorf("skipped = %d, failed = %d, want 0, 0",
			len(report.Skipped), len(report.Failed))
	}
	if report.RunID == "" {
		t.Error("report has no run ID")
	}

	dirs := []string{"project", "project/cmd", "project/internal"}
	for _, d := range dirs {
		info, err := os.Stat(filepath.Join(target, d))
		if err != nil {
			t.Fatalf("missing directory %s: %v", d, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", d)
		}
	}

	files := []string{"project/cmd/main.go", "project/internal/handler.go",
		"project/internal/handler_test.go", "project/README.md"}
	for _, f := range files {
		info, err := os.Stat(filepath.Join(target, f))
		if err != nil {
			t.Fatalf("missing file %s: %v", f, err)
		}
		if info.IsDir() {
			t.Errorf("%s is a directory, want file", f)
		}
		if info.Size() != 0 {
			t.Errorf("%s has size %d, want empty", f, info.Size())
		}
	}
}

func TestExecute_ParentsBeforeChildren(t *testing.T) {
	target := t.TempDir()
	engine := newEngine(t, Options{TargetDir: target})

	report, err := engine.Execute(context.Background(), mustParse(t, projectTree))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, action := range report.Created {
		parent := filepath.Dir(action.Path)
		if parent != target && !seen[parent] {
			t.Errorf("%s created before its parent %s", action.Path, parent)
		}
		seen[action.Path] = true
	}
}

func TestExecute_DryRun(t *testing.T) {
	target := t.TempDir()
	engine := newEngine(t, Options{TargetDir: target, DryRun: true})

	report, err := engine.Execute(context.Background(), mustParse(t, projectTree))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(report.Created) != 7 {
		t.Errorf("planned = %d, want 7", len(report.Created))
	}
	if !report.DryRun {
		t.Error("report.DryRun = false, want true")
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("dry run created %d entries, want 0", len(entries))
	}
}

func TestExecute_SkipsExisting(t *testing.T) {
	target := t.TempDir()
	if err := os.MkdirAll(filepath.Join(target, "project", "cmd"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(target, "project", "README.md"), []byte("kept"), 0o644); err != nil {
		t.Fatal(err)
	}

	engine := newEngine(t, Options{TargetDir: target})
	report, err := engine.Execute(context.Background(), mustParse(t, projectTree))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(report.Skipped) != 3 {
		t.Errorf("skipped = %d, want 3", len(report.Skipped))
	}
	if len(report.Created) != 4 {
		t.Errorf("created = %d, want 4", len(report.Created))
	}
	for _, action := range report.Skipped {
		if action.Reason != "already exists" {
			t.Errorf("skip reason = %q, want %q", action.Reason, "already exists")
		}
	}

	// Existing file content must survive
	data, err := os.ReadFile(filepath.Join(target, "project", "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "kept" {
		t.Errorf("existing file was modified: %q", data)
	}

	// Children of an existing directory are still created
	if _, err := os.Stat(filepath.Join(target, "project", "cmd", "main.go")); err != nil {
		t.Errorf("child of existing directory not created: %v", err)
	}
}

func TestExecute_FailExisting(t *testing.T) {
	target := t.TempDir()
	if err := os.WriteFile(filepath.Join(target, "project"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	engine := newEngine(t, Options{TargetDir: target, FailExisting: true})
	report, err := engine.Execute(context.Background(), mustParse(t, projectTree))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(report.Failed) != 1 {
		t.Fatalf("failed = %d, want 1", len(report.Failed))
	}
	if report.Failed[0].Reason != "path already exists" {
		t.Errorf("failure reason = %q", report.Failed[0].Reason)
	}

	// The whole subtree under the failed root is skipped
	if len(report.Skipped) != 6 {
		t.Errorf("skipped = %d, want 6", len(report.Skipped))
	}
	for _, action := range report.Skipped {
		if action.Reason != "parent directory not created" {
			t.Errorf("skip reason = %q, want %q", action.Reason, "parent directory not created")
		}
	}
	if len(report.Created) != 0 {
		t.Errorf("created = %d, want 0", len(report.Created))
	}
}

func TestExecute_FailureDoesNotAbortSiblings(t *testing.T) {
	target := t.TempDir()
	// A file where the cmd directory should go blocks that root only
	if err := os.WriteFile(filepath.Join(target, "cmd"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tree := "cmd/\n└── main.go\ndocs/\n└── index.md\n"
	engine := newEngine(t, Options{TargetDir: target, FailExisting: true})
	report, err := engine.Execute(context.Background(), mustParse(t, tree))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if len(report.Failed) != 1 || !strings.HasSuffix(report.Failed[0].Path, "cmd") {
		t.Errorf("failed = %v, want cmd only", report.Failed)
	}
	if len(report.Skipped) != 1 || !strings.HasSuffix(report.Skipped[0].Path, "main.go") {
		t.Errorf("skipped = %v, want main.go only", report.Skipped)
	}

	// The sibling root is unaffected
	if _, err := os.Stat(filepath.Join(target, "docs", "index.md")); err != nil {
		t.Errorf("sibling root not created: %v", err)
	}
}

func TestExecute_CreatesMissingTarget(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out", "nested")
	engine := newEngine(t, Options{TargetDir: target})

	if _, err := engine.Execute(context.Background(), mustParse(t, "docs/\n└── index.md\n")); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if _, err := os.Stat(filepath.Join(target, "docs", "index.md")); err != nil {
		t.Errorf("structure not created under new target: %v", err)
	}
}

func TestExecute_TargetIsFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "occupied")
	if err := os.WriteFile(target, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	engine := newEngine(t, Options{TargetDir: target})
	_, err := engine.Execute(context.Background(), mustParse(t, "docs/\n"))
	if err == nil {
		t.Fatal("Execute() expected error for file target")
	}
	if !perror.IsCode(err, perror.CodeTargetInvalid) {
		t.Errorf("error code = %v, want %v", perror.GetCode(err), perror.CodeTargetInvalid)
	}
}

func TestExecute_CanceledContext(t *testing.T) {
	engine := newEngine(t, Options{TargetDir: t.TempDir()})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Execute(ctx, mustParse(t, projectTree))
	if err == nil {
		t.Fatal("Execute() expected error for canceled context")
	}
}

func TestReport_Summary(t *testing.T) {
	report := &Report{
		Created: make([]Action, 5),
		Skipped: make([]Action, 2),
	}
	if got := report.Summary(); got != "5 created, 2 skipped, 0 failed" {
		t.Errorf("Summary() = %q", got)
	}

	report.DryRun = true
	if got := report.Summary(); got != "5 created, 2 skipped, 0 failed (dry run)" {
		t.Errorf("Summary() = %q", got)
	}
}
