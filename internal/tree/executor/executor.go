// File: executor.go
// Title: File Structure Execution Engine
// Description: Implements the execution engine that materializes a parsed
//              hierarchy on disk. Each run gets a UUID that tags all log
//              entries and the final report. Execution is sequential so
//              that a parent directory always exists before its children
//              are created.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial executor implementation

package executor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	perror "github.com/msto63/treegen/foundation/core/error"
	"github.com/msto63/treegen/foundation/core/log"
	"github.com/msto63/treegen/foundation/utils/filex"
	"github.com/msto63/treegen/internal/tree/ast"
)

// Default permission bits for created entries
const (
	DefaultDirMode  os.FileMode = 0o755
	DefaultFileMode os.FileMode = 0o644
)

// Options configures executor behavior
type Options struct {
	Logger *log.Logger

	// TargetDir is the directory the hierarchy is created under (required)
	TargetDir string

	// DryRun reports planned actions without touching the filesystem
	DryRun bool

	// FailExisting records already existing paths as failures instead of
	// skipping them
	FailExisting bool

	// DirMode and FileMode are the permission bits for created entries
	DirMode  os.FileMode
	FileMode os.FileMode
}

// Status classifies the outcome of one node's action
type Status int

const (
	// StatusCreated means the entry was created (or would be, in dry-run)
	StatusCreated Status = iota

	// StatusSkipped means the entry was not touched
	StatusSkipped

	// StatusFailed means creating the entry failed
	StatusFailed
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Action records the outcome for a single node
type Action struct {
	Path   string
	Kind   ast.Kind
	Status Status
	Reason string // populated for skipped and failed entries
}

// Report summarizes one execution run
type Report struct {
	RunID    string
	DryRun   bool
	Created  []Action
	Skipped  []Action
	Failed   []Action
	Duration time.Duration
}

// Summary renders the counts in one line
func (r *Report) Summary() string {
	s := fmt.Sprintf("%d created, %d skipped, %d failed",
		len(r.Created), len(r.Skipped), len(r.Failed))
	if r.DryRun {
		s += " (dry run)"
	}
	return s
}

// Actions returns all recorded actions in execution order
func (r *Report) Actions() []Action {
	all := make([]Action, 0, len(r.Created)+len(r.Skipped)+len(r.Failed))
	all = append(all, r.Created...)
	all = append(all, r.Skipped...)
	all = append(all, r.Failed...)
	return all
}

// Engine executes parsed hierarchies against the filesystem
type Engine struct {
	logger  *log.Logger
	options Options
}

// New creates a new execution engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.TargetDir == "" {
		return nil, perror.New("target directory is required").
			WithCode(perror.CodeTargetInvalid).
			WithSeverity(perror.SeverityHigh).
			WithOperation("execute")
	}
	if opts.DirMode == 0 {
		opts.DirMode = DefaultDirMode
	}
	if opts.FileMode == 0 {
		opts.FileMode = DefaultFileMode
	}

	return &Engine{
		logger:  opts.Logger.WithField("component", "executor"),
		options: opts,
	}, nil
}

// Execute creates the forest under the target directory. The returned
// report is complete even when individual entries failed; the error is
// non-nil only when the run as a whole could not proceed.
func (e *Engine) Execute(ctx context.Context, forest []*ast.Node) (*Report, error) {
	report := &Report{
		RunID:  uuid.NewString(),
		DryRun: e.options.DryRun,
	}

	logger := e.logger.WithField("run_id", report.RunID)
	timer := logger.StartTimer("structure creation").WithLevel(log.LevelInfo)

	stats := ast.Count(forest)
	logger.Info("starting structure creation", log.Fields{
		"target":      e.options.TargetDir,
		"directories": stats.Directories,
		"files":       stats.Files,
		"dry_run":     e.options.DryRun,
	})

	if err := e.ensureTarget(); err != nil {
		logger.ErrorWithErr("target directory not usable", err)
		return report, err
	}

	for _, root := range forest {
		if err := ctx.Err(); err != nil {
			return report, perror.Wrap(err, "execution canceled").
				WithCode(perror.CodeFilesystem).
				WithOperation("execute")
		}
		e.execNode(ctx, logger, report, root, false)
	}

	report.Duration = timer.
		WithField("created", len(report.Created)).
		WithField("skipped", len(report.Skipped)).
		WithField("failed", len(report.Failed)).
		Stop()

	return report, nil
}

// ensureTarget makes sure the target directory exists and is a directory
func (e *Engine) ensureTarget() error {
	target := e.options.TargetDir

	if filex.Exists(target) {
		if !filex.IsDir(target) {
			return perror.Newf("target %q exists but is not a directory", target).
				WithCode(perror.CodeTargetInvalid).
				WithSeverity(perror.SeverityHigh).
				WithOperation("execute")
		}
		return nil
	}

	if e.options.DryRun {
		return nil
	}

	if err := os.MkdirAll(target, e.options.DirMode); err != nil {
		return perror.Wrap(err, "cannot create target directory").
			WithCode(perror.CodeTargetInvalid).
			WithSeverity(perror.SeverityHigh).
			WithOperation("execute").
			WithDetail("target", target)
	}
	return nil
}

// execNode processes one node and recurses into its children. When
// parentFailed is set the node is recorded as skipped: its parent
// directory was not created, so attempting it is pointless.
func (e *Engine) execNode(ctx context.Context, logger *log.Logger, report *Report, node *ast.Node, parentFailed bool) {
	path := filepath.Join(e.options.TargetDir, node.Path())

	if parentFailed {
		e.record(logger, report, Action{
			Path:   path,
			Kind:   node.Kind,
			Status: StatusSkipped,
			Reason: "parent directory not created",
		})
		for _, child := range node.Children {
			e.execNode(ctx, logger, report, child, true)
		}
		return
	}

	action := e.apply(node, path)
	e.record(logger, report, action)

	failed := action.Status == StatusFailed
	for _, child := range node.Children {
		e.execNode(ctx, logger, report, child, failed)
	}
}

// apply performs (or plans) the filesystem action for a single node
func (e *Engine) apply(node *ast.Node, path string) Action {
	action := Action{Path: path, Kind: node.Kind}

	if filex.Exists(path) {
		if e.options.FailExisting {
			action.Status = StatusFailed
			action.Reason = "path already exists"
		} else {
			action.Status = StatusSkipped
			action.Reason = "already exists"
		}
		return action
	}

	if e.options.DryRun {
		action.Status = StatusCreated
		return action
	}

	var err error
	switch node.Kind {
	case ast.KindDirectory:
		err = os.MkdirAll(path, e.options.DirMode)
	case ast.KindFile:
		err = filex.Touch(path, e.options.FileMode, e.options.DirMode)
	default:
		err = fmt.Errorf("unhandled node kind %d", node.Kind)
	}

	if err != nil {
		action.Status = StatusFailed
		action.Reason = err.Error()
		return action
	}

	action.Status = StatusCreated
	return action
}

// record files the action into the report and logs it
func (e *Engine) record(logger *log.Logger, report *Report, action Action) {
	fields := log.Fields{
		"path": action.Path,
		"kind": action.Kind.String(),
	}

	switch action.Status {
	case StatusCreated:
		report.Created = append(report.Created, action)
		logger.Debug("entry created", fields)
	case StatusSkipped:
		report.Skipped = append(report.Skipped, action)
		fields["reason"] = action.Reason
		logger.Debug("entry skipped", fields)
	case StatusFailed:
		report.Failed = append(report.Failed, action)
		fields["reason"] = action.Reason
		logger.Warn("entry failed", fields)
	}
}
