// File: parser.go
// Title: Tree Parser Implementation
// Description: Drives the three parsing phases: line scanning, directory
//              inference, and hierarchy assembly with a nearest-ancestor
//              stack. The stack holds the currently open node per depth
//              level; each new entry pops everything at its own depth or
//              deeper and attaches to what remains.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation

package parser

import (
	"io"
	"strings"

	perror "github.com/msto63/treegen/foundation/core/error"
	"github.com/msto63/treegen/foundation/core/log"
	"github.com/msto63/treegen/internal/tree/ast"
)

// DefaultMaxInputBytes bounds the accepted input size
const DefaultMaxInputBytes = 4 * 1024 * 1024

// Options configures parser behavior
type Options struct {
	Logger *log.Logger

	// StrictKinds disables directory inference: a deeper entry following
	// a slash-less entry becomes a parse error instead of upgrading the
	// predecessor to a directory
	StrictKinds bool

	// MaxInputBytes bounds the accepted input size (default 4 MiB)
	MaxInputBytes int
}

// Parser parses tree-diagram text into an ast.Node forest
type Parser struct {
	logger  *log.Logger
	options Options
}

// New creates a new tree parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	if opts.MaxInputBytes == 0 {
		opts.MaxInputBytes = DefaultMaxInputBytes
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "tree-parser"),
		options: opts,
	}
}

// Parse is a convenience wrapper using default options
func Parse(text string) ([]*ast.Node, error) {
	return New(Options{}).Parse(text)
}

// Parse parses tree text and returns the ordered root entries. Empty
// input yields an empty forest. Parsing stops at the first unrecoverable
// error; no partial hierarchy is returned.
func (p *Parser) Parse(text string) ([]*ast.Node, error) {
	if len(text) > p.options.MaxInputBytes {
		return nil, perror.Newf("input exceeds maximum size: %d > %d bytes",
			len(text), p.options.MaxInputBytes).
			WithCode(perror.CodeInputTooLarge).
			WithSeverity(perror.SeverityHigh).
			WithOperation("parse")
	}

	p.logger.Debug("starting tree parse", log.Fields{
		"bytes":  len(text),
		"strict": p.options.StrictKinds,
	})

	lines, err := p.scan(text)
	if err != nil {
		p.logger.WarnWithErr("tree parse failed", err)
		return nil, err
	}

	if err := p.settleKinds(lines); err != nil {
		p.logger.WarnWithErr("tree parse failed", err)
		return nil, err
	}

	forest, err := p.assemble(lines)
	if err != nil {
		p.logger.WarnWithErr("tree parse failed", err)
		return nil, err
	}

	stats := ast.Count(forest)
	p.logger.Debug("tree parse completed", log.Fields{
		"roots":       len(forest),
		"directories": stats.Directories,
		"files":       stats.Files,
	})

	return forest, nil
}

// ParseReader reads all input from r and parses it
func (p *Parser) ParseReader(r io.Reader) ([]*ast.Node, error) {
	limited := io.LimitReader(r, int64(p.options.MaxInputBytes)+1)

	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, perror.Wrap(err, "cannot read tree input").
			WithCode(perror.CodeInvalidInput).
			WithOperation("parse")
	}

	return p.Parse(string(data))
}

// scan runs the line scanner over the whole input, keeping only
// meaningful lines
func (p *Parser) scan(text string) ([]*scannedLine, error) {
	var lines []*scannedLine

	for num, raw := range strings.Split(text, "\n") {
		scanned, err := scanLine(num+1, raw)
		if err != nil {
			return nil, err
		}
		if scanned == nil {
			continue
		}
		lines = append(lines, scanned)
	}

	// The first meaningful line anchors depth 0; deeper-indented input
	// as a whole (e.g. a tree pasted with a margin) shifts down to it
	if len(lines) > 0 && lines[0].depth > 0 {
		base := lines[0].depth
		for _, line := range lines {
			line.depth -= base
			if line.depth < 0 {
				line.depth = 0
			}
		}
	}

	return lines, nil
}

// settleKinds resolves the kind of slash-less entries by look-ahead: an
// entry followed by a deeper entry is a directory. In strict mode the
// same situation is an error, since a file cannot contain entries.
func (p *Parser) settleKinds(lines []*scannedLine) error {
	for i, line := range lines {
		if line.dir || i+1 >= len(lines) {
			continue
		}

		next := lines[i+1]
		if next.depth <= line.depth {
			continue
		}

		if p.options.StrictKinds {
			return perror.Newf("line %d: entry nested under file %q (line %d)",
				next.num, line.name, line.num).
				WithCode(perror.CodeFileChildren).
				WithSeverity(perror.SeverityHigh).
				WithOperation("parse").
				WithDetail("line", next.num).
				WithDetail("raw", next.raw).
				WithDetail("parent_line", line.num)
		}

		line.dir = true
	}
	return nil
}

// assemble builds the forest with the nearest-ancestor stack: one open
// node per depth level, shallowest first
func (p *Parser) assemble(lines []*scannedLine) ([]*ast.Node, error) {
	var forest []*ast.Node
	var stack []*ast.Node

	for _, line := range lines {
		node := &ast.Node{
			Name:  line.name,
			Kind:  ast.KindFile,
			Depth: line.depth,
			Line:  line.num,
		}
		if line.dir {
			node.Kind = ast.KindDirectory
		}

		// Pop everything at this depth or deeper; what remains is the
		// chain of open ancestors
		for len(stack) > 0 && stack[len(stack)-1].Depth >= node.Depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			forest = append(forest, node)
		} else if err := stack[len(stack)-1].AddChild(node); err != nil {
			// settleKinds upgrades every entry that gains children, so a
			// file parent here is an internal invariant violation
			return nil, perror.Wrapf(err, "line %d", line.num).
				WithCode(perror.CodeInternal).
				WithSeverity(perror.SeverityCritical).
				WithOperation("parse")
		}

		stack = append(stack, node)
	}

	return forest, nil
}
