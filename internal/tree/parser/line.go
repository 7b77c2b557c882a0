// File: line.go
// Title: Tree Line Scanner
// Description: Per-line analysis of tree text: locating the branch marker,
//              measuring the indentation prefix, and extracting the entry
//              name and kind flag. Depth is measured in 4-cell indentation
//              units, the width of one "│   " block.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation

package parser

import (
	"regexp"
	"strings"

	perror "github.com/msto63/treegen/foundation/core/error"
)

// indentUnit is the cell width of one nesting level, the width of the
// "│   " continuation block tree emits
const indentUnit = 4

// branchMarkers are the connectors that introduce an entry name, unicode
// first, then the ASCII fallbacks some tools emit
var branchMarkers = []string{"├──", "└──", "|--", "`--", "+--"}

// summaryPattern matches tree's trailing report line, e.g. "3 directories, 14 files"
var summaryPattern = regexp.MustCompile(`^\d+ director(?:y|ies)(?:, \d+ files?)?$`)

// scannedLine is the result of analyzing one meaningful input line
type scannedLine struct {
	num   int    // 1-based source line number
	raw   string // original text, for error reporting
	depth int    // nesting level from the indentation prefix
	name  string // entry name, glyphs stripped, slash kept off
	dir   bool   // explicit trailing slash
}

// scanLine analyzes a single raw line. It returns (nil, nil) for lines
// that carry no entry: blank lines, pure continuation lines, and tree's
// summary line.
func scanLine(num int, raw string) (*scannedLine, error) {
	line := strings.TrimRight(raw, "\r\n\t ")
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	markerIdx, markerLen := findMarker(line)

	if markerIdx < 0 {
		return scanPlainLine(num, raw, line)
	}

	prefix := line[:markerIdx]
	width, err := prefixWidth(num, raw, prefix)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(line[markerIdx+markerLen:])
	if name == "" {
		return nil, perror.Newf("empty entry name at line %d", num).
			WithCode(perror.CodeEmptyName).
			WithSeverity(perror.SeverityHigh).
			WithOperation("parse").
			WithDetail("line", num).
			WithDetail("raw", raw)
	}

	// The marker itself is one level below the prefix it follows
	return newScannedLine(num, raw, width/indentUnit+1, name)
}

// scanPlainLine handles lines without a connector: root entries and the
// space-only indentation fallback
func scanPlainLine(num int, raw, line string) (*scannedLine, error) {
	trimmed := strings.TrimSpace(line)

	// Continuation-only lines ("│") carry no entry
	if isContinuationOnly(trimmed) {
		return nil, nil
	}

	if summaryPattern.MatchString(trimmed) {
		return nil, nil
	}

	// Strip the indentation prefix, including stray vertical glyphs that
	// survive without a connector
	rest := strings.TrimLeft(line, " \t│|")
	prefix := line[:len(line)-len(rest)]

	width := 0
	for _, r := range prefix {
		if r == '\t' {
			width += indentUnit
		} else {
			width++
		}
	}

	return newScannedLine(num, raw, width/indentUnit, strings.TrimSpace(rest))
}

// newScannedLine splits the kind slash off the name and validates it
func newScannedLine(num int, raw string, depth int, name string) (*scannedLine, error) {
	dir := strings.HasSuffix(name, "/")
	name = strings.TrimSuffix(name, "/")

	if err := validateName(num, raw, name); err != nil {
		return nil, err
	}

	return &scannedLine{
		num:   num,
		raw:   raw,
		depth: depth,
		name:  name,
		dir:   dir,
	}, nil
}

// findMarker returns the byte offset and length of the earliest branch
// marker in the line, or (-1, 0) if none is present
func findMarker(line string) (int, int) {
	idx, length := -1, 0
	for _, marker := range branchMarkers {
		if i := strings.Index(line, marker); i != -1 && (idx == -1 || i < idx) {
			idx, length = i, len(marker)
		}
	}
	return idx, length
}

// prefixWidth measures the indentation prefix in cells. Vertical
// continuation glyphs and spaces are one cell, tabs are one unit.
// Anything else means the line is not tree-shaped.
func prefixWidth(num int, raw, prefix string) (int, error) {
	width := 0
	for _, r := range prefix {
		switch r {
		case ' ', '│', '|':
			width++
		case '\t':
			width += indentUnit
		default:
			return 0, perror.Newf("unparseable indentation at line %d", num).
				WithCode(perror.CodeParseIndent).
				WithSeverity(perror.SeverityHigh).
				WithOperation("parse").
				WithDetail("line", num).
				WithDetail("raw", raw)
		}
	}
	return width, nil
}

// isContinuationOnly reports whether the text consists solely of vertical
// glyphs and whitespace
func isContinuationOnly(s string) bool {
	for _, r := range s {
		switch r {
		case '│', '|', ' ', '\t':
		default:
			return false
		}
	}
	return true
}

// validateName rejects names that cannot be a single path segment
func validateName(num int, raw, name string) error {
	reject := func(reason string) error {
		return perror.Newf("invalid entry name at line %d: %s", num, reason).
			WithCode(perror.CodeInvalidName).
			WithSeverity(perror.SeverityHigh).
			WithOperation("parse").
			WithDetail("line", num).
			WithDetail("raw", raw).
			WithDetail("name", name)
	}

	switch {
	case name == "":
		return perror.Newf("empty entry name at line %d", num).
			WithCode(perror.CodeEmptyName).
			WithSeverity(perror.SeverityHigh).
			WithOperation("parse").
			WithDetail("line", num).
			WithDetail("raw", raw)
	case name == "." || name == "..":
		return reject("relative path segment")
	case strings.ContainsAny(name, "/\\"):
		return reject("path separator in name")
	case strings.ContainsRune(name, '\x00'):
		return reject("NUL byte in name")
	}
	return nil
}
