// File: render.go
// Title: Tree Text Renderer
// Description: Renders a node hierarchy back into tree-diagram text using
//              the standard connector glyphs (or an ASCII fallback).
//              Rendering then re-parsing a hierarchy yields an identical
//              hierarchy, which the snapshot command and tests rely on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation

package ast

import (
	"strings"
)

// RenderOptions configures tree text rendering
type RenderOptions struct {
	// ASCII switches from unicode box glyphs to |-- and `-- connectors
	ASCII bool
}

// glyphSet holds the four connector strings of one rendering style
type glyphSet struct {
	branch   string // entry with following siblings
	last     string // final entry of a directory
	vertical string // continuation under an open branch
	space    string // continuation under a closed branch
}

var (
	unicodeGlyphs = glyphSet{
		branch:   "├── ",
		last:     "└── ",
		vertical: "│   ",
		space:    "    ",
	}
	asciiGlyphs = glyphSet{
		branch:   "|-- ",
		last:     "`-- ",
		vertical: "|   ",
		space:    "    ",
	}
)

// Render produces tree text for the forest with default options
func Render(forest []*Node) string {
	return RenderWithOptions(forest, RenderOptions{})
}

// RenderWithOptions produces tree text for the forest
func RenderWithOptions(forest []*Node, opts RenderOptions) string {
	glyphs := unicodeGlyphs
	if opts.ASCII {
		glyphs = asciiGlyphs
	}

	var sb strings.Builder
	for _, root := range forest {
		sb.WriteString(displayName(root))
		sb.WriteString("\n")
		renderChildren(&sb, root, "", glyphs)
	}
	return sb.String()
}

// renderChildren writes the subtree below node, one line per entry
func renderChildren(sb *strings.Builder, node *Node, prefix string, glyphs glyphSet) {
	for i, child := range node.Children {
		isLast := i == len(node.Children)-1

		connector := glyphs.branch
		extension := glyphs.vertical
		if isLast {
			connector = glyphs.last
			extension = glyphs.space
		}

		sb.WriteString(prefix)
		sb.WriteString(connector)
		sb.WriteString(displayName(child))
		sb.WriteString("\n")

		renderChildren(sb, child, prefix+extension, glyphs)
	}
}

// displayName returns the entry name with the directory slash marker
func displayName(node *Node) string {
	switch node.Kind {
	case KindDirectory:
		return node.Name + "/"
	default:
		return node.Name
	}
}
