// File: nodes.go
// Title: Tree Node Definitions
// Description: Implements the Node type and the Kind variant. A Node is one
//              parsed entry with its name, kind, depth, source line, and
//              ordered children. Ownership is strictly tree-shaped: every
//              node has at most one parent and children keep source order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation

package ast

import (
	"fmt"
	"path/filepath"
)

// Kind distinguishes directory entries from file entries
type Kind int

const (
	// KindDirectory is an entry that will become a directory
	KindDirectory Kind = iota

	// KindFile is an entry that will become an empty file
	KindFile
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return "unknown"
	}
}

// Node represents one filesystem entry to be created
type Node struct {
	// Name is the entry's basename, glyphs and slashes stripped
	Name string

	// Kind is the entry type, determined by a trailing slash in the
	// source line or by look-ahead inference
	Kind Kind

	// Depth is the nesting level derived from the indentation prefix,
	// 0 for root entries
	Depth int

	// Line is the 1-based source line the entry was parsed from
	Line int

	// Children holds child nodes in source order; always empty for files
	Children []*Node

	parent *Node
}

// AddChild appends a child in source order and records the parent link.
// Files never carry children; attaching to a file is a programming error
// in the caller and is rejected.
func (n *Node) AddChild(child *Node) error {
	if n.Kind != KindDirectory {
		return fmt.Errorf("cannot attach %q to file %q", child.Name, n.Name)
	}
	child.parent = n
	n.Children = append(n.Children, child)
	return nil
}

// Parent returns the owning node, or nil for root entries
func (n *Node) Parent() *Node {
	return n.parent
}

// Path returns the slash-joined path from the root entry to this node
func (n *Node) Path() string {
	if n.parent == nil {
		return n.Name
	}
	return filepath.Join(n.parent.Path(), n.Name)
}

// String returns a compact representation for logs and debugging
func (n *Node) String() string {
	return fmt.Sprintf("%s(%s, depth=%d, children=%d)",
		n.Kind, n.Name, n.Depth, len(n.Children))
}

// Walk traverses the forest depth-first in insertion order, calling fn for
// every node. Traversal stops at the first error.
func Walk(forest []*Node, fn func(*Node) error) error {
	for _, root := range forest {
		if err := walkNode(root, fn); err != nil {
			return err
		}
	}
	return nil
}

func walkNode(node *Node, fn func(*Node) error) error {
	if err := fn(node); err != nil {
		return err
	}
	for _, child := range node.Children {
		if err := walkNode(child, fn); err != nil {
			return err
		}
	}
	return nil
}
