// File: visitor.go
// Title: Node Visitor
// Description: Implements the visitor interface for kind-dispatched
//              traversal and the statistics visitor used for run summaries.
//              Dispatch is an exhaustive switch on Kind so a new kind would
//              fail loudly here rather than being silently skipped.
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
)

// Visitor dispatches on the node kind during traversal
type Visitor interface {
	VisitDirectory(node *Node) error
	VisitFile(node *Node) error
}

// Accept traverses the node and its subtree depth-first in insertion
// order, dispatching each node to the visitor by kind
func (n *Node) Accept(visitor Visitor) error {
	switch n.Kind {
	case KindDirectory:
		if err := visitor.VisitDirectory(n); err != nil {
			return err
		}
	case KindFile:
		if err := visitor.VisitFile(n); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unhandled node kind %d for %q", n.Kind, n.Name)
	}

	for _, child := range n.Children {
		if err := child.Accept(visitor); err != nil {
			return err
		}
	}
	return nil
}

// AcceptAll runs a visitor over every root in the forest
func AcceptAll(forest []*Node, visitor Visitor) error {
	for _, root := range forest {
		if err := root.Accept(visitor); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarizes a parsed hierarchy
type Stats struct {
	Total       int
	Directories int
	Files       int
}

// statsVisitor counts nodes by kind
type statsVisitor struct {
	stats Stats
}

func (v *statsVisitor) VisitDirectory(node *Node) error {
	v.stats.Total++
	v.stats.Directories++
	return nil
}

func (v *statsVisitor) VisitFile(node *Node) error {
	v.stats.Total++
	v.stats.Files++
	return nil
}

// Count returns entry statistics for the forest
func Count(forest []*Node) Stats {
	v := &statsVisitor{}
	// statsVisitor never returns an error
	_ = AcceptAll(forest, v)
	return v.stats
}

// String renders the statistics in tree's summary style
func (s Stats) String() string {
	return fmt.Sprintf("%d directories, %d files", s.Directories, s.Files)
}
