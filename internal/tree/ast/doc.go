// Package ast defines the node hierarchy produced by the tree parser.
//
// Package: ast
// Title: Tree Node Model
// Description: Defines the Node type representing one future filesystem
//              entry, the Kind variant distinguishing directories from
//              files, depth-first traversal, a visitor interface, statistics
//              collection, and rendering back to tree text. Nodes are built
//              once by the parser and consumed read-only by the executor.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation
package ast
