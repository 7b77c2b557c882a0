// Package executor turns a parsed tree hierarchy into filesystem entries.
//
// Package: executor
// Title: File Structure Executor
// Description: Walks a parsed ast.Node forest in depth-first source order
//              and creates the corresponding directories and empty files
//              under a target directory. Parents are always created before
//              their children. Failures are recorded per node and do not
//              abort unrelated sibling subtrees; a dry-run mode reports the
//              planned actions without touching the filesystem.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation
package executor
