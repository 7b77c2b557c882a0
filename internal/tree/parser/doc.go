// Package parser converts tree-diagram text into a node hierarchy.
//
// Package: parser
// Title: Tree Text Parser
// Description: Parses the indented, glyph-delimited output of the tree
//              command (and hand-written variants of it) into an ordered
//              forest of ast.Node values. Parsing is a pure function over
//              the input text: one scan pass extracts depth, name, and kind
//              per line, a look-ahead pass settles directory inference, and
//              a stack pass assembles parent/child links. The parser never
//              touches the filesystem.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-19
// Modified: 2026-08-19
//
// Change History:
// - 2026-08-19 v0.1.0: Initial implementation
//
// Supported input styles:
//   - unicode connectors: ├──, └──, │
//   - ASCII connectors: |--, `--, +--
//   - plain space or tab indentation (4-cell unit)
//
// A trailing slash marks an entry as a directory. Without a slash an entry
// is a file unless a deeper entry follows it, in which case its kind is
// upgraded to directory (disable with Options.StrictKinds, which turns
// that situation into a parse error instead).
package parser
