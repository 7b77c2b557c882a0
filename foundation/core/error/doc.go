// Package error provides structured error handling for treegen.
//
// Package: error
// Title: treegen Structured Errors
// Description: Implements an Error type carrying a classification code, a
//              severity, contextual details (such as the offending line
//              number and raw text of a parse failure), and an optional
//              wrapped cause. It stays compatible with the standard error
//              interface and errors.Is/errors.As unwrapping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation
//
// Usage:
//
//	err := perror.New("empty entry name").
//		WithCode(perror.CodeEmptyName).
//		WithDetail("line", 4).
//		WithDetail("raw", "   ├── ")
package error
