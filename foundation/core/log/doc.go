// Package log provides structured logging for treegen.
//
// Package: log
// Title: treegen Structured Logging
// Description: Implements a small structured logging system with log levels,
//              custom fields, and multiple output formats. Loggers are
//              immutable: the With* methods return modified copies, so a
//              configured logger can be shared freely between the parser,
//              executor, and CLI layers.
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
//	logger := log.New().
//		WithLevel(log.LevelDebug).
//		WithFormat(log.FormatConsole).
//		WithField("component", "parser")
//
//	logger.Info("parse completed", log.Field("nodes", 42))
//	logger.ErrorWithErr("create failed", err)
package log
