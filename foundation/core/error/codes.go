// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across treegen. Codes distinguish parse
//              failures from filesystem and configuration failures so the
//              CLI and TUI can present them appropriately.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Tree parsing
	CodeParseSyntax   Code = "PARSE_SYNTAX"
	CodeParseIndent   Code = "PARSE_INDENT"
	CodeEmptyName     Code = "PARSE_EMPTY_NAME"
	CodeInvalidName   Code = "PARSE_INVALID_NAME"
	CodeFileChildren  Code = "PARSE_FILE_CHILDREN"
	CodeInputTooLarge Code = "PARSE_INPUT_TOO_LARGE"

	// Filesystem execution
	CodeFilesystem   Code = "FILESYSTEM"
	CodePathExists   Code = "PATH_EXISTS"
	CodePermission   Code = "PERMISSION_DENIED"
	CodeCreateFailed Code = "CREATE_FAILED"
	CodeTargetInvalid Code = "TARGET_INVALID"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsParseCode returns true for codes produced by the tree parser
func (c Code) IsParseCode() bool {
	switch c {
	case CodeParseSyntax, CodeParseIndent, CodeEmptyName,
		CodeInvalidName, CodeFileChildren, CodeInputTooLarge:
		return true
	default:
		return false
	}
}
