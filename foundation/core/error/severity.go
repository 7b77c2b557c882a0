// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. Severity drives how
//              failures are logged and whether a run is aborted: a single
//              file that cannot be created is low severity, an unreadable
//              tree file is high.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect the run
	// Examples: a single entry skipped because it already exists
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects part of the result
	// Examples: one subtree could not be created, the rest succeeded
	SeverityMedium

	// SeverityHigh indicates a serious error that stops the operation
	// Examples: unparseable input, unwritable target directory
	SeverityHigh

	// SeverityCritical indicates an error that makes the tool unusable
	// Examples: broken configuration, internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}
