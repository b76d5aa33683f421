// Package model defines the domain types for the syncver CLI.
//
// All entities in this package are plain data structures passed between
// the manifest updaters, the release synchronizer, and the CLI layer.
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model

import (
	"fmt"
)

// FileSync describes the outcome of rewriting a single manifest file
// during a sync run.
type FileSync struct {
	// Path is the manifest path relative to the repository root.
	Path string `json:"path"`

	// Field identifies the version field that was rewritten, e.g.
	// "workspace.package.version" or "dependencies.beeno_core.version".
	Field string `json:"field"`

	// Changed reports whether the rewritten content differs from the
	// content that was on disk. A sync to the version the file already
	// carries succeeds with Changed=false.
	Changed bool `json:"changed"`
}

// SyncResult is the aggregate outcome of a sync run, covering both
// target manifests. It is printed as text or JSON depending on the
// --json flag.
type SyncResult struct {
	// Version is the normalized version both manifests were set to.
	Version string `json:"version"`

	// Root is the absolute repository root path the sync ran against.
	Root string `json:"root"`

	// DryRun indicates that validation and substitution ran but no file
	// was written.
	DryRun bool `json:"dryRun,omitempty"`

	// Files lists the per-manifest outcomes, in the order the manifests
	// are processed (workspace manifest first).
	Files []FileSync `json:"files"`
}

// FileCheck describes the version found in a single manifest during a
// check run.
type FileCheck struct {
	// Path is the manifest path relative to the repository root.
	Path string `json:"path"`

	// Field identifies the version field that was inspected.
	Field string `json:"field"`

	// Found is the version string currently embedded in the manifest.
	Found string `json:"found"`

	// InSync reports whether Found equals the expected version.
	InSync bool `json:"inSync"`
}

// CheckResult is the aggregate outcome of a check run.
type CheckResult struct {
	// Version is the normalized version the manifests were checked against.
	Version string `json:"version"`

	// Root is the absolute repository root path the check ran against.
	Root string `json:"root"`

	// InSync reports whether every inspected field matches Version.
	InSync bool `json:"inSync"`

	// Files lists the per-manifest findings.
	Files []FileCheck `json:"files"`
}

// ExitCode defines the CLI exit codes. These codes allow release
// pipelines and scripts to programmatically distinguish outcomes.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unexpected error, such as an
	// unreadable or unwritable manifest file.
	ExitGeneralError ExitCode = 1

	// ExitValidationError indicates the version string or one of the
	// manifests failed validation. No file is written when validation
	// fails.
	ExitValidationError ExitCode = 2

	// ExitDrift indicates a check run found at least one manifest whose
	// version does not match the expected version.
	ExitDrift ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
