// Package model defines the domain types and value objects for the
// syncver CLI.
//
// This package contains pure data structures with no external dependencies.
// SyncResult and CheckResult capture command outcomes for text and JSON
// output; there are no persistent state files beyond the manifests the
// tool rewrites.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
