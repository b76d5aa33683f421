// Package release orchestrates a version sync across the target
// manifests of a repository checkout.
//
// The Synchronizer reads both manifests, normalizes the requested
// version, applies both substitutions in memory, and only then writes
// the files back. A validation failure in either manifest therefore
// leaves both files untouched — the repository is never left
// half-updated by a rejected release.
package release
