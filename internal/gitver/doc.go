// Package gitver resolves the release version from Git tags.
//
// It backs the "from-git" version keyword: instead of passing a tag
// explicitly, a pipeline can let syncver ask git for the newest reachable
// v-prefixed tag.
//
// Design decision: we shell out to the git CLI rather than using a Go Git
// library. Tag resolution is a single `git describe` invocation, and the
// CLI is guaranteed to agree with whatever the invoking pipeline's own
// git commands see.
package gitver
