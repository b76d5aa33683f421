// Package manifest rewrites version fields inside Cargo manifests while
// treating the files as opaque text.
//
// Key responsibilities:
//   - Replace the version assignment inside the [workspace.package]
//     section of the root manifest (workspace.go)
//   - Replace the version pin on an internal path dependency in a member
//     manifest (dependency.go)
//   - Extract the current values of both fields for drift checks
//
// Design decision: the manifests are never parsed into a TOML document
// model. Every byte outside the single replaced quoted value — comments,
// formatting, key order — must survive a rewrite verbatim, which a parse/
// re-serialize round trip would not guarantee. Each updater instead runs
// an explicit two-stage text search (section window first, then a line
// pattern inside the window) and enforces that the substitution target
// is unique before touching anything.
package manifest
