// Package semver validates and normalizes release version strings.
//
// The accepted grammar is MAJOR.MINOR.PATCH with an optional leading "v",
// an optional pre-release suffix ("-rc.1") and optional build metadata
// ("+build.5"). Normalization strips the leading "v" and rejects anything
// that does not match the full grammar.
//
// The package deliberately implements the grammar with an anchored regular
// expression rather than a general-purpose semver library: release tags
// like "1.2" or "1.2.3.4" must be rejected, not coerced, and the
// pre-release/build suffixes must be carried through to the manifests
// byte-for-byte.
package semver
