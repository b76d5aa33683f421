package semver

import (
	"fmt"
	"regexp"
	"strings"
)

// versionRegex is the accepted release version grammar:
// MAJOR.MINOR.PATCH with an optional leading "v", an optional
// pre-release suffix after "-", and optional build metadata after "+".
// The pattern is anchored so partial matches (e.g. "1.2.3.4") are rejected.
// The capture group excludes the leading "v", which is what Normalize returns.
var versionRegex = regexp.MustCompile(`^v?(\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?)$`)

// InvalidVersionError reports a version string that does not match the
// semantic-version grammar. It carries the offending raw input so error
// messages can echo exactly what the pipeline passed in.
type InvalidVersionError struct {
	// Raw is the original input, before whitespace trimming.
	Raw string
}

// Error satisfies the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid version %q: expected vMAJOR.MINOR.PATCH with optional pre-release/build metadata", e.Raw)
}

// Normalize validates a raw version string against the semantic-version
// grammar and returns its canonical form with any leading "v" removed.
//
// Surrounding whitespace is stripped before matching. Inputs such as
// "v1.2.3", "1.2.3-rc.1" and "1.2.3+build.5" are accepted; anything that
// does not match the full grammar ("1.2", "abc", "1.2.3.4") yields an
// *InvalidVersionError.
//
// Normalize is idempotent: normalizing an already-normalized version
// returns it unchanged.
func Normalize(raw string) (string, error) {
	match := versionRegex.FindStringSubmatch(strings.TrimSpace(raw))
	if match == nil {
		return "", &InvalidVersionError{Raw: raw}
	}
	return match[1], nil
}

// IsNormalized reports whether s is a valid version in canonical form,
// i.e. it matches the grammar and carries no leading "v".
func IsNormalized(s string) bool {
	normalized, err := Normalize(s)
	if err != nil {
		return false
	}
	return normalized == s
}
