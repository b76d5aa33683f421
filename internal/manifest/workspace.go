// workspace.go handles the version field inside the [workspace.package]
// section of the root Cargo manifest.
//
// The manifest is never parsed into a TOML document model. The updater
// works on the raw text in two stages:
//  1. Window the [workspace.package] section body: everything after the
//     header line up to the next top-level "[" header line or end of text.
//  2. Require exactly one `version = "..."` line inside that window and
//     replace only its quoted value.
//
// Everything outside the replaced quoted value — comments, blank lines,
// key ordering, other sections — survives byte-for-byte. In particular a
// `version = "..."` line in a later section (e.g. [dependencies]) is
// never touched.
package manifest

import (
	"errors"
	"fmt"
	"regexp"
)

// Sentinel errors for manifest validation failures. Callers wrap these
// with file context; errors.Is works through the wrapping.
var (
	// ErrSectionNotFound indicates the workspace manifest has no
	// [workspace.package] section header.
	ErrSectionNotFound = errors.New("no [workspace.package] section found")

	// ErrVersionLineNotFound indicates the section body contains no
	// `version = "..."` line.
	ErrVersionLineNotFound = errors.New("no version line found in [workspace.package]")

	// ErrMultipleVersionLines indicates the section body contains more
	// than one `version = "..."` line, so the substitution target is
	// ambiguous.
	ErrMultipleVersionLines = errors.New("multiple version lines found in [workspace.package]")

	// ErrDependencyLineNotFound indicates the member manifest does not
	// contain exactly one path-dependency line for the expected
	// dependency name.
	ErrDependencyLineNotFound = errors.New("no unique path dependency line found")
)

var (
	// workspaceHeaderRegex matches the [workspace.package] section header
	// on its own line. The section body starts immediately after the
	// header's trailing newline.
	workspaceHeaderRegex = regexp.MustCompile(`(?m)^\[workspace\.package\][ \t]*\r?\n`)

	// nextHeaderRegex matches the start of any subsequent top-level
	// section header line, which terminates the windowed section body.
	nextHeaderRegex = regexp.MustCompile(`(?m)^\[`)

	// versionLineRegex matches a full `version = "..."` assignment line.
	// Groups: (1) everything up to and including the opening quote,
	// (2) the quoted value, (3) the closing quote and trailing space.
	// Only group 2 is replaced, so the line's own spacing is preserved.
	versionLineRegex = regexp.MustCompile(`(?m)^(version\s*=\s*")([^"]*)("\s*)$`)
)

// UpdateWorkspaceVersion returns content with the single version
// assignment inside the [workspace.package] section set to version.
//
// Validation failures (missing section, zero or multiple version lines)
// return the original content unchanged alongside a sentinel error.
func UpdateWorkspaceVersion(content, version string) (string, error) {
	start, end, err := workspaceSectionWindow(content)
	if err != nil {
		return content, err
	}
	body := content[start:end]

	matches := versionLineRegex.FindAllStringSubmatchIndex(body, -1)
	switch len(matches) {
	case 0:
		return content, ErrVersionLineNotFound
	case 1:
		// fall through to the substitution below
	default:
		return content, fmt.Errorf("%w (%d)", ErrMultipleVersionLines, len(matches))
	}

	// Indexes 4 and 5 bound submatch group 2, the quoted value.
	valStart, valEnd := matches[0][4], matches[0][5]
	newBody := body[:valStart] + version + body[valEnd:]

	return content[:start] + newBody + content[end:], nil
}

// WorkspaceVersion returns the version currently assigned inside the
// [workspace.package] section, without modifying anything. It applies
// the same windowing and exactly-one-line validation as the updater.
func WorkspaceVersion(content string) (string, error) {
	start, end, err := workspaceSectionWindow(content)
	if err != nil {
		return "", err
	}
	body := content[start:end]

	matches := versionLineRegex.FindAllStringSubmatch(body, -1)
	switch len(matches) {
	case 0:
		return "", ErrVersionLineNotFound
	case 1:
		return matches[0][2], nil
	default:
		return "", fmt.Errorf("%w (%d)", ErrMultipleVersionLines, len(matches))
	}
}

// workspaceSectionWindow locates the [workspace.package] section body and
// returns its start and end offsets within content. The body spans from
// just after the header line to just before the next top-level header
// line, or to the end of the text if no further header exists.
func workspaceSectionWindow(content string) (start, end int, err error) {
	header := workspaceHeaderRegex.FindStringIndex(content)
	if header == nil {
		return 0, 0, ErrSectionNotFound
	}
	start = header[1]

	next := nextHeaderRegex.FindStringIndex(content[start:])
	if next == nil {
		return start, len(content), nil
	}
	return start, start + next[0], nil
}
