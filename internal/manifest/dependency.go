// dependency.go handles the version pin on an internal path dependency
// inside a member crate's Cargo manifest.
//
// The target is a single inline-table line of the shape
//
//	beeno_core = { path = "../core", version = "0.1.0" }
//
// Exactly one such line must exist for the configured dependency name.
// Only the quoted version value is replaced; the path attribute and the
// rest of the document are preserved verbatim.
package manifest

import (
	"fmt"
	"regexp"
)

// dependencyLineRegex builds the line pattern for the named path
// dependency. Groups: (1) everything up to and including the version's
// opening quote, (2) the quoted version value, (3) the closing quote and
// table terminator.
func dependencyLineRegex(depName string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?m)^(` + regexp.QuoteMeta(depName) + `\s*=\s*\{\s*path\s*=\s*"[^"]*",\s*version\s*=\s*")([^"]*)("\s*\})\s*$`)
}

// UpdateDependencyVersion returns content with the version pin of the
// named path dependency set to version.
//
// Zero matching lines and multiple matching lines are both validation
// failures (the substitution target must be unique); the original
// content is returned unchanged alongside ErrDependencyLineNotFound.
func UpdateDependencyVersion(content, depName, version string) (string, error) {
	re := dependencyLineRegex(depName)

	matches := re.FindAllStringSubmatchIndex(content, -1)
	if len(matches) != 1 {
		return content, fmt.Errorf("%w for %q (%d matches)", ErrDependencyLineNotFound, depName, len(matches))
	}

	// Indexes 4 and 5 bound submatch group 2, the quoted version value.
	valStart, valEnd := matches[0][4], matches[0][5]
	return content[:valStart] + version + content[valEnd:], nil
}

// DependencyVersion returns the version currently pinned on the named
// path dependency, without modifying anything. It applies the same
// exactly-one-line validation as the updater.
func DependencyVersion(content, depName string) (string, error) {
	re := dependencyLineRegex(depName)

	matches := re.FindAllStringSubmatch(content, -1)
	if len(matches) != 1 {
		return "", fmt.Errorf("%w for %q (%d matches)", ErrDependencyLineNotFound, depName, len(matches))
	}
	return matches[0][2], nil
}
