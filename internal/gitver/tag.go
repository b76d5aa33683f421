package gitver

import (
	"fmt"
	"os/exec"
	"strings"
)

// LatestTag returns the newest "v"-prefixed tag reachable from HEAD in
// the repository at repoRoot, as reported by
//
//	git describe --tags --abbrev=0 --match v*
//
// The returned tag still carries its "v" prefix; callers pass it through
// semver.Normalize like any other raw version input.
func LatestTag(repoRoot string) (string, error) {
	output, err := runGit(repoRoot, "describe", "--tags", "--abbrev=0", "--match", "v*")
	if err != nil {
		return "", err
	}

	tag := strings.TrimSpace(output)
	if tag == "" {
		return "", fmt.Errorf("git describe returned no tag")
	}
	return tag, nil
}

// runGit executes a git command against the repository at repoPath and
// returns its stdout.
func runGit(repoPath string, args ...string) (string, error) {
	// Prepend -C <repoPath> to make git operate in the target directory.
	// This is safer than using exec.Command().Dir because -C is handled
	// by git itself and works correctly with all git subcommands.
	fullArgs := append([]string{"-C", repoPath}, args...)

	// #nosec G204 — args are constructed internally, not from user input
	cmd := exec.Command("git", fullArgs...)

	// Capture stdout and stderr separately so we can include stderr
	// in error messages while returning stdout on success.
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("git %s failed", strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s: %s", message, stderrStr)
		}
		return "", fmt.Errorf("%s: %w", message, err)
	}

	return stdout.String(), nil
}
