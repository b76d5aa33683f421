// Package cli — check.go implements the "syncver check" command.
//
// The check command is a read-only drift report: it verifies that both
// target manifests already carry the given release version. Pipelines
// run it as a post-release guard or as a pre-tag sanity check.
//
// Exit codes: 0 when both manifests are in sync, 3 when at least one has
// drifted, 2 when the version or a manifest fails validation.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/syncver/internal/model"
	"github.com/mmr-tortoise/syncver/internal/release"
)

// checkFlags holds the flag values for the check command.
type checkFlags struct {
	root string // --root: repository root path
}

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <version>",
		Short: "Verify both manifests carry the given version",
		Long: `Verify that the workspace manifest's [workspace.package] version and the
member manifest's internal dependency pin both equal the given release
version. Nothing is written.

Examples:
  syncver check v1.2.0
  syncver check 1.2.0 --root ../beeno --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", ".", "Repository root path")

	return cmd
}

// runCheck is the main orchestration function for the check command.
func runCheck(rawVersion string, flags *checkFlags) error {
	root, cfg, err := resolveTarget(flags.root)
	if err != nil {
		return err
	}

	result, err := release.New(root, cfg).Check(rawVersion)
	if err != nil {
		return err
	}

	printCheckResult(result)

	if !result.InSync {
		// The report above already names the drifted fields; the error
		// carries the drift-specific exit code for scripting.
		return model.NewCLIError(model.ExitDrift, fmt.Sprintf("manifests are not in sync with %s", result.Version))
	}
	return nil
}

// printCheckResult outputs the check command results in text or JSON format.
func printCheckResult(result *model.CheckResult) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	if result.InSync {
		fmt.Printf("Manifests are in sync at %s\n", result.Version)
		return
	}

	fmt.Printf("Manifests are NOT in sync with %s:\n", result.Version)
	for _, f := range result.Files {
		marker := "ok"
		if !f.InSync {
			marker = "drift"
		}
		fmt.Printf("  %-5s %s  %s = %q\n", marker, f.Path, f.Field, f.Found)
	}
}
