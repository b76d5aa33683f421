// Package cli — sync.go implements the "syncver sync" command.
//
// The sync command is the primary operation: it validates the requested
// release version and rewrites both target manifests in the repository
// checkout.
//
// Orchestration steps:
//  1. Resolve the repository root (--root, default ".")
//  2. Load the optional syncver.yaml / syncver.json configuration
//  3. Resolve the version argument ("from-git" asks git for the latest tag)
//  4. Run the release synchronizer (read, validate, substitute, write)
//  5. Output results (text or JSON)
package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/syncver/internal/config"
	"github.com/mmr-tortoise/syncver/internal/gitver"
	"github.com/mmr-tortoise/syncver/internal/model"
	"github.com/mmr-tortoise/syncver/internal/release"
)

// fromGitKeyword, given as the version argument, resolves the version
// from the newest reachable v-prefixed git tag instead.
const fromGitKeyword = "from-git"

// syncFlags holds the flag values for the sync command.
// These are bound to cobra flags in NewSyncCommand.
type syncFlags struct {
	root   string // --root: repository root path
	dryRun bool   // --dry-run: validate and report, write nothing
}

// NewSyncCommand creates the "sync" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewSyncCommand() *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync <version>",
		Short: "Rewrite both manifests to the given release version",
		Long: `Validate the given release version and rewrite the workspace manifest's
[workspace.package] version and the member manifest's internal dependency
pin to match.

The version may carry a leading "v" (as produced by release tags); it is
stripped before the manifests are rewritten. Passing the keyword "from-git"
resolves the version from the newest reachable v-prefixed git tag.

Examples:
  syncver sync v1.2.0
  syncver sync 1.2.0-rc.1 --root ../beeno
  syncver sync from-git --dry-run`,

		// Args validates that exactly one positional argument (the version) is provided.
		Args: cobra.ExactArgs(1),

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.root, "root", ".", "Repository root path")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate and report without writing files")

	return cmd
}

// runSync is the main orchestration function for the sync command.
func runSync(rawVersion string, flags *syncFlags) error {
	root, cfg, err := resolveTarget(flags.root)
	if err != nil {
		return err
	}

	// "from-git" defers the version choice to the repository's tags.
	if rawVersion == fromGitKeyword {
		tag, tagErr := gitver.LatestTag(root)
		if tagErr != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to resolve version from git tags", tagErr)
		}
		VerboseLog("Resolved version from git tag: %s", tag)
		rawVersion = tag
	}

	syn := release.New(root, cfg)
	VerboseLog("Workspace manifest: %s", syn.WorkspacePath())
	VerboseLog("Member manifest:    %s", syn.MemberPath())

	result, err := syn.Sync(rawVersion, flags.dryRun)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		VerboseLog("Rewrote %s (%s, changed=%t)", f.Path, f.Field, f.Changed)
	}

	printSyncResult(result)
	return nil
}

// resolveTarget resolves the repository root to an absolute path and
// loads the tool configuration from it. Shared by sync and check.
func resolveTarget(rootFlag string) (string, *config.Config, error) {
	root, err := filepath.Abs(rootFlag)
	if err != nil {
		return "", nil, model.WrapCLIError(model.ExitGeneralError, "failed to resolve repository root", err)
	}
	VerboseLog("Repository root: %s", root)

	cfg, err := config.Load(root)
	if err != nil {
		return "", nil, model.WrapCLIError(model.ExitValidationError, "invalid syncver configuration", err)
	}
	return root, cfg, nil
}

// printSyncResult outputs the sync command results in text or JSON format.
func printSyncResult(result *model.SyncResult) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	// Text format is a single confirmation line, matching what release
	// pipeline logs expect to grep for.
	if result.DryRun {
		fmt.Printf("Dry run: would synchronize Cargo versions to %s\n", result.Version)
		return
	}
	fmt.Printf("Synchronized Cargo versions to %s\n", result.Version)
}
