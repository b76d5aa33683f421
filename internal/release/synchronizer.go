package release

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/syncver/internal/config"
	"github.com/mmr-tortoise/syncver/internal/manifest"
	"github.com/mmr-tortoise/syncver/internal/model"
	"github.com/mmr-tortoise/syncver/internal/semver"
)

// Synchronizer applies a release version to the two target manifests of
// a repository checkout: the workspace manifest and the member manifest
// carrying the internal path dependency pin.
type Synchronizer struct {
	// root is the absolute repository root path.
	root string

	// cfg names the target files and the dependency, relative to root.
	cfg *config.Config
}

// New creates a Synchronizer for the repository at root using the given
// configuration. root should already be an absolute path.
func New(root string, cfg *config.Config) *Synchronizer {
	return &Synchronizer{root: root, cfg: cfg}
}

// WorkspacePath returns the absolute path of the workspace manifest.
func (s *Synchronizer) WorkspacePath() string {
	return filepath.Join(s.root, s.cfg.WorkspaceManifest)
}

// MemberPath returns the absolute path of the member manifest.
func (s *Synchronizer) MemberPath() string {
	return filepath.Join(s.root, s.cfg.MemberManifest)
}

// Sync validates rawVersion, rewrites both manifests in memory, and —
// unless dryRun is set — writes both files back.
//
// The write step is both-or-neither: no file is touched until the
// version and both substitutions have validated, so a failure anywhere
// leaves the repository exactly as it was. Within a successful run the
// two writes are sequential and individually non-atomic; the invoking
// pipeline owns exclusive access to the checkout.
//
// Validation failures carry model.ExitValidationError; read and write
// failures carry model.ExitGeneralError.
func (s *Synchronizer) Sync(rawVersion string, dryRun bool) (*model.SyncResult, error) {
	version, err := semver.Normalize(rawVersion)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitValidationError, "invalid release version", err)
	}

	// Read both files up front. A missing member manifest aborts the run
	// before the workspace manifest content is even transformed.
	workspaceContent, err := s.readManifest(s.WorkspacePath())
	if err != nil {
		return nil, err
	}
	memberContent, err := s.readManifest(s.MemberPath())
	if err != nil {
		return nil, err
	}

	newWorkspace, err := manifest.UpdateWorkspaceVersion(workspaceContent, version)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitValidationError,
			fmt.Sprintf("could not update workspace version in %s", s.cfg.WorkspaceManifest), err)
	}

	newMember, err := manifest.UpdateDependencyVersion(memberContent, s.cfg.Dependency, version)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitValidationError,
			fmt.Sprintf("could not update %s dependency version in %s", s.cfg.Dependency, s.cfg.MemberManifest), err)
	}

	// Both substitutions validated; only now may files be written.
	if !dryRun {
		if err := s.writeManifest(s.WorkspacePath(), newWorkspace); err != nil {
			return nil, err
		}
		if err := s.writeManifest(s.MemberPath(), newMember); err != nil {
			return nil, err
		}
	}

	return &model.SyncResult{
		Version: version,
		Root:    s.root,
		DryRun:  dryRun,
		Files: []model.FileSync{
			{
				Path:    s.cfg.WorkspaceManifest,
				Field:   "workspace.package.version",
				Changed: newWorkspace != workspaceContent,
			},
			{
				Path:    s.cfg.MemberManifest,
				Field:   fmt.Sprintf("dependencies.%s.version", s.cfg.Dependency),
				Changed: newMember != memberContent,
			},
		},
	}, nil
}

// Check validates rawVersion and reports whether both manifests already
// carry it. Nothing is written.
//
// The same section and line validation as Sync applies: a manifest in
// which the target field cannot be uniquely located is a validation
// failure, not drift.
func (s *Synchronizer) Check(rawVersion string) (*model.CheckResult, error) {
	version, err := semver.Normalize(rawVersion)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitValidationError, "invalid release version", err)
	}

	workspaceContent, err := s.readManifest(s.WorkspacePath())
	if err != nil {
		return nil, err
	}
	memberContent, err := s.readManifest(s.MemberPath())
	if err != nil {
		return nil, err
	}

	workspaceVersion, err := manifest.WorkspaceVersion(workspaceContent)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitValidationError,
			fmt.Sprintf("could not read workspace version from %s", s.cfg.WorkspaceManifest), err)
	}

	memberVersion, err := manifest.DependencyVersion(memberContent, s.cfg.Dependency)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitValidationError,
			fmt.Sprintf("could not read %s dependency version from %s", s.cfg.Dependency, s.cfg.MemberManifest), err)
	}

	files := []model.FileCheck{
		{
			Path:   s.cfg.WorkspaceManifest,
			Field:  "workspace.package.version",
			Found:  workspaceVersion,
			InSync: workspaceVersion == version,
		},
		{
			Path:   s.cfg.MemberManifest,
			Field:  fmt.Sprintf("dependencies.%s.version", s.cfg.Dependency),
			Found:  memberVersion,
			InSync: memberVersion == version,
		},
	}

	result := &model.CheckResult{
		Version: version,
		Root:    s.root,
		InSync:  true,
		Files:   files,
	}
	for _, f := range files {
		if !f.InSync {
			result.InSync = false
			break
		}
	}
	return result, nil
}

// readManifest reads a manifest file in full, wrapping failures with a
// general (non-validation) exit code.
func (s *Synchronizer) readManifest(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to read %s", path), err)
	}
	return string(data), nil
}

// writeManifest writes a full manifest buffer back to its original path
// with the standard permissions for non-executable config files.
func (s *Synchronizer) writeManifest(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
