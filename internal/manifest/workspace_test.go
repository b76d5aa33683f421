package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// workspaceManifest is a representative root Cargo.toml. The
// [dependencies] section deliberately contains its own version line to
// verify that updates stay inside the [workspace.package] window.
const workspaceManifest = `# Workspace root manifest
[workspace]
members = ["crates/cli", "crates/core"]

[workspace.package]
name = "beeno"
version = "0.1.0"
edition = "2021"

[dependencies]
serde = { version = "1.0.0", features = ["derive"] }
`

// TestUpdateWorkspaceVersion verifies the happy path: only the quoted
// value of the version line inside [workspace.package] changes, and
// every other byte of the document is preserved.
func TestUpdateWorkspaceVersion(t *testing.T) {
	got, err := UpdateWorkspaceVersion(workspaceManifest, "0.2.0")
	require.NoError(t, err)

	assert.Contains(t, got, `version = "0.2.0"`)
	assert.NotContains(t, got, `version = "0.1.0"`)

	// The [dependencies] section's version field must be untouched.
	assert.Contains(t, got, `serde = { version = "1.0.0", features = ["derive"] }`,
		"version lines outside the workspace.package section must not change")

	// Comments, the members list, and surrounding sections survive verbatim.
	assert.Contains(t, got, "# Workspace root manifest")
	assert.Contains(t, got, `members = ["crates/cli", "crates/core"]`)
	assert.Contains(t, got, `edition = "2021"`)
}

// TestUpdateWorkspaceVersion_SectionAtEOF verifies windowing when
// [workspace.package] is the last section, so the window extends to the
// end of the document.
func TestUpdateWorkspaceVersion_SectionAtEOF(t *testing.T) {
	content := "[workspace]\nmembers = []\n\n[workspace.package]\nversion = \"1.0.0\"\n"

	got, err := UpdateWorkspaceVersion(content, "2.0.0")
	require.NoError(t, err)
	assert.Equal(t, "[workspace]\nmembers = []\n\n[workspace.package]\nversion = \"2.0.0\"\n", got)
}

// TestUpdateWorkspaceVersion_PreservesSpacing verifies that the version
// line's own spacing around "=" is preserved, since only the quoted
// value is substituted.
func TestUpdateWorkspaceVersion_PreservesSpacing(t *testing.T) {
	content := "[workspace.package]\nversion   =   \"0.1.0\"\n"

	got, err := UpdateWorkspaceVersion(content, "0.2.0")
	require.NoError(t, err)
	assert.Equal(t, "[workspace.package]\nversion   =   \"0.2.0\"\n", got)
}

// TestUpdateWorkspaceVersion_Failures verifies the validation taxonomy:
// missing section, missing version line, and ambiguous (multiple)
// version lines. In every case the input is returned unchanged.
func TestUpdateWorkspaceVersion_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no section header",
			content: "[package]\nversion = \"0.1.0\"\n",
			wantErr: ErrSectionNotFound,
		},
		{
			name:    "empty document",
			content: "",
			wantErr: ErrSectionNotFound,
		},
		{
			name:    "section without version line",
			content: "[workspace.package]\nname = \"beeno\"\n\n[dependencies]\nversion = \"0.1.0\"\n",
			wantErr: ErrVersionLineNotFound,
		},
		{
			name:    "multiple version lines in section",
			content: "[workspace.package]\nversion = \"0.1.0\"\nversion = \"0.2.0\"\n",
			wantErr: ErrMultipleVersionLines,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UpdateWorkspaceVersion(tt.content, "9.9.9")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.content, got, "failed validation must not modify the content")
		})
	}
}

// TestWorkspaceVersion verifies the read-only extractor used by the
// check command, including its shared error taxonomy.
func TestWorkspaceVersion(t *testing.T) {
	got, err := WorkspaceVersion(workspaceManifest)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", got)

	_, err = WorkspaceVersion("[dependencies]\nversion = \"1.0.0\"\n")
	assert.ErrorIs(t, err, ErrSectionNotFound)

	_, err = WorkspaceVersion("[workspace.package]\nname = \"beeno\"\n")
	assert.ErrorIs(t, err, ErrVersionLineNotFound)

	_, err = WorkspaceVersion("[workspace.package]\nversion = \"1.0.0\"\nversion = \"2.0.0\"\n")
	assert.ErrorIs(t, err, ErrMultipleVersionLines)
}
