package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that a root with no config file yields the
// built-in defaults.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Cargo.toml", cfg.WorkspaceManifest)
	assert.Equal(t, "crates/cli/Cargo.toml", cfg.MemberManifest)
	assert.Equal(t, "beeno_core", cfg.Dependency)
}

// TestLoad_YAML verifies YAML config discovery, including that omitted
// fields keep their default values.
func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	content := "member_manifest: tools/agent/Cargo.toml\ndependency: agent_core\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncver.yaml"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Cargo.toml", cfg.WorkspaceManifest, "omitted fields keep defaults")
	assert.Equal(t, "tools/agent/Cargo.toml", cfg.MemberManifest)
	assert.Equal(t, "agent_core", cfg.Dependency)
}

// TestLoad_JSONC verifies JSON config discovery with JSONC comments,
// which are stripped before parsing.
func TestLoad_JSONC(t *testing.T) {
	dir := t.TempDir()
	content := `{
	// the CLI crate pins the core crate by path
	"memberManifest": "crates/agent/Cargo.toml",
	"dependency": "agent_core",
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncver.json"), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "Cargo.toml", cfg.WorkspaceManifest)
	assert.Equal(t, "crates/agent/Cargo.toml", cfg.MemberManifest)
	assert.Equal(t, "agent_core", cfg.Dependency)
}

// TestLoad_YAMLTakesPrecedence verifies the documented discovery order:
// syncver.yaml wins when both config files exist.
func TestLoad_YAMLTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncver.yaml"),
		[]byte("dependency: from_yaml\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncver.json"),
		[]byte(`{"dependency": "from_json"}`), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from_yaml", cfg.Dependency)
}

// TestLoad_InvalidYAML verifies that a malformed config file is an
// error rather than a silent fallback to defaults.
func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "syncver.yaml"),
		[]byte("{unclosed"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

// TestValidate verifies the configuration constraints: relative,
// root-contained manifest paths, distinct files, and an identifier-like
// dependency name.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty workspace manifest",
			mutate:  func(c *Config) { c.WorkspaceManifest = "" },
			wantErr: "workspace manifest path is required",
		},
		{
			name:    "absolute member manifest",
			mutate:  func(c *Config) { c.MemberManifest = "/etc/Cargo.toml" },
			wantErr: "must be relative",
		},
		{
			name:    "path escaping the root",
			mutate:  func(c *Config) { c.MemberManifest = "../elsewhere/Cargo.toml" },
			wantErr: "must be relative",
		},
		{
			name: "same file for both manifests",
			mutate: func(c *Config) {
				c.WorkspaceManifest = "Cargo.toml"
				c.MemberManifest = "Cargo.toml"
			},
			wantErr: "same file",
		},
		{
			name:    "empty dependency name",
			mutate:  func(c *Config) { c.Dependency = "" },
			wantErr: "invalid dependency name",
		},
		{
			name:    "dependency name with spaces",
			mutate:  func(c *Config) { c.Dependency = "beeno core" },
			wantErr: "invalid dependency name",
		},
		{
			name:    "dependency name starting with a digit",
			mutate:  func(c *Config) { c.Dependency = "1core" },
			wantErr: "invalid dependency name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
