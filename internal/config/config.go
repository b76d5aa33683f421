package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Default target values, matching the workspace layout this tool was
// originally built for: a Cargo workspace whose CLI crate pins the core
// crate by path.
const (
	DefaultWorkspaceManifest = "Cargo.toml"
	DefaultMemberManifest    = "crates/cli/Cargo.toml"
	DefaultDependency        = "beeno_core"
)

// Config file names probed in the repository root, in order.
// The JSON variant may contain JSONC comments.
const (
	yamlConfigName = "syncver.yaml"
	jsonConfigName = "syncver.json"
)

// depNameRegex validates dependency names: identifiers of letters,
// digits, underscores and hyphens, starting with a letter or underscore.
var depNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// Config describes which files syncver rewrites and which dependency pin
// it keeps in sync. All paths are relative to the repository root.
type Config struct {
	// WorkspaceManifest is the root manifest containing the
	// [workspace.package] section. Default: "Cargo.toml".
	WorkspaceManifest string `json:"workspaceManifest" yaml:"workspace_manifest"`

	// MemberManifest is the member crate manifest containing the path
	// dependency pin. Default: "crates/cli/Cargo.toml".
	MemberManifest string `json:"memberManifest" yaml:"member_manifest"`

	// Dependency is the name of the internal path dependency whose
	// version pin is kept in sync. Default: "beeno_core".
	Dependency string `json:"dependency" yaml:"dependency"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		WorkspaceManifest: DefaultWorkspaceManifest,
		MemberManifest:    DefaultMemberManifest,
		Dependency:        DefaultDependency,
	}
}

// Load reads the optional tool configuration from the repository root.
//
// Discovery order: syncver.yaml, then syncver.json. When neither file
// exists the built-in defaults are returned. Fields omitted from a
// config file keep their default values.
func Load(root string) (*Config, error) {
	yamlPath := filepath.Join(root, yamlConfigName)
	if data, err := os.ReadFile(yamlPath); err == nil {
		cfg, parseErr := ParseYAML(data)
		if parseErr != nil {
			return nil, fmt.Errorf("%s: %w", yamlConfigName, parseErr)
		}
		return cfg, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", yamlConfigName, err)
	}

	jsonPath := filepath.Join(root, jsonConfigName)
	if data, err := os.ReadFile(jsonPath); err == nil {
		cfg, parseErr := ParseJSON(data)
		if parseErr != nil {
			return nil, fmt.Errorf("%s: %w", jsonConfigName, parseErr)
		}
		return cfg, nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", jsonConfigName, err)
	}

	return Default(), nil
}

// ParseYAML parses and validates YAML configuration content.
// Omitted fields keep their default values.
func ParseYAML(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseJSON parses and validates JSON configuration content.
// JSONC comments and trailing commas are stripped before parsing, so the
// config file may be commented like a devcontainer.json.
func ParseJSON(data []byte) (*Config, error) {
	cfg := Default()
	if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
		return nil, fmt.Errorf("parsing config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
//
// Manifest paths must be non-empty, relative, and must not escape the
// repository root. The dependency name must be a plain identifier, since
// it is interpolated into the dependency line pattern.
func (c *Config) Validate() error {
	if err := validateManifestPath(c.WorkspaceManifest, "workspace manifest"); err != nil {
		return err
	}
	if err := validateManifestPath(c.MemberManifest, "member manifest"); err != nil {
		return err
	}
	if c.WorkspaceManifest == c.MemberManifest {
		return fmt.Errorf("config: workspace and member manifest are the same file %q", c.WorkspaceManifest)
	}
	if !depNameRegex.MatchString(c.Dependency) {
		return fmt.Errorf("config: invalid dependency name %q", c.Dependency)
	}
	return nil
}

// validateManifestPath checks a single configured manifest path.
func validateManifestPath(path, what string) error {
	if path == "" {
		return fmt.Errorf("config: %s path is required", what)
	}
	// filepath.IsLocal rejects absolute paths and any path that escapes
	// the root via "..", which keeps the tool contained to the checkout
	// it was pointed at.
	if !filepath.IsLocal(path) {
		return fmt.Errorf("config: %s path %q must be relative to the repository root", what, path)
	}
	return nil
}
