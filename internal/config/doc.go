// Package config loads the optional repo-local syncver configuration.
//
// By default syncver targets a Cargo workspace laid out as the tool's
// home repository is: the root Cargo.toml plus crates/cli/Cargo.toml with
// a "beeno_core" path dependency. A syncver.yaml or syncver.json file in
// the repository root overrides those targets; the JSON variant tolerates
// JSONC comments.
package config
