package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIError_Error verifies the message format with and without an
// underlying error.
func TestCLIError_Error(t *testing.T) {
	plain := NewCLIError(ExitValidationError, "invalid release version")
	assert.Equal(t, "invalid release version", plain.Error())

	wrapped := WrapCLIError(ExitGeneralError, "failed to read Cargo.toml", errors.New("permission denied"))
	assert.Equal(t, "failed to read Cargo.toml: permission denied", wrapped.Error())
}

// TestCLIError_Unwrap verifies that errors.Is and errors.As see through
// CLIError to the underlying cause, which the CLI layer relies on when
// translating errors to exit codes.
func TestCLIError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := WrapCLIError(ExitGeneralError, "outer", cause)

	assert.ErrorIs(t, err, cause)

	// A CLIError wrapped further up the stack is still recoverable.
	outer := fmt.Errorf("context: %w", err)
	var cliErr *CLIError
	require.True(t, errors.As(outer, &cliErr))
	assert.Equal(t, ExitGeneralError, cliErr.Code)
}

// TestExitCodes pins the numeric exit code values, which are part of the
// CLI contract consumed by release pipelines.
func TestExitCodes(t *testing.T) {
	assert.Equal(t, 0, int(ExitSuccess))
	assert.Equal(t, 1, int(ExitGeneralError))
	assert.Equal(t, 2, int(ExitValidationError))
	assert.Equal(t, 3, int(ExitDrift))
}

// TestSyncResult_JSON verifies the JSON field names, which are part of
// the --json output contract.
func TestSyncResult_JSON(t *testing.T) {
	result := SyncResult{
		Version: "1.2.3",
		Root:    "/repo",
		Files: []FileSync{
			{Path: "Cargo.toml", Field: "workspace.package.version", Changed: true},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": "1.2.3",
		"root": "/repo",
		"files": [
			{"path": "Cargo.toml", "field": "workspace.package.version", "changed": true}
		]
	}`, string(data))
}

// TestCheckResult_JSON verifies the JSON field names of the check
// report.
func TestCheckResult_JSON(t *testing.T) {
	result := CheckResult{
		Version: "1.2.3",
		Root:    "/repo",
		InSync:  false,
		Files: []FileCheck{
			{Path: "crates/cli/Cargo.toml", Field: "dependencies.beeno_core.version", Found: "1.0.0", InSync: false},
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"version": "1.2.3",
		"root": "/repo",
		"inSync": false,
		"files": [
			{"path": "crates/cli/Cargo.toml", "field": "dependencies.beeno_core.version", "found": "1.0.0", "inSync": false}
		]
	}`, string(data))
}
