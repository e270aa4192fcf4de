package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAction verifies the action enum round trip: every supported
// name parses back to its constant, and unknown names are rejected.
func TestParseAction(t *testing.T) {
	for _, action := range Actions() {
		parsed, err := ParseAction(action.String())
		require.NoError(t, err)
		assert.Equal(t, action, parsed)
	}

	_, err := ParseAction("deploy")
	assert.Error(t, err, "unknown action names must be rejected")

	// Parsing is case-insensitive, matching the other enums.
	parsed, err := ParseAction("Create-Feature")
	require.NoError(t, err)
	assert.Equal(t, ActionCreateFeature, parsed)
}

// TestBranchName verifies the fixed prefix per branch kind.
func TestBranchName(t *testing.T) {
	assert.Equal(t, "feature-experiment", BranchName(KindFeature, "experiment"))
	assert.Equal(t, "release-1.2", BranchName(KindRelease, "1.2"))
	assert.Equal(t, "hotfix-1.2.1", BranchName(KindHotfix, "1.2.1"))
}

// TestValidateReleaseLine checks the major.minor shape requirement.
func TestValidateReleaseLine(t *testing.T) {
	assert.NoError(t, ValidateReleaseLine("1.2"))
	assert.NoError(t, ValidateReleaseLine("0.10"))

	assert.Error(t, ValidateReleaseLine(""))
	assert.Error(t, ValidateReleaseLine("1"))
	assert.Error(t, ValidateReleaseLine("1.2.3"))
	assert.Error(t, ValidateReleaseLine("v1.2"))
	assert.Error(t, ValidateReleaseLine("1.x"))
}

// TestValidateVersionTriple checks the major.minor.patch shape
// requirement for finish-hotfix arguments.
func TestValidateVersionTriple(t *testing.T) {
	assert.NoError(t, ValidateVersionTriple("1.2.3"))
	assert.NoError(t, ValidateVersionTriple("0.0.1"))

	assert.Error(t, ValidateVersionTriple(""))
	assert.Error(t, ValidateVersionTriple("1.2"))
	assert.Error(t, ValidateVersionTriple("1.2.3-rc.1"), "prerelease suffixes are not hotfix versions")
	assert.Error(t, ValidateVersionTriple("v1.2.3"))
}

// TestValidateFeatureName checks the branch-suffix restrictions.
func TestValidateFeatureName(t *testing.T) {
	assert.NoError(t, ValidateFeatureName("experiment"))
	assert.NoError(t, ValidateFeatureName("login-form"))
	assert.NoError(t, ValidateFeatureName("JIRA-123"))

	assert.Error(t, ValidateFeatureName(""))
	assert.Error(t, ValidateFeatureName("has space"))
	assert.Error(t, ValidateFeatureName("bad~ref"))
	assert.Error(t, ValidateFeatureName("-leading"))
	assert.Error(t, ValidateFeatureName("x.lock"))
}

// TestCLIErrorUnwrap verifies errors.Is/As interoperability through the
// CLIError wrapper.
func TestCLIErrorUnwrap(t *testing.T) {
	underlying := assert.AnError
	err := WrapCLIError(ExitGitError, "git query failed", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "git query failed")
	assert.Equal(t, ExitGitError, err.Code)

	plain := NewCLIError(ExitValidationError, "bad argument")
	assert.Nil(t, plain.Unwrap())
	assert.Equal(t, "bad argument", plain.Error())
}
