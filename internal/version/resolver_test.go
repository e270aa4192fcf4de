package version

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticTags is a TagLister over a fixed tag list.
type staticTags []string

func (s staticTags) Tags(context.Context) ([]string, error) {
	return s, nil
}

// staticManifest is a ManifestReader returning a fixed version or error.
type staticManifest struct {
	version string
	err     error
}

func (s staticManifest) Version() (string, error) {
	return s.version, s.err
}

// TestResolvePrefersHighestStrippedTag verifies the core resolution rule:
// rc suffixes are stripped for comparison and the release tag wins by
// precedence over its own candidates.
func TestResolvePrefersHighestStrippedTag(t *testing.T) {
	r := NewResolver(staticTags{"1.2.0", "1.3.0-rc.1", "1.3.0"}, staticManifest{version: "0.0.1"})

	v, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", v)
}

// TestResolveRestrictedToReleaseLine verifies that the release-line
// filter discards tags outside the major.minor family.
func TestResolveRestrictedToReleaseLine(t *testing.T) {
	r := NewResolver(staticTags{"1.2.0", "1.3.0-rc.1", "1.3.0"}, staticManifest{version: "0.0.1"})

	v, err := r.Resolve(context.Background(), "1.2")
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", v, "1.3.x tags must be ignored under the 1.2 filter")
}

// TestResolveStripsPrereleaseOfWinner verifies that a lone rc tag
// resolves to its stripped comparison version.
func TestResolveStripsPrereleaseOfWinner(t *testing.T) {
	r := NewResolver(staticTags{"0.2.0-rc.1"}, staticManifest{version: "0.1.0"})

	v, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "0.2.0", v)
}

// TestResolveFallsBackToManifest verifies the empty-tag-set fallback.
func TestResolveFallsBackToManifest(t *testing.T) {
	r := NewResolver(staticTags{}, staticManifest{version: "0.1.0"})

	v, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", v)
}

// TestResolveIgnoresNonSemverTags verifies that unparseable tags are
// skipped, not treated as errors.
func TestResolveIgnoresNonSemverTags(t *testing.T) {
	r := NewResolver(staticTags{"nightly", "checkpoint-7", "1.1.0", "not.a.version.4"},
		staticManifest{version: "0.1.0"})

	v, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "1.1.0", v)
}

// TestResolveToleratesVPrefix verifies that v-prefixed tags are read,
// even though gitf itself always emits bare versions.
func TestResolveToleratesVPrefix(t *testing.T) {
	r := NewResolver(staticTags{"v2.0.0", "1.9.0"}, staticManifest{version: "0.1.0"})

	v, err := r.Resolve(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", v)
}

// TestResolveNoVersionAnywhere verifies the hardened resolution error:
// no qualifying tag and no manifest version is ErrNoVersion, not a
// silent empty result.
func TestResolveNoVersionAnywhere(t *testing.T) {
	r := NewResolver(staticTags{"nightly"}, staticManifest{err: assert.AnError})

	_, err := r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoVersion)

	// A filter that nothing matches takes the same path.
	r = NewResolver(staticTags{"1.2.0"}, staticManifest{err: assert.AnError})
	_, err = r.Resolve(context.Background(), "9.9")
	assert.ErrorIs(t, err, ErrNoVersion)
}

// TestResolveRejectsInvalidManifestVersion verifies that a manifest
// holding a non-semver version cannot satisfy the fallback.
func TestResolveRejectsInvalidManifestVersion(t *testing.T) {
	r := NewResolver(staticTags{}, staticManifest{version: "latest"})

	_, err := r.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoVersion)
}

// TestIncrementDeterministicAndMonotonic verifies the semver increment
// property: for every level, the result is fixed and strictly greater
// than the input under semver ordering.
func TestIncrementDeterministicAndMonotonic(t *testing.T) {
	cases := []struct {
		in    string
		level Level
		want  string
	}{
		{"1.2.3", LevelMajor, "2.0.0"},
		{"1.2.3", LevelMinor, "1.3.0"},
		{"1.2.3", LevelPatch, "1.2.4"},
		{"0.1.0", LevelMinor, "0.2.0"},
		{"0.9.9", LevelMajor, "1.0.0"},
		{"2.0.0", LevelPatch, "2.0.1"},
	}

	for _, tc := range cases {
		got, err := Increment(tc.in, tc.level)
		require.NoError(t, err, "increment %s at %s", tc.in, tc.level)
		assert.Equal(t, tc.want, got)

		// Determinism: a second run yields the identical result.
		again, err := Increment(tc.in, tc.level)
		require.NoError(t, err)
		assert.Equal(t, got, again)
	}

	_, err := Increment("not-a-version", LevelMinor)
	assert.Error(t, err)
}

// TestParseLevel verifies defaulting and rejection.
func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, LevelMinor, level, "empty level defaults to minor")

	level, err = ParseLevel("MAJOR")
	require.NoError(t, err)
	assert.Equal(t, LevelMajor, level)

	_, err = ParseLevel("huge")
	assert.Error(t, err)
}

// TestReleaseLine verifies major.minor derivation.
func TestReleaseLine(t *testing.T) {
	line, err := ReleaseLine("1.2.3")
	require.NoError(t, err)
	assert.Equal(t, "1.2", line)

	line, err = ReleaseLine("0.2.0-rc.1")
	require.NoError(t, err)
	assert.Equal(t, "0.2", line)

	_, err = ReleaseLine("oops")
	assert.Error(t, err)
}
