package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadMissingFileYieldsDefaults verifies that an absent .gitf.yml is
// not an error.
func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "develop", cfg.BaseBranch)
	assert.Equal(t, "master", cfg.MasterBranch)
	assert.Equal(t, "package.json", cfg.Manifest)
	assert.False(t, cfg.ClearScreen)
}

// TestLoadOverrides verifies that file values replace defaults and that
// omitted keys keep theirs.
func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	contents := "baseBranch: main\nclearScreen: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "main", cfg.BaseBranch)
	assert.True(t, cfg.ClearScreen)
	assert.Equal(t, "master", cfg.MasterBranch, "omitted key keeps its default")
	assert.Equal(t, "package.json", cfg.Manifest)
}

// TestLoadMalformedFile verifies that a broken config is an error rather
// than silently ignored.
func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("baseBranch: [oops\n"), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}
