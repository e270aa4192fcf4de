// Package config loads the optional repository-local gitf configuration.
//
// A .gitf.yml file at the repository root can override the branch and
// manifest defaults:
//
//	baseBranch: develop
//	masterBranch: master
//	manifest: package.json
//	clearScreen: false
//
// A missing file is not an error; defaults apply. The resulting Config
// struct is threaded explicitly through the engine and CLI — there is no
// package-level mutable state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up at the repository root.
const FileName = ".gitf.yml"

// Defaults for the branch and manifest settings.
const (
	// DefaultBaseBranch is the branch features come from and releases
	// are cut from.
	DefaultBaseBranch = "develop"

	// DefaultMasterBranch is the stable branch name. Kept configurable
	// for repositories using "main".
	DefaultMasterBranch = "master"

	// DefaultManifest is the manifest filename.
	DefaultManifest = "package.json"
)

// Config holds the effective gitf settings for one repository.
type Config struct {
	// BaseBranch is the integration branch (default "develop").
	BaseBranch string `yaml:"baseBranch"`

	// MasterBranch is the stable branch (default "master").
	MasterBranch string `yaml:"masterBranch"`

	// Manifest is the manifest filename relative to the repository root
	// (default "package.json").
	Manifest string `yaml:"manifest"`

	// ClearScreen clears the terminal before running a CLI action.
	ClearScreen bool `yaml:"clearScreen"`
}

// Default returns a Config with every field at its default value.
func Default() Config {
	return Config{
		BaseBranch:   DefaultBaseBranch,
		MasterBranch: DefaultMasterBranch,
		Manifest:     DefaultManifest,
	}
}

// Load reads .gitf.yml from the given repository root and merges it over
// the defaults. A missing file yields the defaults; a malformed file is
// an error (silently ignoring a typo'd config would be worse than
// failing).
func Load(repoRoot string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(repoRoot, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	// Re-apply defaults for fields the file left empty.
	if cfg.BaseBranch == "" {
		cfg.BaseBranch = DefaultBaseBranch
	}
	if cfg.MasterBranch == "" {
		cfg.MasterBranch = DefaultMasterBranch
	}
	if cfg.Manifest == "" {
		cfg.Manifest = DefaultManifest
	}

	return cfg, nil
}
