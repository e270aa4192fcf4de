// Package manifest handles reading and rewriting the project manifest
// (package.json), which holds the authoritative version when no
// qualifying tag exists in the repository.
//
// The manifest spec is plain JSON, but real-world files occasionally carry
// JSONC-style comments, so this package uses github.com/tidwall/jsonc to
// strip comments before parsing with the standard encoding/json library.
//
// Rewriting uses a map-based approach (instead of a typed struct) so that
// every field of the original manifest survives the round trip — gitf only
// owns the "version" field, everything else belongs to the surrounding
// project and must be preserved.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
)

// DefaultName is the manifest filename looked up in the repository root
// when the configuration does not override it.
const DefaultName = "package.json"

// ErrNotFound indicates the manifest file does not exist.
var ErrNotFound = errors.New("manifest not found")

// ErrNoVersionField indicates the manifest exists but holds no usable
// "version" field.
var ErrNoVersionField = errors.New("manifest has no version field")

// Manifest is an in-memory representation of one manifest file.
//
// The full document is kept as a generic map so that rewriting the version
// preserves all other fields. Key order is not preserved across a rewrite;
// the output is pretty-printed with stable (sorted) keys.
type Manifest struct {
	// path is the absolute path of the manifest file on disk.
	path string

	// doc is the parsed document. All fields are retained.
	doc map[string]interface{}
}

// Load reads and parses the manifest at the given path.
// Returns ErrNotFound (wrapped) if the file does not exist.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	// Strip JSONC comments and trailing commas before parsing.
	cleanJSON := jsonc.ToJSON(data)

	var doc map[string]interface{}
	if err := json.Unmarshal(cleanJSON, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest at %s: %w", path, err)
	}

	return &Manifest{path: path, doc: doc}, nil
}

// Find locates the manifest inside a repository root, honoring a custom
// filename from configuration. An empty name falls back to DefaultName.
func Find(repoRoot, name string) (string, error) {
	if name == "" {
		name = DefaultName
	}
	path := filepath.Join(repoRoot, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to stat manifest: %w", err)
	}
	return path, nil
}

// Path returns the manifest's location on disk.
func (m *Manifest) Path() string {
	return m.path
}

// Version returns the manifest's recorded version string.
// Returns ErrNoVersionField if the field is missing or not a string.
func (m *Manifest) Version() (string, error) {
	v, ok := m.doc["version"]
	if !ok {
		return "", ErrNoVersionField
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", ErrNoVersionField
	}
	return s, nil
}

// SetVersion records a new version in the in-memory document.
// Call Save to persist it.
func (m *Manifest) SetVersion(version string) {
	m.doc["version"] = version
}

// Save writes the document back to disk, pretty-printed with 2-space
// indentation and a trailing newline, matching the conventional
// formatting of package.json files.
func (m *Manifest) Save() error {
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize manifest: %w", err)
	}
	data = append(data, '\n')

	// 0644: the manifest is a shared project file, not a secret.
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Source adapts a manifest path into an on-demand version reader for the
// version resolver. Each call loads the file fresh, so a branch checkout
// performed earlier in the same action is reflected in the fallback.
type Source struct {
	// Path is the manifest file location.
	Path string
}

// Version loads the manifest and returns its recorded version.
func (s Source) Version() (string, error) {
	m, err := Load(s.Path)
	if err != nil {
		return "", err
	}
	return m.Version()
}

// WriteVersion is the load-modify-save convenience used by the workflow
// renderers: it loads the manifest fresh, sets the version, and saves.
// Loading fresh (rather than reusing a cached document) keeps the rewrite
// correct even if the checkout performed just before switched branches
// and changed the file contents.
func WriteVersion(path, version string) error {
	m, err := Load(path)
	if err != nil {
		return err
	}
	m.SetVersion(version)
	return m.Save()
}
