package version

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrNoVersion indicates that no tag qualified during resolution and the
// manifest held no usable version either. Callers treat this as a distinct
// resolution error, not a missing value.
var ErrNoVersion = errors.New("no version found in tag history or manifest")

// Level identifies which component of a semantic version to increment.
type Level string

const (
	// LevelMajor increments the major component and zeroes minor and patch.
	LevelMajor Level = "major"

	// LevelMinor increments the minor component and zeroes patch.
	LevelMinor Level = "minor"

	// LevelPatch increments the patch component.
	LevelPatch Level = "patch"
)

// IsValid checks whether the Level is one of major, minor, or patch.
func (l Level) IsValid() bool {
	switch l {
	case LevelMajor, LevelMinor, LevelPatch:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Level.
func (l Level) String() string {
	return string(l)
}

// ParseLevel converts a string to a Level. An empty string defaults to
// minor, matching the create-release contract where the level argument
// is optional.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return LevelMinor, nil
	}
	level := Level(strings.ToLower(s))
	if !level.IsValid() {
		return "", fmt.Errorf("invalid increment level %q (valid: major, minor, patch)", s)
	}
	return level, nil
}

// TagLister supplies the repository's tag names. Implemented by
// gitrepo.Manager; tests substitute a static list.
type TagLister interface {
	Tags(ctx context.Context) ([]string, error)
}

// ManifestReader supplies the manifest's recorded version, used as the
// fallback when no tag qualifies.
type ManifestReader interface {
	Version() (string, error)
}

// Resolver determines the current workflow version from tag history,
// falling back to the manifest.
type Resolver struct {
	tags     TagLister
	manifest ManifestReader
}

// NewResolver creates a Resolver over the given tag and manifest sources.
func NewResolver(tags TagLister, manifest ManifestReader) *Resolver {
	return &Resolver{tags: tags, manifest: manifest}
}

// Resolve returns the current version. releaseLine may be empty (consider
// all tags) or a "major.minor" pair restricting candidates to that
// release line.
//
// Each tag is parsed as semver (a leading "v" is tolerated; unparseable
// tags are skipped) and stripped of any prerelease suffix to form its
// comparison version. The greatest comparison version wins. The returned
// string is the stripped comparison version, so a repository whose best
// tag is "1.3.0-rc.2" resolves to "1.3.0".
func (r *Resolver) Resolve(ctx context.Context, releaseLine string) (string, error) {
	tags, err := r.tags.Tags(ctx)
	if err != nil {
		return "", err
	}

	var best *semver.Version
	for _, tag := range tags {
		parsed, err := semver.NewVersion(tag)
		if err != nil {
			// Not a version tag. Skip, don't fail.
			continue
		}

		// Strip the prerelease (and build metadata) so that rc tags
		// compete at the precedence of their eventual release.
		stripped := semver.New(parsed.Major(), parsed.Minor(), parsed.Patch(), "", "")

		if releaseLine != "" && lineOf(stripped) != releaseLine {
			continue
		}

		if best == nil || stripped.GreaterThan(best) {
			best = stripped
		}
	}

	if best != nil {
		return best.String(), nil
	}

	return r.manifestFallback()
}

// manifestFallback reads the manifest's recorded version when no tag
// qualified. The recorded string must itself be valid semver.
func (r *Resolver) manifestFallback() (string, error) {
	if r.manifest == nil {
		return "", ErrNoVersion
	}
	recorded, err := r.manifest.Version()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoVersion, err)
	}
	if _, err := semver.NewVersion(recorded); err != nil {
		return "", fmt.Errorf("%w: manifest version %q is not valid semver", ErrNoVersion, recorded)
	}
	return recorded, nil
}

// Increment returns the successor of v at the given level. The result is
// always strictly greater than v under semver precedence, and incrementing
// is deterministic: the same inputs always yield the same output.
func Increment(v string, level Level) (string, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return "", fmt.Errorf("cannot increment invalid version %q: %w", v, err)
	}

	var next semver.Version
	switch level {
	case LevelMajor:
		next = parsed.IncMajor()
	case LevelMinor:
		next = parsed.IncMinor()
	case LevelPatch:
		next = parsed.IncPatch()
	default:
		return "", fmt.Errorf("invalid increment level %q", level)
	}

	return next.String(), nil
}

// ReleaseLine returns the "major.minor" release line of a version string.
func ReleaseLine(v string) (string, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return "", fmt.Errorf("cannot derive release line of invalid version %q: %w", v, err)
	}
	return lineOf(parsed), nil
}

// lineOf formats the major.minor release line of a parsed version.
func lineOf(v *semver.Version) string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}
