// Package version resolves the current workflow version from git tag
// history and computes successor versions under semantic-version
// increment rules.
//
// Resolution rules:
//   - Tags that are not valid semver are ignored, not treated as errors.
//   - A release-candidate suffix (-rc.N, or any prerelease) is stripped
//     before comparison: 1.3.0-rc.1 competes as 1.3.0.
//   - An optional release-line filter restricts candidates to one
//     major.minor family.
//   - With no qualifying tag, the manifest's recorded version is the
//     fallback; if that is also unavailable, resolution fails with
//     ErrNoVersion.
//
// Parsing, comparison, and increments delegate to the Masterminds semver
// library; this package only encodes the workflow-specific filtering.
package version
