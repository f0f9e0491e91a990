// Package semver implements the scoped semantic version model used for
// release tags. A version is a plain value: it can be copied freely and is
// only ever produced by construction or parsing. Bump bookkeeping lives in
// Bumper so that the replay rules never leak into the value type.
package semver

import (
	"fmt"
	"strings"
)

// PreRelease qualifies a version as provisional, e.g. the "rc.2" in
// "1.4.0-rc.2". A Number of zero is rendered without a numeric suffix.
type PreRelease struct {
	Prefix string
	Number int
}

// String renders the pre-release qualifier, omitting a zero Number.
func (p PreRelease) String() string {
	if p.Number != 0 {
		return fmt.Sprintf("%s.%d", p.Prefix, p.Number)
	}
	return p.Prefix
}

// Compare orders pre-release qualifiers by prefix, then numeric suffix.
func (p PreRelease) Compare(other PreRelease) int {
	if c := strings.Compare(p.Prefix, other.Prefix); c != 0 {
		return c
	}
	switch {
	case p.Number < other.Number:
		return -1
	case p.Number > other.Number:
		return 1
	}
	return 0
}

// Version is a semantic version with an optional release-scope prefix
// (e.g. "macOS" in the tag "macOS_1.0.0") and an optional pre-release
// qualifier. The zero value is the unscoped version 0.0.0.
type Version struct {
	Major int
	Minor int
	Patch int

	// Prefix is the release scope, or empty for the unscoped namespace.
	Prefix string

	// Pre is nil for release versions.
	Pre *PreRelease
}

// New returns an unscoped release version.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// IsPreRelease reports whether the version carries a pre-release qualifier.
func (v Version) IsPreRelease() bool {
	return v.Pre != nil
}

// IsInitialDevelopment reports whether the version is still in the 0.x.y
// range, where semantic versioning makes no compatibility promises.
func (v Version) IsInitialDevelopment() bool {
	return v.Major == 0
}

// String renders the version without its scope prefix, e.g. "1.2.3-rc.1".
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != nil {
		s += "-" + v.Pre.String()
	}
	return s
}

// Qualified renders the version including its scope prefix, matching the
// tag form, e.g. "macOS_1.2.3".
func (v Version) Qualified() string {
	if v.Prefix != "" {
		return v.Prefix + "_" + v.String()
	}
	return v.String()
}

// Equal reports exact equality including scope and pre-release qualifier.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compare defines the total order over versions: scope prefix first
// (lexicographic, unscoped sorting with the empty string), then the
// numeric components, then the pre-release qualifier. A release version
// is greater than any pre-release of the same major.minor.patch.
func (v Version) Compare(other Version) int {
	if c := strings.Compare(v.Prefix, other.Prefix); c != 0 {
		return c
	}
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	switch {
	case v.Pre == nil && other.Pre == nil:
		return 0
	case v.Pre == nil:
		return 1
	case other.Pre == nil:
		return -1
	}
	return v.Pre.Compare(*other.Pre)
}

// Less reports whether v orders strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
