package history

import (
	"github.com/jbmorley/changes/internal/conventional"
	"github.com/jbmorley/changes/internal/semver"
)

// Release is one window of the release history: the set of changes
// attributed to a single version. Changes are stored newest first, the
// order the commit walk discovers them; replay and rendering reverse
// that.
type Release struct {
	// Version is nil for the unreleased head window until it has been
	// computed.
	Version *semver.Version

	// Changes, newest first.
	Changes []Change

	// IsReleased is true when the window is backed by a real version tag
	// rather than speculative.
	IsReleased bool
}

// IsEmpty reports whether no change in the release affects the version
// number: ci, docs and unknown changes are invisible to versioning.
func (r *Release) IsEmpty() bool {
	for _, c := range r.Changes {
		switch c.Message.Type {
		case conventional.TypeFeature, conventional.TypeFix:
			return false
		}
	}
	return true
}

// IsPreRelease reports whether the release carries a pre-release version.
func (r *Release) IsPreRelease() bool {
	return r.Version != nil && r.Version.IsPreRelease()
}

// IsInitialDevelopment reports whether the release version is in the
// 0.x.y range.
func (r *Release) IsInitialDevelopment() bool {
	return r.Version != nil && r.Version.IsInitialDevelopment()
}

// Merge appends another release's changes, preserving their internal
// order. Used to fold ledger-declared changes into a derived release of
// the same version.
func (r *Release) Merge(other *Release) {
	r.Changes = append(r.Changes, other.Changes...)
}
