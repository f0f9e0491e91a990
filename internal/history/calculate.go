package history

import (
	"sort"

	"github.com/jbmorley/changes/internal/conventional"
	"github.com/jbmorley/changes/internal/report"
	"github.com/jbmorley/changes/internal/semver"
)

// CalculateVersion computes the release's version by replaying its
// changes, oldest first, on top of the previous released version. The
// baseline is copied, never mutated; it must not be a pre-release version
// (that is a caller bug and panics via the bumper).
//
// Features bump minor, fixes bump patch, and a breaking marker forces a
// major bump regardless of type. The bumper's suppression rules mean any
// number of changes of one category move the version exactly once. CI,
// docs and unknown changes are ignored with a warning.
//
// A non-empty preReleasePrefix additionally qualifies the result as a
// pre-release: if the window already contains pre-release tags matching
// the computed version and prefix, the latest one's numeric suffix is
// incremented, otherwise a fresh qualifier is started.
func (r *Release) CalculateVersion(baseline semver.Version, preReleasePrefix string, rep *report.Reporter) {
	b := semver.NewBumper(baseline)

	for i := len(r.Changes) - 1; i >= 0; i-- {
		m := r.Changes[i].Message
		switch m.Type {
		case conventional.TypeFeature:
			if m.Breaking {
				b.BumpMajor()
			} else {
				b.BumpMinor()
			}
		case conventional.TypeFix:
			if m.Breaking {
				b.BumpMajor()
			} else {
				b.BumpPatch()
			}
		default:
			rep.Warnf("Ignoring commit: '%s'", m.Description)
		}
	}

	version := b.Version()
	if preReleasePrefix != "" {
		version.Pre = r.nextPreRelease(version, preReleasePrefix)
	}
	r.Version = &version
}

// nextPreRelease determines the pre-release qualifier for the head window.
// Walking the changes oldest first, it finds the pre-release tag identity
// most recently in effect: the highest tag on each commit that matches
// the computed major.minor.patch and the requested prefix. If one exists
// its suffix is incremented by one; otherwise the window starts a fresh
// qualifier at suffix zero.
func (r *Release) nextPreRelease(version semver.Version, prefix string) *semver.PreRelease {
	var latest *semver.Version
	for i := len(r.Changes) - 1; i >= 0; i-- {
		if v := matchingPreRelease(r.Changes[i], version, prefix); v != nil {
			latest = v
		}
	}

	if latest == nil {
		return &semver.PreRelease{Prefix: prefix}
	}
	next := *latest.Pre
	next.Number++
	return &next
}

// matchingPreRelease returns the highest pre-release version tag on the
// change that matches the computed version and prefix, or nil.
func matchingPreRelease(c Change, version semver.Version, prefix string) *semver.Version {
	var candidates []semver.Version
	for _, v := range c.Versions {
		if v.IsPreRelease() &&
			v.Pre.Prefix == prefix &&
			v.Major == version.Major &&
			v.Minor == version.Minor &&
			v.Patch == version.Patch {
			candidates = append(candidates, v)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Less(candidates[j]) })
	top := candidates[len(candidates)-1]
	return &top
}
