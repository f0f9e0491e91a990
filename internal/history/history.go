package history

import (
	"sort"

	"github.com/jbmorley/changes/internal/report"
	"github.com/jbmorley/changes/internal/semver"
)

// Options controls how a History is assembled and filtered.
type Options struct {
	// Scope restricts the history to version tags carrying this release
	// scope prefix. Empty selects the unscoped namespace.
	Scope string

	// ReleasedOnly drops the unreleased head window from the result.
	ReleasedOnly bool

	// PreRelease includes pre-release windows in the result and makes the
	// unreleased head compute a pre-release version.
	PreRelease bool

	// PreReleasePrefix is the pre-release identity recognised in tags and
	// assigned to the head, e.g. "rc".
	PreReleasePrefix string
}

// History is the final ordered, filtered release list for one scope.
type History struct {
	Releases []*Release
}

// Build assembles the release history from a commit feed, newest first,
// and an optional ledger of externally declared releases keyed by
// qualified version. The commit feed must come from a complete clone;
// shallow histories cannot be windowed and have to be rejected by the
// caller before commits are ever listed.
func Build(commits []Change, ledger map[string]*Release, opts Options, rep *report.Reporter) *History {
	releases := buildWindows(commits, opts, rep)

	byVersion := make(map[string]*Release, len(releases))
	order := make([]string, 0, len(releases))
	for _, release := range releases {
		key := release.Version.Qualified()
		if _, ok := byVersion[key]; !ok {
			order = append(order, key)
		}
		byVersion[key] = release
	}
	for key, release := range ledger {
		if existing, ok := byVersion[key]; ok {
			existing.Merge(release)
			continue
		}
		byVersion[key] = release
		order = append(order, key)
	}

	merged := make([]*Release, 0, len(order))
	for _, key := range order {
		merged = append(merged, byVersion[key])
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[j].Version.Less(*merged[i].Version)
	})

	filtered := merged[:0]
	for _, release := range merged {
		if opts.ReleasedOnly && !release.IsReleased {
			continue
		}
		if release.IsPreRelease() && !opts.PreRelease {
			continue
		}
		filtered = append(filtered, release)
	}

	return &History{Releases: filtered}
}

// buildWindows walks the commits newest to oldest and groups them into
// release windows, one per version tag plus the unreleased head.
//
// The head window is always present and version-less while walking. Each
// version tag encountered opens a new window and displaces any active
// window it supersedes: a release tag closes every active window with no
// version or a greater version (the walk has crossed that release's
// boundary), while a pre-release tag only ever replaces an empty,
// version-less head, since pre-release windows deliberately overlap the
// windows that follow them. Every commit is then attributed to all still
// active windows, which is how a single commit lands in both a release
// and the pre-releases building towards it.
func buildWindows(commits []Change, opts Options, rep *report.Reporter) []*Release {
	head := &Release{}
	releases := []*Release{head}
	active := []*Release{head}

	for _, commit := range commits {
		for _, version := range relevantVersions(commit, opts.PreReleasePrefix) {
			var kept []*Release
			for _, release := range active {
				if !displaces(version, release, opts.PreRelease) {
					kept = append(kept, release)
				}
			}

			// Copy the loop variable: go 1.21 shares it across
			// iterations and each window needs its own version.
			version := version
			release := &Release{Version: &version, IsReleased: true}
			releases = append(releases, release)
			active = append(kept, release)
		}

		for _, release := range active {
			release.Changes = append(release.Changes, commit)
		}
	}

	if head.Version == nil {
		var baseline semver.Version
		for _, release := range releases[1:] {
			if !release.IsPreRelease() {
				baseline = *release.Version
				break
			}
		}
		prefix := ""
		if opts.PreRelease {
			prefix = opts.PreReleasePrefix
		}
		head.CalculateVersion(baseline, prefix, rep)
	}

	if len(releases) > 1 && head.IsEmpty() {
		releases = releases[1:]
	}
	return releases
}

// displaces reports whether a newly encountered tag version closes out an
// active release window.
func displaces(version semver.Version, release *Release, preRelease bool) bool {
	if version.IsPreRelease() {
		return release.Version == nil && release.IsEmpty() && preRelease
	}
	return release.Version == nil || version.Less(*release.Version)
}

// relevantVersions returns the commit's version tags ordered highest
// first, keeping only release versions and pre-releases matching the
// requested prefix.
func relevantVersions(c Change, preReleasePrefix string) []semver.Version {
	var versions []semver.Version
	for _, v := range c.Versions {
		if !v.IsPreRelease() || v.Pre.Prefix == preReleasePrefix {
			versions = append(versions, v)
		}
	}
	sort.Slice(versions, func(i, j int) bool { return versions[j].Less(versions[i]) })
	return versions
}
