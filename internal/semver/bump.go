package semver

// Bumper applies bump operations to a version while tracking which
// categories have already fired. Within one replay a major bump wins over
// minor and patch, and repeating a bump of the same category is a no-op,
// so any number of same-category changes move the version exactly once.
//
// Bumping a pre-release version is a programming error and panics: by the
// time changes are replayed the baseline must be a release version.
type Bumper struct {
	version  Version
	didMajor bool
	didMinor bool
	didPatch bool
}

// NewBumper starts a replay from base. It panics if base is a pre-release
// version; pre-release versions are never valid replay baselines.
func NewBumper(base Version) *Bumper {
	if base.IsPreRelease() {
		panic("semver: version bumps are not supported for pre-release versions")
	}
	return &Bumper{version: base}
}

// Version returns the current value of the replay.
func (b *Bumper) Version() Version {
	return b.version
}

// BumpMajor increments the major version and resets minor and patch.
// Subsequent minor and patch bumps in the same replay are suppressed.
func (b *Bumper) BumpMajor() {
	if b.didMajor {
		return
	}
	b.version.Major++
	b.version.Minor = 0
	b.version.Patch = 0
	b.didMajor = true
}

// BumpMinor increments the minor version and resets patch. Suppressed if
// a major bump has already been applied.
func (b *Bumper) BumpMinor() {
	if b.didMinor || b.didMajor {
		return
	}
	b.version.Minor++
	b.version.Patch = 0
	b.didMinor = true
}

// BumpPatch increments the patch version. Suppressed if a minor or major
// bump has already been applied.
func (b *Bumper) BumpPatch() {
	if b.didPatch || b.didMinor || b.didMajor {
		return
	}
	b.version.Patch++
	b.didPatch = true
}
