package semver

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrScopeMismatch marks a syntactically valid version tag that belongs to
// a different release scope than the one requested. Callers skip these
// silently; they are not malformed input.
var ErrScopeMismatch = errors.New("version belongs to a different scope")

// MalformedError reports a tag that does not follow the version grammar
// at all.
type MalformedError struct {
	Tag string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%q is not a valid version", e.Tag)
}

// tagPattern is the version tag grammar:
// [scope_]major.minor.patch[-prerelease[.number]]
var tagPattern = regexp.MustCompile(`^(?:(.+?)_)?(\d+)\.(\d+)\.(\d+)(?:-([A-Za-z]+)(?:\.(\d+))?)?$`)

// Parse parses a version tag against an expected release scope. An empty
// scope means the unscoped namespace is expected: a scope-prefixed tag
// then fails with ErrScopeMismatch rather than a MalformedError, letting
// callers distinguish "someone else's tag" from garbage.
func Parse(tag, scope string) (Version, error) {
	m := tagPattern.FindStringSubmatch(tag)
	if m == nil {
		return Version{}, &MalformedError{Tag: tag}
	}

	v := Version{Prefix: m[1]}
	v.Major, _ = strconv.Atoi(m[2])
	v.Minor, _ = strconv.Atoi(m[3])
	v.Patch, _ = strconv.Atoi(m[4])

	if m[5] != "" {
		pre := &PreRelease{Prefix: m[5]}
		if m[6] != "" {
			pre.Number, _ = strconv.Atoi(m[6])
		}
		v.Pre = pre
	}

	if v.Prefix != scope {
		return Version{}, fmt.Errorf("parsing %q: %w", tag, ErrScopeMismatch)
	}
	return v, nil
}
