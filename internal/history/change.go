// Package history reconstructs a semantic-version release history from a
// commit log. It walks commits newest to oldest, partitions them into
// release windows bounded by version tags (pre-release windows may
// overlap), computes the version of the unreleased head by replaying
// typed changes against the previous released version, and merges the
// result with an externally declared ledger of historical releases.
package history

import (
	"github.com/jbmorley/changes/internal/conventional"
	"github.com/jbmorley/changes/internal/semver"
)

// Change is a single typed change attributed to a release. Changes that
// come from the repository carry commit provenance; changes declared in a
// ledger file carry only the message.
type Change struct {
	Message conventional.Message

	// SHA is the commit hash, or empty for ledger-sourced changes.
	SHA string

	// Tags holds the raw tag names pointing at the commit.
	Tags []string

	// Versions holds the version tags on the commit, already parsed and
	// filtered to the requested release scope.
	Versions []semver.Version
}

// NewCommit builds a Change from a repository commit: the subject line is
// parsed as a conventional-commit message, with provenance attached.
func NewCommit(sha, subject string, tags []string, versions []semver.Version) Change {
	return Change{
		Message:  conventional.ParseMessage(subject),
		SHA:      sha,
		Tags:     tags,
		Versions: versions,
	}
}

// Equal compares changes by message, ignoring provenance. This is the
// identity used when de-duplicating merged histories and in tests.
func (c Change) Equal(other Change) bool {
	return c.Message == other.Message
}
