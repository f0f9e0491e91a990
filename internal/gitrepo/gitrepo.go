// Package gitrepo is the source-control boundary for the release engine.
// It uses the go-git library to read the commit log and tags and to
// create, delete and push release tags; the engine itself never touches
// the repository. All reads happen eagerly, before any history
// computation begins.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/jbmorley/changes/internal/history"
	"github.com/jbmorley/changes/internal/semver"
)

// ErrShallowClone indicates a depth-limited clone. Release windows cannot
// be reconstructed from a truncated history, so callers must refuse to
// proceed rather than under-count releases.
var ErrShallowClone = errors.New("unable to determine change history for shallow clones")

// debugLogger is a function that logs debug messages when debug mode is
// enabled. By default it's a no-op; set it via SetDebugLogger.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations. Pass nil
// to disable debug logging.
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// Repository wraps an opened git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository containing path, traversing up the directory
// tree to find the repository root.
func Open(path string) (*Repository, error) {
	logDebug("[git] opening repository at %s", path)
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	return &Repository{repo: repo}, nil
}

// IsShallow reports whether the repository is a shallow clone.
func (r *Repository) IsShallow() (bool, error) {
	hashes, err := r.repo.Storer.Shallow()
	if err != nil {
		return false, fmt.Errorf("reading shallow roots: %w", err)
	}
	return len(hashes) > 0, nil
}

// Commits returns the commit feed for the history engine: every commit
// reachable from HEAD, newest first, annotated with the raw tag names
// pointing at it and the version tags parsed for the requested scope.
// An empty repository yields an empty feed.
//
// Returns ErrShallowClone for depth-limited clones; this check has to
// happen before the engine sees any commits.
func (r *Repository) Commits(scope string) ([]history.Change, error) {
	shallow, err := r.IsShallow()
	if err != nil {
		return nil, err
	}
	if shallow {
		return nil, ErrShallowClone
	}

	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			logDebug("[git] empty repository, no commits")
			return nil, nil
		}
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	tags, err := r.tagsByCommit()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("listing commits: %w", err)
	}
	defer iter.Close()

	var commits []history.Change
	err = iter.ForEach(func(c *object.Commit) error {
		sha := c.Hash.String()
		commits = append(commits, history.NewCommit(sha, subject(c.Message), tags[sha], versionsFromTags(tags[sha], scope)))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking commits: %w", err)
	}

	logDebug("[git] loaded %d commits", len(commits))
	return commits, nil
}

// tagsByCommit maps commit hashes to the tag names pointing at them,
// resolving annotated tags to their target commits.
func (r *Repository) tagsByCommit() (map[string][]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	tags := make(map[string][]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		hash := ref.Hash()
		if tagObj, err := r.repo.TagObject(hash); err == nil {
			hash = tagObj.Target
		}
		sha := hash.String()
		tags[sha] = append(tags[sha], ref.Name().Short())
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("iterating tags: %w", err)
	}
	return tags, nil
}

// versionsFromTags parses the version tags belonging to the requested
// scope. Tags that are not versions at all, and versions belonging to
// other scopes, are simply not version tags for this query.
func versionsFromTags(tags []string, scope string) []semver.Version {
	var versions []semver.Version
	for _, tag := range tags {
		if v, err := semver.Parse(tag, scope); err == nil {
			versions = append(versions, v)
		}
	}
	return versions
}

// subject returns the first line of a commit message.
func subject(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		message = message[:i]
	}
	return strings.TrimRight(message, "\r")
}

// CreateTag creates a lightweight tag pointing at HEAD.
func (r *Repository) CreateTag(name string) error {
	head, err := r.repo.Head()
	if err != nil {
		return fmt.Errorf("resolving HEAD: %w", err)
	}
	if _, err := r.repo.CreateTag(name, head.Hash(), nil); err != nil {
		return fmt.Errorf("creating tag %q: %w", name, err)
	}
	logDebug("[git] created tag %s", name)
	return nil
}

// DeleteTag removes a local tag.
func (r *Repository) DeleteTag(name string) error {
	if err := r.repo.DeleteTag(name); err != nil {
		return fmt.Errorf("deleting tag %q: %w", name, err)
	}
	logDebug("[git] deleted tag %s", name)
	return nil
}

// PushTag pushes a single tag to the named remote. Already up-to-date is
// not an error.
func (r *Repository) PushTag(ctx context.Context, remote, name string) error {
	spec := config.RefSpec(fmt.Sprintf("refs/tags/%s:refs/tags/%s", name, name))
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{spec},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("pushing tag %q to %s: %w", name, remote, err)
	}
	logDebug("[git] pushed tag %s to %s", name, remote)
	return nil
}

// DeleteRemoteTag removes a tag from the named remote, the compensating
// action for a pushed tag when a release is rolled back.
func (r *Repository) DeleteRemoteTag(ctx context.Context, remote, name string) error {
	spec := config.RefSpec(fmt.Sprintf(":refs/tags/%s", name))
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []config.RefSpec{spec},
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("deleting tag %q from %s: %w", name, remote, err)
	}
	logDebug("[git] deleted tag %s from %s", name, remote)
	return nil
}

// MessageScopes returns the unique commit-message scopes used in the
// repository, sorted, for the scopes listing.
func (r *Repository) MessageScopes() ([]string, error) {
	commits, err := r.Commits("")
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var scopes []string
	for _, c := range commits {
		s := c.Message.Scope
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		scopes = append(scopes, s)
	}
	sort.Strings(scopes)
	return scopes, nil
}
