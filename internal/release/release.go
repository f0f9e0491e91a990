// Package release turns the unreleased head of a history into a tagged
// release: it creates the tag, optionally pushes it, and runs a
// user-supplied hook with the release details in its environment. A
// failing hook rolls the tag back so a broken release never sticks.
package release

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jbmorley/changes/internal/errors"
	"github.com/jbmorley/changes/internal/history"
	"github.com/jbmorley/changes/internal/notes"
	"github.com/jbmorley/changes/internal/progress"
	"github.com/jbmorley/changes/internal/report"
	"github.com/jbmorley/changes/internal/semver"
)

// Tagger is the slice of the git layer a release needs.
type Tagger interface {
	CreateTag(name string) error
	DeleteTag(name string) error
	PushTag(ctx context.Context, remote, name string) error
	DeleteRemoteTag(ctx context.Context, remote, name string) error
}

// Options controls a release run.
type Options struct {
	// Scope is prefixed to the release tag when set.
	Scope string

	// SkipIfEmpty exits cleanly instead of failing when there is nothing
	// to release.
	SkipIfEmpty bool

	// Command is a shell snippet to run during the release. Mutually
	// exclusive with Exec.
	Command string

	// Exec is an executable to run during the release.
	Exec string

	// Args are forwarded to the hook as positional arguments.
	Args []string

	// Push pushes the new tag to Remote.
	Push bool

	// Remote is the git remote tags are pushed to.
	Remote string

	// DryRun logs the operations without performing them.
	DryRun bool

	// Template is an optional custom notes template path.
	Template string
}

// Run releases the unreleased head of the history.
func Run(ctx context.Context, repo Tagger, hist *history.History, opts Options, rep *report.Reporter) error {
	if len(hist.Releases) == 0 {
		return nothingToRelease(opts, rep)
	}
	head := hist.Releases[0]
	if head.IsReleased || head.IsEmpty() {
		return nothingToRelease(opts, rep)
	}

	version := *head.Version
	rep.Infof("Releasing %s...", version)

	tag := version.String()
	if opts.Scope != "" {
		tag = fmt.Sprintf("%s_%s", opts.Scope, tag)
	}

	rep.Infof("Creating tag '%s'...", tag)
	if !opts.DryRun {
		if err := repo.CreateTag(tag); err != nil {
			return errors.Wrap(err, errors.Runtime)
		}
	}

	if opts.Push {
		rep.Infof("Pushing tag '%s'...", tag)
		if !opts.DryRun {
			if err := pushTag(ctx, repo, opts.Remote, tag); err != nil {
				return errors.Wrap(err, errors.Runtime)
			}
		}
	}

	if opts.Command != "" || opts.Exec != "" {
		rep.Infof("Running command...")
		rendered, err := renderNotes(head, opts.Template)
		if err != nil {
			return errors.TemplateError(opts.Template, err)
		}
		if err := runHook(ctx, repo, version, tag, rendered, opts, rep); err != nil {
			return err
		}
	}

	rep.Infof("%s Done.", progress.Symbols().Checkmark)
	return nil
}

func nothingToRelease(opts Options, rep *report.Reporter) error {
	if opts.SkipIfEmpty {
		rep.Infof("Nothing to release.")
		return nil
	}
	return errors.NoVersionsToRelease()
}

func pushTag(ctx context.Context, repo Tagger, remote, tag string) error {
	s := progress.NewSpinner(fmt.Sprintf("Pushing tag '%s'...", tag))
	s.Start()
	defer s.Stop()
	return repo.PushTag(ctx, remote, tag)
}

func renderNotes(head *history.Release, template string) (string, error) {
	if template != "" {
		return notes.RenderTemplate(template, []*history.Release{head})
	}
	return notes.RenderSingle(head), nil
}

// runHook materialises the hook and runs it with the release environment.
// On failure the tag is removed again, locally and, when it was pushed,
// from the remote.
func runHook(ctx context.Context, repo Tagger, version semver.Version, tag, rendered string, opts Options, rep *report.Reporter) error {
	notesFile, err := os.CreateTemp("", "changes-notes-")
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	defer os.Remove(notesFile.Name())
	if _, err := notesFile.WriteString(rendered); err != nil {
		notesFile.Close()
		return errors.Wrap(err, errors.Runtime)
	}
	if err := notesFile.Close(); err != nil {
		return errors.Wrap(err, errors.Runtime)
	}

	command, cleanup, err := hookCommand(opts)
	if err != nil {
		return errors.Wrap(err, errors.Runtime)
	}
	defer cleanup()

	args := append([]string{command}, opts.Args...)
	if opts.DryRun {
		rep.Infof("Running command '%s'...", strings.Join(args, " "))
		return nil
	}
	rep.Debugf("Running command '%s'...", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, command, opts.Args...)
	cmd.Env = append(os.Environ(), HookEnv(version, opts.Scope, tag, rendered, notesFile.Name())...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if out := strings.TrimSpace(stdout.String()); out != "" {
		rep.Infof("%s", out)
	}
	if runErr == nil {
		return nil
	}

	hookErr := errors.HookFailed(strings.TrimSpace(stderr.String()))
	rep.Errorf("%s %s", progress.Symbols().Failure, hookErr.Message)
	if err := repo.DeleteTag(tag); err != nil {
		rep.Warnf("Failed to delete tag '%s': %v", tag, err)
	}
	if opts.Push {
		if err := repo.DeleteRemoteTag(ctx, opts.Remote, tag); err != nil {
			rep.Warnf("Failed to delete remote tag '%s': %v", tag, err)
		}
	}
	return hookErr
}

// hookCommand resolves the executable to run. A shell snippet is written
// to a temporary script so positional arguments forward naturally.
func hookCommand(opts Options) (string, func(), error) {
	if opts.Exec != "" {
		abs, err := filepath.Abs(opts.Exec)
		if err != nil {
			return "", nil, err
		}
		return abs, func() {}, nil
	}

	dir, err := os.MkdirTemp("", "changes-hook-")
	if err != nil {
		return "", nil, err
	}
	script := filepath.Join(dir, "script.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\n"+opts.Command), 0o744); err != nil {
		os.RemoveAll(dir)
		return "", nil, err
	}
	return script, func() { os.RemoveAll(dir) }, nil
}

// HookEnv builds the CHANGES_* environment the release hook receives.
func HookEnv(version semver.Version, scope, tag, rendered, notesFile string) []string {
	title := fmt.Sprintf("%d.%d.%d", version.Major, version.Minor, version.Patch)
	if scope != "" {
		title = fmt.Sprintf("%s %s", scope, title)
	}
	qualifiedTitle := title
	preRelease := ""
	if version.IsPreRelease() {
		preRelease = version.Pre.String()
		qualifiedTitle = fmt.Sprintf("%s %s", qualifiedTitle, preRelease)
	}

	return []string{
		"CHANGES_TITLE=" + title,
		"CHANGES_QUALIFIED_TITLE=" + qualifiedTitle,
		fmt.Sprintf("CHANGES_VERSION=%d.%d.%d", version.Major, version.Minor, version.Patch),
		"CHANGES_QUALIFIED_VERSION=" + version.String(),
		"CHANGES_PRE_RELEASE_VERSION=" + preRelease,
		"CHANGES_INITIAL_DEVELOPMENT=" + boolString(version.IsInitialDevelopment()),
		"CHANGES_PRE_RELEASE=" + boolString(version.IsPreRelease()),
		"CHANGES_TAG=" + tag,
		"CHANGES_NOTES=" + rendered,
		"CHANGES_NOTES_FILE=" + notesFile,
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
