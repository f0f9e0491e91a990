package errors

import "fmt"

// Common error messages for the changes CLI.
// These templates ensure consistent, actionable error messages.

// NotARepository creates an error for running outside a git repository.
func NotARepository(path string) *CLIError {
	return NewEnvironmentError(
		fmt.Sprintf("not a git repository: %s", path),
		"Run changes from inside a git repository",
		"Initialize one with: git init",
	)
}

// ShallowClone creates an error for depth-limited clones, whose truncated
// history cannot be used to reconstruct releases.
func ShallowClone() *CLIError {
	return NewEnvironmentError(
		"Unable to determine change history for shallow clones.",
		"Fetch the full history with: git fetch --unshallow",
		"In CI, configure the checkout with fetch-depth: 0",
	)
}

// NoVersionsToRelease creates an error for a release attempt when the
// head is already released or has no releasable changes.
func NoVersionsToRelease() *CLIError {
	return NewRuntimeError(
		"No versions to release.",
		"Commit a feat or fix change first",
		"Or pass --skip-if-empty to exit cleanly",
	)
}

// NoReleasedVersions creates an error when --released finds nothing.
func NoReleasedVersions() *CLIError {
	return NewRuntimeError(
		"no released versions",
		"Create a release first with: changes release",
	)
}

// CommandAndExec creates an error for the mutually exclusive hook flags.
func CommandAndExec() *CLIError {
	return NewArgumentErrorWithUsage(
		"--command and --exec cannot be used together",
		"changes release [--command <shell command> | --exec <executable>]",
		"Use --command for a shell snippet, --exec for an executable path",
	)
}

// LedgerParseError creates an error for an unreadable history file.
func LedgerParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse history file: %s", path),
		"The file must be a YAML mapping of version tags to lists of changes",
		"Check the file for YAML syntax errors",
	)
}

// ConfigParseError creates an error for an invalid configuration file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
	)
}

// TemplateError creates an error for a custom notes template that could
// not be loaded or rendered.
func TemplateError(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("failed to render template: %s", path),
		"Check that the file exists and uses Go template syntax",
	)
}

// HookFailed creates an error for a release command that exited non-zero.
func HookFailed(stderr string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("Release command failed with error '%s'; reverting release.", stderr),
		"The release tag has been removed",
		"Fix the release command and run changes release again",
	)
}
