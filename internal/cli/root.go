// Package cli wires the changes commands together with cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jbmorley/changes/internal/build"
	"github.com/jbmorley/changes/internal/errors"
)

var (
	verboseFlag bool
	scopeFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "changes",
	Short: "Manage version numbers and change logs from Conventional Commits",
	Long: `Changes determines version numbers and generates change logs from a
repository's Conventional Commit history. Versions are tracked with git
tags; commits since the most recent version tag form the next, as-yet
unreleased version.`,
	Version:       build.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "show verbose logging")
	rootCmd.PersistentFlags().StringVar(&scopeFlag, "scope", "", "scope to be used in tags and commit messages")
}

// Execute runs the root command, printing structured errors to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}
