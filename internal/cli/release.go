package cli

import (
	"github.com/spf13/cobra"

	"github.com/jbmorley/changes/internal/errors"
	"github.com/jbmorley/changes/internal/history"
	"github.com/jbmorley/changes/internal/release"
)

var (
	releaseSkipIfEmptyFlag bool
	releaseCommandFlag     string
	releaseExecFlag        string
	releasePushFlag        bool
	releaseDryRunFlag      bool
	releaseTemplateFlag    string
	releasePreReleaseFlag  bool
	releasePrefixFlag      string
)

var releaseCmd = &cobra.Command{
	Use:   "release [arguments...]",
	Short: "Tag the current commit as a new release",
	Long: `Tag the current commit as a new release.

When calling a script specified by --command or --exec, changes defines
a number of environment variables:

  CHANGES_TITLE                a proposed title for the release
  CHANGES_QUALIFIED_TITLE      a proposed title including pre-release version details (if applicable)
  CHANGES_VERSION              version number
  CHANGES_QUALIFIED_VERSION    full version number including pre-release version details (if applicable)
  CHANGES_PRE_RELEASE_VERSION  the pre-release version details (if applicable)
  CHANGES_INITIAL_DEVELOPMENT  true if the major version number is less than 1; false otherwise
  CHANGES_PRE_RELEASE          true if the release is a pre-release; false otherwise
  CHANGES_TAG                  the Git tag used for the release
  CHANGES_NOTES                the release notes
  CHANGES_NOTES_FILE           path to a file containing the release notes

Positional arguments are forwarded to the script.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if releaseCommandFlag != "" && releaseExecFlag != "" {
			return errors.CommandAndExec()
		}

		env, err := setup()
		if err != nil {
			return err
		}
		scope := env.scope()

		hist, err := env.history(history.Options{
			Scope:            scope,
			PreRelease:       releasePreReleaseFlag,
			PreReleasePrefix: preReleasePrefix(cmd, releasePrefixFlag, env),
		}, "")
		if err != nil {
			return err
		}

		template := releaseTemplateFlag
		if template == "" {
			template = env.cfg.Template
		}

		opts := release.Options{
			Scope:       scope,
			SkipIfEmpty: releaseSkipIfEmptyFlag,
			Command:     releaseCommandFlag,
			Exec:        releaseExecFlag,
			Args:        args,
			Push:        releasePushFlag,
			Remote:      env.cfg.Remote,
			DryRun:      releaseDryRunFlag,
			Template:    template,
		}
		return release.Run(cmd.Context(), env.repo, hist, opts, env.rep)
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().BoolVar(&releaseSkipIfEmptyFlag, "skip-if-empty", false, "exit cleanly if there are no changes to release")
	releaseCmd.Flags().StringVar(&releaseCommandFlag, "command", "", "additional command to run during the release; if the command fails, the release will be rolled back (cannot be used alongside --exec)")
	releaseCmd.Flags().StringVar(&releaseExecFlag, "exec", "", "executable to run during the release; if the executable fails, the release will be rolled back (cannot be used alongside --command)")
	releaseCmd.Flags().BoolVar(&releasePushFlag, "push", false, "push the newly created tag")
	releaseCmd.Flags().BoolVar(&releaseDryRunFlag, "dry-run", false, "perform a dry run, only logging the operations that would be performed")
	releaseCmd.Flags().StringVar(&releaseTemplateFlag, "template", "", "custom Go template for the release notes")
	releaseCmd.Flags().BoolVar(&releasePreReleaseFlag, "pre-release", false, "generate a pre-release version")
	releaseCmd.Flags().StringVar(&releasePrefixFlag, "pre-release-prefix", "", "prefix to be used when generating a pre-release version (defaults to 'rc')")
}
