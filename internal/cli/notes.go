package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbmorley/changes/internal/errors"
	"github.com/jbmorley/changes/internal/history"
	"github.com/jbmorley/changes/internal/notes"
)

var (
	notesHistoryFlag    string
	notesReleasedFlag   bool
	notesPreReleaseFlag bool
	notesPrefixFlag     string
	notesAllFlag        bool
	notesTemplateFlag   string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Output the release notes",
	Long: `Output the release notes for the current version, or for every
version with the '--all' flag. Changes are grouped into sections by
their Conventional Commit type.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}

		hist, err := env.history(history.Options{
			Scope:            env.scope(),
			ReleasedOnly:     notesReleasedFlag,
			PreRelease:       notesPreReleaseFlag,
			PreReleasePrefix: preReleasePrefix(cmd, notesPrefixFlag, env),
		}, notesHistoryFlag)
		if err != nil {
			return err
		}
		if len(hist.Releases) == 0 {
			return errors.NoReleasedVersions()
		}

		releases := hist.Releases
		if !notesAllFlag {
			releases = releases[:1]
		}

		template := notesTemplateFlag
		if template == "" {
			template = env.cfg.Template
		}

		var out string
		switch {
		case template != "":
			out, err = notes.RenderTemplate(template, releases)
			if err != nil {
				return errors.TemplateError(template, err)
			}
		case notesAllFlag:
			out = notes.RenderMultiple(releases)
		default:
			out = notes.RenderSingle(releases[0])
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)

	notesCmd.Flags().StringVar(&notesHistoryFlag, "history", "", "file containing changes for versions not adhering to Conventional Commits")
	notesCmd.Flags().BoolVar(&notesReleasedFlag, "released", false, "show only released versions")
	notesCmd.Flags().BoolVar(&notesPreReleaseFlag, "pre-release", false, "include pre-release versions")
	notesCmd.Flags().StringVar(&notesPrefixFlag, "pre-release-prefix", "", "prefix to be used when generating a pre-release version (defaults to 'rc')")
	notesCmd.Flags().BoolVar(&notesAllFlag, "all", false, "output release notes for all versions")
	notesCmd.Flags().StringVar(&notesTemplateFlag, "template", "", "custom Go template")
}
