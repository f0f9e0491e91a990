package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jbmorley/changes/internal/errors"
	"github.com/jbmorley/changes/internal/history"
)

var (
	versionReleasedFlag   bool
	versionPreReleaseFlag bool
	versionPrefixFlag     string
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Output the current version",
	Long: `Output the current version as determined by taking the most recent
version tag and applying any subsequent changes; if there have been no
changes since the most recent version tag, this outputs the version of
the most recent tag.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}

		hist, err := env.history(history.Options{
			Scope:            env.scope(),
			ReleasedOnly:     versionReleasedFlag,
			PreRelease:       versionPreReleaseFlag,
			PreReleasePrefix: preReleasePrefix(cmd, versionPrefixFlag, env),
		}, "")
		if err != nil {
			return err
		}
		if len(hist.Releases) == 0 {
			return errors.NoReleasedVersions()
		}

		fmt.Fprintln(cmd.OutOrStdout(), hist.Releases[0].Version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionReleasedFlag, "released", false, "show only released versions")
	versionCmd.Flags().BoolVar(&versionPreReleaseFlag, "pre-release", false, "generate a pre-release version")
	versionCmd.Flags().StringVar(&versionPrefixFlag, "pre-release-prefix", "", "prefix to be used when generating a pre-release version (defaults to 'rc')")
}

// preReleasePrefix resolves the pre-release prefix: an explicitly set
// flag wins over configuration.
func preReleasePrefix(cmd *cobra.Command, flag string, env *environment) string {
	if cmd.Flags().Changed("pre-release-prefix") {
		return flag
	}
	return env.cfg.PreReleasePrefix
}
