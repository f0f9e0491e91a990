package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var scopesCmd = &cobra.Command{
	Use:          "scopes",
	Short:        "Show all the unique scopes used within the repository",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}

		scopes, err := env.repo.MessageScopes()
		if err != nil {
			return err
		}
		for _, scope := range scopes {
			fmt.Fprintln(cmd.OutOrStdout(), scope)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scopesCmd)
}
