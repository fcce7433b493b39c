package cmd

import (
	"guestjot/internal"
	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out, returning to guest mode",
	Long: `Clear the recorded credentials. Any still-pending captures stay in the
local store and will replay on the next sign-in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := resolveConfigPath()
		if err != nil {
			return err
		}

		session := internal.NewFileSession(cfgPath)
		if err := session.SignOut(); err != nil {
			return err
		}

		internal.PrintSuccess("Signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
