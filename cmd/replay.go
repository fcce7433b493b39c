package cmd

import (
	"fmt"

	"guestjot/internal"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Retry replaying pending captures into the account",
	Long: `Run a replay pass manually. Useful after a login left items behind due
to transient backend failures. Requires a signed-in session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg, store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		session := internal.NewFileSession(cfgPath)
		if !session.IsAuthenticated() {
			return fmt.Errorf("not signed in: run `guestjot login` first")
		}

		return runReplay(cfg, store)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
