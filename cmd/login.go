package cmd

import (
	"context"
	"fmt"

	"guestjot/internal"
	"github.com/spf13/cobra"
)

var (
	loginToken string
	loginEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and replay pending guest captures",
	Long: `Record the account credentials, then migrate every pending guest
capture into backend records. Items that fail are kept locally and
retried on the next login or an explicit replay.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if loginToken == "" {
			return fmt.Errorf("--token is required")
		}

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
		if err := session.SignIn(loginToken, loginEmail); err != nil {
			return fmt.Errorf("failed to record sign-in: %w", err)
		}
		internal.PrintSuccess("Signed in")

		// The sign-in above is the auth-success event; replay runs
		// before control returns so the account view never assumes
		// content that was not migrated yet.
		cfg.AuthToken = loginToken
		return runReplay(cfg, store)
	},
}

// runReplay executes one replay pass with the restoring indicator, then
// renders the per-item outcome. Shared by login and replay.
func runReplay(cfg *internal.Config, store *internal.PendingActionStore) error {
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}

	replayer := internal.NewAuthTransitionReplayer(store, backend)

	var report *internal.ReplayReport
	var replayErr error
	err = internal.ShowProgress(context.Background(), "Restoring your work...", func() error {
		report, replayErr = replayer.Flush(context.Background())
		// Item failures are reported below, not as a command failure.
		return nil
	})
	if err != nil {
		return err
	}

	if report == nil || report.State == internal.StateIdle {
		fmt.Println("Nothing to restore.")
		return nil
	}

	restored := 0
	for _, action := range report.Actions {
		for _, item := range action.Items {
			if item.Err == nil {
				restored++
			}
		}
	}
	if restored > 0 {
		internal.PrintSuccess(fmt.Sprintf("Restored %d item(s) to your account", restored))
	}

	if replayErr != nil {
		for _, action := range report.Actions {
			for _, item := range action.FailedItems() {
				internal.PrintWarning(fmt.Sprintf("Could not restore %q (%d attempt(s)); it stays saved locally", item.Title, item.Attempts))
			}
		}
		fmt.Println(hintStyle.Render("Run `guestjot replay` to retry the remaining items."))
	}

	return nil
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Auth token issued by the backend")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email, for display only")
	rootCmd.AddCommand(loginCmd)
}
