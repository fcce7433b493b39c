package cmd

import (
	"fmt"
	"sort"

	"guestjot/internal"
	"github.com/spf13/cobra"
)

var prefillPeek bool

var prefillCmd = &cobra.Command{
	Use:   "prefill <screen>",
	Short: "Restore in-progress form content for a capture screen",
	Long: `Print the form snapshot held for a screen so a returning user does not
face a blank form. By default the show-once signal is consumed, exactly
as a remounting screen would; the pending capture itself is untouched
and still replays after sign-in. Use --peek to leave the signal in
place.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := args[0]

		_, store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		restorer := internal.NewPrefillRestorer(store)

		snapshot, ok, err := restorer.GetPrefillFor(screen)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No pending capture for screen %q.\n", screen)
			return nil
		}

		fresh, err := restorer.HasFreshPrefill(screen)
		if err != nil {
			return err
		}

		fmt.Printf("Form snapshot for %q:\n", screen)
		fields := make([]string, 0, len(snapshot))
		for field := range snapshot {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Printf("  %s: %s\n", field, snapshot[field])
		}

		if fresh && !prefillPeek {
			if err := restorer.ConsumePrefillSignal(screen); err != nil {
				internal.LogWarn("Failed to consume prefill signal: %v", err)
			}
			fmt.Println(hintStyle.Render("Show-once signal consumed; the capture itself remains pending."))
		}
		return nil
	},
}

func init() {
	prefillCmd.Flags().BoolVar(&prefillPeek, "peek", false, "Do not consume the show-once signal")
	rootCmd.AddCommand(prefillCmd)
}
