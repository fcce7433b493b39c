package cmd

import (
	"fmt"

	"guestjot/internal"
	"github.com/spf13/cobra"
)

var discardAll bool

var discardCmd = &cobra.Command{
	Use:   "discard [screen]",
	Short: "Forfeit pending guest captures without replaying them",
	Long: `Delete pending captures from the local store. This is the only way
content is dropped without being migrated; skipping the sign-in prompt
never discards anything.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && !discardAll {
			return fmt.Errorf("name a screen to discard, or pass --all")
		}

		_, store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if discardAll {
			if err := store.DiscardAll(); err != nil {
				return err
			}
			internal.PrintSuccess("Discarded all pending captures")
			return nil
		}

		screen := args[0]
		has, err := store.HasPendingFor(screen)
		if err != nil {
			return err
		}
		if !has {
			fmt.Printf("No pending capture for screen %q.\n", screen)
			return nil
		}

		if err := store.Discard(screen); err != nil {
			return err
		}
		internal.PrintSuccess(fmt.Sprintf("Discarded pending capture for %q", screen))
		return nil
	},
}

func init() {
	discardCmd.Flags().BoolVar(&discardAll, "all", false, "Discard every pending capture")
	rootCmd.AddCommand(discardCmd)
}
