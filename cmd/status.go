package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"guestjot/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	ageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show pending guest captures",
	Long: `List every capture waiting in the local store. An empty listing means
nothing is at risk; sign-in will not need to restore anything.

The exit code is 0 when pending work exists and 1 when the store is
empty, so scripts can branch on it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		has, err := store.HasUnsavedData()
		if err != nil {
			return err
		}
		if !has {
			fmt.Println("No pending captures.")
			os.Exit(1)
		}

		actions, err := store.LoadAll()
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Pending captures (%d)", len(actions))))
		fmt.Println()

		now := time.Now()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KIND\tSCREEN\tTITLE\tITEMS\tCAPTURED")
		for _, action := range actions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				kindStyle.Render(string(action.Kind)),
				action.TargetScreen,
				titleStyle.Render(action.DisplayTitle()),
				action.ItemCount(),
				ageStyle.Render(internal.AgeBucket(action.CapturedAt, now)),
			)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(hintStyle.Render("Sign in with `guestjot login` to sync these, or `guestjot discard` to forfeit them."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
