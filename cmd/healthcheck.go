package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"guestjot/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	successMark = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	warnMark = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	errorMark = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check config, local store and backend reachability",
	Long: `Check the health of guestjot by verifying:
  • Config file accessibility
  • Local pending action store
  • Session state
  • Backend reachability (when a backend URL is configured)

Useful for debugging sync issues before filing them as data loss.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("guestjot Health Check"))
		fmt.Println()

		fmt.Println(stepStyle.Render("Step 1: Loading config..."))
		cfgPath, err := resolveConfigPath()
		if err != nil {
			fmt.Println(errorMark.Render("✗"), "Failed to resolve config path:", err)
			os.Exit(1)
		}
		cfg, err := internal.LoadConfig(cfgPath)
		if err != nil {
			fmt.Println(errorMark.Render("✗"), "Failed to load config:", err)
			os.Exit(1)
		}
		fmt.Println(successMark.Render("✓"), "Config loaded from", cfgPath)

		fmt.Println(stepStyle.Render("Step 2: Opening pending action store..."))
		_, store, cleanup, err := openStore()
		if err != nil {
			fmt.Println(errorMark.Render("✗"), "Failed to open store:", err)
			os.Exit(1)
		}
		defer cleanup()

		has, err := store.HasUnsavedData()
		if err != nil {
			fmt.Println(errorMark.Render("✗"), "Store check failed:", err)
			os.Exit(1)
		}
		if has {
			actions, _ := store.LoadAll()
			fmt.Println(successMark.Render("✓"), fmt.Sprintf("Store accessible, %d pending capture(s)", len(actions)))
		} else {
			fmt.Println(successMark.Render("✓"), "Store accessible, no pending captures")
		}

		fmt.Println(stepStyle.Render("Step 3: Checking session..."))
		session := internal.NewFileSession(cfgPath)
		if session.IsAuthenticated() {
			fmt.Println(successMark.Render("✓"), "Signed in")
			if has {
				fmt.Println(warnMark.Render("⚠"), "Pending captures with a signed-in session; run `guestjot replay`")
			}
		} else {
			fmt.Println(successMark.Render("✓"), "Guest mode")
		}

		fmt.Println(stepStyle.Render("Step 4: Checking backend..."))
		if cfg.BackendURL == "" {
			fmt.Println(warnMark.Render("⚠"), "No backend URL configured; replay writes to the local outbox")
			return nil
		}
		client := &http.Client{Timeout: 5 * time.Second}
		resp, err := client.Get(cfg.BackendURL)
		if err != nil {
			fmt.Println(errorMark.Render("✗"), "Backend unreachable:", err)
			os.Exit(1)
		}
		resp.Body.Close()
		fmt.Println(successMark.Render("✓"), "Backend reachable:", cfg.BackendURL)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
