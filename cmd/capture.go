package cmd

import (
	"context"
	"fmt"

	"guestjot/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	captureTitle    string
	captureBody     string
	captureCategory string
	captureScreen   string
	jotAsTodos      bool
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture a note, task or quick jot",
	Long: `Capture content. Signed-in captures go straight to the backend;
guest captures are held in the local store until you sign in.`,
}

var captureNoteCmd = &cobra.Command{
	Use:   "note",
	Short: "Capture a note",
	RunE: func(cmd *cobra.Command, args []string) error {
		if captureTitle == "" && captureBody == "" {
			return fmt.Errorf("nothing to capture: provide --title or --body")
		}
		action := &internal.PendingAction{
			Kind:         internal.KindNote,
			TargetScreen: screenOrDefault("notes"),
			Payload:      internal.Payload{Title: captureTitle, Body: captureBody},
			FormSnapshot: internal.FormSnapshot{"title": captureTitle, "body": captureBody},
		}
		return runCapture(action)
	},
}

var captureTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Capture a task",
	RunE: func(cmd *cobra.Command, args []string) error {
		if captureTitle == "" {
			return fmt.Errorf("nothing to capture: provide --title")
		}
		category := captureCategory
		if category == "" {
			category = internal.CategorizeTask(captureTitle)
		}
		action := &internal.PendingAction{
			Kind:         internal.KindTask,
			TargetScreen: screenOrDefault("todos"),
			Payload:      internal.Payload{Title: captureTitle, Category: category},
			FormSnapshot: internal.FormSnapshot{"title": captureTitle, "category": category},
		}
		return runCapture(action)
	},
}

var captureJotCmd = &cobra.Command{
	Use:   "jot [text]",
	Short: "Capture a quick jot, optionally broken down into subtasks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := captureBody
		if len(args) == 1 {
			text = args[0]
		}
		if text == "" {
			return fmt.Errorf("nothing to capture: provide jot text")
		}

		action := &internal.PendingAction{
			Kind:         internal.KindJot,
			TargetScreen: screenOrDefault("quickjot"),
			Payload:      internal.Payload{Title: captureTitle, Body: text},
			FormSnapshot: internal.FormSnapshot{"title": captureTitle, "body": text},
		}

		if jotAsTodos {
			subitems := internal.BreakdownJot(text)
			if len(subitems) == 0 {
				return fmt.Errorf("could not derive any subtasks from the jot text")
			}
			action.Payload.Subitems = subitems
			fmt.Println("Derived subtasks:")
			for _, sub := range subitems {
				fmt.Printf("  • %s %s\n", sub.Title, hintStyle.Render("("+sub.Category+")"))
			}
		}

		return runCapture(action)
	},
}

func screenOrDefault(def string) string {
	if captureScreen != "" {
		return captureScreen
	}
	return def
}

// runCapture routes the action through the coordinator and renders the
// outcome: a direct backend create for signed-in users, or the local
// save plus sign-in prompt for guests.
func runCapture(action *internal.PendingAction) error {
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
	coordinator := internal.NewGuestSessionCoordinator(session, store)

	result := coordinator.Capture(action)
	if !result.Routed {
		return createDirect(cfg, action)
	}

	if result.Saved {
		internal.PrintSuccess(fmt.Sprintf("Saved locally: %s", action.DisplayTitle()))
	} else {
		internal.PrintWarning("Could not confirm the local save; your content may be at risk until you sign in")
		internal.LogWarn("Guest capture persistence failed: %v", result.Err)
	}

	if result.PromptSignIn {
		fmt.Println()
		fmt.Println(promptStyle.Render("Save your work to your account"))
		fmt.Println(hintStyle.Render("Sign in with `guestjot login --token <token>` and your captures will sync automatically."))
	}
	return nil
}

// createDirect performs the authenticated pass-through create.
func createDirect(cfg *internal.Config, action *internal.PendingAction) error {
	backend, err := newBackend(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	p := action.Payload

	if len(p.Subitems) > 0 {
		for _, sub := range p.Subitems {
			id, err := backend.CreateTask(ctx, sub.Title, sub.Category)
			if err != nil {
				return fmt.Errorf("failed to create task %q: %w", sub.Title, err)
			}
			internal.PrintSuccess(fmt.Sprintf("Created task %s (%s)", sub.Title, id))
		}
		return nil
	}

	var id string
	switch action.Kind {
	case internal.KindTask:
		id, err = backend.CreateTask(ctx, p.Title, p.Category)
	case internal.KindJournal:
		id, err = backend.CreateJournalEntry(ctx, p.Body)
	case internal.KindMemory:
		id, err = backend.CreateCoreMemory(ctx, p.Body)
	default:
		id, err = backend.CreateNote(ctx, p.Title, p.Body)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", action.Kind, err)
	}
	internal.PrintSuccess(fmt.Sprintf("Created %s %s (%s)", action.Kind, action.DisplayTitle(), id))
	return nil
}

func init() {
	captureCmd.PersistentFlags().StringVar(&captureTitle, "title", "", "Title of the capture")
	captureCmd.PersistentFlags().StringVar(&captureBody, "body", "", "Body text of the capture")
	captureCmd.PersistentFlags().StringVar(&captureScreen, "screen", "", "Originating screen id (defaults per kind)")
	captureTaskCmd.Flags().StringVar(&captureCategory, "category", "", "Task category (derived from the title when omitted)")
	captureJotCmd.Flags().BoolVar(&jotAsTodos, "as-todos", false, "Break the jot down into subtasks, one todo per line or bullet")

	captureCmd.AddCommand(captureNoteCmd)
	captureCmd.AddCommand(captureTaskCmd)
	captureCmd.AddCommand(captureJotCmd)
	rootCmd.AddCommand(captureCmd)
}
