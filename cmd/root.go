package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"guestjot/internal"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	configPath  string
	storagePath string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "guestjot",
	Short: "Capture notes and tasks as a guest, replay them after sign-in",
	Long: `guestjot keeps content you author while signed out safe on your device
and migrates it into your account the moment you sign in.

Notes, tasks and quick-jot captures made in guest mode are persisted to a
local store. When you return to a capture screen before signing in, your
typed content is restored exactly as you left it. After sign-in, every
pending capture is replayed into backend records and the local copy is
cleared.

Quick Start:
  guestjot capture note --title "Buy milk"   # Capture while signed out
  guestjot status                            # See what is waiting
  guestjot login --token <token>             # Sign in and restore your work
  guestjot export --format md                # Export pending captures`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Custom config file location")
	rootCmd.PersistentFlags().StringVar(&storagePath, "storage", "", "Custom pending action database location")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveConfigPath returns the active config path, honoring --config
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return internal.DefaultConfigPath()
}

// openStore loads config and opens the pending action store. The caller
// must invoke the returned cleanup.
func openStore() (*internal.Config, *internal.PendingActionStore, func(), error) {
	cfgPath, err := resolveConfigPath()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := internal.LoadConfig(cfgPath)
	if err != nil {
		return nil, nil, nil, err
	}

	dbPath, err := internal.ResolveStoragePath(storagePath, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := internal.OpenDatabase(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			internal.LogDebug("Failed to close database: %v", err)
		}
	}
	return cfg, internal.NewPendingActionStore(db), cleanup, nil
}

// newBackend picks the replay target: the hosted backend when a URL is
// configured, otherwise a local outbox file next to the config.
func newBackend(cfg *internal.Config) (internal.Backend, error) {
	if cfg.BackendURL != "" {
		return internal.NewHTTPBackend(cfg.BackendURL, cfg.AuthToken), nil
	}
	dir, err := internal.DefaultConfigDir()
	if err != nil {
		return nil, err
	}
	outboxPath := filepath.Join(dir, "outbox.jsonl")
	internal.LogDebug("No backend URL configured, replaying into %s", outboxPath)
	return internal.NewOutboxBackend(outboxPath), nil
}
