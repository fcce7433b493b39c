package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"guestjot/internal"
	"guestjot/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export pending captures",
	Long: `Export every pending capture in the chosen format. Exporting is a pure
read: the store is untouched and the captures still replay after
sign-in.

Formats: json, jsonl, yaml, md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		actions, err := store.LoadAll()
		if err != nil {
			return err
		}
		if len(actions) == 0 {
			fmt.Println("No pending captures to export.")
			return nil
		}

		exporter, err := export.NewExporter(exportFormat)
		if err != nil {
			return err
		}

		if exportOutput == "" || exportOutput == "-" {
			return exporter.Export(actions, os.Stdout)
		}

		path := exportOutput
		if filepath.Ext(path) == "" {
			path = path + "." + exporter.Extension()
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		if err := exporter.Export(actions, f); err != nil {
			return err
		}

		internal.PrintSuccess(fmt.Sprintf("Exported %d capture(s) to %s", len(actions), path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Export format (json, jsonl, yaml, md)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (stdout when omitted)")
	rootCmd.AddCommand(exportCmd)
}
