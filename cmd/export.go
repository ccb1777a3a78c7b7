package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/sbudget/internal/export"
)

var (
	flagFormat string
	flagOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export expenses as CSV or the full budget as JSON",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", export.FormatCSV, "Output format: csv or json")
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{})
	if err != nil {
		return err
	}
	defer env.Close()

	var w io.Writer = os.Stdout
	if flagOutput != "" {
		f, err := os.OpenFile(flagOutput, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600) //nolint:gosec // user-chosen output path
		if err != nil {
			return fmt.Errorf("creating %s: %w", flagOutput, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	v := env.session.View()
	return export.Write(w, flagFormat, v.Budget, v.FIRE)
}
