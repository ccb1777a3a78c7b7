// Package cmd implements the sbudget CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data directory: %s\n", config.DataDir(cfg))
	dbSource := "config"
	switch {
	case flagDB != "":
		dbSource = "--db flag"
	case os.Getenv(config.DBEnvVar) != "":
		dbSource = config.DBEnvVar
	}
	fmt.Printf("    Database:       %s (%s)\n", dbPath(cfg), dbSource)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Logging]")
	fmt.Printf("    Level:  %s\n", cfg.Logging.Level)
	fmt.Printf("    Format: %s\n", cfg.Logging.Format)
	fmt.Println()

	fmt.Println("  [Budget]")
	if len(cfg.Budget.Presets) == 0 {
		fmt.Println("    Presets: none")
	} else {
		presets := make([]string, 0, len(cfg.Budget.Presets))
		for i, p := range cfg.Budget.Presets {
			presets = append(presets, fmt.Sprintf("%d=%s", i+1, cli.FormatMoney(p)))
		}
		fmt.Printf("    Presets: %s\n", strings.Join(presets, "  "))
	}
	fmt.Println()

	fmt.Println("  Run `sbudget setup` to reconfigure.")
	return nil
}
