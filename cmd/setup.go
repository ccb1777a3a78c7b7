package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/sbudget/internal/config"
	"github.com/theirongolddev/sbudget/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()
	vals := tui.SetupValuesFrom(cfg)

	fmt.Println()
	fmt.Println("  Welcome to sbudget!")
	fmt.Println()

	if err := tui.NewSetupForm(&vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	if err := vals.Apply(&cfg); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if vals.Income != "" {
		env, err := openSession(sessionOpts{})
		if err != nil {
			return err
		}
		defer env.Close()
		if err := env.session.Budget().SetIncome(vals.Income); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `sbudget setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
