package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Income, expenses, savings, health score and recommendations",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{})
	if err != nil {
		return err
	}
	defer env.Close()

	printBudget(os.Stdout, env.session.View())
	return nil
}
