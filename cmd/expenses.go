package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/sbudget/internal/cli"
)

var (
	flagPreset int
	flagLimit  int
	flagYes    bool
)

var incomeCmd = &cobra.Command{
	Use:   "income <amount>",
	Short: "Set your monthly income",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncome,
}

var addCmd = &cobra.Command{
	Use:   "add [amount] [category...]",
	Short: "Record an expense",
	Long: "Record an expense. The category is every word after the amount and defaults to Miscellaneous.\n" +
		"With --preset N the amount comes from the Nth configured preset and every argument is the category.",
	Example: "  sbudget add 450 Food delivery\n  sbudget add --preset 2 Groceries",
	RunE:    runAdd,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List expenses, newest first",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

var rmCmd = &cobra.Command{
	Use:   "rm <number>",
	Short: "Remove an expense by the number shown in `list`",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Remove the most recently added expense",
	Args:  cobra.NoArgs,
	RunE:  runUndo,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear income and all expenses",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	addCmd.Flags().IntVarP(&flagPreset, "preset", "p", 0, "Use the Nth preset amount from config (1-based)")
	listCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Show at most N entries")
	clearCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")

	rootCmd.AddCommand(incomeCmd, addCmd, listCmd, rmCmd, undoCmd, clearCmd)
}

func runIncome(_ *cobra.Command, args []string) error {
	env, err := openSession(sessionOpts{renderers: withBudget()})
	if err != nil {
		return err
	}
	defer env.Close()

	return env.session.Budget().SetIncome(args[0])
}

func runAdd(_ *cobra.Command, args []string) error {
	env, err := openSession(sessionOpts{renderers: withBudget()})
	if err != nil {
		return err
	}
	defer env.Close()

	amount, category, err := addArgs(args, flagPreset, env.cfg.Budget.Presets)
	if err != nil {
		return err
	}
	return env.session.Budget().AddExpense(amount, category)
}

// addArgs splits command arguments into amount text and category. With a
// preset the amount comes from config and all args form the category.
func addArgs(args []string, preset int, presets []float64) (amount, category string, err error) {
	if preset != 0 {
		if preset < 1 || preset > len(presets) {
			return "", "", fmt.Errorf("preset %d not configured (have %d)", preset, len(presets))
		}
		return strconv.FormatFloat(presets[preset-1], 'f', -1, 64), strings.Join(args, " "), nil
	}
	if len(args) == 0 {
		return "", "", fmt.Errorf("missing amount")
	}
	return args[0], strings.Join(args[1:], " "), nil
}

func runList(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{})
	if err != nil {
		return err
	}
	defer env.Close()

	v := env.session.View()
	printEntries(os.Stdout, v.Entries, flagLimit)
	if len(v.Entries) > 0 {
		fmt.Printf("  Total: %s\n\n", cli.FormatMoney(v.Summary.TotalExpenses))
	}
	return nil
}

func runRemove(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return fmt.Errorf("invalid expense number %q", args[0])
	}

	env, err := openSession(sessionOpts{renderers: withBudget()})
	if err != nil {
		return err
	}
	defer env.Close()

	if n < 1 || n > len(env.session.View().Budget.Expenses) {
		fmt.Fprintf(os.Stderr, "  %s\n", cli.RenderWarning(fmt.Sprintf("No expense #%d", n)))
		return nil
	}
	return env.session.Budget().RemoveExpense(n - 1)
}

func runUndo(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{renderers: withBudget()})
	if err != nil {
		return err
	}
	defer env.Close()

	if len(env.session.View().Budget.Expenses) == 0 {
		fmt.Println("  Nothing to undo.")
		return nil
	}
	return env.session.Budget().Undo()
}

func runClear(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{assumeYes: flagYes, renderers: withBudget()})
	if err != nil {
		return err
	}
	defer env.Close()

	cleared, err := env.session.Budget().ClearAll()
	if err != nil {
		return err
	}
	if !cleared {
		fmt.Println("  Nothing cleared.")
	}
	return nil
}
