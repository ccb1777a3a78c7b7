package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/sbudget/internal/model"
)

var flagFireYes bool

var fireCmd = &cobra.Command{
	Use:   "fire",
	Short: "Show the FIRE (financial independence) projection",
	Args:  cobra.NoArgs,
	RunE:  runFire,
}

var fireSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a FIRE input; values are clamped to the input's range",
	Long:  "Set a FIRE input. Keys: " + paramKeyList() + ".",
	Args:  cobra.ExactArgs(2),
	RunE:  runFireSet,
}

var fireResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset FIRE inputs to defaults",
	Args:  cobra.NoArgs,
	RunE:  runFireReset,
}

func init() {
	fireResetCmd.Flags().BoolVarP(&flagFireYes, "yes", "y", false, "Skip the confirmation prompt")
	fireCmd.AddCommand(fireSetCmd, fireResetCmd)
	rootCmd.AddCommand(fireCmd)
}

func paramKeyList() string {
	keys := make([]string, 0, len(model.ParamSpecs))
	for _, s := range model.ParamSpecs {
		keys = append(keys, string(s.Key))
	}
	return strings.Join(keys, ", ")
}

func runFire(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{})
	if err != nil {
		return err
	}
	defer env.Close()

	printFIRE(os.Stdout, env.session.View())
	return nil
}

func runFireSet(_ *cobra.Command, args []string) error {
	key := model.ParamKey(args[0])
	if _, ok := model.SpecFor(key); !ok {
		return fmt.Errorf("unknown FIRE parameter %q (want one of %s)", args[0], paramKeyList())
	}

	env, err := openSession(sessionOpts{renderers: withFIRE()})
	if err != nil {
		return err
	}
	defer env.Close()

	_, err = env.session.FIRE().SetParameterInput(key, args[1])
	return err
}

func runFireReset(_ *cobra.Command, _ []string) error {
	env, err := openSession(sessionOpts{assumeYes: flagFireYes, renderers: withFIRE()})
	if err != nil {
		return err
	}
	defer env.Close()

	reset, err := env.session.FIRE().ResetToDefaults()
	if err != nil {
		return err
	}
	if !reset {
		fmt.Println("  FIRE inputs unchanged.")
	}
	return nil
}
