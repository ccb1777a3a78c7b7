package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/sbudget/internal/cli"
)

// cliPrompter confirms through a huh dialog and prints alerts to out.
type cliPrompter struct {
	assumeYes bool
	out       io.Writer
}

func (p cliPrompter) Confirm(message string) bool {
	if p.assumeYes {
		return true
	}

	var ok bool
	err := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if err != nil {
		// Aborted or no terminal: treat as declined.
		return false
	}
	return ok
}

func (p cliPrompter) Alert(message string) {
	fmt.Fprintf(p.out, "  %s\n", cli.RenderWarning(message))
}
