package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/sbudget/internal/cli"
	"github.com/theirongolddev/sbudget/internal/model"
)

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	ti.Prompt = "› "
	return ti
}

// beginInput opens the footer input for mode, prefilled with value.
func (a App) beginInput(mode inputMode, value, placeholder string) (tea.Model, tea.Cmd) {
	a.mode = mode
	a.flash = ""
	ti := newTextInput()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()
	a.input = ti
	return a, textinput.Blink
}

// beginPreset starts an expense with the n-th configured preset amount and
// goes straight to the category prompt.
func (a App) beginPreset(n int) (tea.Model, tea.Cmd) {
	presets := a.cfg.Budget.Presets
	if n < 0 || n >= len(presets) {
		return a, nil
	}
	a.pendingAmount = strconv.FormatFloat(presets[n], 'f', -1, 64)
	return a.beginInput(inputCategory, "", model.DefaultCategory)
}

func (a App) inputLabel() string {
	switch a.mode {
	case inputAmount:
		return "Amount"
	case inputCategory:
		return "Category for " + a.pendingAmountLabel()
	case inputIncome:
		return "Income"
	case inputParam:
		return model.ParamSpecs[a.paramCursor].Label
	case inputSetting:
		return settingsFields[a.settings.cursor].label
	}
	return ""
}

func (a App) pendingAmountLabel() string {
	v, err := strconv.ParseFloat(a.pendingAmount, 64)
	if err != nil {
		return a.pendingAmount
	}
	return cli.FormatMoney(v)
}

// inputPreview shows typed money values formatted as they will be stored.
func (a App) inputPreview() string {
	if a.mode != inputIncome && a.mode != inputAmount {
		return ""
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(a.input.Value()), 64)
	if err != nil || v < 0 {
		return ""
	}
	return cli.FormatMoney(v)
}

// updateInput handles keys while the footer input is open.
func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = inputNone
		a.pendingAmount = ""
		a.input.Blur()
		return a, nil
	case "enter":
		return a.submitInput()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) submitInput() (tea.Model, tea.Cmd) {
	value := a.input.Value()
	mode := a.mode
	a.mode = inputNone
	a.input.Blur()

	switch mode {
	case inputAmount:
		// Ask for the category next; the amount is validated on add.
		a.pendingAmount = value
		return a.beginInput(inputCategory, "", model.DefaultCategory)

	case inputCategory:
		amount := a.pendingAmount
		a.pendingAmount = ""
		a.runBudgetOp("Expense added", func() error {
			return a.session.Budget().AddExpense(amount, value)
		})

	case inputIncome:
		a.runBudgetOp("Income updated", func() error {
			return a.session.Budget().SetIncome(value)
		})

	case inputParam:
		spec := model.ParamSpecs[a.paramCursor]
		a.runBudgetOp(spec.Label+" updated", func() error {
			_, err := a.session.FIRE().SetParameterInput(spec.Key, value)
			return err
		})

	case inputSetting:
		a.settingsCommit(value)
	}
	return a, nil
}
