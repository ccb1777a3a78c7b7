package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/sbudget/internal/config"
	"github.com/theirongolddev/sbudget/internal/controller"
	"github.com/theirongolddev/sbudget/internal/model"
	"github.com/theirongolddev/sbudget/internal/tui/components"
)

type memStore struct {
	budget  model.BudgetState
	fire    model.FIREParameters
	saveErr error // returned by Save once set; nothing is written
}

func (m *memStore) Load() model.BudgetState        { return m.budget.Clone() }
func (m *memStore) LoadFIRE() model.FIREParameters { return m.fire }

func (m *memStore) Save(b model.BudgetState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.budget = b.Clone()
	return nil
}

func (m *memStore) SaveFIRE(p model.FIREParameters) error {
	m.fire = p
	return nil
}

func newTestApp(t *testing.T) (App, *memStore) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	st := &memStore{fire: model.DefaultFIREParameters()}
	prompt := NewPrompter()
	sink := NewViewSink()
	session := controller.Open(st, prompt, controller.WithRenderer(sink))

	cfg := config.DefaultConfig()
	a := NewApp(session, prompt, sink, cfg, nil)
	a.needSetup = false
	a.width, a.height = 120, 40
	return a, st
}

func press(t *testing.T, a App, msgs ...tea.KeyMsg) App {
	t.Helper()
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		var ok bool
		a, ok = m.(App)
		require.True(t, ok)
	}
	return a
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a = press(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func addExpense(t *testing.T, a App, amount, category string) App {
	t.Helper()
	a = typeText(t, a, "a")
	a = typeText(t, a, amount)
	a = press(t, a, enter)
	a = typeText(t, a, category)
	return press(t, a, enter)
}

func TestNewAppPrimesView(t *testing.T) {
	a, _ := newTestApp(t)
	assert.Equal(t, 1, a.sink.renders)
	assert.Equal(t, model.DefaultFIREParameters(), a.view().FIRE)
}

func TestAddExpenseFlow(t *testing.T) {
	a, st := newTestApp(t)

	a = typeText(t, a, "a")
	assert.Equal(t, inputAmount, a.mode)
	a = typeText(t, a, "250")
	assert.Equal(t, "₹250", a.inputPreview())
	a = press(t, a, enter)
	assert.Equal(t, inputCategory, a.mode)
	a = typeText(t, a, "Food")
	a = press(t, a, enter)

	assert.Equal(t, inputNone, a.mode)
	require.Len(t, st.budget.Expenses, 1)
	assert.Equal(t, 250.0, st.budget.Expenses[0].Amount)
	assert.Equal(t, "Food", st.budget.Expenses[0].Category)
	assert.Equal(t, 250.0, a.view().Summary.TotalExpenses)
	assert.Equal(t, "Expense added", a.flash)
	assert.False(t, a.flashErr)
}

func TestAddExpenseInvalidAmountAlerts(t *testing.T) {
	a, st := newTestApp(t)

	a = addExpense(t, a, "abc", "Food")

	assert.Empty(t, st.budget.Expenses)
	assert.Equal(t, controller.AlertInvalidAmount, a.flash)
	assert.True(t, a.flashErr)
}

func TestEscCancelsInput(t *testing.T) {
	a, st := newTestApp(t)

	a = typeText(t, a, "a")
	a = typeText(t, a, "100")
	a = press(t, a, esc)

	assert.Equal(t, inputNone, a.mode)
	assert.Empty(t, a.pendingAmount)
	assert.Empty(t, st.budget.Expenses)
}

func TestPresetKeyPrefillsAmount(t *testing.T) {
	a, st := newTestApp(t)

	a = typeText(t, a, "2")
	assert.Equal(t, inputCategory, a.mode)
	a = press(t, a, enter)

	require.Len(t, st.budget.Expenses, 1)
	assert.Equal(t, 500.0, st.budget.Expenses[0].Amount)
	assert.Equal(t, model.DefaultCategory, st.budget.Expenses[0].Category)
}

func TestPresetKeyOutOfRangeIgnored(t *testing.T) {
	a, _ := newTestApp(t)

	a = typeText(t, a, "9")
	assert.Equal(t, inputNone, a.mode)
}

func TestSetIncome(t *testing.T) {
	a, st := newTestApp(t)

	a = typeText(t, a, "i")
	a = typeText(t, a, "50000")
	assert.Equal(t, "₹50,000", a.inputPreview())
	a = press(t, a, enter)

	assert.Equal(t, 50000.0, st.budget.Income)
	assert.Equal(t, "Income updated", a.flash)
}

func TestUndoRemovesNewest(t *testing.T) {
	a, st := newTestApp(t)
	a = addExpense(t, a, "100", "Rent")
	a = addExpense(t, a, "50", "Food")

	a = typeText(t, a, "u")

	require.Len(t, st.budget.Expenses, 1)
	assert.Equal(t, "Rent", st.budget.Expenses[0].Category)
	assert.Equal(t, "Removed last expense", a.flash)
}

func TestClearAllConfirm(t *testing.T) {
	a, st := newTestApp(t)
	a = addExpense(t, a, "100", "Rent")

	a = typeText(t, a, "C")
	require.NotNil(t, a.confirmForm)
	assert.Equal(t, confirmClear, a.confirming)

	declined := a.finishConfirm(false)
	assert.Nil(t, declined.confirmForm)
	assert.Len(t, st.budget.Expenses, 1)
	assert.Equal(t, "Cancelled", declined.flash)

	a = typeText(t, declined, "C")
	accepted := a.finishConfirm(true)
	assert.Empty(t, st.budget.Expenses)
	assert.Equal(t, "Cleared everything", accepted.flash)
}

func TestConfirmEscDeclines(t *testing.T) {
	a, st := newTestApp(t)
	a = addExpense(t, a, "100", "Rent")

	a = typeText(t, a, "C")
	a = press(t, a, esc)

	assert.Nil(t, a.confirmForm)
	assert.Len(t, st.budget.Expenses, 1)
}

func TestTabKeys(t *testing.T) {
	a, _ := newTestApp(t)

	a = typeText(t, a, "e")
	assert.Equal(t, tabExpenses, a.activeTab)
	a = typeText(t, a, "f")
	assert.Equal(t, tabFIRE, a.activeTab)
	a = typeText(t, a, "x")
	assert.Equal(t, tabSettings, a.activeTab)
	a = typeText(t, a, "b")
	assert.Equal(t, tabBudget, a.activeTab)

	a = press(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, tabSettings, a.activeTab)
	a = press(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, tabBudget, a.activeTab)
}

func TestExpensesTabDeleteSelected(t *testing.T) {
	a, st := newTestApp(t)
	a = addExpense(t, a, "100", "Rent")
	a = addExpense(t, a, "50", "Food")
	a = addExpense(t, a, "20", "OTT")

	a = typeText(t, a, "e")
	a = typeText(t, a, "j")
	assert.Equal(t, 1, a.expCursor)

	// Entries are newest first, so the second row is Food.
	a = typeText(t, a, "d")
	require.Len(t, st.budget.Expenses, 2)
	assert.Equal(t, "Rent", st.budget.Expenses[0].Category)
	assert.Equal(t, "OTT", st.budget.Expenses[1].Category)

	a = typeText(t, a, "j")
	a = typeText(t, a, "d")
	a = typeText(t, a, "d")
	assert.Empty(t, st.budget.Expenses)
	assert.Equal(t, 0, a.expCursor)

	// Deleting from an empty list is a no-op.
	a = typeText(t, a, "d")
	assert.Empty(t, st.budget.Expenses)
}

func TestFIRETabStepAndEdit(t *testing.T) {
	a, st := newTestApp(t)
	a = typeText(t, a, "f")

	a = typeText(t, a, "l")
	assert.Equal(t, 16500.0, st.fire.MonthlyExpenses)

	a = typeText(t, a, "j")
	a = typeText(t, a, "h")
	assert.Equal(t, 27.0, st.fire.CurrentAge)

	a = press(t, a, enter)
	require.Equal(t, inputParam, a.mode)
	assert.Equal(t, "27", a.input.Value())
	a.input.SetValue("200")
	a = press(t, a, enter)
	assert.Equal(t, 80.0, st.fire.CurrentAge, "clamped to the upper bound")
	assert.Zero(t, a.view().Projection.YearsToRetire, "retirement age already passed")
}

func TestFIRETabReset(t *testing.T) {
	a, st := newTestApp(t)
	a = typeText(t, a, "f")
	a = typeText(t, a, "l")

	a = typeText(t, a, "R")
	require.NotNil(t, a.confirmForm)
	a = a.finishConfirm(true)

	assert.Equal(t, model.DefaultFIREParameters(), st.fire)
	assert.Equal(t, "FIRE inputs reset", a.flash)
}

func TestSettingsRejectsUnknownTheme(t *testing.T) {
	a, _ := newTestApp(t)
	a = typeText(t, a, "x")

	a = press(t, a, enter)
	require.Equal(t, inputSetting, a.mode)
	a.input.SetValue("no-such-theme")
	a = press(t, a, enter)

	assert.True(t, a.flashErr)
	assert.Equal(t, "flexoki-dark", a.cfg.Appearance.Theme)
	assert.False(t, config.Exists())
}

func TestSettingsSavesPresets(t *testing.T) {
	a, _ := newTestApp(t)
	a = typeText(t, a, "x")
	a = typeText(t, a, "j")
	a = typeText(t, a, "j")
	assert.Equal(t, settingsFieldPresets, a.settings.cursor)

	a = press(t, a, enter)
	a.input.SetValue("200, 700")
	a = press(t, a, enter)

	assert.Equal(t, []float64{200, 700}, a.cfg.Budget.Presets)
	assert.True(t, a.settings.saved)
	require.True(t, config.Exists())

	saved, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 700}, saved.Budget.Presets)
}

func TestSetupStartsOnFirstResize(t *testing.T) {
	a, _ := newTestApp(t)
	a.needSetup = true

	m, _ := a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	a = m.(App)
	assert.NotNil(t, a.setupForm)
	assert.NotEmpty(t, a.View())
}

func TestViewRendersEveryTab(t *testing.T) {
	a, _ := newTestApp(t)
	a = addExpense(t, a, "1200", "Food")
	a = typeText(t, a, "i")
	a = typeText(t, a, "30000")
	a = press(t, a, enter)

	for _, width := range []int{80, 120, 200} {
		a.width = width
		for tab := range components.Tabs {
			a.activeTab = tab
			out := a.View()
			assert.NotEmpty(t, out)
			assert.LessOrEqual(t, strings.Count(out, "\n")+1, a.height, "width=%d tab=%d", width, tab)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a, _ := newTestApp(t)
	a.width = 40
	assert.Contains(t, a.View(), "Terminal too narrow")
}

func TestHelpToggle(t *testing.T) {
	a, _ := newTestApp(t)
	a = typeText(t, a, "?")
	assert.True(t, a.showHelp)
	assert.Contains(t, a.View(), "Keyboard Shortcuts")
	a = typeText(t, a, "z")
	assert.False(t, a.showHelp)
}

func TestExpensesDeleteAfterFailedSavesKeepsCursorInRange(t *testing.T) {
	a, st := newTestApp(t)
	a = addExpense(t, a, "100", "Rent")
	a = addExpense(t, a, "50", "Food")
	st.saveErr = errors.New("disk full")

	a = typeText(t, a, "e")
	a = typeText(t, a, "j")
	require.Equal(t, 1, a.expCursor)

	// Each remove fails to save but still changes the session's state.
	a = typeText(t, a, "d")
	assert.True(t, a.flashErr)
	assert.Contains(t, a.flash, "disk full")
	require.Len(t, a.view().Entries, 1)
	assert.Equal(t, 0, a.expCursor)

	a = typeText(t, a, "d")
	assert.Empty(t, a.view().Entries)
	assert.Equal(t, 0, a.expCursor)

	a = typeText(t, a, "d")
	assert.Empty(t, a.view().Entries)
	assert.Len(t, st.budget.Expenses, 2, "nothing reached the store")
}

func TestUndoAfterFailedSaveKeepsCursorInRange(t *testing.T) {
	a, st := newTestApp(t)
	a = addExpense(t, a, "100", "Rent")
	a = addExpense(t, a, "50", "Food")

	a = typeText(t, a, "e")
	a = typeText(t, a, "G")
	require.Equal(t, 1, a.expCursor)

	st.saveErr = errors.New("disk full")
	a = typeText(t, a, "u")
	assert.True(t, a.flashErr)
	assert.Equal(t, 0, a.expCursor)

	a = typeText(t, a, "d")
	assert.Empty(t, a.view().Entries)
}
