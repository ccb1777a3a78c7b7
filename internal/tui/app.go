// Package tui provides the interactive Bubble Tea dashboard for sbudget.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/sbudget/internal/config"
	"github.com/theirongolddev/sbudget/internal/controller"
	"github.com/theirongolddev/sbudget/internal/logging"
	"github.com/theirongolddev/sbudget/internal/tui/components"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

// Tab indexes, matching components.Tabs.
const (
	tabBudget = iota
	tabExpenses
	tabFIRE
	tabSettings
)

// inputMode says what the shared text input is collecting.
type inputMode int

const (
	inputNone inputMode = iota
	inputAmount
	inputCategory
	inputIncome
	inputParam
	inputSetting
)

// confirmKind names the destructive action behind the open confirm dialog.
type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmClear
	confirmResetFIRE
)

// App is the root Bubble Tea model.
type App struct {
	session *controller.Session
	prompt  *Prompter
	sink    *ViewSink
	cfg     config.Config
	log     logrus.FieldLogger

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Text entry
	mode          inputMode
	input         textinput.Model
	pendingAmount string

	// Per-tab cursors
	expCursor   int
	paramCursor int
	settings    settingsState

	// Confirm dialog (huh form)
	confirmForm   *huh.Form
	confirmAnswer *bool
	confirming    confirmKind

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	// Status bar flash
	flash    string
	flashErr bool
}

const (
	minTerminalWidth = 70
	compactWidth     = 100
	maxContentWidth  = 140

	minContentHeight = 5 // minimum content area height
)

// NewApp creates the dashboard model. prompt and sink must be the prompter
// and renderer registered with session.
func NewApp(session *controller.Session, prompt *Prompter, sink *ViewSink, cfg config.Config, log logrus.FieldLogger) App {
	if log == nil {
		log = logging.Discard()
	}
	// Prime the sink so the first frame has data.
	session.Render()

	return App{
		session:   session,
		prompt:    prompt,
		sink:      sink,
		cfg:       cfg,
		log:       log,
		input:     newTextInput(),
		needSetup: !config.Exists(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

func (a App) view() controller.View {
	return a.sink.view
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		// Start the first-run wizard once we know the screen size.
		if a.needSetup && a.setupForm == nil {
			return a.startSetup()
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.setupForm != nil || a.confirmForm != nil || a.mode != inputNone {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.confirmForm != nil {
			return a.updateConfirm(msg)
		}
		if a.mode != inputNone {
			return a.updateInput(msg)
		}
		return a.updateKey(msg)
	}

	// Forward unhandled messages to an open form (cursor blinks, etc.)
	if a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.confirmForm != nil {
		return a.updateConfirm(msg)
	}
	if a.mode != inputNone {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

// updateKey handles keys when no dialog or input is open.
func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	a.flash = ""

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	// Per-tab bindings win over globals.
	var handled bool
	var cmd tea.Cmd
	switch a.activeTab {
	case tabExpenses:
		a, cmd, handled = a.updateExpensesKey(key)
	case tabFIRE:
		a, cmd, handled = a.updateFIREKey(key)
	case tabSettings:
		a, cmd, handled = a.updateSettingsKey(key)
	}
	if handled {
		return a, cmd
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "a":
		return a.beginInput(inputAmount, "", "amount")
	case "i":
		return a.beginInput(inputIncome, "", "monthly income")
	case "u":
		a.runBudgetOp("Removed last expense", a.session.Budget().Undo)
		return a, nil
	case "C":
		return a.openConfirm(confirmClear, controller.ConfirmClearAll)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return a.beginPreset(int(key[0] - '1'))
	case "tab", "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "shift+tab", "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

// runBudgetOp runs a controller operation and turns its outcome into a
// status-bar flash. The state may have changed even when op fails, so the
// cursors are re-clamped on every path.
func (a *App) runBudgetOp(success string, op func() error) {
	defer a.clampCursors()

	err := op()
	if alert := a.prompt.takeAlert(); alert != "" {
		a.setFlash(alert, true)
		return
	}
	if err != nil {
		a.log.WithError(err).Error("operation failed")
		a.setFlash(fmt.Sprintf("Save failed: %s", err), true)
		return
	}
	a.setFlash(success, false)
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

func (a *App) clampCursors() {
	n := len(a.view().Entries)
	if a.expCursor >= n {
		a.expCursor = n - 1
	}
	if a.expCursor < 0 {
		a.expCursor = 0
	}
}

// ─── Confirm dialog ─────────────────────────────────────────────

func (a App) openConfirm(kind confirmKind, message string) (tea.Model, tea.Cmd) {
	answer := false
	a.confirmAnswer = &answer
	a.confirming = kind
	a.confirmForm = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(a.confirmAnswer),
		),
	).WithShowHelp(false).WithWidth(44)
	return a, a.confirmForm.Init()
}

func (a App) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		return a.finishConfirm(false), nil
	}

	form, cmd := a.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.confirmForm = f
	}

	switch a.confirmForm.State {
	case huh.StateCompleted:
		return a.finishConfirm(*a.confirmAnswer), nil
	case huh.StateAborted:
		return a.finishConfirm(false), nil
	}
	return a, cmd
}

// finishConfirm closes the dialog and runs the pending action with the
// user's answer. A declined action still goes through the controller,
// which treats it as a no-op.
func (a App) finishConfirm(ok bool) App {
	kind := a.confirming
	a.confirmForm = nil
	a.confirmAnswer = nil
	a.confirming = confirmNone

	a.prompt.answerNext(ok)
	var done bool
	var err error
	switch kind {
	case confirmClear:
		done, err = a.session.Budget().ClearAll()
	case confirmResetFIRE:
		done, err = a.session.FIRE().ResetToDefaults()
	}

	switch {
	case err != nil:
		a.setFlash(fmt.Sprintf("Save failed: %s", err), true)
	case !done:
		a.setFlash("Cancelled", false)
	case kind == confirmClear:
		a.setFlash("Cleared everything", false)
	default:
		a.setFlash("FIRE inputs reset", false)
	}
	a.clampCursors()
	return a
}

// ─── First-run setup ────────────────────────────────────────────

func (a App) startSetup() (tea.Model, tea.Cmd) {
	vals := SetupValuesFrom(a.cfg)
	a.setupVals = &vals
	a.setupForm = NewSetupForm(a.setupVals).WithWidth(a.width).WithHeight(a.height)
	return a, a.setupForm.Init()
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		a.saveSetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

func (a *App) saveSetup() {
	if err := a.setupVals.Apply(&a.cfg); err != nil {
		a.setFlash(err.Error(), true)
		return
	}
	if err := config.Save(a.cfg); err != nil {
		a.log.WithError(err).Warn("saving config")
		a.setFlash("Could not save config; settings apply to this session only", true)
	}
	if a.setupVals.Income != "" {
		a.runBudgetOp("Welcome!", func() error { return a.session.Budget().SetIncome(a.setupVals.Income) })
	}
}

// ─── Mouse ──────────────────────────────────────────────────────

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		a.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		a.moveCursor(1)
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	switch a.activeTab {
	case tabExpenses:
		a.expCursor += delta
		a.clampCursors()
	case tabFIRE:
		a.paramCursor = clampInt(a.paramCursor+delta, 0, paramCount()-1)
	case tabSettings:
		a.settings.cursor = clampInt(a.settings.cursor+delta, 0, settingsFieldCount-1)
	}
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

// ─── View ───────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.setupForm != nil {
		return a.setupForm.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  sbudget needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	footer := a.renderFooter(w)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabFIRE:
		content = a.renderFIRETab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	if a.confirmForm != nil {
		content = a.overlayConfirm(cw, contentH)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderFooter shows the active text input when editing, otherwise the
// status bar.
func (a App) renderFooter(w int) string {
	if a.mode == inputNone {
		return components.RenderStatusBar(w, a.hints(), a.flash, a.flashErr)
	}

	t := theme.Active
	rowStyle := lipgloss.NewStyle().Background(t.Surface).Width(w)
	labelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	previewStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	line := " " + labelStyle.Render(a.inputLabel()) + " " + a.input.View()
	if p := a.inputPreview(); p != "" {
		line += previewStyle.Render("  " + p)
	}
	return rowStyle.Render(line)
}

func (a App) hints() string {
	switch a.activeTab {
	case tabExpenses:
		return "[a]dd  [d]elete  [u]ndo  [j/k] move  [?]help  [q]uit"
	case tabFIRE:
		return "[j/k] select  [←/→] adjust  [enter] edit  [R]eset  [?]help  [q]uit"
	case tabSettings:
		return "[j/k] navigate  [enter] edit  [?]help  [q]uit"
	}
	return "[a]dd  [i]ncome  [1-9] presets  [u]ndo  [C]lear  [?]help  [q]uit"
}

func (a App) overlayConfirm(cw, h int) string {
	t := theme.Active
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2).
		Render(a.confirmForm.View())
	return lipgloss.Place(cw, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"b e f x", "Jump to tab"},
			{"tab", "Next tab"},
			{"j k", "Move selection"},
		}},
		{"Budget", []struct{ key, desc string }{
			{"a", "Add expense"},
			{"1-9", "Add expense with preset amount"},
			{"i", "Set income"},
			{"d", "Delete selected expense"},
			{"u", "Undo last expense"},
			{"C", "Clear everything"},
		}},
		{"FIRE", []struct{ key, desc string }{
			{"← →", "Adjust selected input"},
			{"Enter", "Type a value"},
			{"R", "Reset inputs"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, bind := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}
