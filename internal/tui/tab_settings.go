package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/sbudget/internal/config"
	"github.com/theirongolddev/sbudget/internal/tui/components"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldLogLevel
	settingsFieldPresets
	settingsFieldDataDir
	settingsFieldCount // sentinel
)

type settingsField struct {
	label       string
	placeholder string
}

var settingsFields = [settingsFieldCount]settingsField{
	settingsFieldTheme:    {"Theme", strings.Join(theme.Names(), ", ")},
	settingsFieldLogLevel: {"Log level", "debug, info, warn, error"},
	settingsFieldPresets:  {"Preset amounts", "100, 500, 1000"},
	settingsFieldDataDir:  {"Data directory", config.DefaultDataDir()},
}

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	saved   bool  // show "Saved!" under the form
	saveErr error // non-nil if the last save failed
}

func (a App) updateSettingsKey(key string) (App, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		a.moveCursor(1)
	case "k", "up":
		a.moveCursor(-1)
	case "enter":
		a.settings.saved = false
		f := settingsFields[a.settings.cursor]
		m, cmd := a.beginInput(inputSetting, a.settingValue(a.settings.cursor), f.placeholder)
		return m.(App), cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) settingValue(field int) string {
	switch field {
	case settingsFieldTheme:
		return a.cfg.Appearance.Theme
	case settingsFieldLogLevel:
		return a.cfg.Logging.Level
	case settingsFieldPresets:
		return FormatPresets(a.cfg.Budget.Presets)
	case settingsFieldDataDir:
		return a.cfg.General.DataDir
	}
	return ""
}

// settingsCommit validates the edited value, applies it to the running
// dashboard where possible and writes the config file.
func (a *App) settingsCommit(raw string) {
	val := strings.TrimSpace(raw)
	a.settings.saved = false

	switch a.settings.cursor {
	case settingsFieldTheme:
		if !knownTheme(val) {
			a.setFlash(fmt.Sprintf("Unknown theme %q", val), true)
			return
		}
		a.cfg.Appearance.Theme = val
		theme.SetActive(val)
	case settingsFieldLogLevel:
		lvl, err := logrus.ParseLevel(val)
		if err != nil {
			a.setFlash(fmt.Sprintf("Unknown log level %q", val), true)
			return
		}
		a.cfg.Logging.Level = lvl.String()
		if l, ok := a.log.(*logrus.Logger); ok {
			l.SetLevel(lvl)
		}
	case settingsFieldPresets:
		presets, err := ParsePresets(val)
		if err != nil {
			a.setFlash(err.Error(), true)
			return
		}
		a.cfg.Budget.Presets = presets
	case settingsFieldDataDir:
		// Takes effect on the next start; the open database stays put.
		a.cfg.General.DataDir = val
	}

	a.settings.saveErr = config.Save(a.cfg)
	if a.settings.saveErr != nil {
		a.log.WithError(a.settings.saveErr).Warn("saving config")
		a.setFlash("Save failed", true)
		return
	}
	a.settings.saved = true
	a.setFlash("Settings saved", false)
}

func knownTheme(name string) bool {
	_, ok := theme.Lookup(name)
	return ok
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	innerW := components.CardInnerWidth(cw)

	var formBody strings.Builder
	for i, f := range settingsFields {
		value := a.settingValue(i)
		if value == "" {
			value = "(default)"
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			val := selectedStyle.Render(value)
			formBody.WriteString(marker + label + val)
			// Use lipgloss.Width() for correct visual width calculation
			padLen := innerW - lipgloss.Width(marker) - lipgloss.Width(label) - lipgloss.Width(val)
			if padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Database:    ") + valueStyle.Render(config.DBPath(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:    ") + valueStyle.Render(config.LogPath(a.cfg)) + "\n")
	infoBody.WriteString(labelStyle.Render("Config file: ") + valueStyle.Render(config.ConfigPath()))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Files", infoBody.String(), cw))
	return b.String()
}
