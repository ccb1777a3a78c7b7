// Package theme defines the colour palettes shared by the sbudget dashboard
// and the CLI renderers.
package theme

import "github.com/charmbracelet/lipgloss"

// Score tier thresholds, matching the health score messages.
const (
	GreatScore = 75
	OkayScore  = 50
)

// Theme maps colour roles to concrete colours.
type Theme struct {
	Name string

	// Chrome
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Active tab, table borders
	SurfaceBright lipgloss.Color // Selected row
	Border        lipgloss.Color // Card borders
	BorderAccent  lipgloss.Color // Dialog borders

	// Text
	TextDim      lipgloss.Color // Hints, empty states
	TextMuted    lipgloss.Color // Labels
	TextPrimary  lipgloss.Color
	Accent       lipgloss.Color // Focused controls, bars
	AccentBright lipgloss.Color

	// Status
	Green       lipgloss.Color // Success flashes
	GreenBright lipgloss.Color
	Orange      lipgloss.Color // Warnings
	Red         lipgloss.Color // Errors
	Blue        lipgloss.Color // CLI bars
	Cyan        lipgloss.Color // Key hints

	// Budget roles
	ScoreGreat lipgloss.Color // score >= GreatScore
	ScoreOkay  lipgloss.Color // score >= OkayScore
	ScorePoor  lipgloss.Color
	Savings    lipgloss.Color // positive savings
	Overspent  lipgloss.Color // expenses at or above income
	FIRE       lipgloss.Color // FIRE number and chart
}

// ScoreColor returns the colour for a 0-100 health score.
func (t Theme) ScoreColor(score int) lipgloss.Color {
	switch {
	case score >= GreatScore:
		return t.ScoreGreat
	case score >= OkayScore:
		return t.ScoreOkay
	default:
		return t.ScorePoor
	}
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default: warm, paper-inspired and dark.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    "#100F0F",
	Surface:       "#1C1B1A",
	SurfaceHover:  "#282726",
	SurfaceBright: "#343331",
	Border:        "#403E3C",
	BorderAccent:  "#3AA99F",
	TextDim:       "#575653",
	TextMuted:     "#878580",
	TextPrimary:   "#FFFCF0",
	Accent:        "#3AA99F",
	AccentBright:  "#5BC8BE",
	Green:         "#879A39",
	GreenBright:   "#A3B859",
	Orange:        "#DA702C",
	Red:           "#D14D41",
	Blue:          "#4385BE",
	Cyan:          "#24837B",
	ScoreGreat:    "#A3B859",
	ScoreOkay:     "#D0A215",
	ScorePoor:     "#D14D41",
	Savings:       "#879A39",
	Overspent:     "#D14D41",
	FIRE:          "#CE5D97",
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    "#1E1E2E",
	Surface:       "#313244",
	SurfaceHover:  "#45475A",
	SurfaceBright: "#585B70",
	Border:        "#585B70",
	BorderAccent:  "#89B4FA",
	TextDim:       "#6C7086",
	TextMuted:     "#A6ADC8",
	TextPrimary:   "#CDD6F4",
	Accent:        "#89B4FA",
	AccentBright:  "#B4D0FB",
	Green:         "#A6E3A1",
	GreenBright:   "#C6F6C1",
	Orange:        "#FAB387",
	Red:           "#F38BA8",
	Blue:          "#89B4FA",
	Cyan:          "#94E2D5",
	ScoreGreat:    "#A6E3A1",
	ScoreOkay:     "#F9E2AF",
	ScorePoor:     "#F38BA8",
	Savings:       "#A6E3A1",
	Overspent:     "#EBA0AC",
	FIRE:          "#F5C2E7",
}

// TokyoNight is a cool blue and purple theme.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    "#1A1B26",
	Surface:       "#24283B",
	SurfaceHover:  "#343A52",
	SurfaceBright: "#414868",
	Border:        "#565F89",
	BorderAccent:  "#7AA2F7",
	TextDim:       "#565F89",
	TextMuted:     "#A9B1D6",
	TextPrimary:   "#C0CAF5",
	Accent:        "#7AA2F7",
	AccentBright:  "#A9C1FF",
	Green:         "#9ECE6A",
	GreenBright:   "#B9E87A",
	Orange:        "#FF9E64",
	Red:           "#F7768E",
	Blue:          "#7AA2F7",
	Cyan:          "#7DCFFF",
	ScoreGreat:    "#9ECE6A",
	ScoreOkay:     "#E0AF68",
	ScorePoor:     "#F7768E",
	Savings:       "#73DACA",
	Overspent:     "#F7768E",
	FIRE:          "#BB9AF7",
}

// Terminal sticks to the 16 ANSI colours so it follows the terminal's own
// palette.
var Terminal = Theme{
	Name:          "terminal",
	Background:    "0",
	Surface:       "0",
	SurfaceHover:  "8",
	SurfaceBright: "8",
	Border:        "8",
	BorderAccent:  "6",
	TextDim:       "8",
	TextMuted:     "7",
	TextPrimary:   "15",
	Accent:        "6",
	AccentBright:  "14",
	Green:         "2",
	GreenBright:   "10",
	Orange:        "3",
	Red:           "1",
	Blue:          "4",
	Cyan:          "6",
	ScoreGreat:    "10",
	ScoreOkay:     "3",
	ScorePoor:     "9",
	Savings:       "2",
	Overspent:     "1",
	FIRE:          "5",
}

// All lists the selectable themes in menu order.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Lookup finds a theme by name.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns the named theme, or FlexokiDark for an unknown name.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// Names returns the theme names in menu order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
