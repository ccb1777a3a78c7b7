package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/sbudget/internal/config"
	"github.com/theirongolddev/sbudget/internal/tui/theme"
)

// SetupValues holds the answers from the first-run form.
type SetupValues struct {
	Income  string
	Theme   string
	Presets string
}

// SetupValuesFrom pre-fills the form from cfg.
func SetupValuesFrom(cfg config.Config) SetupValues {
	return SetupValues{
		Theme:   cfg.Appearance.Theme,
		Presets: FormatPresets(cfg.Budget.Presets),
	}
}

// NewSetupForm builds the first-run wizard. It is shared by `sbudget setup`
// and the dashboard's first launch.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := huh.NewOptions(theme.Names()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to sbudget").
				Description("Track income and expenses, watch your health score,\nand see how far you are from financial independence."),
			huh.NewInput().
				Title("Monthly income").
				Description("Leave blank to set it later.").
				Placeholder("50000").
				Value(&vals.Income).
				Validate(validateOptionalIncome),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Quick-fill amounts").
				Description("Comma separated, bound to keys 1-9.").
				Value(&vals.Presets).
				Validate(func(s string) error {
					_, err := ParsePresets(s)
					return err
				}),
		),
	).WithShowHelp(false)
}

func validateOptionalIncome(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

// Apply copies theme and presets into cfg. Income is stored as budget
// state, not config, so the caller saves it through the session.
func (v *SetupValues) Apply(cfg *config.Config) error {
	presets, err := ParsePresets(v.Presets)
	if err != nil {
		return err
	}
	v.Income = strings.TrimSpace(v.Income)
	cfg.Appearance.Theme = theme.ByName(v.Theme).Name
	cfg.Budget.Presets = presets
	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

// ParsePresets reads "100, 500, 1000" into amounts. At most nine are kept
// since only keys 1-9 are bound.
func ParsePresets(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("invalid preset %q", field)
		}
		out = append(out, v)
	}
	if len(out) > 9 {
		out = out[:9]
	}
	return out, nil
}

// FormatPresets is the inverse of ParsePresets.
func FormatPresets(presets []float64) string {
	parts := make([]string, 0, len(presets))
	for _, p := range presets {
		parts = append(parts, strconv.FormatFloat(p, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
