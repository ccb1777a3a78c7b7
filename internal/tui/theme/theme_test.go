package theme

import "testing"

func TestScoreColorTiers(t *testing.T) {
	th := FlexokiDark
	tests := []struct {
		score int
		want  string
	}{
		{100, string(th.ScoreGreat)},
		{75, string(th.ScoreGreat)},
		{74, string(th.ScoreOkay)},
		{50, string(th.ScoreOkay)},
		{49, string(th.ScorePoor)},
		{0, string(th.ScorePoor)},
	}
	for _, tt := range tests {
		if got := string(th.ScoreColor(tt.score)); got != tt.want {
			t.Errorf("ScoreColor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestEveryThemeSetsBudgetRoles(t *testing.T) {
	for _, th := range All {
		roles := map[string]string{
			"ScoreGreat": string(th.ScoreGreat),
			"ScoreOkay":  string(th.ScoreOkay),
			"ScorePoor":  string(th.ScorePoor),
			"Savings":    string(th.Savings),
			"Overspent":  string(th.Overspent),
			"FIRE":       string(th.FIRE),
		}
		for role, c := range roles {
			if c == "" {
				t.Errorf("theme %s: %s not set", th.Name, role)
			}
		}
	}
}

func TestLookupAndByName(t *testing.T) {
	if _, ok := Lookup("tokyo-night"); !ok {
		t.Fatal("tokyo-night not found")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("unknown theme reported as found")
	}
	if got := ByName("nope").Name; got != FlexokiDark.Name {
		t.Errorf("ByName fallback = %q, want %q", got, FlexokiDark.Name)
	}
	if names := Names(); len(names) != len(All) || names[0] != "flexoki-dark" {
		t.Errorf("Names() = %v", names)
	}
}
