package cmd

import "testing"

func TestAddArgs(t *testing.T) {
	presets := []float64{100, 500, 1000}

	tests := []struct {
		name     string
		args     []string
		preset   int
		amount   string
		category string
		wantErr  bool
	}{
		{"amount only", []string{"450"}, 0, "450", "", false},
		{"multi-word category", []string{"450", "Food", "delivery"}, 0, "450", "Food delivery", false},
		{"preset with category", []string{"Groceries"}, 2, "500", "Groceries", false},
		{"preset without category", nil, 3, "1000", "", false},
		{"preset out of range", nil, 4, "", "", true},
		{"negative preset", nil, -1, "", "", true},
		{"missing amount", nil, 0, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, category, err := addArgs(tt.args, tt.preset, presets)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("addArgs(%v, %d) succeeded, want error", tt.args, tt.preset)
				}
				return
			}
			if err != nil {
				t.Fatalf("addArgs: %v", err)
			}
			if amount != tt.amount || category != tt.category {
				t.Fatalf("addArgs = (%q, %q), want (%q, %q)", amount, category, tt.amount, tt.category)
			}
		})
	}
}
