package tui

import "testing"

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := 0; active < 4; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < 4; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < 3 {
				pos++ // separator
			}
		}
	}
}

func TestTabAtXPastLastTab(t *testing.T) {
	a := App{activeTab: 0}
	if got := a.tabAtX(200); got != -1 {
		t.Fatalf("tabAtX(200) = %d, want -1", got)
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Budget"),
		len("Expenses"),
		len("FIRE"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx {
		w += 2 // brackets around the shortcut letter
		if tabIdx == 3 {
			w++ // inactive Settings appends "x"
		}
	}
	return w
}
