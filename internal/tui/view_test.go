package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestHomeView(t *testing.T) {
	a := newTestApp(t, []string{"Alice", "Bob"}, 3, nil)
	a.warnings = []string{`"Bob" and "Bobb" look alike`}
	out := a.View()
	require.Contains(t, out, "R.A.F.F.L.E.")
	require.Contains(t, out, "Rapidly Assembled Faulty Fortune Locator Engine")
	require.Contains(t, out, "participants.txt")
	require.Contains(t, out, "2 participants")
	require.Contains(t, out, "look alike")
	require.Contains(t, out, "Home")
	require.Contains(t, out, "Participants")
	require.Contains(t, out, "Raffle")
}

func TestRosterView(t *testing.T) {
	a := newTestApp(t, []string{"Alice", "Bob", "Carol"}, 0, nil)
	apply(t, a, tea.KeyMsg{Type: tea.KeyTab})
	apply(t, a, tea.KeyMsg{Type: tea.KeyDown})

	out := a.View()
	require.Contains(t, out, "All participants")
	require.Contains(t, out, "▶ Alice")
	require.Contains(t, out, "Carol")
	require.Contains(t, out, "3 participants")
	require.Contains(t, out, "Selected participant: Alice")

	// Bob wins with fixedSource(1); his row carries the gift marker.
	apply(t, a, keyMsg("s"))
	apply(t, a, tickMsg{})
	require.Contains(t, a.View(), "🎁 Bob")
}

func TestSpinViewPhases(t *testing.T) {
	a := newTestApp(t, []string{"Alice", "Bob", "Carol"}, 5, nil)
	apply(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})

	out := a.View()
	require.Contains(t, out, "Ready to roll.")
	require.Contains(t, out, "(none yet)")

	apply(t, a, keyMsg("s"))
	apply(t, a, tickMsg{})
	out = a.View()
	require.Contains(t, out, "*spinning wheel noises*")
	require.Contains(t, out, "Will it be")
	require.Contains(t, out, "Bob")
	require.Contains(t, out, "4")

	for a.State().Spinning() {
		apply(t, a, tickMsg{})
	}
	out = a.View()
	require.Contains(t, out, "The winner is")
	require.Contains(t, out, "🎁 Bob")
	require.Contains(t, out, "🎉🎉🎉")
	require.Contains(t, out, "1. Bob")
	require.NotContains(t, out, "Will it be")
}

func TestSpinViewEmptyRoster(t *testing.T) {
	a := newTestApp(t, nil, 5, nil)
	apply(t, a, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Contains(t, a.View(), "Nobody left to draw.")
}

func TestLongNamesAreTruncated(t *testing.T) {
	long := strings.Repeat("x", 200)
	a := newTestApp(t, []string{long}, 0, nil)
	apply(t, a, tea.KeyMsg{Type: tea.KeyTab})
	out := a.View()
	require.NotContains(t, out, long)
	require.Contains(t, out, "…")
}

func TestVisibleWindow(t *testing.T) {
	tests := []struct {
		name       string
		n, sel     int
		hasSel     bool
		rows       int
		start, end int
	}{
		{name: "unbounded", n: 10, rows: 0, start: 0, end: 10},
		{name: "fits", n: 3, rows: 5, start: 0, end: 3},
		{name: "no selection", n: 10, rows: 4, start: 0, end: 4},
		{name: "selection in first page", n: 10, sel: 2, hasSel: true, rows: 4, start: 0, end: 4},
		{name: "selection past page", n: 10, sel: 7, hasSel: true, rows: 4, start: 4, end: 8},
		{name: "last row", n: 10, sel: 9, hasSel: true, rows: 4, start: 6, end: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleWindow(tt.n, tt.sel, tt.hasSel, tt.rows)
			require.Equal(t, tt.start, start)
			require.Equal(t, tt.end, end)
		})
	}
}
