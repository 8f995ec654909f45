package raffle

import "slices"

// Tab identifies a view. Renderers switch over it exhaustively.
type Tab int

const (
	TabHome Tab = iota
	TabRoster
	TabSpin
)

func (t Tab) String() string {
	switch t {
	case TabHome:
		return "Home"
	case TabRoster:
		return "Participants"
	case TabSpin:
		return "Raffle"
	default:
		return "Unknown"
	}
}

// DefaultTabs is the tab order shown at startup.
func DefaultTabs() []Tab {
	return []Tab{TabHome, TabRoster, TabSpin}
}

// TabSet is a fixed, non-empty set of tabs with one active.
type TabSet struct {
	tabs   []Tab
	active int
}

// NewTabSet panics when no tabs are given.
func NewTabSet(tabs ...Tab) *TabSet {
	if len(tabs) == 0 {
		panic("raffle: tab set requires at least one tab")
	}
	return &TabSet{tabs: slices.Clone(tabs)}
}

func (s *TabSet) Active() Tab { return s.tabs[s.active] }

func (s *TabSet) Index() int { return s.active }

func (s *TabSet) Tabs() []Tab { return slices.Clone(s.tabs) }

func (s *TabSet) Titles() []string {
	out := make([]string, len(s.tabs))
	for i, t := range s.tabs {
		out[i] = t.String()
	}
	return out
}

func (s *TabSet) Next() {
	s.active = (s.active + 1) % len(s.tabs)
}

func (s *TabSet) Previous() {
	if s.active > 0 {
		s.active--
		return
	}
	s.active = len(s.tabs) - 1
}
