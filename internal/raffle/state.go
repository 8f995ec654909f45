package raffle

import "slices"

// Direction selects forward or backward movement for navigation and tabs.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Draw is one finalized spin. Round is its 1-based position in the
// winner log.
type Draw struct {
	Participant Participant
	Round       int
}

// Options configures a State.
type Options struct {
	Rounds int
	Source Source
	Tabs   []Tab
}

// State owns the roster, the winner log, the tabs and the spin engine. It
// is the only surface key dispatch and rendering use. It is not safe for
// concurrent use; the event loop is the single mutator.
type State struct {
	running bool
	roster  *List[Participant]
	winners []Participant
	tabs    *TabSet
	spin    *SpinEngine
}

// NewState builds the state for a roster of names, in order.
func NewState(names []string, opts Options) *State {
	tabs := opts.Tabs
	if len(tabs) == 0 {
		tabs = DefaultTabs()
	}
	return &State{
		running: true,
		roster:  NewList(Participants(names)),
		tabs:    NewTabSet(tabs...),
		spin:    NewSpinEngine(opts.Rounds, opts.Source),
	}
}

func (s *State) Quit() { s.running = false }

// Tick advances the spin engine by one tick. It returns the draw finalized
// on this tick, if any.
func (s *State) Tick() *Draw {
	winner, ok := s.spin.Tick(s.roster)
	if !ok {
		return nil
	}
	s.winners = append(s.winners, winner)
	return &Draw{Participant: winner, Round: len(s.winners)}
}

func (s *State) Navigate(dir Direction) {
	if dir == Previous {
		s.roster.Previous()
		return
	}
	s.roster.Next()
}

func (s *State) Remove() { s.roster.Remove() }

func (s *State) Unselect() { s.roster.Unselect() }

func (s *State) SwitchTab(dir Direction) {
	if dir == Previous {
		s.tabs.Previous()
		return
	}
	s.tabs.Next()
}

func (s *State) StartSpin() { s.spin.Start(s.roster) }

func (s *State) StopSpin() { s.spin.Stop() }

func (s *State) ResetSpin() { s.spin.Reset() }

func (s *State) Running() bool { return s.running }

func (s *State) ActiveTab() Tab { return s.tabs.Active() }

func (s *State) Tabs() *TabSet { return s.tabs }

// Roster returns a copy of the roster with winner flags.
func (s *State) Roster() []Participant { return s.roster.Items() }

func (s *State) RosterLen() int { return s.roster.Len() }

// Selected returns the operator's browse selection.
func (s *State) Selected() (Participant, int, bool) {
	idx, ok := s.roster.Selected()
	if !ok {
		return Participant{}, 0, false
	}
	p, _ := s.roster.Current()
	return p, idx, true
}

// Winners returns a copy of the winner log, oldest first.
func (s *State) Winners() []Participant { return slices.Clone(s.winners) }

func (s *State) Spinning() bool { return s.spin.Spinning() }

func (s *State) RoundsRemaining() int { return s.spin.RoundsRemaining() }

func (s *State) RoundBudget() int { return s.spin.Budget() }

func (s *State) Winner() (Participant, bool) { return s.spin.Winner() }

func (s *State) Phase() Phase { return s.spin.Phase() }

// Highlighted returns the participant under the spin highlight.
func (s *State) Highlighted() (Participant, int, bool) {
	return s.spin.Highlighted(s.roster)
}
