package raffle

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqSource replays vals, reduced modulo n.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func roster(names ...string) *List[Participant] {
	return NewList(Participants(names))
}

func TestSpinStartOnEmptyRosterIsNoOp(t *testing.T) {
	e := NewSpinEngine(10, &seqSource{vals: []int{0}})
	e.Start(roster())
	require.False(t, e.Spinning())
	require.Equal(t, PhaseIdle, e.Phase())
}

func TestSpinFullSequence(t *testing.T) {
	const rounds = 50
	r := roster("Alice", "Bob", "Carol")
	e := NewSpinEngine(rounds, rand.New(rand.NewPCG(1, 2)))

	e.Start(r)
	require.True(t, e.Spinning())
	require.Equal(t, rounds, e.RoundsRemaining())

	for i := 1; i <= rounds; i++ {
		_, declared := e.Tick(r)
		require.False(t, declared, "tick %d", i)
		require.True(t, e.Spinning())
		require.Equal(t, rounds-i, e.RoundsRemaining())
		_, _, ok := e.Highlighted(r)
		require.True(t, ok)
	}

	winner, declared := e.Tick(r)
	require.True(t, declared)
	require.False(t, e.Spinning())
	require.Equal(t, PhaseWinnerDeclared, e.Phase())
	require.True(t, winner.IsWinner)
	require.Contains(t, []string{"Alice", "Bob", "Carol"}, winner.Name)
	require.Equal(t, rounds, e.RoundsRemaining())

	got, ok := e.Winner()
	require.True(t, ok)
	require.Equal(t, winner, got)

	highlighted, _, ok := e.Highlighted(r)
	require.True(t, ok)
	require.Equal(t, winner, highlighted)

	for i := 0; i < 5; i++ {
		_, declared := e.Tick(r)
		require.False(t, declared)
	}
	require.Equal(t, PhaseWinnerDeclared, e.Phase())
}

func TestSpinMarksRosterEntryAsWinner(t *testing.T) {
	r := roster("Alice", "Bob", "Carol")
	e := NewSpinEngine(2, &seqSource{vals: []int{0, 2, 1}})
	e.Start(r)
	e.Tick(r)
	e.Tick(r)
	winner, declared := e.Tick(r)
	require.True(t, declared)
	require.Equal(t, Participant{Name: "Bob", IsWinner: true}, winner)
	require.Equal(t, []Participant{{Name: "Alice"}, {Name: "Bob", IsWinner: true}, {Name: "Carol"}}, r.Items())
}

func TestSpinZeroBudgetDeclaresOnFirstTick(t *testing.T) {
	r := roster("Alice")
	e := NewSpinEngine(0, &seqSource{vals: []int{0}})
	e.Start(r)
	_, declared := e.Tick(r)
	require.True(t, declared)
}

func TestSpinNegativeBudgetIsZero(t *testing.T) {
	e := NewSpinEngine(-3, nil)
	require.Equal(t, 0, e.Budget())
}

func TestSpinResetClearsWinner(t *testing.T) {
	states := map[string]func(e *SpinEngine, r *List[Participant]){
		"idle": func(e *SpinEngine, r *List[Participant]) {},
		"spinning": func(e *SpinEngine, r *List[Participant]) {
			e.Start(r)
			e.Tick(r)
		},
		"winner": func(e *SpinEngine, r *List[Participant]) {
			e.Start(r)
			for e.Spinning() {
				e.Tick(r)
			}
		},
		"stopped": func(e *SpinEngine, r *List[Participant]) {
			e.Start(r)
			e.Tick(r)
			e.Stop()
		},
	}
	for name, setup := range states {
		t.Run(name, func(t *testing.T) {
			r := roster("Alice", "Bob")
			e := NewSpinEngine(3, &seqSource{vals: []int{1, 0}})
			setup(e, r)

			e.Reset()
			e.Reset()
			require.Equal(t, PhaseIdle, e.Phase())
			require.Equal(t, 3, e.RoundsRemaining())
			_, ok := e.Winner()
			require.False(t, ok)
			_, _, ok = e.Highlighted(r)
			require.False(t, ok)
		})
	}
}

func TestSpinStopKeepsCounters(t *testing.T) {
	r := roster("Alice", "Bob")
	e := NewSpinEngine(5, &seqSource{vals: []int{0}})
	e.Start(r)
	e.Tick(r)
	e.Tick(r)
	e.Stop()

	require.Equal(t, PhaseIdle, e.Phase())
	require.Equal(t, 3, e.RoundsRemaining())
	_, declared := e.Tick(r)
	require.False(t, declared, "ticks after stop are no-ops")
	require.Equal(t, 3, e.RoundsRemaining())
}

func TestSpinStopAfterWinnerKeepsWinner(t *testing.T) {
	r := roster("Alice")
	e := NewSpinEngine(0, nil)
	e.Start(r)
	e.Tick(r)
	e.Stop()
	_, ok := e.Winner()
	require.True(t, ok)
}

func TestSpinRestartClearsPreviousWinner(t *testing.T) {
	r := roster("Alice", "Bob")
	e := NewSpinEngine(1, &seqSource{vals: []int{0, 1}})
	e.Start(r)
	e.Tick(r)
	e.Tick(r)
	require.Equal(t, PhaseWinnerDeclared, e.Phase())

	e.Start(r)
	_, ok := e.Winner()
	require.False(t, ok)
	require.Equal(t, PhaseSpinning, e.Phase())
}

func TestSpinSurvivesRemovalOfHighlightedEntry(t *testing.T) {
	r := roster("Alice", "Bob", "Carol")
	e := NewSpinEngine(3, &seqSource{vals: []int{2, 5, 7, 9}})
	e.Start(r)
	e.Tick(r)
	_, idx, ok := e.Highlighted(r)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	r.Select(2)
	r.Remove()
	_, _, ok = e.Highlighted(r)
	require.False(t, ok, "stale highlight must not resolve")

	for e.Spinning() {
		e.Tick(r)
	}
	winner, ok := e.Winner()
	require.True(t, ok)
	require.Contains(t, []string{"Alice", "Bob"}, winner.Name)
}

func TestSpinStopsWhenRosterEmptiedMidSpin(t *testing.T) {
	r := roster("Alice")
	e := NewSpinEngine(3, &seqSource{vals: []int{0}})
	e.Start(r)
	e.Tick(r)
	r.Select(0)
	r.Remove()

	_, declared := e.Tick(r)
	require.False(t, declared)
	require.Equal(t, PhaseIdle, e.Phase())
	require.Equal(t, 3, e.RoundsRemaining())
}

func TestSpinRepeatsAreAllowed(t *testing.T) {
	r := roster("Alice", "Bob")
	e := NewSpinEngine(4, &seqSource{vals: []int{1}})
	e.Start(r)
	for i := 0; i < 3; i++ {
		e.Tick(r)
		_, idx, _ := e.Highlighted(r)
		require.Equal(t, 1, idx)
	}
}

func TestPhaseString(t *testing.T) {
	require.Equal(t, "idle", PhaseIdle.String())
	require.Equal(t, "spinning", PhaseSpinning.String())
	require.Equal(t, "winner declared", PhaseWinnerDeclared.String())
}
