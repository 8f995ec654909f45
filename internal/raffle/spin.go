package raffle

import "math/rand/v2"

// DefaultRounds is the round budget used when none is configured.
const DefaultRounds = 50

// Phase is the externally visible state of a SpinEngine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseWinnerDeclared
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseWinnerDeclared:
		return "winner declared"
	default:
		return "unknown"
	}
}

// Source picks uniformly from [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// SpinEngine counts a spin down one tick at a time and declares a winner
// once the round budget is spent. It keeps no roster indexes across ticks
// except the highlight, which is re-checked on every read.
type SpinEngine struct {
	budget    int
	rng       Source
	spinning  bool
	remaining int
	winner    *Participant
	highlight int
}

// NewSpinEngine returns an idle engine. A nil source uses a randomly seeded
// PCG generator; a negative budget is treated as zero.
func NewSpinEngine(budget int, rng Source) *SpinEngine {
	if budget < 0 {
		budget = 0
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &SpinEngine{budget: budget, rng: rng, remaining: budget, highlight: noSelection}
}

func (e *SpinEngine) Budget() int { return e.budget }

func (e *SpinEngine) Spinning() bool { return e.spinning }

// RoundsRemaining is only meaningful while spinning.
func (e *SpinEngine) RoundsRemaining() int { return e.remaining }

// Winner returns the winner of the last completed spin since the last
// start or reset.
func (e *SpinEngine) Winner() (Participant, bool) {
	if e.winner == nil {
		return Participant{}, false
	}
	return *e.winner, true
}

func (e *SpinEngine) Phase() Phase {
	switch {
	case e.spinning:
		return PhaseSpinning
	case e.winner != nil:
		return PhaseWinnerDeclared
	default:
		return PhaseIdle
	}
}

// Start begins a spin over roster. It is a no-op on an empty roster.
func (e *SpinEngine) Start(roster *List[Participant]) {
	if roster.Len() == 0 {
		return
	}
	e.remaining = e.budget
	e.winner = nil
	e.highlight = noSelection
	e.spinning = true
}

// Tick performs one unit of spin work: it highlights a fresh random index
// and either spends a round or, with no rounds left, declares the
// highlighted participant the winner. The declared winner is returned.
func (e *SpinEngine) Tick(roster *List[Participant]) (Participant, bool) {
	if !e.spinning {
		return Participant{}, false
	}
	n := roster.Len()
	if n == 0 {
		// everyone was removed mid-spin
		e.Stop()
		e.highlight = noSelection
		e.remaining = e.budget
		return Participant{}, false
	}

	idx := e.rng.IntN(n)
	e.highlight = idx
	if e.remaining > 0 {
		e.remaining--
		return Participant{}, false
	}

	roster.update(idx, func(p *Participant) { p.IsWinner = true })
	winner, _ := roster.At(idx)
	e.winner = &winner
	e.remaining = e.budget
	e.spinning = false
	return winner, true
}

// Stop aborts a spin without declaring a winner.
func (e *SpinEngine) Stop() {
	e.spinning = false
}

// Reset returns the engine to idle. It is idempotent.
func (e *SpinEngine) Reset() {
	e.spinning = false
	e.winner = nil
	e.remaining = e.budget
	e.highlight = noSelection
}

// Highlighted returns the participant under the spin highlight, if the
// highlight still points inside roster.
func (e *SpinEngine) Highlighted(roster *List[Participant]) (Participant, int, bool) {
	p, ok := roster.At(e.highlight)
	if !ok {
		return Participant{}, 0, false
	}
	return p, e.highlight, true
}
