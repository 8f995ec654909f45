package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskraffle/internal/raffle"
)

// DefaultTickInterval is the spin clock period when none is configured.
const DefaultTickInterval = 100 * time.Millisecond

// Recorder persists finalized draws.
type Recorder interface {
	Record(ctx context.Context, d raffle.Draw) error
}

// Options configures the App.
type Options struct {
	TickInterval time.Duration
	// Recorder may be nil; draws are then kept in memory only.
	Recorder     Recorder
	RosterSource string
	Warnings     []string
}

// App is the bubbletea model. It maps keys and clock ticks onto the
// raffle state and renders it.
type App struct {
	ctx       context.Context
	state     *raffle.State
	keys      keyMap
	help      help.Model
	spinner   spinner.Model
	recorder  Recorder
	interval  time.Duration
	source    string
	warnings  []string
	status    string
	statusErr bool
	// saves still in flight; quitting waits for them
	pending   int
	quitting  bool
	width     int
	height    int
}

func New(ctx context.Context, state *raffle.State, opts Options) *App {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinStyle
	return &App{
		ctx:      ctx,
		state:    state,
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  sp,
		recorder: opts.Recorder,
		interval: interval,
		source:   opts.RosterSource,
		warnings: opts.Warnings,
		status:   "Ready",
	}
}

// State exposes the underlying raffle state.
func (a *App) State() *raffle.State { return a.state }

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.tickCmd(), a.spinner.Tick)
}

func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.interval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(m)
	case tickMsg:
		cmds := []tea.Cmd{a.tickCmd()}
		if draw := a.state.Tick(); draw != nil {
			log.Printf("round %d winner: %s", draw.Round, draw.Participant.Name)
			a.setStatus(fmt.Sprintf("Round %d winner: %s", draw.Round, draw.Participant.Name))
			if cmd := a.recordCmd(*draw); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return a, tea.Batch(cmds...)
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.help.Width = m.Width
	case drawSavedMsg:
		a.pending--
		a.setStatus(fmt.Sprintf("Round %d saved to history", m.Round))
		return a, a.quitIfDone()
	case errMsg:
		a.pending--
		log.Printf("error: %v", m.error)
		a.setError(m.error)
		return a, a.quitIfDone()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		// a second quit while saving gives up on the pending saves
		if a.pending > 0 && !a.quitting {
			a.quitting = true
			a.setStatus("Saving draw history before quitting...")
			return a, nil
		}
		a.state.Quit()
		return a, tea.Quit
	case key.Matches(m, a.keys.NextTab):
		a.state.SwitchTab(raffle.Next)
	case key.Matches(m, a.keys.PrevTab):
		a.state.SwitchTab(raffle.Previous)
	case key.Matches(m, a.keys.Up):
		a.state.Navigate(raffle.Previous)
	case key.Matches(m, a.keys.Down):
		a.state.Navigate(raffle.Next)
	case key.Matches(m, a.keys.Unselect):
		a.state.Unselect()
	case key.Matches(m, a.keys.Remove):
		if p, _, ok := a.state.Selected(); ok {
			a.state.Remove()
			a.setStatus("Removed " + p.Name)
		}
	case key.Matches(m, a.keys.Start):
		a.state.StartSpin()
		if a.state.Spinning() {
			a.setStatus("Spinning...")
		}
	case key.Matches(m, a.keys.Stop):
		if a.state.Spinning() {
			a.state.StopSpin()
			a.setStatus("Spin stopped")
		}
	case key.Matches(m, a.keys.Reset):
		a.state.ResetSpin()
		a.setStatus("Ready")
	case key.Matches(m, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}
	return a, nil
}

func (a *App) recordCmd(d raffle.Draw) tea.Cmd {
	if a.recorder == nil {
		return nil
	}
	a.pending++
	return func() tea.Msg {
		if err := a.recorder.Record(a.ctx, d); err != nil {
			return errMsg{err}
		}
		return drawSavedMsg{Round: d.Round}
	}
}

func (a *App) quitIfDone() tea.Cmd {
	if !a.quitting || a.pending > 0 {
		return nil
	}
	a.state.Quit()
	return tea.Quit
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.setStatus("")
		return
	}
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// messages
type tickMsg struct{}

type drawSavedMsg struct {
	Round int
}

type errMsg struct{ error }
