package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ndmitriev/pixelpole/internal/env"
	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/render"
	"github.com/ndmitriev/pixelpole/internal/storage"
)

// Model is the Bubble Tea model driving an interactive episode. The arrow
// keys pick the push direction, which is applied on every tick: the cart
// is always being pushed one way or the other.
type Model struct {
	env      *env.Env
	store    *storage.Store
	tickRate int

	frame     render.Frame
	action    physics.Action
	seed      int32
	steps     int
	reward    float64
	done      bool
	saved     bool
	quitting  bool
	failedMsg string
}

// NewModel creates a model for the given environment. store may be nil;
// episodes are then not recorded.
func NewModel(e *env.Env, store *storage.Store, tickRate int) Model {
	return Model{
		env:      e,
		store:    store,
		tickRate: tickRate,
		action:   physics.ActionRight,
	}
}

// Init starts the first episode and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(resetCmd(m.env), tickCmd(m.tickRate))
}

// resetMsg carries the initial observation of a fresh episode.
type resetMsg struct {
	frame render.Frame
	seed  int32
	err   error
}

func resetCmd(e *env.Env) tea.Cmd {
	return func() tea.Msg {
		frame, err := e.Reset()
		return resetMsg{frame: frame, seed: e.Snapshot().Seed, err: err}
	}
}

// Update handles messages and advances the episode.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case resetMsg:
		if msg.err != nil {
			m.failedMsg = msg.err.Error()
			return m, tea.Quit
		}
		m.frame = msg.frame
		m.seed = msg.seed
		m.steps = 0
		m.reward = 0
		m.done = false
		m.saved = false
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := NewKeyMapper()

	if km.IsQuit(msg) {
		m.quitting = true
		return m, tea.Quit
	}
	if km.IsRestart(msg) && m.done {
		return m, resetCmd(m.env)
	}
	if a, ok := km.MapKey(msg); ok {
		m.action = a
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.done {
		// Freeze the terminal frame; the episode only restarts on demand.
		return m, tickCmd(m.tickRate)
	}

	res, err := m.env.Step(m.action)
	if err != nil {
		m.failedMsg = err.Error()
		return m, tea.Quit
	}

	m.frame = res.Obs
	m.steps++
	m.reward += res.Reward

	if res.Done == 1 {
		m.done = true
		if m.store != nil && !m.saved {
			//nolint:errcheck // Best-effort save, session continues regardless
			m.store.SaveEpisode(storage.EpisodeRecord{
				Seed:   m.seed,
				Steps:  m.steps,
				Reward: m.reward,
				Cause:  m.env.TerminationCause(),
				Policy: "keyboard",
			})
			m.saved = true
		}
	}

	return m, tickCmd(m.tickRate)
}

var (
	hudStyle     = lipgloss.NewStyle().Faint(true)
	overlayStyle = lipgloss.NewStyle().Bold(true)
)

// View renders the observation and a status line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.failedMsg != "" {
		return "error: " + m.failedMsg + "\n"
	}

	hud := fmt.Sprintf(" seed %d  step %d  reward %.0f  push %s", m.seed, m.steps, m.reward, m.action)
	view := RenderFrame(&m.frame) + "\n" + hudStyle.Render(hud)
	if m.done {
		view += "\n" + overlayStyle.Render(" episode over. r to reset, q to quit")
	} else {
		view += "\n" + hudStyle.Render(" ←/→ push direction, q to quit")
	}
	return view
}

// Run starts the interactive session and blocks until it exits.
func Run(e *env.Env, store *storage.Store, tickRate int) error {
	if tickRate <= 0 {
		tickRate = 50
	}
	p := tea.NewProgram(NewModel(e, store, tickRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
