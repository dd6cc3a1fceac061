// Package env implements the episode controller for the visual cart-pole
// environment. The observable state is the rendered 64x64 RGB frame, not
// the raw physical state vector; the physical state machine, the seeded
// palette roll, and the rasterizer together make episodes reproducible
// bit-for-bit for a fixed seed.
package env

import (
	"errors"
	"fmt"
	"math"
	mathrand "math/rand/v2"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ndmitriev/pixelpole/internal/config"
	"github.com/ndmitriev/pixelpole/internal/physics"
	"github.com/ndmitriev/pixelpole/internal/render"
	"github.com/ndmitriev/pixelpole/internal/visual"
)

var (
	// ErrInvalidAction reports an action outside {left, right}. The call
	// fails before any state is touched.
	ErrInvalidAction = errors.New("invalid action")
	// ErrNoEpisode reports a Step or Render before the first Reset.
	ErrNoEpisode = errors.New("no active episode, call Reset first")
)

// Info is the auxiliary data returned with every step.
type Info struct {
	LevelSeed int32
}

// StepResult bundles the outcome of one environment step: the rendered
// observation, the reward, done as 0/1, and the seed info.
type StepResult struct {
	Obs    render.Frame
	Reward float64
	Done   int32
	Info   Info
}

// Env is a single cart-pole episode controller. It is not safe for
// concurrent use; callers needing parallelism run independent instances.
type Env struct {
	params         physics.Params
	xThreshold     float64
	thetaThreshold float64 // radians
	geom           render.Geometry

	seeds   *visual.SeedManager
	palette visual.Palette

	// Initial-state source, deliberately independent of the seeded
	// generator: the palette replays across same-seed resets, the
	// starting trajectory does not.
	startDist distuv.Uniform

	state  *physics.State
	steps  uint64
	canvas *render.Canvas // lazily opened on first render

	// stepsBeyondDone is -1 while the episode is live, 0 on the step where
	// termination is first observed, then increments per post-terminal
	// call. Only Reset clears it.
	stepsBeyondDone int
	warned          bool

	logger *log.Logger
}

// New builds an environment from the given configuration. Seeding mode:
// NumLevels == 0 draws a fresh seed every reset, any other value pins the
// seed to StartLevel. The generator is seeded immediately, so Seed and
// palette state are defined before the first Reset.
func New(cfg config.Config) *Env {
	params := cfg.Physics.Params()
	e := &Env{
		params:          params,
		xThreshold:      cfg.Limits.XThreshold,
		thetaThreshold:  cfg.Limits.ThetaThresholdDeg * 2 * math.Pi / 360,
		geom:            render.DefaultGeometry(params.PoleHalfLength, cfg.Limits.XThreshold),
		seeds:           visual.NewSeedManager(cfg.Seeding.NumLevels, cfg.Seeding.StartLevel),
		palette:         visual.DefaultPalette(),
		stepsBeyondDone: -1,
		logger:          log.Default(),
	}
	e.startDist = distuv.Uniform{
		Min: -0.05,
		Max: 0.05,
		Src: rand.NewSource(mathrand.Uint64()),
	}
	return e
}

// SetLogger redirects the environment's diagnostics.
func (e *Env) SetLogger(l *log.Logger) {
	if l != nil {
		e.logger = l
	}
}

// Reset starts a new episode: re-seeds per the configured mode, draws the
// initial physical state uniformly from [-0.05, 0.05], rolls a fresh
// palette from the seeded generator, and returns the initial observation.
func (e *Env) Reset() (render.Frame, error) {
	e.seeds.Reset()
	e.state = &physics.State{
		X:        e.startDist.Rand(),
		XDot:     e.startDist.Rand(),
		Theta:    e.startDist.Rand(),
		ThetaDot: e.startDist.Rand(),
	}
	e.steps = 0
	e.stepsBeyondDone = -1
	e.warned = false
	e.palette = visual.Roll(e.seeds.Source())
	return e.Render()
}

// Step advances the episode by one action. Post-terminal calls are allowed:
// physics keeps integrating (physically undefined, mechanically
// deterministic), reward degrades to 0, and a warning is logged exactly
// once per terminal episode.
func (e *Env) Step(action physics.Action) (StepResult, error) {
	if !action.Valid() {
		return StepResult{}, fmt.Errorf("%w: %d not in {0,1}", ErrInvalidAction, action)
	}
	if e.state == nil {
		return StepResult{}, fmt.Errorf("step: %w", ErrNoEpisode)
	}

	next := physics.Step(*e.state, action, e.params)
	e.state = &next
	e.steps++

	done := math.Abs(next.X) > e.xThreshold || math.Abs(next.Theta) > e.thetaThreshold

	var reward float64
	switch {
	case !done:
		reward = 1.0
	case e.stepsBeyondDone < 0:
		// The termination step itself still pays out.
		e.stepsBeyondDone = 0
		reward = 1.0
	default:
		if e.stepsBeyondDone == 0 && !e.warned {
			e.logger.Warn("step called on an episode that already returned done; call Reset before stepping further")
			e.warned = true
		}
		e.stepsBeyondDone++
		reward = 0.0
	}

	obs, err := e.Render()
	if err != nil {
		return StepResult{}, err
	}

	var doneFlag int32
	if done {
		doneFlag = 1
	}
	return StepResult{
		Obs:    obs,
		Reward: reward,
		Done:   doneFlag,
		Info:   Info{LevelSeed: e.seeds.Seed()},
	}, nil
}

// Render rasterizes the current state with the episode palette. The canvas
// is opened lazily on first use. Fails with ErrNoEpisode before the first
// Reset.
func (e *Env) Render() (render.Frame, error) {
	if e.state == nil {
		return render.Frame{}, fmt.Errorf("render: %w", ErrNoEpisode)
	}
	if e.canvas == nil {
		e.canvas = render.NewCanvas(e.geom)
	}
	return e.canvas.Render(*e.state, e.palette), nil
}

// Close releases the render target. Idempotent: safe to call repeatedly or
// when nothing was ever rendered.
func (e *Env) Close() {
	if e.canvas != nil {
		e.canvas.Close()
		e.canvas = nil
	}
}

// Seed deterministically re-initializes the seeded generator and returns
// the seed actually used. With no argument a fresh process-random seed is
// drawn and reported.
func (e *Env) Seed(seed ...int32) int32 {
	return e.seeds.Reseed(seed...)
}

// Palette returns the color set in effect for the current episode.
func (e *Env) Palette() visual.Palette {
	return e.palette
}

// TerminationCause names the threshold the current state exceeds:
// "position", "angle", or "" while the state is inside both bounds.
// Position wins when both are exceeded.
func (e *Env) TerminationCause() string {
	if e.state == nil {
		return ""
	}
	if math.Abs(e.state.X) > e.xThreshold {
		return "position"
	}
	if math.Abs(e.state.Theta) > e.thetaThreshold {
		return "angle"
	}
	return ""
}

// Snapshot captures the controller state for determinism tests and logging.
type Snapshot struct {
	State           physics.State
	Steps           uint64
	Done            bool
	StepsBeyondDone int // -1 while the episode is live
	Seed            int32
}

// Snapshot returns the current episode snapshot. The zero State is reported
// before the first Reset.
func (e *Env) Snapshot() Snapshot {
	snap := Snapshot{
		Steps:           e.steps,
		StepsBeyondDone: e.stepsBeyondDone,
		Seed:            e.seeds.Seed(),
	}
	if e.state != nil {
		snap.State = *e.state
		snap.Done = math.Abs(e.state.X) > e.xThreshold || math.Abs(e.state.Theta) > e.thetaThreshold
	}
	return snap
}
