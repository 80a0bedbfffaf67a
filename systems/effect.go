package systems

import (
	"errors"
	"log/slog"
	"time"

	"github.com/pthm-cable/folio/animator"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

// Simulation is one self-contained visual: it owns its particles and draws
// them into whatever canvas the effect hands it.
type Simulation interface {
	// Reset discards any state and seeds from scratch for a w x h surface.
	Reset(w, h float32, t theme.Theme)
	// SetTheme reacts to a theme change while running.
	SetTheme(t theme.Theme)
	// Resize updates the surface bounds without re-seeding.
	Resize(w, h float32)
	Step(elapsedMs float64)
	Draw(c surface.Canvas)
	// Release drops all particle state.
	Release()
}

// TickHook receives the wall time spent in one executed frame of an effect.
type TickHook func(name string, d time.Duration)

// Effect binds a Simulation to one surface, one animator and the theme signal.
// Activation seeds the simulation; deactivation discards it, so nothing
// persists between activations.
type Effect struct {
	name   string
	sim    Simulation
	surf   surface.Surface
	signal *theme.Signal
	anim   *animator.Animator

	canvas surface.Canvas
	unsub  func()
	active bool

	// OnTick, if set, is called after each executed frame.
	OnTick TickHook
}

// NewEffect creates an inactive effect.
func NewEffect(name string, sim Simulation, surf surface.Surface, sched animator.Scheduler, interval time.Duration, signal *theme.Signal) *Effect {
	e := &Effect{
		name:   name,
		sim:    sim,
		surf:   surf,
		signal: signal,
	}
	e.anim = animator.New(sched, interval, e.tick)
	return e
}

// Name returns the effect's name.
func (e *Effect) Name() string { return e.name }

// Active reports whether the effect is running.
func (e *Effect) Active() bool { return e.active }

// Animator returns the effect's frame animator.
func (e *Effect) Animator() *animator.Animator { return e.anim }

// Surface returns the surface the effect draws into.
func (e *Effect) Surface() surface.Surface { return e.surf }

// Activate seeds the simulation and starts animating. If the surface has no
// drawing context the effect stays inactive and nothing renders.
// Returns whether the effect is active afterwards.
func (e *Effect) Activate() bool {
	if e.active {
		return true
	}

	canvas, err := e.surf.Context()
	if err != nil {
		if errors.Is(err, surface.ErrNoContext) {
			slog.Debug("effect disabled", "effect", e.name, "reason", err)
		} else {
			slog.Warn("effect disabled", "effect", e.name, "error", err)
		}
		return false
	}
	e.canvas = canvas

	w, h := e.surf.Size()
	e.sim.Reset(w, h, e.signal.Get())
	e.unsub = e.signal.Subscribe(e.sim.SetTheme)
	e.active = true
	e.anim.Start()
	return true
}

// Deactivate stops animating, unsubscribes from the theme and discards the
// simulation state. Calling it on an inactive effect does nothing.
func (e *Effect) Deactivate() {
	if !e.active {
		return
	}
	e.anim.Stop()
	e.unsub()
	e.unsub = nil
	e.sim.Release()
	e.canvas = nil
	e.active = false
}

// SetActive activates or deactivates the effect.
func (e *Effect) SetActive(on bool) {
	if on {
		e.Activate()
	} else {
		e.Deactivate()
	}
}

// Resize changes the surface size and updates the simulation bounds.
func (e *Effect) Resize(w, h float32) error {
	if cw, ch := e.surf.Size(); cw == w && ch == h {
		return nil
	}
	if err := e.surf.Resize(w, h); err != nil {
		return err
	}
	if e.active {
		e.sim.Resize(w, h)
	}
	return nil
}

func (e *Effect) tick(elapsedMs float64) {
	start := time.Now()

	e.sim.Step(elapsedMs)
	e.canvas.Begin()
	e.sim.Draw(e.canvas)
	e.canvas.End()

	if e.OnTick != nil {
		e.OnTick(e.name, time.Since(start))
	}
}
