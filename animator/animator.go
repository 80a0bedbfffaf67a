package animator

import "time"

// TickFunc is called once per executed frame with the milliseconds since the
// previous executed frame (0 on the first frame after Start).
type TickFunc func(elapsedMs float64)

// Animator schedules a tick once per display frame, throttled to a minimum
// interval. Frames arriving sooner than the interval are skipped but still
// rescheduled, so the animation keeps running at the display cadence.
type Animator struct {
	sched    Scheduler
	interval float64 // ms
	tick     TickFunc

	running bool
	gen     uint64 // Bumped on every Start/Stop; stale callbacks compare against it
	frame   FrameID
	hasLast bool
	lastMs  float64

	executed uint64
	skipped  uint64
}

// New creates a stopped animator. An interval of 0 runs tick on every frame.
func New(s Scheduler, interval time.Duration, tick TickFunc) *Animator {
	return &Animator{
		sched:    s,
		interval: float64(interval) / float64(time.Millisecond),
		tick:     tick,
	}
}

// Start begins scheduling. Calling Start while running does nothing.
func (a *Animator) Start() {
	if a.running {
		return
	}
	a.running = true
	a.gen++
	a.hasLast = false
	a.schedule()
}

// Stop cancels scheduling. No tick runs after Stop returns, including a
// frame that was already queued. Calling Stop while stopped does nothing.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
	a.sched.CancelFrame(a.frame)
	a.frame = 0
}

// Running reports whether the animator is scheduled.
func (a *Animator) Running() bool {
	return a.running
}

// Executed returns the number of frames whose tick ran.
func (a *Animator) Executed() uint64 {
	return a.executed
}

// Skipped returns the number of frames dropped by the throttle.
func (a *Animator) Skipped() uint64 {
	return a.skipped
}

func (a *Animator) schedule() {
	gen := a.gen
	a.frame = a.sched.RequestFrame(func(nowMs float64) {
		a.onFrame(gen, nowMs)
	})
}

func (a *Animator) onFrame(gen uint64, nowMs float64) {
	if !a.running || gen != a.gen {
		return
	}

	if a.hasLast && nowMs-a.lastMs < a.interval {
		a.skipped++
		a.schedule()
		return
	}

	elapsed := 0.0
	if a.hasLast {
		elapsed = nowMs - a.lastMs
	}
	a.hasLast = true
	a.lastMs = nowMs
	a.executed++

	a.tick(elapsed)

	// The tick may have stopped (or restarted) us
	if a.running && gen == a.gen {
		a.schedule()
	}
}
