// Package telemetry provides frame timing, window statistics, bookmarks and CSV output.
package telemetry

// SiteState is the per-window snapshot the caller reads off the live components.
type SiteState struct {
	Theme string

	// Cumulative animator counters, summed over effects
	Executed int
	Skipped  int

	ActiveEffects  int
	FieldParticles int
	GlyphParticles int
	RadialNodes    int
	RadialSpread   float64
}

// Collector accumulates per-frame samples within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int64
	dt                   float64

	windowStartFrame int64

	// Samples for current window
	frameMs    []float64
	links      []float64
	highlights []float64

	// Counters at the previous flush
	lastExecuted int
	lastSkipped  int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per display frame
func NewCollector(windowDurationSec float64, dt float64) *Collector {
	framesPerWindow := int64(windowDurationSec / dt)
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}

	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		dt:                   dt,
		frameMs:              make([]float64, 0, framesPerWindow),
		links:                make([]float64, 0, framesPerWindow),
		highlights:           make([]float64, 0, framesPerWindow),
	}
}

// RecordFrame records one display frame: its wall time and the field link
// and glyph highlight counts drawn in it.
func (c *Collector) RecordFrame(frameMs float64, links, highlighted int) {
	c.frameMs = append(c.frameMs, frameMs)
	c.links = append(c.links, float64(links))
	c.highlights = append(c.highlights, float64(highlighted))
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int64) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets the samples for the next window.
func (c *Collector) Flush(currentFrame int64, state SiteState) WindowStats {
	frames := Summarize(c.frameMs)
	links := Summarize(c.links)
	highlights := Summarize(c.highlights)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		ElapsedSec:       float64(currentFrame) * c.dt,
		Theme:            state.Theme,

		Executed:      state.Executed - c.lastExecuted,
		Skipped:       state.Skipped - c.lastSkipped,
		ActiveEffects: state.ActiveEffects,

		FrameMsMean: frames.Mean,
		FrameMsStd:  frames.Std,
		FrameMsP50:  frames.P50,
		FrameMsP90:  frames.P90,
		FrameMsMax:  frames.Max,

		FieldParticles: state.FieldParticles,
		LinksMean:      links.Mean,
		LinksP90:       links.P90,

		GlyphParticles: state.GlyphParticles,
		HighlightMean:  highlights.Mean,

		RadialNodes:  state.RadialNodes,
		RadialSpread: state.RadialSpread,
	}

	c.windowStartFrame = currentFrame
	c.lastExecuted = state.Executed
	c.lastSkipped = state.Skipped
	c.frameMs = c.frameMs[:0]
	c.links = c.links[:0]
	c.highlights = c.highlights[:0]

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int64 {
	return c.windowDurationFrames
}
