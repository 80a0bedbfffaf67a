package site

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/folio/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (s *Site) flushTelemetry() {
	if !s.collector.ShouldFlush(s.frameCount) {
		return
	}

	stats := s.collector.Flush(s.frameCount, s.siteState())
	perfStats := s.perfCollector.Stats()

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}

	for _, bm := range s.bookmarkDetector.Check(stats) {
		if s.logStats {
			bm.LogBookmark()
		}
		if s.outputManager != nil {
			if err := s.outputManager.WriteBookmark(bm); err != nil {
				slog.Error("failed to write bookmark", "error", err)
			}
		}
	}
}

// siteState reads the counters telemetry needs off the live effects.
func (s *Site) siteState() telemetry.SiteState {
	state := telemetry.SiteState{
		Theme:          s.signal.Get().String(),
		FieldParticles: s.field.Count(),
		GlyphParticles: s.glyph.Count(),
		RadialNodes:    s.radial.Count(),
		RadialSpread:   s.radialSpread(),
	}
	for _, fx := range s.effects {
		anim := fx.Animator()
		state.Executed += int(anim.Executed())
		state.Skipped += int(anim.Skipped())
		if fx.Active() {
			state.ActiveEffects++
		}
	}
	return state
}

// radialSpread returns the mean distance of the outer nodes from the center
// node, or 0 when the graph is not running.
func (s *Site) radialSpread() float64 {
	nodes := s.radial.Nodes()
	if len(nodes) < 2 {
		return 0
	}
	cx, cy := float64(nodes[0].X), float64(nodes[0].Y)
	var sum float64
	for _, n := range nodes[1:] {
		sum += math.Hypot(float64(n.X)-cx, float64(n.Y)-cy)
	}
	return sum / float64(len(nodes)-1)
}
