package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartFrame int64   `csv:"-"`
	WindowEndFrame   int64   `csv:"window_end"`
	ElapsedSec       float64 `csv:"elapsed"`
	Theme            string  `csv:"theme"`

	// Effect ticks during window, summed over active effects
	Executed      int `csv:"executed"`
	Skipped       int `csv:"skipped"`
	ActiveEffects int `csv:"active_effects"`

	// Frame time distribution
	FrameMsMean float64 `csv:"frame_ms_mean"`
	FrameMsStd  float64 `csv:"frame_ms_std"`
	FrameMsP50  float64 `csv:"frame_ms_p50"`
	FrameMsP90  float64 `csv:"frame_ms_p90"`
	FrameMsMax  float64 `csv:"frame_ms_max"`

	// Ambient field
	FieldParticles int     `csv:"field_particles"`
	LinksMean      float64 `csv:"links_mean"`
	LinksP90       float64 `csv:"links_p90"`

	// Glyph banner
	GlyphParticles int     `csv:"glyph_particles"`
	HighlightMean  float64 `csv:"highlight_mean"`

	// Radial overlay
	RadialNodes  int     `csv:"radial_nodes"`
	RadialSpread float64 `csv:"radial_spread"` // Mean outer node distance from the center
}

// Percentile returns the p-th empirical quantile of a sorted slice.
// p is clamped to [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summary holds the moments and quantiles of a sample.
type Summary struct {
	Mean, Std     float64
	P50, P90, Max float64
}

// Summarize computes mean, sample standard deviation, and quantiles.
// The input is not modified.
func Summarize(values []float64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := Summary{
		Mean: stat.Mean(sorted, nil),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  sorted[n-1],
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartFrame),
		slog.Int64("window_end", s.WindowEndFrame),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.String("theme", s.Theme),
		slog.Int("executed", s.Executed),
		slog.Int("skipped", s.Skipped),
		slog.Int("active_effects", s.ActiveEffects),
		slog.Float64("frame_ms_mean", s.FrameMsMean),
		slog.Float64("frame_ms_std", s.FrameMsStd),
		slog.Float64("frame_ms_p50", s.FrameMsP50),
		slog.Float64("frame_ms_p90", s.FrameMsP90),
		slog.Float64("frame_ms_max", s.FrameMsMax),
		slog.Int("field_particles", s.FieldParticles),
		slog.Float64("links_mean", s.LinksMean),
		slog.Float64("links_p90", s.LinksP90),
		slog.Int("glyph_particles", s.GlyphParticles),
		slog.Float64("highlight_mean", s.HighlightMean),
		slog.Int("radial_nodes", s.RadialNodes),
		slog.Float64("radial_spread", s.RadialSpread),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"elapsed", s.ElapsedSec,
		"theme", s.Theme,
		"executed", s.Executed,
		"skipped", s.Skipped,
		"active_effects", s.ActiveEffects,
		"frame_ms_mean", s.FrameMsMean,
		"frame_ms_p90", s.FrameMsP90,
		"field_particles", s.FieldParticles,
		"links_mean", s.LinksMean,
		"glyph_particles", s.GlyphParticles,
		"highlight_mean", s.HighlightMean,
		"radial_nodes", s.RadialNodes,
		"radial_spread", s.RadialSpread,
	)
}
