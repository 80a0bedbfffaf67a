package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.0},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.0},
		{"clamped low", []float64{1, 2, 3}, -1, 1.0},
		{"clamped high", []float64{1, 2, 3}, 2, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	values := []float64{9, 2, 4, 4, 5, 5, 7, 4}
	s := Summarize(values)

	if math.Abs(s.Mean-5) > 0.001 {
		t.Errorf("mean = %v, want 5", s.Mean)
	}
	// Sample standard deviation: sqrt(32/7)
	if math.Abs(s.Std-math.Sqrt(32.0/7)) > 0.001 {
		t.Errorf("std = %v, want %v", s.Std, math.Sqrt(32.0/7))
	}
	if s.P50 != 4 || s.P90 != 9 || s.Max != 9 {
		t.Errorf("p50=%v p90=%v max=%v, want 4, 9, 9", s.P50, s.P90, s.Max)
	}
	if values[0] != 9 {
		t.Error("Summarize sorted its input in place")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s != (Summary{}) {
		t.Errorf("empty slice should return zero summary, got %+v", s)
	}
	if s := Summarize([]float64{3}); s.Std != 0 || s.Mean != 3 {
		t.Errorf("single sample summary = %+v", s)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(1, 1.0/60)
	if c.WindowDurationFrames() != 60 {
		t.Fatalf("WindowDurationFrames() = %d, want 60", c.WindowDurationFrames())
	}

	for frame := int64(1); frame <= 60; frame++ {
		c.RecordFrame(16, int(frame%4), 10)
		if frame < 60 && c.ShouldFlush(frame) {
			t.Fatalf("ShouldFlush(%d) = true before window end", frame)
		}
	}
	if !c.ShouldFlush(60) {
		t.Fatal("ShouldFlush(60) = false")
	}

	stats := c.Flush(60, SiteState{Theme: "dark", Executed: 120, Skipped: 4, FieldParticles: 102})
	if stats.WindowStartFrame != 0 || stats.WindowEndFrame != 60 {
		t.Errorf("window = [%d, %d], want [0, 60]", stats.WindowStartFrame, stats.WindowEndFrame)
	}
	if math.Abs(stats.ElapsedSec-1) > 1e-9 {
		t.Errorf("elapsed = %v, want 1", stats.ElapsedSec)
	}
	if stats.FrameMsMean != 16 || stats.FrameMsStd != 0 {
		t.Errorf("frame mean=%v std=%v, want 16, 0", stats.FrameMsMean, stats.FrameMsStd)
	}
	if math.Abs(stats.LinksMean-1.5) > 1e-9 || stats.HighlightMean != 10 {
		t.Errorf("links mean=%v highlight mean=%v", stats.LinksMean, stats.HighlightMean)
	}
	if stats.Executed != 120 || stats.Skipped != 4 {
		t.Errorf("executed=%d skipped=%d", stats.Executed, stats.Skipped)
	}

	// Counters are reported as deltas
	c.RecordFrame(20, 0, 0)
	next := c.Flush(120, SiteState{Theme: "dark", Executed: 180, Skipped: 4})
	if next.Executed != 60 || next.Skipped != 0 || next.WindowStartFrame != 60 {
		t.Errorf("second window executed=%d skipped=%d start=%d", next.Executed, next.Skipped, next.WindowStartFrame)
	}
	if next.FrameMsMax != 20 {
		t.Errorf("second window max = %v, want 20 (samples not reset)", next.FrameMsMax)
	}
}
