package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

func newTestRadial(t *testing.T, seed int64) *RadialLayout {
	cfg := testConfig(t)
	return NewRadialLayout(cfg.Radial, rand.New(rand.NewSource(seed)))
}

func TestRadialInitialPlacement(t *testing.T) {
	r := newTestRadial(t, 1)
	r.Reset(800, 600, theme.Dark)

	nodes := r.Nodes()
	if len(nodes) != 8 {
		t.Fatalf("expected 8 nodes, got %d", len(nodes))
	}
	if nodes[0].ID != "center" || nodes[0].X != 400 || nodes[0].Y != 300 {
		t.Errorf("center node = %+v, want center at (400, 300)", nodes[0])
	}
	for i, n := range nodes[1:] {
		angle := float64(i+1) / 8 * 2 * math.Pi
		wx := 400 + float32(math.Cos(angle)*120)
		wy := 300 + float32(math.Sin(angle)*120)
		if absf(n.X-wx) > 0.01 || absf(n.Y-wy) > 0.01 {
			t.Errorf("node %s at (%f, %f), want (%f, %f)", n.ID, n.X, n.Y, wx, wy)
		}
		if absf(n.VX) > 0.15 || absf(n.VY) > 0.15 {
			t.Errorf("node %s initial velocity (%f, %f) too large", n.ID, n.VX, n.VY)
		}
	}
}

// 8 nodes, center fixed at (400, 300), 500 frames.
func TestRadialScenarioConverges(t *testing.T) {
	r := newTestRadial(t, 42)
	r.Reset(800, 600, theme.Dark)

	for i := 0; i < 500; i++ {
		r.Step(16)
	}

	nodes := r.Nodes()
	if nodes[0].X != 400 || nodes[0].Y != 300 {
		t.Errorf("center moved to (%f, %f)", nodes[0].X, nodes[0].Y)
	}
	for _, n := range nodes[1:] {
		tx, ty := r.Target(n.Slot)
		if d := distance(n.X, n.Y, tx, ty); d > 2 {
			t.Errorf("node %s is %f from its slot", n.ID, d)
		}
	}
}

func TestRadialMinimumSeparation(t *testing.T) {
	r := newTestRadial(t, 3)
	r.cfg.Radius = 10 // Targets inside the separation circle
	r.Reset(800, 600, theme.Dark)

	for frame := 0; frame < 1000; frame++ {
		r.Step(16)
		nodes := r.Nodes()
		c := nodes[0]
		for _, n := range nodes[1:] {
			if d := distance(n.X, n.Y, c.X, c.Y); d < 50-1e-3 {
				t.Fatalf("frame %d node %s at distance %f from center", frame, n.ID, d)
			}
		}
	}
}

func TestRadialTargetSlots(t *testing.T) {
	r := newTestRadial(t, 1)
	r.Reset(800, 600, theme.Dark)

	x, y := r.Target(0)
	if x != 400 || y != 300 {
		t.Errorf("Target(0) = (%f, %f), want center", x, y)
	}
	// Slot 7 of 8 closes the circle at angle 2*pi
	x, y = r.Target(7)
	if absf(x-520) > 0.01 || absf(y-300) > 0.01 {
		t.Errorf("Target(7) = (%f, %f), want (520, 300)", x, y)
	}
}

func TestRadialRestartsFromScratch(t *testing.T) {
	r := newTestRadial(t, 5)
	r.Reset(800, 600, theme.Dark)
	initial := r.Nodes()
	for i := 0; i < 100; i++ {
		r.Step(16)
	}

	r.Release()
	if r.Count() != 0 {
		t.Fatalf("Count() after Release = %d", r.Count())
	}
	r.Reset(800, 600, theme.Dark)
	again := r.Nodes()
	for i := range initial {
		if initial[i].X != again[i].X || initial[i].Y != again[i].Y {
			t.Errorf("node %d restarted at (%f, %f), want (%f, %f)", i, again[i].X, again[i].Y, initial[i].X, initial[i].Y)
		}
	}
}

func TestRadialResizeRecenters(t *testing.T) {
	r := newTestRadial(t, 1)
	r.Reset(800, 600, theme.Dark)
	r.Resize(1000, 500)
	r.Step(16)

	c := r.Nodes()[0]
	if c.X != 500 || c.Y != 250 {
		t.Errorf("center after resize = (%f, %f), want (500, 250)", c.X, c.Y)
	}
}

func TestRadialDrawEdgesAndPalette(t *testing.T) {
	r := newTestRadial(t, 1)
	rec := &surface.Recorder{}

	for i, th := range []theme.Theme{theme.Light, theme.Dark, theme.Dynamic} {
		if i == 0 {
			r.Reset(800, 600, th)
		} else {
			r.SetTheme(th)
		}
		r.Step(16)
		rec.Begin()
		r.Draw(rec)
		rec.End()

		if n := rec.Count(surface.OpGradientLine); n != 7 {
			t.Errorf("%v: %d edges, want 7", th, n)
		}
		if n := rec.Count(surface.OpText); n != 8 {
			t.Errorf("%v: %d labels, want 8", th, n)
		}

		style := theme.Radial(th)
		for _, op := range rec.Ops() {
			switch op.Kind {
			case surface.OpGradientLine:
				if op.Color.R != style.EdgeFrom.R || op.Color.G != style.EdgeFrom.G || op.Color.B != style.EdgeFrom.B {
					t.Errorf("%v: edge color %v, want %v", th, op.Color, style.EdgeFrom)
				}
				// Opacity floor
				if op.Color.A < 15 {
					t.Errorf("%v: edge alpha %d below floor", th, op.Color.A)
				}
			case surface.OpRadialGradient:
				found := false
				for _, c := range style.Nodes {
					if c == op.Color {
						found = true
					}
				}
				if !found {
					t.Errorf("%v: node color %v not in palette", th, op.Color)
				}
			}
		}
	}
}
