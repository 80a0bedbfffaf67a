package systems

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func newTestField(t *testing.T, seed int64) *AmbientField {
	cfg := testConfig(t)
	return NewAmbientField(cfg.Field, cfg.Animator.TimeStep, cfg.Screen.CompactWidth, rand.New(rand.NewSource(seed)))
}

func TestFieldCountFromDensity(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float32
		want    int
		compact bool
	}{
		{"desktop", 1000, 800, 80, false},
		{"wide", 1920, 1080, 207, false},
		{"compact", 390, 844, 21, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestField(t, 1)
			f.Reset(tt.w, tt.h, theme.Dark)
			if f.Count() != tt.want {
				t.Errorf("Count() = %d, want %d", f.Count(), tt.want)
			}
			if f.Compact() != tt.compact {
				t.Errorf("Compact() = %v, want %v", f.Compact(), tt.compact)
			}
		})
	}
}

// 1000x800 surface, 80 particles, pointer inactive, 100 fixed steps.
func TestFieldScenarioForwardDrift(t *testing.T) {
	f := newTestField(t, 7)
	f.Reset(1000, 800, theme.Dark)
	f.ClearPointer()

	prev := f.Particles()
	for frame := 0; frame < 100; frame++ {
		f.Step(16)
		cur := f.Particles()
		for i, p := range cur {
			if p.VX < 0.15 || p.VX > 0.8 {
				t.Fatalf("frame %d particle %d: vx=%f outside [0.15, 0.8]", frame, i, p.VX)
			}
			if p.VY < -0.5 || p.VY > 0.5 {
				t.Fatalf("frame %d particle %d: vy=%f outside [-0.5, 0.5]", frame, i, p.VY)
			}
			wrapped := p.X <= 0 && prev[i].X > 1000
			if !wrapped && p.X <= prev[i].X {
				t.Fatalf("frame %d particle %d moved backward: %f -> %f", frame, i, prev[i].X, p.X)
			}
		}
		prev = cur
	}
}

func TestFieldBounds(t *testing.T) {
	f := newTestField(t, 3)
	f.Reset(800, 600, theme.Light)

	for frame := 0; frame < 3000; frame++ {
		// Sweep the pointer through the field to exercise repulsion
		f.SetPointer(float32(frame%800), float32((frame*7)%600))
		f.Step(16)
		for i, p := range f.Particles() {
			if p.Y < 0 || p.Y > 600 {
				t.Fatalf("frame %d particle %d: y=%f outside [0, 600]", frame, i, p.Y)
			}
			if p.X > 800+20+1.6 {
				t.Fatalf("frame %d particle %d: x=%f beyond wrap margin", frame, i, p.X)
			}
			if p.VX < 0.15 || p.VX > 1.6 {
				t.Fatalf("frame %d particle %d: vx=%f outside [0.15, 1.6]", frame, i, p.VX)
			}
		}
	}
}

func TestFieldRepulsion(t *testing.T) {
	f := newTestField(t, 5)
	f.Reset(1000, 800, theme.Dark)

	// Place the pointer just above a particle; it should be pushed down
	target := f.Particles()[0]
	f.SetPointer(target.X, target.Y-20)
	f.Step(16)
	after := f.Particles()[0]

	if after.VY <= target.VY {
		t.Errorf("expected particle pushed away from pointer: vy %f -> %f", target.VY, after.VY)
	}
}

func TestFieldTouchDisablesRepulsion(t *testing.T) {
	a := newTestField(t, 11)
	b := newTestField(t, 11)
	a.Reset(1000, 800, theme.Dark)
	b.Reset(1000, 800, theme.Dark)

	b.SetTouch(true)
	p := a.Particles()[0]
	a.ClearPointer()
	b.SetPointer(p.X, p.Y-10)

	for i := 0; i < 10; i++ {
		a.Step(16)
		b.Step(16)
	}
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d differs with touch pointer: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestFieldScrollFactor(t *testing.T) {
	f := newTestField(t, 1)

	tests := []struct {
		scroll, vh, want float32
	}{
		{0, 800, 1},
		{400, 800, 0.5},
		{800, 800, 0.3},
		{5000, 800, 0.3},
		{100, 0, 1},
	}
	for _, tt := range tests {
		f.SetScroll(tt.scroll, tt.vh)
		if absf(f.scrollFactor-tt.want) > 1e-6 {
			t.Errorf("SetScroll(%f, %f) factor = %f, want %f", tt.scroll, tt.vh, f.scrollFactor, tt.want)
		}
	}
}

func TestFieldResizeKeepsParticles(t *testing.T) {
	f := newTestField(t, 2)
	f.Reset(1000, 800, theme.Dark)
	before := f.Particles()

	f.Resize(500, 400)
	if f.Count() != len(before) {
		t.Fatalf("Resize changed count: %d -> %d", len(before), f.Count())
	}
	after := f.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Resize moved particle %d", i)
		}
	}

	f.Step(16)
	for i, p := range f.Particles() {
		if p.Y > 400 {
			t.Fatalf("particle %d not clamped to new height: y=%f", i, p.Y)
		}
	}
}

func TestFieldThemePalette(t *testing.T) {
	f := newTestField(t, 4)
	rec := &surface.Recorder{}

	for _, th := range []theme.Theme{theme.Light, theme.Dark, theme.Dynamic} {
		if th == theme.Light {
			f.Reset(1000, 800, th)
		} else {
			f.SetTheme(th)
		}
		f.Step(16)
		rec.Begin()
		f.Draw(rec)
		rec.End()

		want := theme.Field(th).Color
		for kind, n := range map[surface.OpKind]int{surface.OpFillCircle: f.Count(), surface.OpLine: f.Links()} {
			cols := rec.Colors(kind)
			if n == 0 {
				continue
			}
			if len(cols) != 1 || cols[want] != n {
				t.Errorf("%v %v colors = %v, want only %v x%d", th, kind, cols, want, n)
			}
		}
	}
}

func TestFieldLinksRespectCap(t *testing.T) {
	f := newTestField(t, 9)
	f.Reset(1000, 800, theme.Dark)
	f.Step(16)

	rec := &surface.Recorder{}
	rec.Begin()
	f.Draw(rec)
	rec.End()

	if rec.Count(surface.OpLine) != f.Links() {
		t.Errorf("recorded %d lines, Links() = %d", rec.Count(surface.OpLine), f.Links())
	}
	if f.Links() > f.Count()*3 {
		t.Errorf("Links() = %d exceeds cap of 3 per particle", f.Links())
	}
	for _, op := range rec.Ops() {
		if op.Kind != surface.OpLine {
			continue
		}
		if absf(op.Pos.X-op.To.X) < 12 {
			t.Errorf("link with horizontal separation %f below minimum", absf(op.Pos.X-op.To.X))
		}
		if distance(op.Pos.X, op.Pos.Y, op.To.X, op.To.Y) >= 120 {
			t.Errorf("link longer than link distance")
		}
	}
}

func TestFieldLinksUseSteppedPositions(t *testing.T) {
	f := newTestField(t, 9)
	f.Reset(1000, 800, theme.Dark)
	for i := 0; i < 3; i++ {
		f.Step(16)
	}

	at := make(map[surface.Vec2]bool, f.Count())
	for _, p := range f.Particles() {
		at[surface.Vec2{X: p.X, Y: p.Y}] = true
	}

	rec := &surface.Recorder{}
	rec.Begin()
	f.Draw(rec)
	rec.End()

	if f.Links() == 0 {
		t.Fatal("no links drawn")
	}
	for _, op := range rec.Ops() {
		if op.Kind != surface.OpLine {
			continue
		}
		if !at[op.Pos] || !at[op.To] {
			t.Fatalf("link %v -> %v does not join two stepped particles", op.Pos, op.To)
		}
	}
}

func TestFieldReleaseDropsState(t *testing.T) {
	f := newTestField(t, 1)
	f.Reset(1000, 800, theme.Dark)
	f.Release()

	if f.Count() != 0 {
		t.Errorf("Count() after Release = %d", f.Count())
	}
	f.Step(16)
	f.SetTheme(theme.Light)
	if f.Count() != 0 {
		t.Error("released field should stay empty")
	}
}

func TestFieldRetuneKeepsParticles(t *testing.T) {
	f := newTestField(t, 5)
	f.Reset(1000, 800, theme.Dark)
	n := f.Count()

	cfg := testConfig(t).Field
	cfg.MaxVX = cfg.MinVX
	cfg.DensityArea = 1000
	f.Retune(cfg)
	f.Step(16)

	if f.Count() != n {
		t.Errorf("Retune re-seeded: %d particles, want %d", f.Count(), n)
	}
	for i, p := range f.Particles() {
		if absf(p.VX-float32(cfg.MinVX)) > 1e-6 {
			t.Fatalf("particle %d vx = %f, want clamped to %f", i, p.VX, cfg.MinVX)
		}
	}
}
