package ui

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/folio/config"
)

func testSplash(t *testing.T) *Splash {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return NewSplash(cfg.Splash, rand.New(rand.NewSource(1)))
}

func TestSplashPhases(t *testing.T) {
	tests := []struct {
		at   float64
		want SplashPhase
	}{
		{0, SplashLoading},
		{2999, SplashLoading},
		{3000, SplashExiting},
		{3999, SplashExiting},
		{4000, SplashDone},
	}
	for _, tt := range tests {
		s := testSplash(t)
		s.Update(tt.at)
		if got := s.Phase(); got != tt.want {
			t.Errorf("Phase() at %vms = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestSplashMessages(t *testing.T) {
	tests := []struct {
		at   float64
		want string
	}{
		{0, "Initializing System"},
		{499, "Initializing System"},
		{500, "Initializing System."},
		{800, "Loading Assets."},
		{1600, "Optimizing Performance..."},
		{2000, "Optimizing Performance"},
		{2400, "Ready for Launch"},
		{3200, "Initializing System.."},
	}
	for _, tt := range tests {
		s := testSplash(t)
		s.Update(tt.at)
		if got := s.Message(); got != tt.want {
			t.Errorf("Message() at %vms = %q, want %q", tt.at, got, tt.want)
		}
	}
}

func TestSplashShutter(t *testing.T) {
	s := testSplash(t)
	s.Update(3000)
	if s.Shutter() != 0 {
		t.Errorf("Shutter() at exit start = %v, want 0", s.Shutter())
	}

	prev := 0.0
	for i := 0; i < 10; i++ {
		s.Update(100)
		sh := s.Shutter()
		if sh < prev {
			t.Fatalf("shutter moved back: %v -> %v", prev, sh)
		}
		prev = sh
	}
	if !s.Done() {
		t.Error("splash should be done after the exit phase")
	}
	// Page takes over before the curve finishes
	if prev < 0.9 || prev >= 1 {
		t.Errorf("shutter at handover = %v, want in [0.9, 1)", prev)
	}

	s.Update(10000)
	if s.elapsed != 4000 {
		t.Errorf("clock kept running after done: %v", s.elapsed)
	}
}

func TestSplashDisabled(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Splash.Enabled = false
	if s := NewSplash(cfg.Splash, rand.New(rand.NewSource(1))); !s.Done() {
		t.Error("disabled splash should start done")
	}
}

func TestCubicBezier(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
	}
	for _, tt := range tests {
		if got := cubicBezier(0.76, 0, 0.24, 1, tt.x); math.Abs(got-tt.want) > 1e-6 {
			t.Errorf("cubicBezier(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
	// Slow start
	if got := shutterEase(0.2); got > 0.1 {
		t.Errorf("shutterEase(0.2) = %v, want a slow start", got)
	}
	// Linear control points give the identity
	if got := cubicBezier(1.0/3, 1.0/3, 2.0/3, 2.0/3, 0.3); math.Abs(got-0.3) > 1e-6 {
		t.Errorf("linear bezier(0.3) = %v", got)
	}
}

func TestSplashDrops(t *testing.T) {
	d := splashDrop{delay: 1000, duration: 3000}
	if a, _ := d.sample(500); a != 0 {
		t.Errorf("drop visible before its delay: %v", a)
	}
	if a, _ := d.sample(2000); math.Abs(float64(a)-0.6) > 1e-3 {
		t.Errorf("drop alpha at peak = %v, want 0.6", a)
	}
	if a, dy := d.sample(3999); a > 0.01 || dy < 0.14 {
		t.Errorf("drop at end of cycle alpha=%v dy=%v", a, dy)
	}
}
