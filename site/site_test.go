package site

import (
	"os"
	"path/filepath"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/telemetry"
	"github.com/pthm-cable/folio/theme"
	"github.com/pthm-cable/folio/ui"
)

func testConfig(t *testing.T, splash bool) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg.Splash.Enabled = splash
	return cfg
}

func newHeadless(t *testing.T, cfg *config.Config, opts Options) *Site {
	t.Helper()
	opts.Headless = true
	if opts.Seed == 0 {
		opts.Seed = 7
	}
	s, err := New(cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Unload)
	return s
}

func run(s *Site, frames int) {
	for i := 0; i < frames; i++ {
		s.UpdateHeadless()
	}
}

func TestHeadlessStartsPageEffects(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{})
	run(s, 3)

	if !s.fieldFX.Active() || !s.glyphFX.Active() || !s.cursorFX.Active() {
		t.Fatalf("field=%v glyph=%v cursor=%v, want all active", s.fieldFX.Active(), s.glyphFX.Active(), s.cursorFX.Active())
	}
	if s.radialFX.Active() {
		t.Error("radial graph running with the about overlay closed")
	}

	// floor(1280*800/10000)
	if got := s.field.Count(); got != 102 {
		t.Errorf("field particles = %d, want 102", got)
	}
	if s.glyph.Count() == 0 {
		t.Error("banner seeded no particles")
	}
	if got := s.fieldFX.Animator().Executed(); got != 3 {
		t.Errorf("field executed %d frames, want 3", got)
	}
	if s.Frame() != 3 {
		t.Errorf("Frame() = %d, want 3", s.Frame())
	}
}

func TestUnknownThemeRejected(t *testing.T) {
	_, err := New(testConfig(t, false), Options{Headless: true, Theme: "sepia"})
	if err == nil {
		t.Fatal("New accepted an unknown theme")
	}
}

func TestScrollStopsBanner(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{})
	run(s, 2)

	// Hero spans 0.12-0.42 of the viewport height
	s.ScrollBy(s.height * 0.5)
	run(s, 1)
	if s.glyphFX.Active() {
		t.Fatal("banner still running with the hero region scrolled away")
	}
	if s.glyph.Count() != 0 {
		t.Errorf("banner kept %d particles after deactivation", s.glyph.Count())
	}

	s.ScrollBy(-s.height)
	run(s, 1)
	if !s.glyphFX.Active() || s.glyph.Count() == 0 {
		t.Error("banner did not restart when scrolled back into view")
	}
}

func TestScrollCalmsField(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{})
	s.ScrollBy(10 * s.height)
	if got, want := s.camera.ScrollY, s.camera.MaxScroll(); got != want {
		t.Errorf("ScrollY = %g, want clamped to %g", got, want)
	}
	if got := s.scrollProgress(); got != 1 {
		t.Errorf("scrollProgress() = %g, want 1", got)
	}
}

func TestAboutOverlayRunsRadial(t *testing.T) {
	cfg := testConfig(t, false)
	s := newHeadless(t, cfg, Options{})
	run(s, 1)

	s.HandleKey(rl.KeyA)
	run(s, 30)
	if !s.radialFX.Active() {
		t.Fatal("radial graph not running with the overlay open")
	}
	if got := s.radial.Count(); got != len(cfg.Radial.Nodes) {
		t.Errorf("radial nodes = %d, want %d", got, len(cfg.Radial.Nodes))
	}
	if spread := s.radialSpread(); spread < cfg.Radial.MinSeparation-1e-3 {
		t.Errorf("radial spread %g below the minimum separation %g", spread, cfg.Radial.MinSeparation)
	}

	// Scrolling is locked while the overlay is open
	s.ScrollBy(200)
	if s.camera.ScrollY != 0 {
		t.Errorf("page scrolled to %g under the overlay", s.camera.ScrollY)
	}

	s.HandleKey(rl.KeyA)
	run(s, 1)
	if s.radialFX.Active() || s.radial.Count() != 0 {
		t.Error("radial graph kept running after the overlay closed")
	}
	if s.radialSpread() != 0 {
		t.Error("spread reported for a stopped graph")
	}
}

func TestThemeKeys(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{Theme: "dark"})
	run(s, 1)

	tests := []struct {
		key  int32
		want theme.Theme
	}{
		{rl.KeyOne, theme.Light},
		{rl.KeyThree, theme.Dynamic},
		{rl.KeyT, theme.Light},
		{rl.KeyTwo, theme.Dark},
	}
	for _, tt := range tests {
		s.HandleKey(tt.key)
		if got := s.Theme(); got != tt.want {
			t.Errorf("after key %d theme = %v, want %v", tt.key, got, tt.want)
		}
	}

	// The field re-seeds on a theme change and keeps its density
	run(s, 1)
	if got := s.field.Count(); got != 102 {
		t.Errorf("field particles after theme change = %d, want 102", got)
	}
}

func TestSplashBlocksPointer(t *testing.T) {
	cfg := testConfig(t, true)
	s := newHeadless(t, cfg, Options{})
	run(s, 1)

	s.PointerMoved(200, 200)
	run(s, 2)
	if s.cursor.Visible() {
		t.Fatal("cursor followed the pointer during the splash")
	}

	frames := int((cfg.Splash.LoadingMS+cfg.Splash.ExitMS)/s.stepMs) + 2
	run(s, frames)
	if !s.SplashDone() {
		t.Fatalf("splash not done after %.0f ms", s.NowMs())
	}

	s.PointerMoved(200, 200)
	run(s, 1)
	if !s.cursor.Visible() {
		t.Error("cursor hidden after the splash handed over")
	}
	if x, y := s.cursor.Position(); x != 200 || y != 200 {
		t.Errorf("cursor first placed at (%g, %g), want (200, 200)", x, y)
	}
}

func TestTouchDisablesCursor(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{Touch: true})
	s.PointerMoved(100, 100)
	run(s, 2)
	if s.cursorFX.Active() {
		t.Error("cursor effect active on a touch-primary device")
	}
	if s.effectCount(s.cursorFX) != 0 {
		t.Error("cursor counted as visible")
	}
}

func TestTouchLeavesBannerStill(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{Touch: true})
	run(s, 2)

	pts := s.glyph.Particles()
	if len(pts) == 0 {
		t.Fatal("banner seeded no particles")
	}
	p := pts[len(pts)/2]
	gx, gy := s.glyphOrigin()
	s.PointerMoved(gx+p.AnchorX+5, gy+p.AnchorY)
	run(s, 5)

	if d := s.glyph.MaxDisplacement(); d > 0.01 {
		t.Errorf("tap scattered the banner on a touch device, max displacement %f", d)
	}
}

func TestLoopFramesMatchPageFrames(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{})
	run(s, 4)
	if got := s.loop.Frames(); got != uint64(s.Frame()) {
		t.Errorf("loop ran %d frames, page counted %d", got, s.Frame())
	}
}

func TestCursorOverlayToggle(t *testing.T) {
	s := newHeadless(t, testConfig(t, false), Options{})
	run(s, 1)
	if !s.Overlays().IsEnabled(ui.OverlayCursor) {
		t.Fatal("cursor overlay should start enabled")
	}
	s.HandleKey(rl.KeyM)
	run(s, 1)
	if s.cursorFX.Active() {
		t.Error("cursor effect still active with its overlay off")
	}
}

func TestResizeKeepsParticles(t *testing.T) {
	cfg := testConfig(t, false)
	s := newHeadless(t, cfg, Options{})
	run(s, 2)
	before := s.field.Count()

	s.Resize(600, 800)
	run(s, 1)
	if got := s.field.Count(); got != before {
		t.Errorf("field re-seeded on resize: %d particles, want %d", got, before)
	}
	if w, h := s.fieldFX.Surface().Size(); w != 600 || h != 800 {
		t.Errorf("field surface %gx%g, want 600x800", w, h)
	}

	// Compact banner: min(600-40, 400) x height_compact
	w, h := s.glyphFX.Surface().Size()
	if w != 400 || h != float32(cfg.Glyph.HeightCompact) {
		t.Errorf("banner surface %gx%g, want 400x%g", w, h, cfg.Glyph.HeightCompact)
	}
}

func TestHeadlessWritesTelemetry(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := testConfig(t, false)
	s, err := New(cfg, Options{Headless: true, Seed: 3, OutputDir: dir, StatsWindowSec: 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Two one-second windows at 60 fps
	run(s, 120)
	s.Unload()

	f, err := os.Open(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("open frames.csv: %v", err)
	}
	defer f.Close()

	rows, err := telemetry.ReadStats(f)
	if err != nil {
		t.Fatalf("ReadStats: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d windows, want 2", len(rows))
	}
	first := rows[0]
	if first.WindowEndFrame != 60 || first.Theme != "dark" {
		t.Errorf("first window end=%d theme=%q, want 60 dark", first.WindowEndFrame, first.Theme)
	}
	if first.FieldParticles != 102 || first.GlyphParticles == 0 {
		t.Errorf("particles field=%d glyph=%d", first.FieldParticles, first.GlyphParticles)
	}
	// Field, banner and cursor each run every frame
	if first.Executed != 3*60 || first.Skipped != 0 {
		t.Errorf("executed=%d skipped=%d, want 180 and 0", first.Executed, first.Skipped)
	}
	if rows[1].Executed != 3*60 {
		t.Errorf("second window executed=%d, want a 180 frame delta", rows[1].Executed)
	}

	for _, name := range []string{"perf.csv", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}
