// Package site composes the page: it owns every effect, routes input to them
// and draws them in order each frame.
package site

import (
	"fmt"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/animator"
	"github.com/pthm-cable/folio/camera"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/renderer"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/telemetry"
	"github.com/pthm-cable/folio/theme"
	"github.com/pthm-cable/folio/ui"
)

// Options configures a Site.
type Options struct {
	Seed           int64
	Theme          string // Overrides theme.initial when set
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	Touch          bool // Coarse pointer: no repulsion, no custom cursor
}

// Site holds the complete page state.
type Site struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	signal *theme.Signal
	loop   *animator.Loop
	camera *camera.Camera

	field  *systems.AmbientField
	glyph  *systems.GlyphRenderer
	radial *systems.RadialLayout
	cursor *systems.SpringCursor

	fieldFX  *systems.Effect
	glyphFX  *systems.Effect
	radialFX *systems.Effect
	cursorFX *systems.Effect
	effects  []*systems.Effect

	// Windowed only
	backdrop  *renderer.BackdropRenderer
	hud       *ui.HUD
	perfPanel *ui.PerfPanel
	controls  *ui.ControlsPanel

	overlays *ui.OverlayRegistry
	toggle   *ui.ThemeToggle
	frame    *ui.OverlayFrame
	splash   *ui.Splash
	unsub    func()

	// Telemetry
	perfCollector    *telemetry.PerfCollector
	collector        *telemetry.Collector
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	logStats         bool

	// State
	headless      bool
	touch         bool
	frameCount    int64
	nowMs         float64
	stepMs        float64
	width, height float32
}

// New creates a site sized to the configured screen. Effects start on the
// first Update.
func New(cfg *config.Config, opts Options) (*Site, error) {
	initial := cfg.Theme.Initial
	if opts.Theme != "" {
		initial = opts.Theme
	}
	t, err := theme.Parse(initial)
	if err != nil {
		return nil, fmt.Errorf("initial theme: %w", err)
	}

	fps := cfg.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	s := &Site{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		seed:     opts.Seed,
		signal:   theme.NewSignal(t),
		loop:     animator.NewLoop(),
		headless: opts.Headless,
		touch:    opts.Touch || cfg.Screen.TouchPrimary,
		stepMs:   1000 / float64(fps),
		width:    cfg.Derived.ScreenW32,
		height:   cfg.Derived.ScreenH32,
		logStats: opts.LogStats,
	}
	s.camera = camera.New(s.width, s.height, float32(cfg.Page.Viewports))

	s.perfCollector = telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow)
	s.collector = telemetry.NewCollector(statsWindow, 1/float64(fps))
	s.bookmarkDetector = telemetry.NewBookmarkDetector(10, s.stepMs)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	s.outputManager = om
	if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			om.Close()
			return nil, err
		}
	}

	s.overlays = ui.NewOverlayRegistry()
	s.toggle = ui.NewThemeToggle(s.signal, s.width-16, 16)
	s.frame = ui.NewOverlayFrame(float32(cfg.Page.OverlayW), float32(cfg.Page.OverlayH), float32(cfg.Page.OverlayInset), "About")
	s.splash = ui.NewSplash(cfg.Splash, s.rng)

	s.buildEffects()

	if !s.headless {
		s.backdrop = renderer.NewBackdropRenderer(int32(s.width), int32(s.height), t)
		s.hud = ui.NewHUD(t)
		s.perfPanel = ui.NewPerfPanel(int32(s.width)-260, 56, 250, t)
		s.controls = ui.NewControlsPanel(10, int32(s.height)-300, 220, t)
		s.unsub = s.signal.Subscribe(s.restyle)
	}

	return s, nil
}

// buildEffects creates the four simulations and binds each to its surface.
func (s *Site) buildEffects() {
	cfg := s.cfg
	interval := cfg.Derived.FrameInterval

	s.field = systems.NewAmbientField(cfg.Field, cfg.Animator.TimeStep, cfg.Screen.CompactWidth, s.rng)
	s.field.SetTouch(s.touch)
	s.fieldFX = systems.NewEffect(telemetry.PhaseField, s.field, s.newSurface(s.width, s.height), s.loop, interval, s.signal)

	s.glyph = systems.NewGlyphRenderer(cfg.Glyph, cfg.Screen.CompactWidth, s.rng)
	s.glyph.SetTouch(s.touch)
	gw, gh := s.glyph.SetViewport(s.width)
	s.glyphFX = systems.NewEffect(telemetry.PhaseGlyph, s.glyph, s.newSurface(gw, gh), s.loop, interval, s.signal)

	s.radial = systems.NewRadialLayout(cfg.Radial, s.rng)
	content := s.frame.Content(s.width, s.height)
	s.radialFX = systems.NewEffect(telemetry.PhaseRadial, s.radial, s.newSurface(content.Width, content.Height), s.loop, interval, s.signal)

	s.cursor = systems.NewSpringCursor(cfg.Cursor)
	s.cursor.SetTouch(s.touch)
	// The cursor tracks the pointer every display frame
	s.cursorFX = systems.NewEffect(telemetry.PhaseCursor, s.cursor, s.newSurface(s.width, s.height), s.loop, 0, s.signal)

	s.effects = []*systems.Effect{s.fieldFX, s.glyphFX, s.radialFX, s.cursorFX}
	for _, fx := range s.effects {
		fx.OnTick = s.perfCollector.AddPhase
	}
}

// newSurface returns a render texture surface, or a recording surface when headless.
func (s *Site) newSurface(w, h float32) surface.Surface {
	if s.headless {
		return surface.NewMemory(w, h)
	}
	ratio := float32(s.cfg.Screen.PixelRatio)
	if ratio <= 0 && rl.IsWindowReady() {
		ratio = rl.GetWindowScaleDPI().X
	}
	return renderer.NewTextureSurface(w, h, ratio)
}

// restyle applies a theme change to the raylib-side chrome.
func (s *Site) restyle(t theme.Theme) {
	s.backdrop.SetTheme(t)
	s.hud.SetTheme(t)
	s.perfPanel.SetTheme(t)
	s.controls.SetTheme(t)
}

// syncActivation starts and stops effects to match what is on screen: the
// banner while the hero region is visible, the radial graph while the about
// overlay is open, the cursor while enabled on a fine pointer.
func (s *Site) syncActivation() {
	s.fieldFX.SetActive(true)

	top, bottom := s.heroRegion()
	s.glyphFX.SetActive(s.camera.Visible(top, bottom))

	s.radialFX.SetActive(s.overlays.IsEnabled(ui.OverlayAbout))
	s.cursorFX.SetActive(!s.touch && s.overlays.IsEnabled(ui.OverlayCursor))
}

// heroRegion returns the hero banner's page y range.
func (s *Site) heroRegion() (top, bottom float32) {
	vh := s.camera.ViewportH
	return float32(s.cfg.Page.HeroTop) * vh, float32(s.cfg.Page.HeroBottom) * vh
}

// glyphOrigin returns the banner surface's top-left corner in screen space.
func (s *Site) glyphOrigin() (x, y float32) {
	gw, gh := s.glyphFX.Surface().Size()
	top, bottom := s.heroRegion()
	x = (s.width - gw) / 2
	y = s.camera.PageToScreen(top + (bottom-top-gh)/2)
	return x, y
}

// Theme returns the current theme.
func (s *Site) Theme() theme.Theme {
	return s.signal.Get()
}

// Frame returns the number of display frames run.
func (s *Site) Frame() int64 {
	return s.frameCount
}

// Effects returns the page's effects in draw order.
func (s *Site) Effects() []*systems.Effect {
	return s.effects
}

// Overlays returns the overlay registry.
func (s *Site) Overlays() *ui.OverlayRegistry {
	return s.overlays
}

// Camera returns the page scroll viewport.
func (s *Site) Camera() *camera.Camera {
	return s.camera
}

// Unload stops every effect and releases GPU resources and output files.
func (s *Site) Unload() {
	for _, fx := range s.effects {
		fx.Deactivate()
		if ts, ok := fx.Surface().(*renderer.TextureSurface); ok {
			ts.Unload()
		}
	}
	if s.unsub != nil {
		s.unsub()
		s.unsub = nil
	}
	if s.backdrop != nil {
		s.backdrop.Unload()
	}
	if s.outputManager != nil {
		s.outputManager.Close()
		s.outputManager = nil
	}
}
