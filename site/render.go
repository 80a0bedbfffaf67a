package site

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/renderer"
	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/telemetry"
	"github.com/pthm-cable/folio/theme"
	"github.com/pthm-cable/folio/ui"
)

// Draw renders the page: backdrop, field, banner, about overlay, chrome,
// cursor, and the splash on top.
func (s *Site) Draw() {
	s.perfCollector.StartPhase(telemetry.PhasePage)
	t := s.signal.Get()
	page := theme.Page(t)

	rl.BeginDrawing()
	rl.ClearBackground(page.Background)

	s.backdrop.Draw(float32(s.nowMs/1000), s.scrollProgress())
	composite(s.fieldFX, 0, 0)
	if s.glyphFX.Active() {
		gx, gy := s.glyphOrigin()
		composite(s.glyphFX, gx, gy)
	}
	s.drawScrollbar(page)

	if s.overlays.IsEnabled(ui.OverlayAbout) {
		s.frame.DrawBack(s.width, s.height, t)
		content := s.frame.Content(s.width, s.height)
		composite(s.radialFX, content.X, content.Y)
		if s.frame.DrawFront(s.width, s.height, t) {
			s.overlays.SetEnabled(ui.OverlayAbout, false)
		}
	}

	s.drawChrome(t)
	s.syncOSCursor()
	composite(s.cursorFX, 0, 0)
	s.splash.Draw(s.width, s.height, t)

	rl.EndDrawing()

	s.perfCollector.EndTick()
	s.perfCollector.RecordFrame()
	s.finishFrame(float64(rl.GetFrameTime()) * 1000)
}

// composite draws an effect's texture at (x, y) if it has one.
func composite(fx *systems.Effect, x, y float32) {
	if !fx.Active() {
		return
	}
	if ts, ok := fx.Surface().(*renderer.TextureSurface); ok {
		ts.Draw(x, y, 255)
	}
}

// drawChrome draws the theme toggle and whichever debug panels are enabled.
func (s *Site) drawChrome(t theme.Theme) {
	if !s.splash.Done() {
		return
	}

	if s.overlays.IsEnabled(ui.OverlayHUD) {
		s.hud.Draw(s.hudData(t))
	}
	if s.overlays.IsEnabled(ui.OverlayPerf) {
		stats := s.perfCollector.Stats()
		s.perfPanel.Draw(ui.PerfPanelData{
			PhaseAvg: stats.PhaseAvg,
			Total:    stats.AvgTickDuration,
			Phases:   telemetry.Phases,
		})
	}
	if s.overlays.IsEnabled(ui.OverlayControls) {
		s.controls.Draw(s.overlays)
	}

	s.toggle.Draw()
}

func (s *Site) hudData(t theme.Theme) ui.HUDData {
	data := ui.HUDData{
		Title:       s.cfg.Screen.Title,
		Theme:       t,
		FPS:         rl.GetFPS(),
		Frames:      s.loop.Frames(),
		Scroll:      s.scrollProgress(),
		Compact:     s.cfg.Compact(s.width),
		Links:       s.field.Links(),
		Highlighted: s.glyph.Highlighted(),
	}
	for _, fx := range s.effects {
		anim := fx.Animator()
		data.Effects = append(data.Effects, ui.EffectStatus{
			Name:     fx.Name(),
			Active:   fx.Active(),
			Executed: anim.Executed(),
			Skipped:  anim.Skipped(),
			Count:    s.effectCount(fx),
		})
	}
	return data
}

// drawScrollbar draws a thin page position indicator on the right edge.
func (s *Site) drawScrollbar(page theme.PageStyle) {
	if s.camera.MaxScroll() <= 0 {
		return
	}
	trackH := s.height - 80
	thumbH := max(trackH*s.camera.ViewportH/s.camera.PageHeight(), 24)
	y := 40 + (trackH-thumbH)*s.scrollProgress()
	rl.DrawRectangleRounded(rl.Rectangle{X: s.width - 6, Y: y, Width: 3, Height: thumbH}, 1, 4, theme.Fade(page.Text, 0.25))
}

// syncOSCursor hides the system pointer while the spring cursor replaces it.
func (s *Site) syncOSCursor() {
	want := s.cursor.Visible()
	if want && !rl.IsCursorHidden() {
		rl.HideCursor()
	} else if !want && rl.IsCursorHidden() {
		rl.ShowCursor()
	}
}

// scrollProgress returns the page position in [0, 1].
func (s *Site) scrollProgress() float32 {
	m := s.camera.MaxScroll()
	if m <= 0 {
		return 0
	}
	return s.camera.ScrollY / m
}

// effectCount returns the number of particles or nodes an effect holds.
func (s *Site) effectCount(fx *systems.Effect) int {
	switch fx {
	case s.fieldFX:
		return s.field.Count()
	case s.glyphFX:
		return s.glyph.Count()
	case s.radialFX:
		return s.radial.Count()
	case s.cursorFX:
		if s.cursor.Visible() {
			return 1
		}
	}
	return 0
}
