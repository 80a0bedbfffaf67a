package site

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/ui"
)

// handleInput polls raylib for window, pointer, wheel and key events.
func (s *Site) handleInput() {
	s.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		s.HandleKey(key)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.ScrollBy(-wheel * float32(s.cfg.Page.ScrollStep))
	}
	if rl.IsKeyPressed(rl.KeyPageDown) {
		s.ScrollBy(s.height * 0.9)
	}
	if rl.IsKeyPressed(rl.KeyPageUp) {
		s.ScrollBy(-s.height * 0.9)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		s.camera.Reset()
		s.field.SetScroll(s.camera.ScrollY, s.camera.ViewportH)
	}

	if rl.IsCursorOnScreen() {
		m := rl.GetMousePosition()
		s.PointerMoved(m.X, m.Y)
	} else {
		s.PointerLeft()
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (s *Site) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	s.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// Resize propagates a new viewport size. Only bounds change; no effect is
// re-seeded.
func (s *Site) Resize(w, h float32) {
	if w <= 0 || h <= 0 || (w == s.width && h == s.height) {
		return
	}
	s.width, s.height = w, h

	s.camera.Resize(w, h)
	s.field.SetScroll(s.camera.ScrollY, s.camera.ViewportH)
	s.resizeEffect(s.fieldFX, w, h)
	s.resizeEffect(s.cursorFX, w, h)

	gw, gh := s.glyph.SetViewport(w)
	s.resizeEffect(s.glyphFX, gw, gh)

	content := s.frame.Content(w, h)
	s.resizeEffect(s.radialFX, content.Width, content.Height)

	s.toggle.SetPosition(w-16, 16)
	if s.backdrop != nil {
		s.backdrop.Resize(w, h)
		s.perfPanel.SetPosition(int32(w)-260, 56)
		s.controls.SetPosition(10, int32(h)-300)
	}
}

func (s *Site) resizeEffect(fx *systems.Effect, w, h float32) {
	if err := fx.Resize(w, h); err != nil {
		slog.Debug("resize failed", "effect", fx.Name(), "error", err)
	}
}

// HandleKey applies a key binding: theme keys first, then overlay toggles.
func (s *Site) HandleKey(key int32) {
	if s.toggle.HandleKey(key) {
		return
	}
	if id, on, ok := s.overlays.HandleKeyPress(key); ok {
		slog.Debug("overlay toggled", "overlay", string(id), "enabled", on)
	}
}

// PointerMoved routes a screen-space pointer position to every effect in its
// own surface coordinates. Ignored until the splash is done.
func (s *Site) PointerMoved(x, y float32) {
	if !s.splash.Done() {
		return
	}
	s.field.SetPointer(x, y)
	s.cursor.SetPointer(x, y)

	gx, gy := s.glyphOrigin()
	gw, gh := s.glyphFX.Surface().Size()
	lx, ly := x-gx, y-gy
	if lx >= 0 && ly >= 0 && lx < gw && ly < gh && !s.overlays.IsEnabled(ui.OverlayAbout) {
		s.glyph.SetPointer(lx, ly)
	} else {
		s.glyph.ClearPointer()
	}
}

// PointerLeft parks the pointer offscreen for every effect.
func (s *Site) PointerLeft() {
	s.field.ClearPointer()
	s.glyph.ClearPointer()
	s.cursor.ClearPointer()
}

// ScrollBy scrolls the page by dy pixels. Ignored until the splash is done
// and while the about overlay is open.
func (s *Site) ScrollBy(dy float32) {
	if !s.splash.Done() || s.overlays.IsEnabled(ui.OverlayAbout) {
		return
	}
	s.camera.Scroll(dy)
	s.field.SetScroll(s.camera.ScrollY, s.camera.ViewportH)
}
