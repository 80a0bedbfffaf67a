package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

// cursorFPS is the spring integration rate; longer frames take several steps.
const cursorFPS = 60

// SpringCursor is a custom pointer that follows the real one on a critically
// damped spring. It is hidden on touch-primary devices.
type SpringCursor struct {
	cfg    config.CursorConfig
	spring harmonica.Spring

	x, y, vx, vy float64
	target       surface.Pointer
	placed       bool
	touch        bool
	running      bool
	style        theme.CursorStyle
}

// NewSpringCursor creates a cursor from stiffness, damping and mass.
func NewSpringCursor(cfg config.CursorConfig) *SpringCursor {
	freq, ratio := SpringParams(cfg.Stiffness, cfg.Damping, cfg.Mass)
	return &SpringCursor{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(cursorFPS), freq, ratio),
		target: surface.NoPointer(),
	}
}

// SpringParams converts a mass-spring-damper to angular frequency and
// damping ratio.
func SpringParams(stiffness, damping, mass float64) (angularFreq, dampingRatio float64) {
	if mass <= 0 || stiffness <= 0 {
		return 0, 1
	}
	angularFreq = math.Sqrt(stiffness / mass)
	dampingRatio = damping / (2 * math.Sqrt(stiffness*mass))
	return angularFreq, dampingRatio
}

// SetTouch hides the cursor on touch-primary devices.
func (s *SpringCursor) SetTouch(touch bool) {
	s.touch = touch
}

// Reset clears motion state. The cursor appears at the first pointer position.
func (s *SpringCursor) Reset(_, _ float32, t theme.Theme) {
	s.x, s.y, s.vx, s.vy = 0, 0, 0, 0
	s.placed = false
	s.style = theme.Cursor(t)
	s.running = true
}

// SetTheme recolors the cursor.
func (s *SpringCursor) SetTheme(t theme.Theme) {
	s.style = theme.Cursor(t)
}

// Resize does nothing; the cursor lives in screen space.
func (s *SpringCursor) Resize(_, _ float32) {}

// Release stops drawing until the next Reset.
func (s *SpringCursor) Release() {
	s.running = false
}

// SetPointer sets the spring target.
func (s *SpringCursor) SetPointer(x, y float32) {
	if s.touch {
		return
	}
	s.target.Set(x, y)
}

// ClearPointer hides the cursor until the pointer returns.
func (s *SpringCursor) ClearPointer() {
	s.target.Clear()
	s.placed = false
}

// Position returns the current cursor position.
func (s *SpringCursor) Position() (x, y float32) {
	return float32(s.x), float32(s.y)
}

// Visible reports whether the cursor is drawn.
func (s *SpringCursor) Visible() bool {
	return s.running && !s.touch && s.placed
}

// Step moves the cursor toward the pointer, one spring step per 1/60 s of
// elapsed time.
func (s *SpringCursor) Step(elapsedMs float64) {
	if !s.running || s.touch || !s.target.Active() {
		return
	}
	tx, ty := float64(s.target.X), float64(s.target.Y)
	if !s.placed {
		s.x, s.y, s.vx, s.vy = tx, ty, 0, 0
		s.placed = true
		return
	}

	steps := int(math.Round(elapsedMs * cursorFPS / 1000))
	steps = max(1, min(steps, 8))
	for i := 0; i < steps; i++ {
		s.x, s.vx = s.spring.Update(s.x, s.vx, tx)
		s.y, s.vy = s.spring.Update(s.y, s.vy, ty)
	}
}

// Draw renders the arrow with a white outline and a soft glow.
func (s *SpringCursor) Draw(c surface.Canvas) {
	c.Clear(transparent)
	if !s.Visible() {
		return
	}

	size := float32(s.cfg.Size)
	x, y := float32(s.x)-2, float32(s.y)-2
	tip := surface.Vec2{X: x, Y: y}

	c.FillCircle(surface.Vec2{X: x + size*0.3, Y: y + size*0.35}, size*0.6, theme.Fade(s.style.Glow, float64(s.style.Glow.A)/255*0.4))

	// Outline first, then the body inset by one pixel
	c.FillTriangle(tip, surface.Vec2{X: x, Y: y + size}, surface.Vec2{X: x + size*0.72, Y: y + size*0.66}, s.style.Outline)
	c.FillTriangle(
		surface.Vec2{X: x + 1.2, Y: y + 2.4},
		surface.Vec2{X: x + 1.2, Y: y + size - 2.2},
		surface.Vec2{X: x + size*0.72 - 2.6, Y: y + size*0.66 - 1},
		s.style.Main,
	)
}
