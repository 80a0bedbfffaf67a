package ui

import (
	"math"
	"math/rand"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/theme"
)

// SplashPhase is the splash screen's state.
type SplashPhase uint8

const (
	SplashLoading SplashPhase = iota
	SplashExiting
	SplashDone
)

func (p SplashPhase) String() string {
	switch p {
	case SplashLoading:
		return "loading"
	case SplashExiting:
		return "exiting"
	default:
		return "done"
	}
}

type splashDrop struct {
	x, y     float32 // Fraction of the screen
	scale    float32
	delay    float64 // ms
	duration float64 // ms
}

// Splash is the intro screen: cycling status messages over a rain of drops,
// then a shutter that slides up to reveal the page.
type Splash struct {
	cfg     config.SplashConfig
	elapsed float64 // ms
	drops   []splashDrop
}

// NewSplash creates a splash screen. A disabled splash starts done.
func NewSplash(cfg config.SplashConfig, rng *rand.Rand) *Splash {
	s := &Splash{cfg: cfg}
	if !cfg.Enabled {
		s.elapsed = cfg.LoadingMS + cfg.ExitMS
		return s
	}
	s.drops = make([]splashDrop, cfg.Drops)
	for i := range s.drops {
		s.drops[i] = splashDrop{
			x:        rng.Float32(),
			y:        rng.Float32(),
			scale:    0.3 + rng.Float32()*1.5,
			delay:    rng.Float64() * 5000,
			duration: 5000 + rng.Float64()*7000,
		}
	}
	return s
}

// Update advances the splash clock.
func (s *Splash) Update(dtMs float64) {
	if s.Phase() == SplashDone {
		return
	}
	s.elapsed += dtMs
}

// Phase reports the current phase.
func (s *Splash) Phase() SplashPhase {
	switch {
	case s.elapsed < s.cfg.LoadingMS:
		return SplashLoading
	case s.elapsed < s.cfg.LoadingMS+s.cfg.ExitMS:
		return SplashExiting
	default:
		return SplashDone
	}
}

// Done reports whether the page has taken over.
func (s *Splash) Done() bool {
	return s.Phase() == SplashDone
}

// Message returns the status line: the current message followed by 0-3 dots.
func (s *Splash) Message() string {
	msgs := s.cfg.Messages
	idx := int(s.elapsed/s.cfg.MessageMS) % len(msgs)
	dots := int(s.elapsed/s.cfg.DotMS) % 4
	return msgs[idx] + strings.Repeat(".", dots)
}

// Shutter returns how far the splash has slid up, in [0, 1].
func (s *Splash) Shutter() float64 {
	if s.elapsed <= s.cfg.LoadingMS {
		return 0
	}
	t := (s.elapsed - s.cfg.LoadingMS) / s.cfg.ShutterMS
	return shutterEase(min(t, 1))
}

// Draw renders the splash over the whole screen in theme t.
func (s *Splash) Draw(screenW, screenH float32, t theme.Theme) {
	if s.Done() {
		return
	}

	offset := -float32(s.Shutter()) * screenH
	bg := rl.Color{R: 10, G: 10, B: 10, A: 255}
	fg := rl.Color{R: 255, G: 255, B: 255, A: 242}
	sub := rl.Color{R: 255, G: 255, B: 255, A: 153}
	if t == theme.Light {
		bg = rl.White
		fg = rl.Color{A: 230}
		sub = rl.Color{A: 153}
	}
	accent := theme.Page(t).Accent

	rl.DrawRectangle(0, int32(offset), int32(screenW), int32(screenH), bg)

	for _, d := range s.drops {
		alpha, dy := d.sample(s.elapsed)
		if alpha <= 0 {
			continue
		}
		x := d.x * screenW
		y := (d.y+dy)*screenH + offset
		rl.DrawEllipse(int32(x), int32(y), 0.75*d.scale, 1.25*d.scale, rl.Color{R: 219, G: 234, B: 254, A: uint8(alpha * 0.3 * 255)})
	}

	// Title fades and grows in over 1.5s
	intro := float32(min(s.elapsed/1500, 1))
	titleSize := int32((0.9 + 0.1*intro) * max(24, min(56, screenW/20)))
	titleW := rl.MeasureText(s.cfg.Title, titleSize)
	fg.A = uint8(float32(fg.A) * intro)
	rl.DrawText(s.cfg.Title, int32(screenW/2)-titleW/2, int32(screenH/2+offset)-titleSize, titleSize, fg)
	rl.DrawRectangleGradientH(int32(screenW/2)-96, int32(screenH/2+offset)+12, 96, 2, theme.Fade(accent, 0), accent)
	rl.DrawRectangleGradientH(int32(screenW/2), int32(screenH/2+offset)+12, 96, 2, accent, theme.Fade(accent, 0))

	msg := strings.ToUpper(s.Message())
	msgW := rl.MeasureText(msg, 12)
	rl.DrawText(msg, int32(screenW/2)-msgW/2, int32(screenH-80+offset)-24, 12, sub)

	// Progress bar fills over twice the loading time
	barW := float32(256)
	fill := float32(min(s.elapsed/(2*s.cfg.LoadingMS), 1))
	barX := screenW/2 - barW/2
	barY := screenH - 80 + offset
	rl.DrawRectangle(int32(barX), int32(barY), int32(barW), 2, rl.Color{R: 255, G: 255, B: 255, A: 26})
	rl.DrawRectangleGradientH(int32(barX), int32(barY), int32(barW*fill), 2, theme.Fade(accent, 0.5), accent)
}

// sample returns a drop's opacity and vertical offset at time ms. Drops fade
// in, hold, then out while sliding 15% down, repeating after their delay.
func (d splashDrop) sample(ms float64) (alpha float32, dy float32) {
	if ms < d.delay {
		return 0, 0
	}
	t := math.Mod(ms-d.delay, d.duration) / d.duration
	switch {
	case t < 1.0/3:
		alpha = float32(t * 3 * 0.6)
	case t < 2.0/3:
		alpha = float32(0.6 - (t-1.0/3)*3*0.2)
	default:
		alpha = float32(0.4 - (t-2.0/3)*3*0.4)
	}
	return alpha, float32(t * 0.15)
}

// shutterEase is a steep ease-in-out: slow start, fast middle, soft landing.
func shutterEase(t float64) float64 {
	return cubicBezier(0.76, 0, 0.24, 1, t)
}

// cubicBezier evaluates the CSS timing function with control points
// (x1, y1), (x2, y2) at progress x.
func cubicBezier(x1, y1, x2, y2, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	bez := func(a, b, s float64) float64 {
		return 3*a*s*(1-s)*(1-s) + 3*b*s*s*(1-s) + s*s*s
	}
	// Bisection on the monotonic x(s)
	lo, hi := 0.0, 1.0
	s := x
	for i := 0; i < 40; i++ {
		s = (lo + hi) / 2
		if bez(x1, x2, s) < x {
			lo = s
		} else {
			hi = s
		}
	}
	return bez(y1, y2, s)
}
