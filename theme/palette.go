package theme

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hex parses a #RRGGBB string into an opaque color. Invalid input yields magenta.
func Hex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{R: 255, B: 255, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Fade returns c with its alpha set to a (0..1).
func Fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}

// Blend mixes a and b in RGB space, t=0 giving a. Alpha is interpolated linearly.
func Blend(a, b color.RGBA, t float64) color.RGBA {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// FieldStyle is the ambient field's per-theme look.
type FieldStyle struct {
	Color      color.RGBA // Particle and link base color
	Opacity    float64    // Particle fill opacity before the vertical fade
	LinkAlpha  float64    // Scale applied to the distance-based link opacity
	LinkWidth  float32
	SizeBase   float64 // Particle radius = SizeBase + rand*SizeSpread
	SizeSpread float64
}

// Field returns the ambient field style for t.
func Field(t Theme) FieldStyle {
	s := FieldStyle{
		Opacity:    0.45,
		LinkAlpha:  0.35,
		LinkWidth:  0.6,
		SizeBase:   0.6,
		SizeSpread: 1.3,
	}
	switch t {
	case Dynamic:
		s.Color = color.RGBA{R: 217, G: 70, B: 239, A: 255}
	case Light:
		s.Color = color.RGBA{R: 37, G: 99, B: 235, A: 255}
		s.Opacity = 0.55
		s.LinkAlpha = 0.6
		s.LinkWidth = 0.8
		s.SizeBase = 0.9
		s.SizeSpread = 1.8
	default:
		s.Color = color.RGBA{R: 0, G: 229, B: 255, A: 255}
	}
	return s
}

// GlyphStyle is the glyph banner's per-theme look.
type GlyphStyle struct {
	Palette     []color.RGBA // Resting particle colors, assigned at random
	Pulse       color.RGBA   // Highlighted particle color
	IdleOpacity float64
}

var (
	glyphDynamic = []string{"#D946EF", "#8B5CF6", "#06B6D4", "#10B981", "#F59E0B"}
	glyphDark    = []string{"#7DF9FF", "#00E5FF", "#00B8D4"}
	glyphLight   = []string{"#2563EB", "#1D4ED8", "#1E40AF"}
)

// Glyph returns the glyph banner style for t.
func Glyph(t Theme) GlyphStyle {
	switch t {
	case Dynamic:
		return GlyphStyle{Palette: hexAll(glyphDynamic), Pulse: Hex("#FFFFFF"), IdleOpacity: 0.6}
	case Light:
		return GlyphStyle{Palette: hexAll(glyphLight), Pulse: Hex("#2563EB"), IdleOpacity: 0.5}
	default:
		return GlyphStyle{Palette: hexAll(glyphDark), Pulse: Hex("#7DF9FF"), IdleOpacity: 0.35}
	}
}

// RadialStyle is the about overlay graph's per-theme look.
type RadialStyle struct {
	Nodes      []color.RGBA // Node colors, cycled by node index
	EdgeFrom   color.RGBA   // Edge gradient at the center node
	EdgeTo     color.RGBA   // Edge gradient at the outer node
	EdgeGlow   color.RGBA   // Dashed glow along each edge
	Label      color.RGBA
	BackdropTL color.RGBA // Overlay background gradient, top-left corner
	BackdropBR color.RGBA // Overlay background gradient, bottom-right corner
}

var (
	radialDark    = []string{"#006CFF", "#00C8FF", "#4D5BFF", "#00D9FF"}
	radialLight   = []string{"#2563EB", "#1D4ED8", "#3B82F6", "#1E40AF"}
	radialDynamic = []string{"#D946EF", "#8B5CF6", "#06B6D4", "#10B981"}
)

// Radial returns the radial graph style for t.
func Radial(t Theme) RadialStyle {
	s := RadialStyle{
		Nodes:      hexAll(radialDark),
		EdgeFrom:   color.RGBA{R: 0, G: 108, B: 255, A: 255},
		EdgeTo:     color.RGBA{R: 77, G: 91, B: 255, A: 255},
		EdgeGlow:   color.RGBA{R: 0, G: 200, B: 255, A: 255},
		Label:      Fade(color.RGBA{R: 255, G: 255, B: 255}, 0.9),
		BackdropTL: Fade(color.RGBA{R: 15, G: 23, B: 42}, 0.9),
		BackdropBR: Fade(color.RGBA{R: 25, G: 35, B: 60}, 0.95),
	}
	switch t {
	case Light:
		s.Nodes = hexAll(radialLight)
		s.EdgeFrom = color.RGBA{R: 37, G: 99, B: 235, A: 255}
		s.EdgeTo = color.RGBA{R: 30, G: 64, B: 175, A: 255}
		s.EdgeGlow = color.RGBA{R: 59, G: 130, B: 246, A: 255}
		s.Label = Fade(color.RGBA{R: 15, G: 23, B: 42}, 0.9)
		s.BackdropTL = Fade(color.RGBA{R: 248, G: 250, B: 252}, 0.95)
		s.BackdropBR = Fade(color.RGBA{R: 226, G: 232, B: 240}, 0.95)
	case Dynamic:
		s.Nodes = hexAll(radialDynamic)
		s.EdgeFrom = color.RGBA{R: 217, G: 70, B: 239, A: 255}
		s.EdgeTo = color.RGBA{R: 139, G: 92, B: 246, A: 255}
		s.EdgeGlow = color.RGBA{R: 6, G: 182, B: 212, A: 255}
	}
	return s
}

// CursorStyle is the custom cursor's per-theme look.
type CursorStyle struct {
	Main    color.RGBA
	Glow    color.RGBA
	Outline color.RGBA
}

// Cursor returns the cursor style for t.
func Cursor(t Theme) CursorStyle {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	switch t {
	case Dynamic:
		return CursorStyle{Main: Hex("#D946EF"), Glow: Fade(Hex("#D946EF"), 0.5), Outline: white}
	case Light:
		return CursorStyle{Main: Hex("#2563EB"), Glow: Fade(Hex("#2563EB"), 0.4), Outline: white}
	default:
		return CursorStyle{Main: Hex("#00E5FF"), Glow: Fade(Hex("#00E5FF"), 0.5), Outline: white}
	}
}

// PageStyle holds the page-level colors drawn behind and over the effects.
type PageStyle struct {
	Background color.RGBA
	Text       color.RGBA
	Accent     color.RGBA
	Scrim      color.RGBA // Dims the page behind the about overlay
}

// Page returns the page colors for t.
func Page(t Theme) PageStyle {
	switch t {
	case Light:
		return PageStyle{
			Background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Text:       color.RGBA{R: 15, G: 23, B: 42, A: 255},
			Accent:     Hex("#2563EB"),
			Scrim:      Fade(color.RGBA{}, 0.5),
		}
	case Dynamic:
		return PageStyle{
			Background: color.RGBA{A: 255},
			Text:       color.RGBA{R: 245, G: 245, B: 255, A: 255},
			Accent:     Hex("#D946EF"),
			Scrim:      Fade(color.RGBA{}, 0.5),
		}
	default:
		return PageStyle{
			Background: color.RGBA{A: 255},
			Text:       color.RGBA{R: 230, G: 240, B: 255, A: 255},
			Accent:     Hex("#00E5FF"),
			Scrim:      Fade(color.RGBA{}, 0.5),
		}
	}
}

func hexAll(in []string) []color.RGBA {
	out := make([]color.RGBA, len(in))
	for i, s := range in {
		out[i] = Hex(s)
	}
	return out
}
