package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

// gradientSegments is how many pieces a gradient line is drawn in.
const gradientSegments = 12

// Canvas draws into a render texture, scaling logical coordinates by the
// surface's pixel ratio.
type Canvas struct {
	target *rl.RenderTexture2D
	scale  float32
}

func (c *Canvas) v(p surface.Vec2) rl.Vector2 {
	return rl.Vector2{X: p.X * c.scale, Y: p.Y * c.scale}
}

func (c *Canvas) Begin() {
	rl.BeginTextureMode(*c.target)
}

func (c *Canvas) End() {
	rl.EndTextureMode()
}

func (c *Canvas) Clear(col color.RGBA) {
	rl.ClearBackground(col)
}

func (c *Canvas) FillCircle(center surface.Vec2, radius float32, col color.RGBA) {
	rl.DrawCircleV(c.v(center), radius*c.scale, col)
}

func (c *Canvas) StrokeCircle(center surface.Vec2, radius, width float32, col color.RGBA) {
	inner := max((radius-width/2)*c.scale, 0)
	outer := (radius + width/2) * c.scale
	rl.DrawRing(c.v(center), inner, outer, 0, 360, 48, col)
}

func (c *Canvas) Line(from, to surface.Vec2, width float32, col color.RGBA) {
	rl.DrawLineEx(c.v(from), c.v(to), width*c.scale, col)
}

func (c *Canvas) GradientLine(from, to surface.Vec2, width float32, c0, c1 color.RGBA) {
	a, b := c.v(from), c.v(to)
	for i := 0; i < gradientSegments; i++ {
		t0 := float32(i) / gradientSegments
		t1 := float32(i+1) / gradientSegments
		p0 := rl.Vector2Lerp(a, b, t0)
		p1 := rl.Vector2Lerp(a, b, t1)
		mid := float64(t0+t1) / 2
		rl.DrawLineEx(p0, p1, width*c.scale, theme.Blend(c0, c1, mid))
	}
}

func (c *Canvas) DashedLine(from, to surface.Vec2, width, dash, gap float32, col color.RGBA) {
	a, b := c.v(from), c.v(to)
	length := rl.Vector2Distance(a, b)
	step := (dash + gap) * c.scale
	if length == 0 || step <= 0 {
		return
	}
	dir := rl.Vector2Scale(rl.Vector2Subtract(b, a), 1/length)
	for d := float32(0); d < length; d += step {
		end := min(d+dash*c.scale, length)
		rl.DrawLineEx(rl.Vector2Add(a, rl.Vector2Scale(dir, d)), rl.Vector2Add(a, rl.Vector2Scale(dir, end)), width*c.scale, col)
	}
}

func (c *Canvas) RadialGradientCircle(center surface.Vec2, radius float32, inner, outer color.RGBA) {
	p := c.v(center)
	rl.DrawCircleGradient(int32(p.X), int32(p.Y), radius*c.scale, inner, outer)
}

func (c *Canvas) FillTriangle(a, b, d surface.Vec2, col color.RGBA) {
	va, vb, vd := c.v(a), c.v(b), c.v(d)
	// raylib culls clockwise triangles; screen Y points down so a positive
	// cross product is clockwise on screen
	cross := (vb.X-va.X)*(vd.Y-va.Y) - (vb.Y-va.Y)*(vd.X-va.X)
	if cross > 0 {
		vb, vd = vd, vb
	}
	rl.DrawTriangle(va, vb, vd, col)
}

func (c *Canvas) FillRectGradient(x, y, w, h float32, c0, c1 color.RGBA) {
	mid := theme.Blend(c0, c1, 0.5)
	rec := rl.Rectangle{X: x * c.scale, Y: y * c.scale, Width: w * c.scale, Height: h * c.scale}
	// Corners counter-clockwise from top-left
	rl.DrawRectangleGradientEx(rec, c0, mid, c1, mid)
}

func (c *Canvas) Text(s string, pos surface.Vec2, size float32, col color.RGBA) {
	font := rl.GetFontDefault()
	fs := size * c.scale
	spacing := float32(math.Max(1, float64(fs)/10))
	m := rl.MeasureTextEx(font, s, fs, spacing)
	p := c.v(pos)
	rl.DrawTextEx(font, s, rl.Vector2{X: p.X - m.X/2, Y: p.Y - m.Y/2}, fs, spacing, col)
}
