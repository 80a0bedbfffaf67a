// Package surface defines the drawing targets visual effects render into.
package surface

import (
	"errors"
	"image/color"
)

// ErrNoContext is returned when a surface cannot produce a drawing context.
var ErrNoContext = errors.New("surface: no drawing context")

// Vec2 is a 2D point in surface-local coordinates.
type Vec2 struct {
	X, Y float32
}

// Canvas is a 2D drawing context. Calls between Begin and End draw into the
// owning surface; drawing outside that pair is undefined.
type Canvas interface {
	Begin()
	End()
	Clear(c color.RGBA)

	FillCircle(center Vec2, radius float32, c color.RGBA)
	StrokeCircle(center Vec2, radius, width float32, c color.RGBA)
	Line(from, to Vec2, width float32, c color.RGBA)
	// GradientLine blends from c0 at from to c1 at to.
	GradientLine(from, to Vec2, width float32, c0, c1 color.RGBA)
	DashedLine(from, to Vec2, width, dash, gap float32, c color.RGBA)
	// RadialGradientCircle fills a disc blending from inner at its center to outer at its rim.
	RadialGradientCircle(center Vec2, radius float32, inner, outer color.RGBA)
	FillTriangle(a, b, c Vec2, col color.RGBA)
	// FillRectGradient fills a rectangle with a diagonal gradient from c0 (top-left) to c1 (bottom-right).
	FillRectGradient(x, y, w, h float32, c0, c1 color.RGBA)
	// Text draws s horizontally centered on pos.
	Text(s string, pos Vec2, size float32, c color.RGBA)
}

// Surface is a sized drawing target.
type Surface interface {
	Size() (w, h float32)
	Resize(w, h float32) error
	Context() (Canvas, error)
}
