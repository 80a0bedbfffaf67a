package surface

import (
	"fmt"
	"image/color"
)

// OpKind identifies a recorded draw call.
type OpKind uint8

const (
	OpClear OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpLine
	OpGradientLine
	OpDashedLine
	OpRadialGradient
	OpTriangle
	OpRectGradient
	OpText
)

var opNames = [...]string{"clear", "fill_circle", "stroke_circle", "line", "gradient_line",
	"dashed_line", "radial_gradient", "triangle", "rect_gradient", "text"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return fmt.Sprintf("op(%d)", uint8(k))
}

// Op is one recorded draw call. Pos is the primary point (circle center, line
// start); To is the line end when there is one.
type Op struct {
	Kind   OpKind
	Pos    Vec2
	To     Vec2
	Radius float32
	Color  color.RGBA
	Color2 color.RGBA
	Text   string
}

// Recorder is a Canvas that records the draw calls of the current frame.
// Begin discards the previous frame's ops.
type Recorder struct {
	ops    []Op
	frames int
	open   bool
}

// Ops returns the ops recorded since the last Begin.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Frames returns the number of completed Begin/End pairs.
func (r *Recorder) Frames() int {
	return r.frames
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Colors returns the distinct primary colors of ops of the given kind, ignoring alpha.
func (r *Recorder) Colors(kind OpKind) map[color.RGBA]int {
	out := make(map[color.RGBA]int)
	for _, op := range r.ops {
		if op.Kind == kind {
			c := op.Color
			c.A = 255
			out[c]++
		}
	}
	return out
}

func (r *Recorder) Begin() {
	r.ops = r.ops[:0]
	r.open = true
}

func (r *Recorder) End() {
	if r.open {
		r.frames++
		r.open = false
	}
}

func (r *Recorder) Clear(c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpClear, Color: c})
}

func (r *Recorder) FillCircle(center Vec2, radius float32, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpFillCircle, Pos: center, Radius: radius, Color: c})
}

func (r *Recorder) StrokeCircle(center Vec2, radius, _ float32, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpStrokeCircle, Pos: center, Radius: radius, Color: c})
}

func (r *Recorder) Line(from, to Vec2, _ float32, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpLine, Pos: from, To: to, Color: c})
}

func (r *Recorder) GradientLine(from, to Vec2, _ float32, c0, c1 color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpGradientLine, Pos: from, To: to, Color: c0, Color2: c1})
}

func (r *Recorder) DashedLine(from, to Vec2, _, _, _ float32, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpDashedLine, Pos: from, To: to, Color: c})
}

func (r *Recorder) RadialGradientCircle(center Vec2, radius float32, inner, outer color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpRadialGradient, Pos: center, Radius: radius, Color: inner, Color2: outer})
}

func (r *Recorder) FillTriangle(a, b, _ Vec2, col color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpTriangle, Pos: a, To: b, Color: col})
}

func (r *Recorder) FillRectGradient(x, y, w, h float32, c0, c1 color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpRectGradient, Pos: Vec2{x, y}, To: Vec2{x + w, y + h}, Color: c0, Color2: c1})
}

func (r *Recorder) Text(s string, pos Vec2, _ float32, c color.RGBA) {
	r.ops = append(r.ops, Op{Kind: OpText, Pos: pos, Color: c, Text: s})
}

// Memory is a Surface backed by a Recorder, used headless and in tests.
type Memory struct {
	W, H float32
	Rec  Recorder
}

// NewMemory creates a memory surface of the given size.
func NewMemory(w, h float32) *Memory {
	return &Memory{W: w, H: h}
}

func (m *Memory) Size() (float32, float32) {
	return m.W, m.H
}

func (m *Memory) Resize(w, h float32) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resizing memory surface to %gx%g: non-positive size", w, h)
	}
	m.W, m.H = w, h
	return nil
}

func (m *Memory) Context() (Canvas, error) {
	return &m.Rec, nil
}

// Broken is a Surface whose context is never available.
type Broken struct {
	W, H float32
}

func (b *Broken) Size() (float32, float32) {
	return b.W, b.H
}

func (b *Broken) Resize(w, h float32) error {
	b.W, b.H = w, h
	return nil
}

func (b *Broken) Context() (Canvas, error) {
	return nil, ErrNoContext
}
