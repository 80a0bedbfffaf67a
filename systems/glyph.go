package systems

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

// GlyphParticle is a read-only copy of one glyph particle.
type GlyphParticle struct {
	X, Y        float32
	VX, VY      float32
	AnchorX     float32
	AnchorY     float32
	Tint        uint8
	Highlighted bool
}

// GlyphRenderer draws a text label as a swarm of particles sampled from its
// rasterized glyphs. Particles scatter away from the pointer and spring back
// to their sample position, while two sweeps cross the label in opposite
// directions and light up the particles they pass.
type GlyphRenderer struct {
	cfg          config.GlyphConfig
	compactWidth float32
	rng          *rand.Rand

	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Anchor, components.Tint]
	filter ecs.Filter4[components.Position, components.Velocity, components.Anchor, components.Tint]

	w, h      float32
	compact   bool
	touch     bool
	pointer   surface.Pointer
	elapsedMs float64
	style     theme.GlyphStyle

	pts         []GlyphParticle
	highlighted int
}

// NewGlyphRenderer creates an unseeded renderer.
func NewGlyphRenderer(cfg config.GlyphConfig, compactWidth int, rng *rand.Rand) *GlyphRenderer {
	return &GlyphRenderer{
		cfg:          cfg,
		compactWidth: float32(compactWidth),
		rng:          rng,
		pointer:      surface.NoPointer(),
	}
}

// GlyphLayout returns the surface size the label needs on a viewport of the
// given width, and whether the compact layout applies.
func GlyphLayout(cfg config.GlyphConfig, compactWidth int, viewportW float32) (w, h float32, compact bool) {
	if viewportW < float32(compactWidth) {
		w = min(viewportW-float32(cfg.CompactMargin), float32(cfg.MaxWidthCompact))
		return max(w, 1), float32(cfg.HeightCompact), true
	}
	return float32(cfg.Width), float32(cfg.Height), false
}

// SetViewport picks the layout for a viewport of the given width and
// returns the surface size it needs. Takes effect on the next Reset.
func (g *GlyphRenderer) SetViewport(viewportW float32) (w, h float32) {
	w, h, g.compact = GlyphLayout(g.cfg, int(g.compactWidth), viewportW)
	return w, h
}

// Reset samples the label for a w x h surface and seeds one particle per
// foreground sample. If the label cannot be rasterized nothing is seeded.
func (g *GlyphRenderer) Reset(w, h float32, t theme.Theme) {
	g.Release()
	g.w, g.h = w, h
	g.style = theme.Glyph(t)
	g.elapsedMs = 0

	fontSize, stride := g.cfg.FontSize, g.cfg.Stride
	if g.compact {
		fontSize, stride = g.cfg.FontSizeCompact, g.cfg.StrideCompact
	}

	samples, err := SampleGlyph(g.cfg.Label, int(w), int(h), fontSize, stride, g.cfg.AlphaThreshold)
	if err != nil {
		slog.Debug("glyph setup aborted", "label", g.cfg.Label, "error", err)
		return
	}

	g.world = ecs.NewWorld()
	g.mapper = ecs.NewMap4[components.Position, components.Velocity, components.Anchor, components.Tint](g.world)
	g.filter = *ecs.NewFilter4[components.Position, components.Velocity, components.Anchor, components.Tint](g.world)

	n := len(g.style.Palette)
	g.pts = make([]GlyphParticle, 0, len(samples))
	for _, s := range samples {
		pos := components.Position{X: s.X, Y: s.Y}
		vel := components.Velocity{}
		anchor := components.Anchor{X: s.X, Y: s.Y}
		tint := components.Tint{Index: uint8(g.rng.Intn(n))}
		g.mapper.NewEntity(&pos, &vel, &anchor, &tint)
		g.pts = append(g.pts, GlyphParticle{X: s.X, Y: s.Y, AnchorX: s.X, AnchorY: s.Y, Tint: tint.Index})
	}
}

// SetTheme re-samples and re-seeds the label in the new palette.
func (g *GlyphRenderer) SetTheme(t theme.Theme) {
	if g.world == nil {
		return
	}
	g.Reset(g.w, g.h, t)
}

// Resize updates the bounds. Rest positions keep their sampled coordinates.
func (g *GlyphRenderer) Resize(w, h float32) {
	g.w, g.h = w, h
}

// Release drops all particles.
func (g *GlyphRenderer) Release() {
	g.world = nil
	g.mapper = nil
	g.pts = g.pts[:0]
	g.highlighted = 0
}

// SetPointer moves the pointer in surface-local coordinates. Ignored on
// touch-primary devices.
func (g *GlyphRenderer) SetPointer(x, y float32) {
	if g.touch {
		return
	}
	g.pointer.Set(x, y)
}

// ClearPointer parks the pointer offscreen.
func (g *GlyphRenderer) ClearPointer() {
	g.pointer.Clear()
}

// SetTouch marks the device as touch-primary, disabling the scatter.
func (g *GlyphRenderer) SetTouch(touch bool) {
	g.touch = touch
	if touch {
		g.pointer.Clear()
	}
}

// Sweeps returns the left-to-right and right-to-left sweep positions.
func (g *GlyphRenderer) Sweeps() (left, right float32) {
	span := float64(g.w) * g.cfg.SweepWrap
	if span <= 0 {
		return 0, g.w
	}
	pos := modPositive(g.elapsedMs/g.cfg.SweepDivisor, span)
	return float32(pos), g.w - float32(pos)
}

// Step advances the swarm. Sweeps move with wall time; the spring integrates
// one step per frame.
func (g *GlyphRenderer) Step(elapsedMs float64) {
	if g.world == nil {
		return
	}
	g.elapsedMs += elapsedMs

	cfg := &g.cfg
	radius := float32(cfg.PointerRadius)
	force := float32(cfg.PointerForce)
	spring := float32(cfg.Spring)
	damping := float32(cfg.Damping)
	band := float32(cfg.HighlightBand)
	scanL, scanR := g.Sweeps()
	px, py := g.pointer.X, g.pointer.Y
	active := !g.touch && g.pointer.Active()

	g.pts = g.pts[:0]
	g.highlighted = 0
	query := g.filter.Query()
	for query.Next() {
		pos, vel, anchor, tint := query.Get()

		if active {
			dx := pos.X - px
			dy := pos.Y - py
			d := sqrtf(dx*dx + dy*dy)
			if d < radius && d > 0 {
				f := (1 - d/radius) * force
				vel.X += dx / d * f
				vel.Y += dy / d * f
			}
		}

		vel.X += (anchor.X - pos.X) * spring
		vel.Y += (anchor.Y - pos.Y) * spring
		vel.X *= damping
		vel.Y *= damping
		pos.X += vel.X
		pos.Y += vel.Y

		hit := absf(anchor.X-scanL) < band || absf(anchor.X-scanR) < band
		if hit {
			g.highlighted++
		}

		g.pts = append(g.pts, GlyphParticle{
			X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y,
			AnchorX: anchor.X, AnchorY: anchor.Y,
			Tint: tint.Index, Highlighted: hit,
		})
	}
}

// Draw renders every particle: highlighted ones in the pulse color at full
// opacity, the rest in their palette color at the theme's idle opacity.
func (g *GlyphRenderer) Draw(c surface.Canvas) {
	c.Clear(transparent)
	if g.world == nil {
		return
	}

	r, rHit := float32(g.cfg.Radius), float32(g.cfg.RadiusHit)
	if g.compact {
		r, rHit = float32(g.cfg.RadiusCompact), float32(g.cfg.RadiusHitCompact)
	}

	for i := range g.pts {
		p := &g.pts[i]
		at := surface.Vec2{X: p.X, Y: p.Y}
		if p.Highlighted {
			c.FillCircle(at, rHit, g.style.Pulse)
			continue
		}
		col := g.style.Palette[int(p.Tint)%len(g.style.Palette)]
		c.FillCircle(at, r, theme.Fade(col, g.style.IdleOpacity))
	}
}

// Particles returns a copy of the current particle state.
func (g *GlyphRenderer) Particles() []GlyphParticle {
	out := make([]GlyphParticle, len(g.pts))
	copy(out, g.pts)
	return out
}

// Count returns the number of sampled particles.
func (g *GlyphRenderer) Count() int {
	return len(g.pts)
}

// Highlighted returns the number of particles lit by a sweep in the last step.
func (g *GlyphRenderer) Highlighted() int {
	return g.highlighted
}

// MaxDisplacement returns the largest distance of any particle from its rest position.
func (g *GlyphRenderer) MaxDisplacement() float32 {
	var m float32
	for i := range g.pts {
		p := &g.pts[i]
		m = max(m, distance(p.X, p.Y, p.AnchorX, p.AnchorY))
	}
	return m
}
