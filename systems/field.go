package systems

import (
	"math"
	"math/rand"
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

// FieldParticle is a read-only copy of one ambient particle.
type FieldParticle struct {
	X, Y   float32
	VX, VY float32
	Radius float32
}

// AmbientField is the full-viewport backdrop of drifting, linked particles.
// Particles always move right, wrap back to the left edge, bend away from the
// pointer and calm down as the page scrolls.
type AmbientField struct {
	cfg          config.FieldConfig
	timeStep     float64
	compactWidth float32
	rng          *rand.Rand

	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Drift, components.Size]
	filter ecs.Filter4[components.Position, components.Velocity, components.Drift, components.Size]

	w, h         float32
	compact      bool
	touch        bool
	pointer      surface.Pointer
	scrollFactor float32
	t            float64
	theme        theme.Theme
	style        theme.FieldStyle

	// Snapshot of positions in seeding order, rebuilt each step for drawing
	pts   []FieldParticle
	links int

	// Link candidate lookup, rebuilt each draw
	grid   *SpatialGrid
	nearby []int32
}

// NewAmbientField creates an unseeded field. compactWidth is the viewport
// width below which the sparser compact density applies.
func NewAmbientField(cfg config.FieldConfig, timeStep float64, compactWidth int, rng *rand.Rand) *AmbientField {
	return &AmbientField{
		cfg:          cfg,
		timeStep:     timeStep,
		compactWidth: float32(compactWidth),
		rng:          rng,
		pointer:      surface.NoPointer(),
		scrollFactor: 1,
	}
}

// Reset seeds a fresh particle set sized to the surface area.
func (f *AmbientField) Reset(w, h float32, t theme.Theme) {
	f.Release()
	f.w, f.h = w, h
	f.compact = w < f.compactWidth
	f.theme = t
	f.style = theme.Field(t)
	f.t = 0

	f.world = ecs.NewWorld()
	f.mapper = ecs.NewMap4[components.Position, components.Velocity, components.Drift, components.Size](f.world)
	f.filter = *ecs.NewFilter4[components.Position, components.Velocity, components.Drift, components.Size](f.world)

	n := f.targetCount()
	f.pts = make([]FieldParticle, 0, n)
	for i := 0; i < n; i++ {
		pos := components.Position{X: f.rng.Float32() * w, Y: f.rng.Float32() * h}
		vel := components.Velocity{
			X: f.rng.Float32()*0.6 + float32(f.cfg.MinVX),
			Y: (f.rng.Float32() - 0.5) * 0.12,
		}
		drift := components.Drift{Y: (f.rng.Float32() - 0.5) * float32(f.cfg.DriftBias)}
		size := components.Size{Radius: float32(f.style.SizeBase + f.rng.Float64()*f.style.SizeSpread)}
		f.mapper.NewEntity(&pos, &vel, &drift, &size)
		f.pts = append(f.pts, FieldParticle{X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y, Radius: size.Radius})
	}
}

func (f *AmbientField) targetCount() int {
	area := f.cfg.DensityArea
	if f.compact {
		area = f.cfg.DensityAreaCompact
	}
	return int(math.Floor(float64(f.w) * float64(f.h) / area))
}

// SetTheme re-seeds the field in the new palette.
func (f *AmbientField) SetTheme(t theme.Theme) {
	if f.world == nil {
		return
	}
	f.Reset(f.w, f.h, t)
}

// Resize updates the bounds only; particles outside them wrap back in.
func (f *AmbientField) Resize(w, h float32) {
	f.w, f.h = w, h
}

// Release drops all particles.
func (f *AmbientField) Release() {
	f.world = nil
	f.mapper = nil
	f.pts = f.pts[:0]
	f.links = 0
}

// SetPointer moves the repelling pointer. Ignored on touch-primary devices
// and on compact layouts.
func (f *AmbientField) SetPointer(x, y float32) {
	if f.touch || f.compact {
		return
	}
	f.pointer.Set(x, y)
}

// ClearPointer parks the pointer offscreen.
func (f *AmbientField) ClearPointer() {
	f.pointer.Clear()
}

// SetTouch marks the device as touch-primary, disabling repulsion.
func (f *AmbientField) SetTouch(touch bool) {
	f.touch = touch
	if touch {
		f.pointer.Clear()
	}
}

// SetScroll derives the damping factor from the page scroll offset: 1 at the
// top, falling to the configured floor after one viewport height.
func (f *AmbientField) SetScroll(scrollY, viewportH float32) {
	if viewportH <= 0 {
		f.scrollFactor = 1
		return
	}
	f.scrollFactor = max(float32(f.cfg.ScrollFloor), 1-scrollY/viewportH)
}

// Retune swaps the motion parameters while keeping the current particles.
// Density only changes on the next Reset.
func (f *AmbientField) Retune(cfg config.FieldConfig) {
	f.cfg = cfg
}

// Step advances every particle one fixed time step. elapsedMs is not used;
// motion speed follows the frame rate.
func (f *AmbientField) Step(elapsedMs float64) {
	if f.world == nil {
		return
	}
	f.t += f.timeStep

	cfg := &f.cfg
	radius := float32(cfg.RepelRadius)
	repel := !f.touch && !f.compact && f.pointer.Active()
	px, py := f.pointer.X, f.pointer.Y

	f.pts = f.pts[:0]
	query := f.filter.Query()
	for query.Next() {
		pos, vel, drift, size := query.Get()

		vel.X += float32(cfg.ForwardAccel)
		vel.Y += float32(math.Sin(f.t+float64(pos.X)*0.01) * cfg.Oscillation)
		vel.Y += drift.Y

		dx := pos.X - px
		dy := pos.Y - py
		d := float32(math.Sqrt(float64(dx*dx + dy*dy)))
		near := d < radius

		if repel && near && d > 0.01 {
			prox := 1 - d/radius
			force := prox * prox * float32(cfg.RepelStrength)
			vel.X += dx / d * force
			vel.Y += dy / d * force
		}

		damp := float32(cfg.DampFar)
		maxVX := float32(cfg.MaxVX)
		if near {
			damp = float32(cfg.DampNear)
			maxVX = float32(cfg.MaxVXRepelled)
		}
		vel.X *= damp * f.scrollFactor
		vel.Y *= damp * f.scrollFactor

		vel.X = clampFloat(vel.X, float32(cfg.MinVX), maxVX)
		vel.Y = clampFloat(vel.Y, -float32(cfg.MaxVY), float32(cfg.MaxVY))

		pos.X += vel.X
		pos.Y += vel.Y

		if pos.X > f.w+float32(cfg.WrapOvershoot) {
			pos.X = -f.rng.Float32() * float32(cfg.RespawnSpan)
			pos.Y = f.rng.Float32() * f.h
		}
		pos.Y = clampFloat(pos.Y, 0, f.h)

		f.pts = append(f.pts, FieldParticle{X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y, Radius: size.Radius})
	}
}

// Draw renders particles and the links between them.
func (f *AmbientField) Draw(c surface.Canvas) {
	c.Clear(transparent)
	if f.world == nil {
		return
	}

	cfg := &f.cfg
	style := f.style
	fadeStart := f.h * float32(cfg.FadeStart)
	fadeEnd := f.h * float32(cfg.FadeEnd)

	linkDist := float32(cfg.LinkDistance)
	maxLinks := cfg.MaxLinks
	if f.compact {
		linkDist = float32(cfg.LinkDistanceCompact)
		maxLinks = cfg.MaxLinksCompact
	}
	linkDist2 := linkDist * linkDist
	minDX := float32(cfg.MinLinkDX)

	f.links = 0
	f.indexLinks(linkDist)
	for i := range f.pts {
		p := &f.pts[i]

		opacity := style.Opacity
		if p.Y > fadeStart && p.Y < fadeEnd {
			frac := float64((p.Y - fadeStart) / (fadeEnd - fadeStart))
			opacity *= 1 - frac*cfg.FadeAmount
		}
		c.FillCircle(surface.Vec2{X: p.X, Y: p.Y}, p.Radius, theme.Fade(style.Color, opacity))

		if f.grid == nil {
			continue
		}
		// Earlier particles link first, so candidates are visited in seeding order
		f.nearby = f.grid.NeighborsInto(f.nearby[:0], p.X, p.Y)
		slices.Sort(f.nearby)

		links := 0
		for _, j := range f.nearby {
			if int(j) <= i {
				continue
			}
			if links >= maxLinks {
				break
			}
			q := &f.pts[j]
			dx := p.X - q.X
			dy := p.Y - q.Y
			if absf(dx) < minDX {
				continue
			}
			d2 := dx*dx + dy*dy
			if d2 >= linkDist2 {
				continue
			}
			a := 1 - float64(sqrtf(d2)/linkDist)
			c.Line(surface.Vec2{X: p.X, Y: p.Y}, surface.Vec2{X: q.X, Y: q.Y}, style.LinkWidth,
				theme.Fade(style.Color, a*style.LinkAlpha))
			links++
		}
		f.links += links
	}
}

// indexLinks buckets the particles by position with cells one link distance wide.
func (f *AmbientField) indexLinks(linkDist float32) {
	if linkDist <= 0 {
		f.grid = nil
		return
	}
	if f.grid == nil || !f.grid.Fits(f.w, f.h, linkDist) {
		f.grid = NewSpatialGrid(f.w, f.h, linkDist)
	} else {
		f.grid.Clear()
	}
	for i := range f.pts {
		f.grid.Insert(i, f.pts[i].X, f.pts[i].Y)
	}
}

// Particles returns a copy of the current particle state.
func (f *AmbientField) Particles() []FieldParticle {
	out := make([]FieldParticle, len(f.pts))
	copy(out, f.pts)
	return out
}

// Count returns the number of live particles.
func (f *AmbientField) Count() int {
	return len(f.pts)
}

// Links returns the number of links drawn in the last frame.
func (f *AmbientField) Links() int {
	return f.links
}

// Compact reports whether the sparse compact layout is in use.
func (f *AmbientField) Compact() bool {
	return f.compact
}

// Time returns the accumulated simulation time.
func (f *AmbientField) Time() float64 {
	return f.t
}
