package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/folio/components"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/surface"
	"github.com/pthm-cable/folio/theme"
)

// RadialNode is a read-only copy of one node.
type RadialNode struct {
	ID     string
	Label  string
	Slot   int
	X, Y   float32
	VX, VY float32
}

// RadialLayout arranges labeled nodes in a star around a pinned center node.
// Each outer node is pulled toward its angular slot on a fixed-radius circle
// and never comes closer to the center than the minimum separation.
type RadialLayout struct {
	cfg config.RadialConfig
	rng *rand.Rand

	world   *ecs.World
	mapper  *ecs.Map3[components.Position, components.Velocity, components.Node]
	filter  ecs.Filter3[components.Position, components.Velocity, components.Node]
	posMap  *ecs.Map[components.Position]
	center  ecs.Entity
	running bool

	w, h  float32
	style theme.RadialStyle
	nodes []RadialNode
}

// NewRadialLayout creates an unseeded layout.
func NewRadialLayout(cfg config.RadialConfig, rng *rand.Rand) *RadialLayout {
	return &RadialLayout{cfg: cfg, rng: rng}
}

// Reset places the center node at the surface center and the others at equal
// angular spacing around it, with a small random initial velocity.
func (r *RadialLayout) Reset(w, h float32, t theme.Theme) {
	r.Release()
	r.w, r.h = w, h
	r.style = theme.Radial(t)

	r.world = ecs.NewWorld()
	r.mapper = ecs.NewMap3[components.Position, components.Velocity, components.Node](r.world)
	r.filter = *ecs.NewFilter3[components.Position, components.Velocity, components.Node](r.world)
	r.posMap = ecs.NewMap[components.Position](r.world)

	n := len(r.cfg.Nodes)
	cx, cy := w/2, h/2
	jitter := float32(r.cfg.InitialJitter)
	r.nodes = make([]RadialNode, 0, n)
	for i, nc := range r.cfg.Nodes {
		node := components.Node{Slot: i, ID: nc.ID, Label: nc.Label, Pinned: i == 0}
		var pos components.Position
		var vel components.Velocity
		if node.Pinned {
			pos = components.Position{X: cx, Y: cy}
		} else {
			angle := float64(i) / float64(n) * 2 * math.Pi
			radius := r.cfg.Radius
			pos = components.Position{
				X: cx + float32(math.Cos(angle)*radius),
				Y: cy + float32(math.Sin(angle)*radius),
			}
			vel = components.Velocity{
				X: (r.rng.Float32() - 0.5) * jitter,
				Y: (r.rng.Float32() - 0.5) * jitter,
			}
		}
		e := r.mapper.NewEntity(&pos, &vel, &node)
		if node.Pinned {
			r.center = e
		}
		r.nodes = append(r.nodes, RadialNode{ID: nc.ID, Label: nc.Label, Slot: i, X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y})
	}
	r.running = true
}

// SetTheme recolors the graph without disturbing node positions.
func (r *RadialLayout) SetTheme(t theme.Theme) {
	r.style = theme.Radial(t)
}

// Resize moves the pinned center to the new surface center. Outer nodes
// follow through their targets.
func (r *RadialLayout) Resize(w, h float32) {
	r.w, r.h = w, h
	if !r.running || !r.world.Alive(r.center) {
		return
	}
	c := r.posMap.Get(r.center)
	c.X, c.Y = w/2, h/2
}

// Release drops all nodes.
func (r *RadialLayout) Release() {
	r.world = nil
	r.mapper = nil
	r.posMap = nil
	r.running = false
	r.nodes = r.nodes[:0]
}

// Target returns the attractor position of the node in slot i.
// Slot 0 is the center.
func (r *RadialLayout) Target(slot int) (x, y float32) {
	cx, cy := r.w/2, r.h/2
	n := len(r.cfg.Nodes)
	if slot == 0 || n < 2 {
		return cx, cy
	}
	angle := float64(slot) / float64(n-1) * 2 * math.Pi
	return cx + float32(math.Cos(angle)*r.cfg.Radius), cy + float32(math.Sin(angle)*r.cfg.Radius)
}

// Step pulls every outer node toward its slot, applies friction and keeps it
// outside the minimum separation circle. elapsedMs is not used.
func (r *RadialLayout) Step(elapsedMs float64) {
	if !r.running {
		return
	}

	gain := float32(r.cfg.Gain)
	friction := float32(r.cfg.Friction)
	minSep := float32(r.cfg.MinSeparation)
	center := *r.posMap.Get(r.center)

	r.nodes = r.nodes[:0]
	query := r.filter.Query()
	for query.Next() {
		pos, vel, node := query.Get()

		if !node.Pinned {
			tx, ty := r.Target(node.Slot)
			vel.X += (tx - pos.X) * gain
			vel.Y += (ty - pos.Y) * gain
			vel.X *= friction
			vel.Y *= friction
			pos.X += vel.X
			pos.Y += vel.Y

			dx := pos.X - center.X
			dy := pos.Y - center.Y
			if d := sqrtf(dx*dx + dy*dy); d < minSep {
				angle := math.Atan2(float64(dy), float64(dx))
				pos.X = center.X + float32(math.Cos(angle))*minSep
				pos.Y = center.Y + float32(math.Sin(angle))*minSep
			}
		}

		r.nodes = append(r.nodes, RadialNode{
			ID: node.ID, Label: node.Label, Slot: node.Slot,
			X: pos.X, Y: pos.Y, VX: vel.X, VY: vel.Y,
		})
	}
}

// Draw renders the backdrop, the edges from the center and then the nodes
// with their labels.
func (r *RadialLayout) Draw(c surface.Canvas) {
	c.Clear(transparent)
	c.FillRectGradient(0, 0, r.w, r.h, r.style.BackdropTL, r.style.BackdropBR)
	if !r.running || len(r.nodes) == 0 {
		return
	}

	center := r.nodes[0]
	cpos := surface.Vec2{X: center.X, Y: center.Y}
	fade := float32(r.cfg.FadeDistance)
	for _, n := range r.nodes[1:] {
		at := surface.Vec2{X: n.X, Y: n.Y}
		d := distance(n.X, n.Y, center.X, center.Y)
		opacity := float64(max(float32(r.cfg.MinOpacity), 1-d/fade))

		c.GradientLine(cpos, at, 1.5,
			theme.Fade(r.style.EdgeFrom, opacity*0.6),
			theme.Fade(r.style.EdgeTo, opacity*0.3))
		c.DashedLine(cpos, at, 4, 5, 5, theme.Fade(r.style.EdgeGlow, opacity*0.2))
	}

	nodeR := float32(r.cfg.NodeRadius)
	glowR := float32(r.cfg.GlowRadius)
	for _, n := range r.nodes {
		at := surface.Vec2{X: n.X, Y: n.Y}
		col := r.NodeColor(n.Slot)
		c.RadialGradientCircle(at, nodeR, col, theme.Fade(col, 0.5))
		c.StrokeCircle(at, glowR, 2, theme.Fade(col, 0.25))
		c.Text(n.Label, surface.Vec2{X: n.X, Y: n.Y + float32(r.cfg.LabelOffset)}, float32(r.cfg.LabelSize), r.style.Label)
	}
}

// NodeColor returns the palette color for a slot.
func (r *RadialLayout) NodeColor(slot int) color.RGBA {
	return r.style.Nodes[slot%len(r.style.Nodes)]
}

// Nodes returns a copy of the current node state; the center comes first.
func (r *RadialLayout) Nodes() []RadialNode {
	out := make([]RadialNode, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// Count returns the number of live nodes.
func (r *RadialLayout) Count() int {
	return len(r.nodes)
}
