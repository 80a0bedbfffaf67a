// Package components defines ECS components for the visual effects.
package components

// Position represents a particle's surface-local position.
type Position struct {
	X, Y float32
}

// Velocity represents a particle's velocity in pixels per frame.
type Velocity struct {
	X, Y float32
}

// Drift is a field particle's constant vertical bias.
type Drift struct {
	Y float32
}

// Size is a particle's drawn radius.
type Size struct {
	Radius float32
}

// Anchor is the rest position a glyph particle springs back to.
type Anchor struct {
	X, Y float32
}

// Tint selects a color from the active palette.
type Tint struct {
	Index uint8
}

// Node holds the per-node data of the radial layout.
type Node struct {
	Slot   int // Angular slot index; 0 is the center
	ID     string
	Label  string
	Pinned bool
}
