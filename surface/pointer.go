package surface

// Offscreen is the sentinel coordinate of an inactive pointer. It is far
// enough away that no distance test can ever pass.
const Offscreen float32 = -9999

// Pointer is the pointer position in surface-local coordinates.
type Pointer struct {
	X, Y float32
}

// NoPointer returns a pointer at the offscreen sentinel.
func NoPointer() Pointer {
	return Pointer{X: Offscreen, Y: Offscreen}
}

// Set moves the pointer.
func (p *Pointer) Set(x, y float32) {
	p.X, p.Y = x, y
}

// Clear parks the pointer at the sentinel.
func (p *Pointer) Clear() {
	p.X, p.Y = Offscreen, Offscreen
}

// Active reports whether the pointer holds a real position.
func (p Pointer) Active() bool {
	return p.X != Offscreen || p.Y != Offscreen
}
