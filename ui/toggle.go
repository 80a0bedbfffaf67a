package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

var themeKeys = []struct {
	name  string
	label string
	key   int32
	theme theme.Theme
	cycle bool
}{
	{"Light", "1", rl.KeyOne, theme.Light, false},
	{"Dark", "2", rl.KeyTwo, theme.Dark, false},
	{"Dynamic", "3", rl.KeyThree, theme.Dynamic, false},
	{"Cycle", "T", rl.KeyT, 0, true},
}

// ThemeToggle is the three-way theme switch. It is the only writer of the
// theme signal.
type ThemeToggle struct {
	signal *theme.Signal
	x, y   float32
}

// NewThemeToggle creates a toggle anchored at its top-right corner.
func NewThemeToggle(signal *theme.Signal, right, top float32) *ThemeToggle {
	t := &ThemeToggle{signal: signal}
	t.SetPosition(right, top)
	return t
}

const (
	toggleButtonW = 72
	toggleButtonH = 26
	toggleGap     = 4
)

// SetPosition re-anchors the toggle at its top-right corner.
func (t *ThemeToggle) SetPosition(right, top float32) {
	t.x = right - 3*toggleButtonW - 2*toggleGap
	t.y = top
}

// Bounds returns the toggle's screen rectangle.
func (t *ThemeToggle) Bounds() rl.Rectangle {
	return rl.Rectangle{X: t.x, Y: t.y, Width: 3*toggleButtonW + 2*toggleGap, Height: toggleButtonH}
}

// HandleKey applies a theme key binding. Returns whether key was one.
func (t *ThemeToggle) HandleKey(key int32) bool {
	for _, k := range themeKeys {
		if k.key != key {
			continue
		}
		if k.cycle {
			t.signal.Set(t.signal.Get().Next())
		} else {
			t.signal.Set(k.theme)
		}
		return true
	}
	return false
}

// Draw renders one button per theme, marking the current one, and applies a click.
func (t *ThemeToggle) Draw() {
	current := t.signal.Get()
	style := StyleFor(current)

	for i, th := range theme.All {
		bounds := rl.Rectangle{
			X:      t.x + float32(i)*(toggleButtonW+toggleGap),
			Y:      t.y,
			Width:  toggleButtonW,
			Height: toggleButtonH,
		}
		if th == current {
			rl.DrawRectangleLinesEx(rl.Rectangle{X: bounds.X - 2, Y: bounds.Y - 2, Width: bounds.Width + 4, Height: bounds.Height + 4}, 2, style.Accent)
		}
		if gui.Button(bounds, th.String()) {
			t.signal.Set(th)
		}
	}
}
