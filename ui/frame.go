package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

// OverlayFrame is the modal box the about overlay's radial graph draws in.
type OverlayFrame struct {
	maxW, maxH float32
	inset      float32
	title      string
}

// NewOverlayFrame creates a frame at most maxW x maxH, kept inset from the
// screen edges.
func NewOverlayFrame(maxW, maxH, inset float32, title string) *OverlayFrame {
	return &OverlayFrame{maxW: maxW, maxH: maxH, inset: inset, title: title}
}

// Bounds returns the frame rectangle centered on a screenW x screenH screen.
func (f *OverlayFrame) Bounds(screenW, screenH float32) rl.Rectangle {
	w := max(min(f.maxW, screenW-2*f.inset), 1)
	h := max(min(f.maxH, screenH-2*f.inset), 1)
	return rl.Rectangle{X: (screenW - w) / 2, Y: (screenH - h) / 2, Width: w, Height: h}
}

// Content returns the area inside the frame below its title bar.
func (f *OverlayFrame) Content(screenW, screenH float32) rl.Rectangle {
	b := f.Bounds(screenW, screenH)
	const bar = 36
	return rl.Rectangle{X: b.X, Y: b.Y + bar, Width: b.Width, Height: max(b.Height-bar, 1)}
}

// DrawBack dims the page and draws the frame behind the content.
func (f *OverlayFrame) DrawBack(screenW, screenH float32, t theme.Theme) {
	page := theme.Page(t)
	style := StyleFor(t)
	rl.DrawRectangle(0, 0, int32(screenW), int32(screenH), page.Scrim)

	b := f.Bounds(screenW, screenH)
	rl.DrawRectangleRounded(b, 0.04, 8, style.PanelBg)
	rl.DrawText(f.title, int32(b.X)+16, int32(b.Y)+12, 16, style.ValueColor)
}

// DrawFront outlines the frame over the content and draws the close button.
// Returns true when the close button was clicked.
func (f *OverlayFrame) DrawFront(screenW, screenH float32, t theme.Theme) bool {
	style := StyleFor(t)
	b := f.Bounds(screenW, screenH)
	rl.DrawRectangleLinesEx(b, 1, theme.Fade(style.Accent, 0.4))
	return gui.Button(rl.Rectangle{X: b.X + b.Width - 36, Y: b.Y + 8, Width: 24, Height: 22}, "x")
}
