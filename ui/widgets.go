package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Style Style
}

// NewRenderer creates a renderer styled for t.
func NewRenderer(t theme.Theme) *Renderer {
	return &Renderer{Style: StyleFor(t)}
}

// SetTheme restyles the renderer.
func (r *Renderer) SetTheme(t theme.Theme) {
	r.Style = StyleFor(t)
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Style.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Style.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Style.HeaderFontSize, r.Style.SectionHeader)
	return y + r.Style.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Style.FontSize, r.Style.LabelColor)
	rl.DrawText(value, x+r.Style.LabelWidth, y, r.Style.FontSize, r.Style.ValueColor)
	return y + r.Style.LineHeight
}

// DrawBar draws a progress bar for [0, 1] values, colored by how full it is.
func (r *Renderer) DrawBar(x, y int32, label string, value float32, width int32) int32 {
	value = min(max(value, 0), 1)

	barX := x + r.Style.LabelWidth
	barWidth := width - r.Style.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Style.FontSize, r.Style.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, r.Style.BarHeight, r.Style.BarBg)

	barColor := r.Style.BarFill
	if value > 0.5 {
		barColor = r.Style.BarFillHot
	} else if value > 0.25 {
		barColor = r.Style.BarFillWarn
	}
	fillWidth := int32(float32(barWidth) * value)
	rl.DrawRectangle(barX, y+2, fillWidth, r.Style.BarHeight, barColor)

	rl.DrawText(fmt.Sprintf("%.0f%%", value*100), barX+barWidth+5, y, r.Style.FontSize, r.Style.ValueColor)

	return y + r.Style.LineHeight + 2
}

// DrawKeyHint draws a right-aligned "[K]" key label.
func (r *Renderer) DrawKeyHint(right, y int32, key string) {
	text := fmt.Sprintf("[%s]", key)
	w := rl.MeasureText(text, r.Style.FontSize)
	rl.DrawText(text, right-w, y, r.Style.FontSize, r.Style.Muted)
}
