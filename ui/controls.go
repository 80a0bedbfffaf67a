package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

// ControlsPanel renders the overlay toggles and key bindings.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32, t theme.Theme) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(t),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetTheme restyles the panel.
func (c *ControlsPanel) SetTheme(t theme.Theme) {
	c.renderer.SetTheme(t)
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Draw renders the controls panel and returns the Y below it.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	r := c.renderer
	padding := r.Style.Padding
	lineHeight := r.Style.LineHeight

	categories := overlays.Categories()
	totalItems := len(themeKeys)
	for _, cat := range categories {
		totalItems += len(overlays.ByCategory(cat)) + 1 // +1 for category header
	}
	panelHeight := int32(totalItems+1)*lineHeight + padding*3 + lineHeight

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, r.Style.ValueColor)
	y += lineHeight + 4

	for _, category := range categories {
		y = r.DrawSectionHeader(c.x+padding, y, categoryLabel(category))
		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(c.x+padding, y, desc, overlays.IsEnabled(desc.ID), c.width-padding*2)
			y += lineHeight
		}
		y += 4
	}

	y = r.DrawSectionHeader(c.x+padding, y, "Theme")
	for _, k := range themeKeys {
		rl.DrawText(k.name, c.x+padding+14, y, r.Style.FontSize, r.Style.LabelColor)
		r.DrawKeyHint(c.x+c.width-padding, y, k.label)
		y += lineHeight
	}

	return y
}

func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := r.Style.Muted
	nameColor := r.Style.LabelColor
	if enabled {
		statusColor = r.Style.Accent
		nameColor = r.Style.ValueColor
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Style.FontSize, nameColor)

	if desc.KeyLabel != "" {
		r.DrawKeyHint(x+width, y, desc.KeyLabel)
	}
}

func categoryLabel(cat string) string {
	switch cat {
	case "page":
		return "Page"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
