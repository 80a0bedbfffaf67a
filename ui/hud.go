package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

// EffectStatus is one animated component's line in the HUD.
type EffectStatus struct {
	Name     string
	Active   bool
	Executed uint64
	Skipped  uint64
	Count    int // Particles or nodes
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	Theme       theme.Theme
	FPS         int32
	Frames      uint64  // Display frames the animation loop has run
	Scroll      float32 // Page progress in [0, 1]
	Compact     bool
	Links       int
	Highlighted int
	Effects     []EffectStatus
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD(t theme.Theme) *HUD {
	return &HUD{renderer: NewRenderer(t)}
}

// SetTheme restyles the HUD.
func (h *HUD) SetTheme(t theme.Theme) {
	h.renderer.SetTheme(t)
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	x, y := int32(10), int32(10)
	width := int32(300)
	height := int32(len(data.Effects)+5)*r.Style.LineHeight + r.Style.Padding*2 + 8

	r.DrawPanel(x, y, width, height)
	x += r.Style.Padding
	y += r.Style.Padding

	rl.DrawText(data.Title, x, y, 16, r.Style.ValueColor)
	y += r.Style.LineHeight + 4

	layout := "desktop"
	if data.Compact {
		layout = "compact"
	}
	y = r.DrawLabelValue(x, y, "FPS", fmt.Sprintf("%d | %s | %s", data.FPS, data.Theme, layout))
	y = r.DrawLabelValue(x, y, "Frames", fmt.Sprintf("%d", data.Frames))
	y = r.DrawLabelValue(x, y, "Scroll", fmt.Sprintf("%.0f%%", data.Scroll*100))
	y = r.DrawLabelValue(x, y, "Links", fmt.Sprintf("%d | lit glyphs %d", data.Links, data.Highlighted))

	for _, e := range data.Effects {
		status := "off"
		if e.Active {
			status = fmt.Sprintf("%d run %d skip n=%d", e.Executed, e.Skipped, e.Count)
		}
		y = r.DrawLabelValue(x, y, e.Name, status)
	}
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	PhaseAvg map[string]time.Duration
	Total    time.Duration
	Phases   []string // Display order
}

// PerfPanel renders the per-effect frame time breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y, width int32, t theme.Theme) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(t),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetTheme restyles the panel.
func (p *PerfPanel) SetTheme(t theme.Theme) {
	p.renderer.SetTheme(t)
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	r := p.renderer
	height := int32(len(data.Phases)+2)*(r.Style.LineHeight+2) + r.Style.Padding*2
	r.DrawPanel(p.x, p.y, p.width, height)

	x := p.x + r.Style.Padding
	y := p.y + r.Style.Padding

	rl.DrawText(fmt.Sprintf("Frame: %s", data.Total.Round(time.Microsecond)), x, y, 14, r.Style.SectionHeader)
	y += r.Style.LineHeight + 4

	for _, name := range data.Phases {
		var share float32
		if data.Total > 0 {
			share = float32(data.PhaseAvg[name]) / float32(data.Total)
		}
		y = r.DrawBar(x, y, name, share, p.width-r.Style.Padding*2)
	}
}
