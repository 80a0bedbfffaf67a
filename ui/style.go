// Package ui draws the page chrome: HUD, panels, the theme toggle, the about
// overlay frame and the splash screen.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

// Style holds UI styling constants for one theme.
type Style struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Accent        rl.Color
	Muted         rl.Color
	BarBg         rl.Color
	BarFill       rl.Color
	BarFillWarn   rl.Color
	BarFillHot    rl.Color

	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// StyleFor returns the UI style matching the page theme t.
func StyleFor(t theme.Theme) Style {
	page := theme.Page(t)
	s := Style{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 230},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  page.Accent,
		LabelColor:     rl.LightGray,
		ValueColor:     page.Text,
		Accent:         page.Accent,
		Muted:          rl.Gray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        page.Accent,
		BarFillWarn:    rl.Color{R: 200, G: 180, B: 100, A: 255},
		BarFillHot:     rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
	if t == theme.Light {
		s.PanelBg = rl.Color{R: 248, G: 250, B: 252, A: 235}
		s.PanelBorder = rl.Color{R: 203, G: 213, B: 225, A: 255}
		s.LabelColor = rl.Color{R: 71, G: 85, B: 105, A: 255}
		s.Muted = rl.Color{R: 148, G: 163, B: 184, A: 255}
		s.BarBg = rl.Color{R: 226, G: 232, B: 240, A: 255}
	}
	return s
}
