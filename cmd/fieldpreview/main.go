// Field preview tool - the ambient particle field with live parameter sliders.
//
// Usage: go run ./cmd/fieldpreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/animator"
	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/renderer"
	"github.com/pthm-cable/folio/systems"
	"github.com/pthm-cable/folio/theme"
)

const (
	windowWidth  = 1180
	windowHeight = 720
	previewW     = 720
	previewH     = 600
	panelWidth   = windowWidth - previewW - 30
)

// preview owns the field under test and rebuilds it when density changes.
type preview struct {
	cfg    *config.Config
	field  config.FieldConfig
	signal *theme.Signal
	loop   *animator.Loop
	rng    *rand.Rand

	sim  *systems.AmbientField
	surf *renderer.TextureSurface
	fx   *systems.Effect
}

func (p *preview) rebuild() {
	if p.fx != nil {
		p.fx.Deactivate()
	}
	p.sim = systems.NewAmbientField(p.field, p.cfg.Animator.TimeStep, p.cfg.Screen.CompactWidth, p.rng)
	p.fx = systems.NewEffect("field", p.sim, p.surf, p.loop, p.cfg.Derived.FrameInterval, p.signal)
	if !p.fx.Activate() {
		slog.Warn("field preview has no drawing surface")
	}
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	defaults := cfg.Field

	rl.InitWindow(windowWidth, windowHeight, "Ambient Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	p := &preview{
		cfg:    cfg,
		field:  defaults,
		signal: theme.NewSignal(theme.Dark),
		loop:   animator.NewLoop(),
		rng:    rand.New(rand.NewSource(1)),
		surf:   renderer.NewTextureSurface(previewW, previewH, 1),
	}
	defer p.surf.Unload()
	p.rebuild()

	var scroll float32

	for !rl.WindowShouldClose() {
		// Pointer in preview-local coordinates
		m := rl.GetMousePosition()
		if m.X >= 10 && m.Y >= 10 && m.X < 10+previewW && m.Y < 10+previewH {
			p.sim.SetPointer(m.X-10, m.Y-10)
		} else {
			p.sim.ClearPointer()
		}
		p.sim.SetScroll(scroll, previewH)

		p.loop.RunFrame(rl.GetTime() * 1000)

		rl.BeginDrawing()
		rl.ClearBackground(theme.Page(p.signal.Get()).Background)

		p.surf.Draw(10, 10, 255)
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)

		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Particles: %d  Links: %d  Compact: %v", p.sim.Count(), p.sim.Links(), p.sim.Compact()), 15, statsY, 16, rl.Gray)
		rl.DrawText(fmt.Sprintf("FPS: %d  t: %.2f", rl.GetFPS(), p.sim.Time()), 15, statsY+20, 16, rl.Gray)

		// Control panel
		panelX := float32(previewW + 20)
		panelY := float32(10)

		rl.DrawText("Ambient Field Parameters", int32(panelX), int32(panelY), 20, rl.Gray)
		panelY += 32

		reseed := false
		for _, s := range sliders {
			v := s.value(&p.field)
			rl.DrawText(s.label, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
			nv := gui.SliderBar(
				rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 18},
				"", "",
				float32(*v), s.min, s.max,
			)
			rl.DrawText(fmt.Sprintf(s.format, *v), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 14, rl.LightGray)
			if nv != float32(*v) {
				*v = float64(nv)
				reseed = reseed || s.reseed
				if !s.reseed {
					// Motion parameters apply without losing the current particles
					p.sim.Retune(p.field)
				}
			}
			panelY += 28
		}

		rl.DrawText("Scroll damping", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 16
		scroll = gui.SliderBar(rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 18}, "", "", scroll, 0, previewH)
		panelY += 34

		for i, t := range theme.All {
			bounds := rl.Rectangle{X: panelX + float32(i)*100, Y: panelY, Width: 92, Height: 28}
			if gui.Button(bounds, t.String()) {
				p.signal.Set(t)
			}
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 28}, "Reseed") {
			reseed = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 150, Y: panelY, Width: 140, Height: 28}, "Reset All") {
			p.field = defaults
			scroll = 0
			reseed = true
		}

		if reseed {
			p.rebuild()
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			out, err := fieldYAML(p.field)
			if err != nil {
				slog.Error("yaml export failed", "error", err)
			} else {
				rl.SetClipboardText(out)
				slog.Info("field config copied", "bytes", len(out))
			}
		}

		rl.EndDrawing()
	}

	p.fx.Deactivate()
}
