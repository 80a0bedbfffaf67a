package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/config"
	"github.com/pthm-cable/folio/site"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("frames", 0, "Stop after N frames (0 = unlimited, headless defaults to 600)")
	themeName := flag.String("theme", "", "Initial theme: light, dark or dynamic (empty = use config)")
	touch := flag.Bool("touch", false, "Behave as a touch-primary device")
	debug := flag.Bool("debug", false, "Enable debug logging")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := site.Options{
		Seed:           rngSeed,
		Theme:          *themeName,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		Touch:          *touch,
	}

	if *headless {
		runHeadless(cfg, opts, *maxFrames)
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagWindowHighdpi)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	s, err := site.New(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		rl.CloseWindow()
		os.Exit(1)
	}
	defer s.Unload()

	for !rl.WindowShouldClose() {
		s.Update()
		s.Draw()

		if *maxFrames > 0 && int(s.Frame()) >= *maxFrames {
			break
		}
	}
}

// runHeadless drives the page on a fixed clock against in-memory surfaces.
func runHeadless(cfg *config.Config, opts site.Options, maxFrames int) {
	if maxFrames <= 0 {
		maxFrames = 600
	}

	s, err := site.New(cfg, opts)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer s.Unload()

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"theme", s.Theme().String(),
		"frames", maxFrames,
		"output_dir", opts.OutputDir,
	)

	start := time.Now()
	for int(s.Frame()) < maxFrames {
		s.UpdateHeadless()
	}
	slog.Info("headless run finished",
		"frames", s.Frame(),
		"page_ms", s.NowMs(),
		"wall", time.Since(start).String(),
	)
}
