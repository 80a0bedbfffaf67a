package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.DensityArea != 10000 || cfg.Field.LinkDistance != 120 {
		t.Errorf("field density=%g link=%g, want 10000 and 120", cfg.Field.DensityArea, cfg.Field.LinkDistance)
	}
	if cfg.Derived.FrameInterval != 16*time.Millisecond {
		t.Errorf("FrameInterval = %v, want 16ms", cfg.Derived.FrameInterval)
	}
	if cfg.Splash.ShutterMS != 1200 {
		t.Errorf("ShutterMS = %g, want 1200", cfg.Splash.ShutterMS)
	}
}

func TestLoadOverlay(t *testing.T) {
	path := writeFile(t, "field:\n  link_distance: 90\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Field.LinkDistance != 90 {
		t.Errorf("LinkDistance = %g, want 90", cfg.Field.LinkDistance)
	}
	// Untouched keys keep their defaults
	if cfg.Field.DensityArea != 10000 {
		t.Errorf("DensityArea = %g, want default 10000", cfg.Field.DensityArea)
	}
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"zero density", "field:\n  density_area: 0\n", "density_area"},
		{"zero stride", "glyph:\n  stride: 0\n", "stride"},
		{"lone center", "radial:\n  nodes:\n    - { id: center, label: Me }\n", "radial"},
		{"negative interval", "animator:\n  frame_interval_ms: -1\n", "frame_interval_ms"},
		{"bad yaml", "field: [\n", "parsing config file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil {
				t.Fatal("Load accepted invalid config")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load accepted a missing file")
	}
}

func TestShutterFallsBackToExit(t *testing.T) {
	cfg, err := Load(writeFile(t, "splash:\n  shutter_ms: 0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Splash.ShutterMS != cfg.Splash.ExitMS {
		t.Errorf("ShutterMS = %g, want exit_ms %g", cfg.Splash.ShutterMS, cfg.Splash.ExitMS)
	}
}

func TestCompact(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	tests := []struct {
		w    float32
		want bool
	}{
		{767, true},
		{768, false},
		{1280, false},
	}
	for _, tt := range tests {
		if got := cfg.Compact(tt.w); got != tt.want {
			t.Errorf("Compact(%g) = %v, want %v", tt.w, got, tt.want)
		}
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Field.RepelRadius = 222

	path := filepath.Join(t.TempDir(), "snap.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if back.Field.RepelRadius != 222 {
		t.Errorf("RepelRadius = %g, want 222", back.Field.RepelRadius)
	}
}
