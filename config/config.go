// Package config provides configuration loading and access for the site visuals.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Animator  AnimatorConfig  `yaml:"animator"`
	Theme     ThemeConfig     `yaml:"theme"`
	Page      PageConfig      `yaml:"page"`
	Field     FieldConfig     `yaml:"field"`
	Glyph     GlyphConfig     `yaml:"glyph"`
	Radial    RadialConfig    `yaml:"radial"`
	Cursor    CursorConfig    `yaml:"cursor"`
	Splash    SplashConfig    `yaml:"splash"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	TargetFPS    int     `yaml:"target_fps"`
	Title        string  `yaml:"title"`
	PixelRatio   float64 `yaml:"pixel_ratio"`   // 0 = ask the window
	CompactWidth int     `yaml:"compact_width"` // Viewports narrower than this use the compact layout
	TouchPrimary bool    `yaml:"touch_primary"` // Coarse pointer: disables pointer repulsion and the cursor
}

// AnimatorConfig holds frame scheduling parameters.
type AnimatorConfig struct {
	FrameIntervalMS float64 `yaml:"frame_interval_ms"` // Throttle interval (0 = every display frame)
	TimeStep        float64 `yaml:"time_step"`         // Fixed time accumulator increment per executed frame
}

// ThemeConfig holds the theme applied at startup.
type ThemeConfig struct {
	Initial string `yaml:"initial"`
}

// PageConfig describes the scrollable page the effects live on.
type PageConfig struct {
	Viewports    float64 `yaml:"viewports"`     // Page height in viewport heights
	ScrollStep   float64 `yaml:"scroll_step"`   // Pixels per wheel notch
	HeroTop      float64 `yaml:"hero_top"`      // Hero banner top as a fraction of viewport height
	HeroBottom   float64 `yaml:"hero_bottom"`   // Hero banner bottom as a fraction of viewport height
	OverlayW     float64 `yaml:"overlay_width"` // About overlay size (clamped to the viewport)
	OverlayH     float64 `yaml:"overlay_height"`
	OverlayInset float64 `yaml:"overlay_inset"`
}

// FieldConfig holds ambient particle field parameters.
type FieldConfig struct {
	DensityArea        float64 `yaml:"density_area"`         // Surface area per particle
	DensityAreaCompact float64 `yaml:"density_area_compact"` // Same, compact layout
	LinkDistance       float64 `yaml:"link_distance"`
	LinkDistanceCompact float64 `yaml:"link_distance_compact"`
	MaxLinks           int     `yaml:"max_links"`
	MaxLinksCompact    int     `yaml:"max_links_compact"`
	MinLinkDX          float64 `yaml:"min_link_dx"`   // Links with smaller horizontal separation are skipped
	RepelRadius        float64 `yaml:"repel_radius"`  // Pointer repulsion radius
	RepelStrength      float64 `yaml:"repel_strength"`
	ForwardAccel       float64 `yaml:"forward_accel"`
	Oscillation        float64 `yaml:"oscillation"`   // Vertical sine term amplitude
	DriftBias          float64 `yaml:"drift_bias"`    // Per-particle vertical bias range
	DampNear           float64 `yaml:"damp_near"`     // Damping inside the repulsion radius
	DampFar            float64 `yaml:"damp_far"`      // Damping outside the repulsion radius
	MinVX              float64 `yaml:"min_vx"`
	MaxVX              float64 `yaml:"max_vx"`
	MaxVXRepelled      float64 `yaml:"max_vx_repelled"`
	MaxVY              float64 `yaml:"max_vy"`
	WrapOvershoot      float64 `yaml:"wrap_overshoot"` // Distance past the right edge before respawn
	RespawnSpan        float64 `yaml:"respawn_span"`   // Respawn x is uniform in [-span, 0]
	ScrollFloor        float64 `yaml:"scroll_floor"`
	FadeStart          float64 `yaml:"fade_start"` // Fraction of height
	FadeEnd            float64 `yaml:"fade_end"`
	FadeAmount         float64 `yaml:"fade_amount"`
}

// GlyphConfig holds glyph particle renderer parameters.
type GlyphConfig struct {
	Label           string  `yaml:"label"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	HeightCompact   float64 `yaml:"height_compact"`
	MaxWidthCompact float64 `yaml:"max_width_compact"`
	CompactMargin   float64 `yaml:"compact_margin"`
	FontSize        float64 `yaml:"font_size"`
	FontSizeCompact float64 `yaml:"font_size_compact"`
	Stride          int     `yaml:"stride"`
	StrideCompact   int     `yaml:"stride_compact"`
	AlphaThreshold  uint8   `yaml:"alpha_threshold"`
	PointerRadius   float64 `yaml:"pointer_radius"`
	PointerForce    float64 `yaml:"pointer_force"`
	Spring          float64 `yaml:"spring"`
	Damping         float64 `yaml:"damping"`
	SweepDivisor    float64 `yaml:"sweep_divisor"` // Sweep position = elapsed ms / divisor
	SweepWrap       float64 `yaml:"sweep_wrap"`    // Sweep wraps at width * this
	HighlightBand   float64 `yaml:"highlight_band"`
	Radius          float64 `yaml:"radius"`
	RadiusHit       float64 `yaml:"radius_hit"`
	RadiusCompact   float64 `yaml:"radius_compact"`
	RadiusHitCompact float64 `yaml:"radius_hit_compact"`
}

// RadialNodeConfig describes one labeled node.
type RadialNodeConfig struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// RadialConfig holds radial node layout parameters.
type RadialConfig struct {
	Nodes         []RadialNodeConfig `yaml:"nodes"` // First node is the center
	Radius        float64            `yaml:"radius"`
	Gain          float64            `yaml:"gain"`
	Friction      float64            `yaml:"friction"`
	MinSeparation float64            `yaml:"min_separation"`
	InitialJitter float64            `yaml:"initial_jitter"`
	FadeDistance  float64            `yaml:"fade_distance"`
	MinOpacity    float64            `yaml:"min_opacity"`
	NodeRadius    float64            `yaml:"node_radius"`
	GlowRadius    float64            `yaml:"glow_radius"`
	LabelOffset   float64            `yaml:"label_offset"`
	LabelSize     float64            `yaml:"label_size"`
}

// CursorConfig holds spring cursor parameters.
type CursorConfig struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
	Mass      float64 `yaml:"mass"`
	Size      float64 `yaml:"size"`
}

// SplashConfig holds splash screen timing.
type SplashConfig struct {
	Enabled   bool     `yaml:"enabled"`
	LoadingMS float64  `yaml:"loading_ms"`
	ExitMS    float64  `yaml:"exit_ms"`    // Page takes over after this
	ShutterMS float64  `yaml:"shutter_ms"` // Length of the slide-up easing curve
	MessageMS float64  `yaml:"message_ms"`
	DotMS     float64  `yaml:"dot_ms"`
	Drops     int      `yaml:"drops"`
	Title     string   `yaml:"title"`
	Messages  []string `yaml:"messages"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of frames per stats window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameInterval time.Duration // Animator.FrameIntervalMS as a duration
	TimeStep32    float32       // Animator.TimeStep as float32
	ScreenW32     float32       // Screen.Width as float32
	ScreenH32     float32       // Screen.Height as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulators cannot run with.
func (c *Config) validate() error {
	if c.Field.DensityArea <= 0 || c.Field.DensityAreaCompact <= 0 {
		return fmt.Errorf("field: density_area must be positive")
	}
	if c.Glyph.Stride <= 0 || c.Glyph.StrideCompact <= 0 {
		return fmt.Errorf("glyph: stride must be positive")
	}
	if len(c.Radial.Nodes) < 2 {
		return fmt.Errorf("radial: need a center node and at least one satellite, got %d nodes", len(c.Radial.Nodes))
	}
	if c.Splash.Enabled && (c.Splash.MessageMS <= 0 || c.Splash.DotMS <= 0) {
		return fmt.Errorf("splash: message_ms and dot_ms must be positive")
	}
	if c.Animator.FrameIntervalMS < 0 {
		return fmt.Errorf("animator: frame_interval_ms must not be negative")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.FrameInterval = time.Duration(c.Animator.FrameIntervalMS * float64(time.Millisecond))
	c.Derived.TimeStep32 = float32(c.Animator.TimeStep)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Screen.CompactWidth == 0 {
		c.Screen.CompactWidth = 768
	}
	if c.Page.Viewports < 1 {
		c.Page.Viewports = 1
	}
	if len(c.Splash.Messages) == 0 {
		c.Splash.Messages = []string{"Loading"}
	}
	if c.Splash.ShutterMS <= 0 {
		c.Splash.ShutterMS = c.Splash.ExitMS
	}
}

// Compact reports whether a viewport of the given width uses the compact layout.
func (c *Config) Compact(viewportW float32) bool {
	return int(viewportW) < c.Screen.CompactWidth
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
