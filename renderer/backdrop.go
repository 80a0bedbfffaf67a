package renderer

import (
	_ "embed"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/theme"
)

//go:embed shaders/backdrop.fs
var backdropFS string

// BackdropRenderer fills the window with the page background: the theme's
// base color with a faint accent glow and vignette.
type BackdropRenderer struct {
	shader        rl.Shader
	timeLoc       int32
	resolutionLoc int32
	baseColorLoc  int32
	accentLoc     int32
	scrollLoc     int32
	pulseLoc      int32

	screenW, screenH float32
	style            theme.PageStyle
	pulse            float32
	initialized      bool
}

// NewBackdropRenderer creates a new backdrop renderer.
func NewBackdropRenderer(screenW, screenH int32, t theme.Theme) *BackdropRenderer {
	b := &BackdropRenderer{
		screenW: float32(screenW),
		screenH: float32(screenH),
	}
	b.SetTheme(t)
	return b
}

// Init initializes the renderer (must be called after raylib window is created).
func (b *BackdropRenderer) Init() {
	if b.initialized {
		return
	}

	b.shader = rl.LoadShaderFromMemory("", backdropFS)
	b.timeLoc = rl.GetShaderLocation(b.shader, "time")
	b.resolutionLoc = rl.GetShaderLocation(b.shader, "resolution")
	b.baseColorLoc = rl.GetShaderLocation(b.shader, "baseColor")
	b.accentLoc = rl.GetShaderLocation(b.shader, "accentColor")
	b.scrollLoc = rl.GetShaderLocation(b.shader, "scroll")
	b.pulseLoc = rl.GetShaderLocation(b.shader, "pulse")

	b.initialized = true
	b.Resize(b.screenW, b.screenH)
	b.uploadColors()
}

// SetTheme switches the background colors.
func (b *BackdropRenderer) SetTheme(t theme.Theme) {
	b.style = theme.Page(t)
	b.pulse = 0
	if t == theme.Dynamic {
		b.pulse = 1
	}
	b.uploadColors()
}

// Resize updates the resolution uniform.
func (b *BackdropRenderer) Resize(w, h float32) {
	b.screenW, b.screenH = w, h
	if b.initialized {
		rl.SetShaderValue(b.shader, b.resolutionLoc, []float32{w, h}, rl.ShaderUniformVec2)
	}
}

func (b *BackdropRenderer) uploadColors() {
	if !b.initialized {
		return
	}
	rl.SetShaderValue(b.shader, b.baseColorLoc, vec3(b.style.Background), rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.accentLoc, vec3(b.style.Accent), rl.ShaderUniformVec3)
	rl.SetShaderValue(b.shader, b.pulseLoc, []float32{b.pulse}, rl.ShaderUniformFloat)
}

// Draw renders the backdrop. progress is the page scroll position in [0, 1].
func (b *BackdropRenderer) Draw(time, progress float32) {
	if !b.initialized {
		b.Init()
	}

	rl.BeginShaderMode(b.shader)

	rl.SetShaderValue(b.shader, b.timeLoc, []float32{time}, rl.ShaderUniformFloat)
	rl.SetShaderValue(b.shader, b.scrollLoc, []float32{progress}, rl.ShaderUniformFloat)

	rl.DrawRectangle(0, 0, int32(b.screenW), int32(b.screenH), rl.White)

	rl.EndShaderMode()
}

// Unload frees resources.
func (b *BackdropRenderer) Unload() {
	if b.initialized {
		rl.UnloadShader(b.shader)
		b.initialized = false
	}
}

func vec3(c color.RGBA) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}
