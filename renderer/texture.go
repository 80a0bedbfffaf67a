package renderer

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/folio/surface"
)

// TextureSurface is a surface backed by a raylib render texture. The texture
// is allocated at logical size times the pixel ratio; drawing coordinates stay
// logical.
type TextureSurface struct {
	w, h   float32
	ratio  float32
	target rl.RenderTexture2D
	loaded bool
	canvas Canvas
}

// NewTextureSurface creates a surface of logical size w x h. The texture is
// allocated lazily on the first Context call.
func NewTextureSurface(w, h, pixelRatio float32) *TextureSurface {
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	return &TextureSurface{w: w, h: h, ratio: pixelRatio}
}

func (s *TextureSurface) Size() (float32, float32) {
	return s.w, s.h
}

// Resize changes the logical size. The texture is reallocated on next use.
func (s *TextureSurface) Resize(w, h float32) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resizing texture surface to %gx%g: non-positive size", w, h)
	}
	s.w, s.h = w, h
	if s.loaded {
		s.Unload()
		if _, err := s.Context(); err != nil {
			return err
		}
	}
	return nil
}

// Context returns a canvas drawing into the texture. It fails with
// surface.ErrNoContext when no window is open or the texture cannot be created.
func (s *TextureSurface) Context() (surface.Canvas, error) {
	if !rl.IsWindowReady() {
		return nil, surface.ErrNoContext
	}
	if !s.loaded {
		tw, th := int32(s.w*s.ratio), int32(s.h*s.ratio)
		if tw <= 0 || th <= 0 {
			return nil, fmt.Errorf("texture %dx%d: %w", tw, th, surface.ErrNoContext)
		}
		s.target = rl.LoadRenderTexture(tw, th)
		if s.target.ID == 0 {
			return nil, fmt.Errorf("texture %dx%d: %w", tw, th, surface.ErrNoContext)
		}
		rl.SetTextureFilter(s.target.Texture, rl.FilterBilinear)
		s.loaded = true
	}
	s.canvas = Canvas{target: &s.target, scale: s.ratio}
	return &s.canvas, nil
}

// Draw composites the texture onto the current target with its top-left
// corner at (x, y), tinted by alpha.
func (s *TextureSurface) Draw(x, y float32, alpha uint8) {
	if !s.loaded {
		return
	}
	tex := s.target.Texture
	// Render textures are stored upside down
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(tex.Width), Height: -float32(tex.Height)}
	dst := rl.Rectangle{X: x, Y: y, Width: s.w, Height: s.h}
	rl.DrawTexturePro(tex, src, dst, rl.Vector2{}, 0, rl.Color{R: 255, G: 255, B: 255, A: alpha})
}

// Unload frees the texture.
func (s *TextureSurface) Unload() {
	if s.loaded {
		rl.UnloadRenderTexture(s.target)
		s.target = rl.RenderTexture2D{}
		s.loaded = false
	}
}
