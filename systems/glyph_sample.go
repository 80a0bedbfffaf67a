package systems

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// GlyphPoint is a foreground pixel of a rasterized label.
type GlyphPoint struct {
	X, Y float32
}

var (
	boldOnce sync.Once
	boldFont *sfnt.Font
	boldErr  error
)

func labelFont() (*sfnt.Font, error) {
	boldOnce.Do(func() {
		boldFont, boldErr = opentype.Parse(gobold.TTF)
	})
	return boldFont, boldErr
}

// RasterizeLabel renders label centered into a w x h alpha bitmap.
func RasterizeLabel(label string, w, h int, fontSize float64) (*image.Alpha, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("rasterizing %q: bitmap size %dx%d", label, w, h)
	}
	f, err := labelFont()
	if err != nil {
		return nil, fmt.Errorf("parsing label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating label face: %w", err)
	}
	defer face.Close()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.Opaque,
		Face: face,
	}

	// Center horizontally on the advance and vertically on the cap height
	adv := d.MeasureString(label)
	m := face.Metrics()
	capH := m.CapHeight
	if capH <= 0 {
		capH = m.Ascent
	}
	x := (fixed.I(w) - adv) / 2
	y := fixed.I(h)/2 + capH/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(label)

	return dst, nil
}

// SampleGlyph rasterizes label and returns the grid points, stride pixels
// apart, whose alpha exceeds threshold.
func SampleGlyph(label string, w, h int, fontSize float64, stride int, threshold uint8) ([]GlyphPoint, error) {
	if stride <= 0 {
		return nil, fmt.Errorf("sampling %q: stride %d", label, stride)
	}
	bmp, err := RasterizeLabel(label, w, h, fontSize)
	if err != nil {
		return nil, err
	}

	var pts []GlyphPoint
	for y := 0; y < h; y += stride {
		for x := 0; x < w; x += stride {
			if bmp.AlphaAt(x, y).A > threshold {
				pts = append(pts, GlyphPoint{X: float32(x), Y: float32(y)})
			}
		}
	}
	return pts, nil
}
