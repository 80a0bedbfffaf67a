// Package camera provides the page scroll viewport.
package camera

// Camera controls the viewport into a vertically scrolling page.
// The page is a whole number of viewport heights tall; the viewport slides
// over it and never leaves its bounds.
type Camera struct {
	// ScrollY is the page offset of the viewport's top edge
	ScrollY float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Page height in viewport heights
	Pages float32
}

// New creates a camera at the top of a page that is pages viewports tall.
func New(viewportW, viewportH, pages float32) *Camera {
	if pages < 1 {
		pages = 1
	}
	return &Camera{
		ViewportW: viewportW,
		ViewportH: viewportH,
		Pages:     pages,
	}
}

// PageHeight returns the total page height in pixels.
func (c *Camera) PageHeight() float32 {
	return c.ViewportH * c.Pages
}

// MaxScroll returns the largest valid scroll offset.
func (c *Camera) MaxScroll() float32 {
	m := c.PageHeight() - c.ViewportH
	if m < 0 {
		return 0
	}
	return m
}

// Scroll moves the viewport by dy pixels, clamped to the page.
func (c *Camera) Scroll(dy float32) {
	c.ScrollY = clamp(c.ScrollY+dy, 0, c.MaxScroll())
}

// ScrollTo jumps to an absolute offset, clamped to the page.
func (c *Camera) ScrollTo(y float32) {
	c.ScrollY = clamp(y, 0, c.MaxScroll())
}

// ScrollFactor returns 1 at the page top, falling linearly to floor once the
// page has scrolled one viewport height.
func (c *Camera) ScrollFactor(floor float32) float32 {
	if c.ViewportH <= 0 {
		return 1
	}
	f := 1 - c.ScrollY/c.ViewportH
	if f < floor {
		return floor
	}
	if f > 1 {
		return 1
	}
	return f
}

// PageToScreen converts a page y coordinate to screen space.
func (c *Camera) PageToScreen(py float32) float32 {
	return py - c.ScrollY
}

// ScreenToPage converts a screen y coordinate to page space.
func (c *Camera) ScreenToPage(sy float32) float32 {
	return sy + c.ScrollY
}

// Visible reports whether the page region [top, bottom) intersects the viewport.
func (c *Camera) Visible(top, bottom float32) bool {
	return bottom > c.ScrollY && top < c.ScrollY+c.ViewportH
}

// Resize updates viewport dimensions. The scroll offset keeps its relative
// position on the page.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	var rel float32
	if c.ViewportH > 0 {
		rel = c.ScrollY / c.ViewportH
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.ScrollTo(rel * viewportH)
}

// Reset returns the camera to the page top.
func (c *Camera) Reset() {
	c.ScrollY = 0
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
