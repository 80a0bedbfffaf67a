package site

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Update handles input and runs one display frame of every active effect.
// Draw must follow; it closes the frame's perf sample.
func (s *Site) Update() {
	s.handleInput()
	s.advance(rl.GetTime()*1000, float64(rl.GetFrameTime())*1000)
}

// UpdateHeadless runs one display frame on a fixed clock, without input or
// drawing to a window.
func (s *Site) UpdateHeadless() {
	start := time.Now()
	s.advance(s.nowMs+s.stepMs, s.stepMs)
	s.perfCollector.EndTick()
	s.finishFrame(float64(time.Since(start)) / float64(time.Millisecond))
}

// advance moves the page clock to nowMs and fires the frame callbacks
// scheduled by the animators.
func (s *Site) advance(nowMs, dtMs float64) {
	s.nowMs = nowMs
	s.splash.Update(dtMs)
	s.syncActivation()

	s.perfCollector.StartTick()
	s.loop.RunFrame(nowMs)
}

// finishFrame records the frame for telemetry.
func (s *Site) finishFrame(frameMs float64) {
	s.collector.RecordFrame(frameMs, s.field.Links(), s.glyph.Highlighted())
	s.frameCount++
	s.flushTelemetry()
}

// NowMs returns the page clock in milliseconds.
func (s *Site) NowMs() float64 {
	return s.nowMs
}

// SplashDone reports whether the splash screen has handed over to the page.
func (s *Site) SplashDone() bool {
	return s.splash.Done()
}
