// Package animator drives per-surface animations at the display's frame cadence.
package animator

// FrameID identifies a requested frame callback.
type FrameID uint64

// Scheduler is the display's frame callback facility. A callback requested
// during one frame runs in the next, receiving that frame's timestamp.
type Scheduler interface {
	RequestFrame(fn func(nowMs float64)) FrameID
	CancelFrame(id FrameID)
}

type request struct {
	id FrameID
	fn func(nowMs float64)
}

// Loop is a Scheduler driven by an external frame source: the window loop
// calls RunFrame once per presented frame, headless runs call it at a fixed step.
// Loop is not safe for concurrent use; all calls happen on the frame thread.
type Loop struct {
	nextID  FrameID
	pending []request
	running []request
	frames  uint64
}

// NewLoop creates an empty frame loop.
func NewLoop() *Loop {
	return &Loop{}
}

// RequestFrame queues fn for the next RunFrame.
func (l *Loop) RequestFrame(fn func(nowMs float64)) FrameID {
	l.nextID++
	l.pending = append(l.pending, request{id: l.nextID, fn: fn})
	return l.nextID
}

// CancelFrame drops a queued callback. Unknown or already-run ids are ignored.
func (l *Loop) CancelFrame(id FrameID) {
	for i, r := range l.pending {
		if r.id == id {
			l.pending = append(l.pending[:i], l.pending[i+1:]...)
			return
		}
	}
	// Cancelled from inside the current frame, before its turn
	for i := range l.running {
		if l.running[i].id == id {
			l.running[i].fn = nil
			return
		}
	}
}

// RunFrame runs every callback queued before this call. Callbacks queued
// while it runs wait for the next frame.
func (l *Loop) RunFrame(nowMs float64) {
	l.frames++
	// Swap buffers so re-requests land in a fresh pending list
	l.running, l.pending = l.pending, l.running[:0]
	for i := range l.running {
		if fn := l.running[i].fn; fn != nil {
			l.running[i].fn = nil
			fn(nowMs)
		}
	}
	clear(l.running)
	l.running = l.running[:0]
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	return len(l.pending)
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}
