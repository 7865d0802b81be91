package backdrop

import (
	"image/color"

	"github.com/iburimskiy/backdrop/internal/scene"
)

// countingCanvas tallies every write to the surface.
type countingCanvas struct {
	writes int
}

func (c *countingCanvas) FillRect(x, y, w, h float64, clr color.NRGBA) { c.writes++ }
func (c *countingCanvas) FillCircle(cx, cy, r float64, clr color.NRGBA) { c.writes++ }
func (c *countingCanvas) StrokeCircle(cx, cy, r, width float64, clr color.NRGBA) { c.writes++ }
func (c *countingCanvas) StrokePath(pts []scene.Point, width float64, clr color.NRGBA, closed bool) {
	c.writes++
}
func (c *countingCanvas) FillPolygon(pts []scene.Point, clr color.NRGBA) { c.writes++ }

// fakeHost is a Host whose events and frames are driven by the test.
type fakeHost struct {
	queue      FrameQueue
	canvas     countingCanvas
	surfaceOff bool

	viewW, viewH int
	surfW, surfH int

	nextListener int
	resize       map[int]func(w, h int)
	pointer      map[int]func(x, y float64)

	// captured callbacks survive detaching so tests can fire them late.
	lastResize  func(w, h int)
	lastPointer func(x, y float64)
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{
		viewW:   w,
		viewH:   h,
		resize:  map[int]func(w, h int){},
		pointer: map[int]func(x, y float64){},
	}
}

func (h *fakeHost) ViewportSize() (int, int) { return h.viewW, h.viewH }

func (h *fakeHost) ResizeSurface(w, ht int) { h.surfW, h.surfH = w, ht }

func (h *fakeHost) Surface() (scene.Canvas, bool) {
	if h.surfaceOff {
		return nil, false
	}
	return &h.canvas, true
}

func (h *fakeHost) RequestFrame(fn func()) FrameID { return h.queue.Request(fn) }

func (h *fakeHost) CancelFrame(id FrameID) { h.queue.Cancel(id) }

func (h *fakeHost) OnResize(fn func(w, h int)) func() {
	h.nextListener++
	id := h.nextListener
	h.resize[id] = fn
	h.lastResize = fn
	return func() { delete(h.resize, id) }
}

func (h *fakeHost) OnPointerMove(fn func(x, y float64)) func() {
	h.nextListener++
	id := h.nextListener
	h.pointer[id] = fn
	h.lastPointer = fn
	return func() { delete(h.pointer, id) }
}

func (h *fakeHost) fireResize(w, ht int) {
	h.viewW, h.viewH = w, ht
	for _, fn := range h.resize {
		fn(w, ht)
	}
}

func (h *fakeHost) firePointer(x, y float64) {
	for _, fn := range h.pointer {
		fn(x, y)
	}
}
