// Package backdrop drives a scene.Scene from a host window: it owns the
// frame loop and the mount, resize, pointer and teardown lifecycle.
package backdrop

import "github.com/iburimskiy/backdrop/internal/scene"

type FrameID uint64

// Host is everything the backdrop needs from the environment that mounts it.
type Host interface {
	// ViewportSize reports the current outer size of the window.
	ViewportSize() (w, h int)
	// ResizeSurface sets the drawable surface's logical size.
	ResizeSurface(w, h int)
	// Surface returns the render target for the current frame, or false
	// when none can be acquired.
	Surface() (scene.Canvas, bool)

	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)

	OnResize(fn func(w, h int)) (detach func())
	OnPointerMove(fn func(x, y float64)) (detach func())
}

// FrameQueue is an animation-frame primitive: callbacks requested now run
// on the next Flush, exactly once, unless cancelled first.
type FrameQueue struct {
	next    FrameID
	pending []queuedFrame
}

type queuedFrame struct {
	id FrameID
	fn func()
}

func (q *FrameQueue) Request(fn func()) FrameID {
	q.next++
	q.pending = append(q.pending, queuedFrame{id: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) Cancel(id FrameID) {
	for i, f := range q.pending {
		if f.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Flush runs the callbacks queued before the call. Callbacks requested
// while flushing wait for the next Flush. It returns how many ran.
func (q *FrameQueue) Flush() int {
	batch := q.pending
	q.pending = nil
	for _, f := range batch {
		f.fn()
	}
	return len(batch)
}

func (q *FrameQueue) Pending() int { return len(q.pending) }
