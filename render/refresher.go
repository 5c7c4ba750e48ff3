package render

import (
	"context"
	"sync"
	"sync/atomic"

	fractal "github.com/marben/fractals"
)

// FrameFunc receives every completed frame together with its request.
type FrameFunc func(req fractal.RenderRequest, frame *fractal.FrameBuffer)

// Refresher re-renders on demand for an interactive front end. Requests made
// while a pass is running are coalesced: only the newest one is rendered
// next, and at most one pass runs at a time.
type Refresher struct {
	renderer fractal.Renderer
	onFrame  FrameFunc

	mu      sync.Mutex
	pending *fractal.RenderRequest
	wake    chan struct{}

	rendering atomic.Bool
}

func NewRefresher(r fractal.Renderer, onFrame FrameFunc) *Refresher {
	return &Refresher{
		renderer: r,
		onFrame:  onFrame,
		wake:     make(chan struct{}, 1),
	}
}

// Request schedules req, replacing any request that has not started yet.
// It never blocks.
func (r *Refresher) Request(req fractal.RenderRequest) {
	r.mu.Lock()
	r.pending = &req
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

// Busy reports whether a pass is running or a request is waiting.
func (r *Refresher) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending != nil || r.rendering.Load()
}

func (r *Refresher) take() (fractal.RenderRequest, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending == nil {
		return fractal.RenderRequest{}, false
	}
	req := *r.pending
	r.pending = nil
	r.rendering.Store(true)
	return req, true
}

// Run renders requests until ctx is done. Rejected requests are logged and
// skipped; the previous frame stays current.
func (r *Refresher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.wake:
		}

		req, ok := r.take()
		if !ok {
			continue
		}
		frame, err := r.renderer.Render(ctx, req)
		r.rendering.Store(false)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fractal.Logger().Warn("refresh failed", "variant", req.Variant, "err", err)
			continue
		}
		if r.onFrame != nil {
			r.onFrame(req, frame)
		}
	}
}
