package render

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	fractal "github.com/marben/fractals"
)

var ErrClosed = errors.New("render: engine closed")

// State of the engine's frame buffer.
type State int32

const (
	// Idle: the current frame matches the last rendered request.
	Idle State = iota
	// Rendering: a pass is filling a new frame.
	Rendering
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rendering:
		return "rendering"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

type Option func(*Engine)

// WithWorkers sets how many column bands (and pool goroutines) a pass uses.
// Values below 1 mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// Engine renders frames. It owns the worker pool, the last completed frame
// and the request that produced it.
//
// Passes never overlap: a Render call made while another is in flight waits
// for it. A started pass always runs to completion; the context passed to
// Render only bounds the wait for the previous pass.
type Engine struct {
	workers int
	pool    *WorkerPool

	// sem admits one pass at a time.
	sem chan struct{}

	state   atomic.Int32
	current atomic.Pointer[pass]
	passes  atomic.Uint64
	closed  atomic.Bool

	mu    sync.RWMutex
	frame *fractal.FrameBuffer
	last  fractal.RenderRequest
}

var (
	_ fractal.Renderer      = (*Engine)(nil)
	_ fractal.FrameProvider = (*Engine)(nil)
)

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		workers: runtime.GOMAXPROCS(0),
		sem:     make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(e)
	}
	e.pool = NewWorkerPool(e.workers)
	return e
}

// Render validates req, renders it into a fresh buffer and makes that buffer
// the current frame. The returned buffer is never written again.
//
// An invalid request is rejected before any work starts and leaves the
// current frame untouched.
func (e *Engine) Render(ctx context.Context, req fractal.RenderRequest) (*fractal.FrameBuffer, error) {
	if err := req.Validate(); err != nil {
		fractal.Logger().Warn("render request rejected", "err", err)
		return nil, fmt.Errorf("render: %w", err)
	}
	if e.closed.Load() {
		return nil, ErrClosed
	}

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("render: waiting for previous pass: %w", context.Cause(ctx))
	}
	defer func() { <-e.sem }()

	if e.closed.Load() {
		return nil, ErrClosed
	}

	start := time.Now()
	p := newPass(req)
	bands := Bands(req.Viewport.Width, e.workers)

	e.current.Store(p)
	e.state.Store(int32(Rendering))
	if !e.pool.ExecuteAll(p.tasks(bands)) {
		e.state.Store(int32(Idle))
		return nil, ErrClosed
	}

	e.mu.Lock()
	e.frame = p.buf
	e.last = req
	e.mu.Unlock()
	e.state.Store(int32(Idle))
	n := e.passes.Add(1)

	fractal.Logger().Debug("render pass finished",
		"pass", n,
		"variant", req.Variant,
		"viewport", req.Viewport,
		"bands", len(bands),
		"elapsed", time.Since(start))

	return p.buf, nil
}

// Frame returns the last completed frame, nil before the first pass.
func (e *Engine) Frame() *fractal.FrameBuffer {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.frame
}

// Request returns the request that produced the current frame.
func (e *Engine) Request() (fractal.RenderRequest, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last, e.frame != nil
}

func (e *Engine) State() State {
	return State(e.state.Load())
}

// Progress reports the fraction of pixels finished in the latest pass.
func (e *Engine) Progress() float32 {
	p := e.current.Load()
	if p == nil {
		return 0
	}
	return p.finished()
}

// Passes returns how many passes completed.
func (e *Engine) Passes() uint64 {
	return e.passes.Load()
}

// Workers is the number of column bands per pass.
func (e *Engine) Workers() int {
	return e.workers
}

// Busy is the number of workers currently rendering a band.
func (e *Engine) Busy() int {
	return e.pool.Busy()
}

// Close waits for an in-flight pass and stops the worker pool.
func (e *Engine) Close() error {
	if e.closed.Swap(true) {
		return nil
	}
	e.sem <- struct{}{}
	e.pool.Close()
	<-e.sem
	return nil
}
