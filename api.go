package fractal

import (
	"context"
	"time"
)

//go:generate irpc api.go

// FrameRequest is a RenderRequest as it travels to a render server.
type FrameRequest struct {
	Variant       Variant
	X             float64
	Y             float64
	Zoom          float64
	Width         int
	Height        int
	MaxIterations int
	Supersampling int
}

// Frame is a finished frame as it travels back. Pix is RGBA, row major.
type Frame struct {
	Width   int
	Height  int
	Pix     []byte
	Elapsed time.Duration // spent rendering on the server
}

// FrameRenderer renders frames for remote clients.
type FrameRenderer interface {
	RenderFrame(ctx context.Context, req FrameRequest) (Frame, error)
}
