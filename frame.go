package fractal

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Wire flattens the request for a FrameRenderer.
func (r RenderRequest) Wire() FrameRequest {
	v := r.Viewport
	return FrameRequest{
		Variant:       r.Variant,
		X:             v.Position.X(),
		Y:             v.Position.Y(),
		Zoom:          v.Zoom,
		Width:         v.Width,
		Height:        v.Height,
		MaxIterations: v.MaxIterations,
		Supersampling: v.Supersampling,
	}
}

// Request rebuilds the RenderRequest carried by f. It is not validated.
func (f FrameRequest) Request() RenderRequest {
	return RenderRequest{
		Variant: f.Variant,
		Viewport: Viewport{
			Position:      mgl64.Vec2{f.X, f.Y},
			Zoom:          f.Zoom,
			Width:         f.Width,
			Height:        f.Height,
			MaxIterations: f.MaxIterations,
			Supersampling: f.Supersampling,
		},
	}
}

// NewFrame packs a rendered buffer. The pixels are shared, not copied.
func NewFrame(buf *FrameBuffer, elapsed time.Duration) Frame {
	return Frame{
		Width:   buf.Width(),
		Height:  buf.Height(),
		Pix:     buf.Pix(),
		Elapsed: elapsed,
	}
}

// Buffer unpacks the frame, checking that Pix matches the size.
func (f Frame) Buffer() (*FrameBuffer, error) {
	return FrameBufferFromPix(f.Width, f.Height, f.Pix)
}
