package fractal

import (
	"context"
	"fmt"
)

// RenderRequest selects what a render pass computes.
type RenderRequest struct {
	Variant  Variant
	Viewport Viewport
}

// Validate reports whether the request can be rendered.
func (r RenderRequest) Validate() error {
	if !r.Variant.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownVariant, r.Variant)
	}
	return r.Viewport.Validate()
}

// Renderer renders a complete frame. Render blocks until every pixel of the
// returned buffer is written.
type Renderer interface {
	Render(ctx context.Context, req RenderRequest) (*FrameBuffer, error)
}

// FrameProvider hands out the most recently completed frame, or nil before the
// first pass finishes.
type FrameProvider interface {
	Frame() *FrameBuffer
}
