package fractal

import (
	"testing"
	"time"
)

func TestFrameRequestKeepsRequest(t *testing.T) {
	req := RenderRequest{Variant: BurningShip, Viewport: DefaultViewport().Pan(3, -2)}
	req.Viewport.Supersampling = 3
	if got := req.Wire().Request(); got != req {
		t.Errorf("Wire().Request() = %+v, want %+v", got, req)
	}
}

func TestFrameBuffer(t *testing.T) {
	buf := NewFrameBuffer(3, 2)
	buf.Set(2, 1, Pixel{R: 10, G: 20, B: 30})

	frame := NewFrame(buf, 5*time.Millisecond)
	got, err := frame.Buffer()
	if err != nil {
		t.Fatalf("Buffer() = %v", err)
	}
	if !got.Equal(buf) {
		t.Error("Buffer() differs from the packed buffer")
	}

	frame.Pix = frame.Pix[:len(frame.Pix)-4]
	if _, err := frame.Buffer(); err == nil {
		t.Error("Buffer() accepted a short Pix")
	}
	if _, err := (Frame{}).Buffer(); err == nil {
		t.Error("Buffer() accepted an empty frame")
	}
}
