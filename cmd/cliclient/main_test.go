package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	fractal "github.com/marben/fractals"
)

func defaultOptions() options {
	def := fractal.DefaultViewport()
	return options{
		variant: "julia",
		x:       def.Position.X(),
		y:       def.Position.Y(),
		zoom:    def.Zoom,
		width:   200,
		height:  100,
		iter:    100,
		ss:      1,
	}
}

func TestOptionsRequest(t *testing.T) {
	req, err := defaultOptions().request()
	if err != nil {
		t.Fatalf("request() = %v", err)
	}
	if req.Variant != fractal.Julia || req.Viewport.Width != 200 {
		t.Errorf("request() = %+v", req)
	}

	o := defaultOptions()
	o.landmark = "seahorse"
	req, err = o.request()
	if err != nil {
		t.Fatalf("request() with landmark = %v", err)
	}
	if req.Viewport.Position != fractal.SeahorseValley.Center() {
		t.Errorf("landmark position = %v", req.Viewport.Position)
	}

	o = defaultOptions()
	o.variant = "sierpinski"
	if _, err := o.request(); !errors.Is(err, fractal.ErrUnknownVariant) {
		t.Errorf("request() = %v, want ErrUnknownVariant", err)
	}
	o = defaultOptions()
	o.iter = 0
	if _, err := o.request(); !errors.Is(err, fractal.ErrInvalidViewport) {
		t.Errorf("request() = %v, want ErrInvalidViewport", err)
	}
	o = defaultOptions()
	o.landmark = "atlantis"
	if _, err := o.request(); !errors.Is(err, fractal.ErrUnknownLandmark) {
		t.Errorf("request() = %v, want ErrUnknownLandmark", err)
	}
}

func TestShade(t *testing.T) {
	if got := shade(0, 0, 0); got != ' ' {
		t.Errorf("shade(black) = %q", got)
	}
	if got := shade(255, 255, 255); got != '@' {
		t.Errorf("shade(white) = %q", got)
	}
}

func TestWritePreview(t *testing.T) {
	frame := fractal.NewFrameBuffer(40, 20)
	for row := range 20 {
		for col := 20; col < 40; col++ {
			frame.Set(col, row, fractal.Pixel{R: 255, G: 255, B: 255})
		}
	}
	var buf bytes.Buffer
	writePreview(&buf, frame, 8)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("preview has %d lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, l := range lines {
		if len(l) != 8 || l[0] != ' ' || l[7] != '@' {
			t.Errorf("preview line %q, want dark left and bright right", l)
		}
	}
}

func TestPrintSummary(t *testing.T) {
	req := fractal.RenderRequest{Variant: fractal.Mandelbrot, Viewport: fractal.DefaultViewport()}
	frame := fractal.NewFrameBuffer(req.Viewport.Width, req.Viewport.Height)

	var buf bytes.Buffer
	printSummary(&buf, req, frame, 1500*time.Millisecond, 2*time.Second)
	out := buf.String()
	for _, want := range []string{"1,984,000 pixels", "black:       1,984,000 pixels (100.0%)", "1.5s on server"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
