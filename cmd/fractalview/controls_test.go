package main

import (
	"testing"

	fractal "github.com/marben/fractals"
)

func homeRequest() fractal.RenderRequest {
	return fractal.RenderRequest{Variant: fractal.Mandelbrot, Viewport: fractal.DefaultViewport()}
}

func TestControlsIdle(t *testing.T) {
	req := homeRequest()
	if _, changed := (controls{}).apply(req, req); changed {
		t.Error("no input changed the request")
	}
}

func TestControlsPan(t *testing.T) {
	home := homeRequest()
	next, changed := controls{dx: 1, dy: -1}.apply(home, home)
	if !changed {
		t.Fatal("pan did not change the request")
	}
	want := home.Viewport.Pan(1, -1)
	if next.Viewport != want {
		t.Errorf("viewport = %v, want %v", next.Viewport, want)
	}
	if next.Viewport.Position.Y() >= home.Viewport.Position.Y() {
		t.Errorf("W moved the view to y=%g, want above %g", next.Viewport.Position.Y(), home.Viewport.Position.Y())
	}
}

func TestControlsWheel(t *testing.T) {
	home := homeRequest()
	in, _ := controls{wheel: 1}.apply(home, home)
	if in.Viewport.Zoom >= home.Viewport.Zoom {
		t.Errorf("wheel up zoom = %g, want below %g", in.Viewport.Zoom, home.Viewport.Zoom)
	}
	out, _ := controls{wheel: -1}.apply(home, home)
	if out.Viewport.Zoom <= home.Viewport.Zoom {
		t.Errorf("wheel down zoom = %g, want above %g", out.Viewport.Zoom, home.Viewport.Zoom)
	}
}

func TestControlsVariant(t *testing.T) {
	home := homeRequest()
	next, _ := controls{variant: fractal.BurningShip, pick: true}.apply(home, home)
	if next.Variant != fractal.BurningShip {
		t.Errorf("pick = %v", next.Variant)
	}
	next, _ = controls{cycle: true}.apply(next, home)
	if next.Variant != fractal.Mandelbrot {
		t.Errorf("cycle from burningship = %v, want mandelbrot", next.Variant)
	}
}

func TestControlsReset(t *testing.T) {
	home := homeRequest()
	moved := home
	moved.Variant = fractal.Julia
	moved.Viewport = moved.Viewport.Pan(5, 5).Scrolled(1)

	next, changed := controls{reset: true}.apply(moved, home)
	if !changed || next != home {
		t.Errorf("reset = %+v, want %+v", next, home)
	}
}

func TestRepeatTick(t *testing.T) {
	for d, want := range map[int]bool{0: false, 1: true, 2: false, 30: false, 33: true, 34: false, 36: true} {
		if got := repeatTick(d); got != want {
			t.Errorf("repeatTick(%d) = %v, want %v", d, got, want)
		}
	}
}
