package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	fractal "github.com/marben/fractals"
)

// controls is one tick's worth of input.
type controls struct {
	dx, dy  int
	wheel   float64
	variant fractal.Variant
	pick    bool // variant was chosen directly
	cycle   bool
	reset   bool
	quit    bool
}

var variantKeys = map[ebiten.Key]fractal.Variant{
	ebiten.KeyDigit1: fractal.Mandelbrot,
	ebiten.KeyDigit2: fractal.Julia,
	ebiten.KeyDigit3: fractal.BurningShip,
}

func readControls() controls {
	var c controls
	if repeating(ebiten.KeyA) {
		c.dx--
	}
	if repeating(ebiten.KeyD) {
		c.dx++
	}
	if repeating(ebiten.KeyW) {
		c.dy--
	}
	if repeating(ebiten.KeyS) {
		c.dy++
	}
	_, c.wheel = ebiten.Wheel()
	for k, variant := range variantKeys {
		if inpututil.IsKeyJustPressed(k) {
			c.variant, c.pick = variant, true
		}
	}
	c.cycle = inpututil.IsKeyJustPressed(ebiten.KeyTab)
	c.reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	c.quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return c
}

// repeating fires on the first tick a key is held, then every third tick
// after half a second.
func repeating(k ebiten.Key) bool {
	return repeatTick(inpututil.KeyPressDuration(k))
}

func repeatTick(d int) bool {
	return d == 1 || d > ticksPerSecond/2 && d%3 == 0
}

// apply returns the request after this tick's input and whether it changed.
func (c controls) apply(req, home fractal.RenderRequest) (fractal.RenderRequest, bool) {
	next := req
	if c.reset {
		next = home
	}
	if c.dx != 0 || c.dy != 0 {
		next.Viewport = next.Viewport.Pan(c.dx, c.dy)
	}
	if c.wheel != 0 {
		next.Viewport = next.Viewport.Scrolled(c.wheel)
	}
	switch {
	case c.pick:
		next.Variant = c.variant
	case c.cycle:
		next.Variant = next.Variant.Next()
	}
	return next, next != req
}
