package main

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	fractal "github.com/marben/fractals"
	"github.com/marben/fractals/render"
)

// progressReporter is implemented by renderers that run passes in process.
type progressReporter interface {
	Progress() float32
}

// viewer is the ebiten game. Update turns input into render requests and
// uploads finished frames; the refresher renders off the game loop.
type viewer struct {
	home      fractal.RenderRequest
	req       fractal.RenderRequest
	renderer  fractal.Renderer
	refresher *render.Refresher

	mu      sync.Mutex
	pending *fractal.FrameBuffer
	shown   fractal.RenderRequest

	img *ebiten.Image
}

func newViewer(home fractal.RenderRequest, r fractal.Renderer) *viewer {
	v := &viewer{
		home:     home,
		req:      home,
		renderer: r,
		img:      ebiten.NewImage(home.Viewport.Width, home.Viewport.Height),
	}
	v.refresher = render.NewRefresher(r, v.frameDone)
	return v
}

// frameDone runs on the refresher goroutine.
func (v *viewer) frameDone(req fractal.RenderRequest, frame *fractal.FrameBuffer) {
	v.mu.Lock()
	v.pending = frame
	v.shown = req
	v.mu.Unlock()
}

func (v *viewer) Update() error {
	in := readControls()
	if in.quit {
		return ebiten.Termination
	}
	if next, changed := in.apply(v.req, v.home); changed {
		v.req = next
		v.refresher.Request(next)
		ebiten.SetWindowTitle(fmt.Sprintf("fractals: %s", next.Variant))
	}

	v.mu.Lock()
	frame := v.pending
	v.pending = nil
	v.mu.Unlock()
	if frame != nil {
		v.img.WritePixels(frame.Pix())
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.DrawImage(v.img, nil)
	ebitenutil.DebugPrint(screen, v.status())
}

func (v *viewer) status() string {
	vp := v.req.Viewport
	s := fmt.Sprintf("%s  zoom %.3g  at (%.6f, %.6f)  iter %d  %.0f tps",
		v.req.Variant, vp.Zoom, vp.Position.X(), vp.Position.Y(), vp.MaxIterations, ebiten.ActualTPS())
	if v.refresher.Busy() {
		if p, ok := v.renderer.(progressReporter); ok {
			s += fmt.Sprintf("\nrendering %3.0f%%", 100*p.Progress())
		} else {
			s += "\nrendering"
		}
	}
	return s
}

// Layout keeps the logical screen at the frame size; the window scales it.
func (v *viewer) Layout(int, int) (int, int) {
	return v.home.Viewport.Width, v.home.Viewport.Height
}
