// fractalview is an interactive window onto the fractal renderer. Frames are
// rendered either in process or by a render server reached over websocket.
//
// Controls: WASD pans, the mouse wheel zooms, 1/2/3 pick mandelbrot, julia
// and burning ship, Tab cycles variants, R returns to the start view and
// Escape quits.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	fractal "github.com/marben/fractals"
	"github.com/marben/fractals/remote"
	"github.com/marben/fractals/render"
)

const ticksPerSecond = 60

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	def := fractal.DefaultViewport()
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 620, "window height in pixels")
	iter := flag.Int("iter", def.MaxIterations, "iteration limit")
	ss := flag.Int("ss", def.Supersampling, "supersampling factor per axis")
	zoom := flag.Float64("zoom", def.Zoom*2, "plane units per pixel")
	variantName := flag.String("variant", "mandelbrot", "mandelbrot, julia or burningship")
	landmark := flag.String("landmark", "", "start from a named region")
	workers := flag.Int("workers", 0, "column bands per frame (0 = GOMAXPROCS)")
	remoteURL := flag.String("remote", "", "render on this server (e.g. ws://localhost:8080/ws) instead of locally")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	variant, err := fractal.ParseVariant(*variantName)
	if err != nil {
		return err
	}
	v, err := fractal.NewViewport(def.Position, *zoom, *width, *height, *iter, *ss)
	if err != nil {
		return err
	}
	if *landmark != "" {
		region, err := fractal.LookupLandmark(*landmark)
		if err != nil {
			return err
		}
		v = region.Viewport(v)
	}
	home := fractal.RenderRequest{Variant: variant, Viewport: v}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var renderer fractal.Renderer
	if *remoteURL != "" {
		client, err := remote.Dial(ctx, *remoteURL)
		if err != nil {
			return err
		}
		defer client.Close()
		renderer = client
	} else {
		engine := render.NewEngine(render.WithWorkers(*workers))
		defer engine.Close()
		renderer = engine
	}

	view := newViewer(home, renderer)
	go view.refresher.Run(ctx)
	view.refresher.Request(home)

	ebiten.SetTPS(ticksPerSecond)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(fmt.Sprintf("fractals: %s", variant))
	if err := ebiten.RunGame(view); err != nil && err != ebiten.Termination {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
