// cliclient renders one frame on a running render server and prints a
// summary with a terminal preview of the result.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	fractal "github.com/marben/fractals"
	"github.com/marben/fractals/remote"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type options struct {
	url      string
	variant  string
	landmark string
	x, y     float64
	zoom     float64
	width    int
	height   int
	iter     int
	ss       int
	columns  int
	timeout  time.Duration
	verbose  bool
}

// main is the entry point for the CLI client.
func main() {
	var opts options
	def := fractal.DefaultViewport()
	flag.StringVar(&opts.url, "url", "ws://localhost:8080/ws", "render server websocket endpoint")
	flag.StringVar(&opts.variant, "variant", "mandelbrot", "mandelbrot, julia or burningship")
	flag.StringVar(&opts.landmark, "landmark", "", "start from a named region (overrides -x, -y and -zoom)")
	flag.Float64Var(&opts.x, "x", def.Position.X(), "plane x of the image centre")
	flag.Float64Var(&opts.y, "y", def.Position.Y(), "plane y of the image centre")
	flag.Float64Var(&opts.zoom, "zoom", def.Zoom, "plane units per pixel")
	flag.IntVar(&opts.width, "width", def.Width, "image width in pixels")
	flag.IntVar(&opts.height, "height", def.Height, "image height in pixels")
	flag.IntVar(&opts.iter, "iter", def.MaxIterations, "iteration limit")
	flag.IntVar(&opts.ss, "ss", def.Supersampling, "supersampling factor per axis")
	flag.IntVar(&opts.columns, "preview", 80, "terminal preview width, 0 disables it")
	flag.DurationVar(&opts.timeout, "timeout", time.Minute, "give up after this long")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// request turns the command line into a validated render request.
func (o options) request() (fractal.RenderRequest, error) {
	variant, err := fractal.ParseVariant(o.variant)
	if err != nil {
		return fractal.RenderRequest{}, err
	}
	v, err := fractal.NewViewport(mgl64.Vec2{o.x, o.y}, o.zoom, o.width, o.height, o.iter, o.ss)
	if err != nil {
		return fractal.RenderRequest{}, err
	}
	if o.landmark != "" {
		region, err := fractal.LookupLandmark(o.landmark)
		if err != nil {
			return fractal.RenderRequest{}, err
		}
		v = region.Viewport(v)
	}
	return fractal.RenderRequest{Variant: variant, Viewport: v}, nil
}

// run connects to the render server, renders the requested frame remotely
// and reports on it.
func run(opts options, out io.Writer) error {
	if opts.verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	req, err := opts.request()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	log.Printf("connecting to %s", opts.url)
	client, err := remote.Dial(ctx, opts.url)
	if err != nil {
		return err
	}
	defer client.Close()

	log.Printf("requesting %s %s", req.Variant, req.Viewport)
	start := time.Now()
	frame, err := client.Render(ctx, req)
	if err != nil {
		return fmt.Errorf("client.Render: %w", err)
	}

	printSummary(out, req, frame, client.ServerElapsed(), time.Since(start))
	if opts.columns > 0 {
		fmt.Fprintln(out)
		writePreview(out, frame, opts.columns)
	}
	return nil
}

func printSummary(out io.Writer, req fractal.RenderRequest, frame *fractal.FrameBuffer, server, total time.Duration) {
	p := message.NewPrinter(language.English)
	v := req.Viewport
	interior := countBlack(frame)
	p.Fprintf(out, "variant:     %s\n", req.Variant)
	p.Fprintf(out, "frame:       %d x %d (%d pixels)\n", frame.Width(), frame.Height(), v.Pixels())
	p.Fprintf(out, "samples:     %d escape-time evaluations\n", v.Pixels()*v.Supersampling*v.Supersampling)
	p.Fprintf(out, "black:       %d pixels (%.1f%%)\n", interior, 100*float64(interior)/float64(v.Pixels()))
	p.Fprintf(out, "render time: %v on server, %v round trip\n", server.Round(time.Millisecond), total.Round(time.Millisecond))
}

func countBlack(frame *fractal.FrameBuffer) int {
	n := 0
	for row := range frame.Height() {
		for col := range frame.Width() {
			if frame.At(col, row) == fractal.Black {
				n++
			}
		}
	}
	return n
}
