package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	fractal "github.com/marben/fractals"
	"github.com/marben/fractals/remote"
	"github.com/marben/fractals/render"
	"github.com/marben/irpc"
)

// main is the entry point for the render server.
// Clients connect over websocket and receive finished frames; all rendering
// happens here on a single shared engine.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	addr := flag.String("addr", ":8080", "http listen address")
	workers := flag.Int("workers", 0, "column bands per frame (0 = GOMAXPROCS)")
	verbose := flag.Bool("v", false, "log every pass and connection")
	flag.Parse()

	if *verbose {
		fractal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	engine := render.NewEngine(render.WithWorkers(*workers))
	defer engine.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// renderServer provides fractal.FrameRenderer to every websocket client.
	// The engine serializes passes, so concurrent clients simply queue.
	renderServer := remote.NewServer(engine)
	websocketListener, httpServer := webServer(ctx, *addr, engine)

	errc := make(chan error, 2)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("httpServer: %w", err)
		}
	}()
	go func() {
		err := renderServer.Serve(websocketListener)
		if !errors.Is(err, irpc.ErrServerClosed) && !errors.Is(err, net.ErrClosed) {
			errc <- fmt.Errorf("renderServer.Serve ws: %w", err)
		}
	}()

	log.Printf("render server waiting for websocket connections with %d workers", engine.Workers())

	var runErr error
	select {
	case runErr = <-errc:
	case <-ctx.Done():
		log.Printf("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("httpServer.Shutdown: %v", err)
	}
	// closes websocketListener and every client endpoint
	if err := renderServer.Close(); err != nil {
		log.Printf("renderServer.Close: %v", err)
	}
	return runErr
}
