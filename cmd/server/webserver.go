package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/marben/fractals/remote"
	"github.com/marben/fractals/render"
)

// webServer creates the http server with the websocket endpoint at /ws and a
// plain text status page at /. Connections upgraded on /ws are handed to the
// returned listener.
func webServer(ctx context.Context, addr string, engine *render.Engine) (*remote.WebsocketListener, *http.Server) {
	l := remote.NewWebsocketListener(ctx, addr+"/ws")
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", l.Handler())
	mux.HandleFunc("/", statusHandler(engine))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://%s", displayAddr(addr))
	return l, srv
}

// statusHandler reports what the engine is doing.
func statusHandler(engine *render.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintf(w, "state:    %s\n", engine.State())
		fmt.Fprintf(w, "progress: %.1f%%\n", 100*engine.Progress())
		fmt.Fprintf(w, "passes:   %d\n", engine.Passes())
		fmt.Fprintf(w, "workers:  %d busy of %d\n", engine.Busy(), engine.Workers())
		if req, ok := engine.Request(); ok {
			fmt.Fprintf(w, "last:     %s %s\n", req.Variant, req.Viewport)
		}
	}
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
