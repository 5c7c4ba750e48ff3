package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fractal "github.com/marben/fractals"
	"github.com/marben/fractals/render"
)

func TestStatusHandler(t *testing.T) {
	engine := render.NewEngine(render.WithWorkers(2))
	defer engine.Close()

	req := fractal.RenderRequest{Variant: fractal.Julia, Viewport: fractal.DefaultViewport().Resized(16, 8)}
	if _, err := engine.Render(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	statusHandler(engine)(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{"state:    idle", "passes:   1", "julia 16x8"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("status page missing %q:\n%s", want, body)
		}
	}

	rec = httptest.NewRecorder()
	statusHandler(engine)(rec, httptest.NewRequest(http.MethodGet, "/favicon.ico", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestDisplayAddr(t *testing.T) {
	if got := displayAddr(":8080"); got != "localhost:8080" {
		t.Errorf("displayAddr(:8080) = %q", got)
	}
	if got := displayAddr("0.0.0.0:1"); got != "0.0.0.0:1" {
		t.Errorf("displayAddr(0.0.0.0:1) = %q", got)
	}
}
