package remote

import (
	"context"
	"fmt"
	"time"

	fractal "github.com/marben/fractals"
	"github.com/marben/irpc"
)

// frameService provides fractal.FrameRenderer over irpc, backed by a local renderer.
type frameService struct {
	renderer fractal.Renderer
}

var _ fractal.FrameRenderer = frameService{}

func (s frameService) RenderFrame(ctx context.Context, req fractal.FrameRequest) (fractal.Frame, error) {
	r := req.Request()
	// checked here too, so a bad request never reaches the renderer
	if err := r.Validate(); err != nil {
		fractal.Logger().Warn("rejected request", "err", err)
		return fractal.Frame{}, err
	}

	start := time.Now()
	buf, err := s.renderer.Render(ctx, r)
	if err != nil {
		return fractal.Frame{}, err
	}
	elapsed := time.Since(start)
	fractal.Logger().Info("served frame", "variant", r.Variant, "size", fmt.Sprintf("%dx%d", buf.Width(), buf.Height()), "elapsed", elapsed)
	return fractal.NewFrame(buf, elapsed), nil
}

// NewServer returns an irpc server providing fractal.FrameRenderer on every
// connection accepted from its listeners. Connections share r; an Engine
// serializes their passes.
//
// As with any irpc.Server, Serve returns irpc.ErrServerClosed after Close.
func NewServer(r fractal.Renderer) *irpc.Server {
	return irpc.NewServer(
		irpc.WithServices(fractal.NewFrameRendererIrpcService(frameService{renderer: r})),
		irpc.WithOnConnect(func(ep *irpc.Endpoint) {
			log := fractal.Logger().With("remote", ep.RemoteAddr())
			log.Info("client connected")
			go func() {
				<-ep.Context().Done()
				log.Info("client disconnected", "cause", context.Cause(ep.Context()))
			}()
		}),
	)
}
