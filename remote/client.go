package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/coder/websocket"
	fractal "github.com/marben/fractals"
	"github.com/marben/irpc"
)

// Client renders frames on a remote server. It implements fractal.Renderer,
// so it can stand in for a local render.Engine.
//
// After a transport error the endpoint is closed and every further Render
// fails; the Client should be closed and dialed again.
type Client struct {
	ep     *irpc.Endpoint
	frames *fractal.FrameRendererIrpcClient

	mu      sync.Mutex
	elapsed time.Duration
}

var _ fractal.Renderer = (*Client)(nil)

// Dial opens a websocket to a server endpoint such as ws://localhost:8080/ws.
func Dial(ctx context.Context, url string) (*Client, error) {
	c, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c.SetReadLimit(maxMessageBytes)
	client, err := NewClient(websocket.NetConn(context.Background(), c, websocket.MessageBinary))
	if err != nil {
		c.Close(websocket.StatusInternalError, "")
		return nil, err
	}
	return client, nil
}

// NewClient speaks irpc over an established connection.
func NewClient(conn io.ReadWriteCloser) (*Client, error) {
	ep := irpc.NewEndpoint(conn)
	frames, err := fractal.NewFrameRendererIrpcClient(ep)
	if err != nil {
		ep.Close()
		return nil, fmt.Errorf("fractal.NewFrameRendererIrpcClient: %w", err)
	}
	return &Client{ep: ep, frames: frames}, nil
}

// Render sends req and waits for the finished frame. Invalid requests are
// rejected locally without a round trip.
func (c *Client) Render(ctx context.Context, req fractal.RenderRequest) (*fractal.FrameBuffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	frame, err := c.frames.RenderFrame(ctx, req.Wire())
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	buf, err := frame.Buffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	c.mu.Lock()
	c.elapsed = frame.Elapsed
	c.mu.Unlock()
	return buf, nil
}

// classify separates our own cancellation and a dead connection from
// failures the server reported.
func (c *Client) classify(ctx context.Context, err error) error {
	switch {
	case ctx.Err() != nil:
		return context.Cause(ctx)
	case errors.Is(err, irpc.ErrEndpointClosed), errors.Is(err, irpc.ErrEndpointClosedByCounterpart), c.ep.Context().Err() != nil:
		return fmt.Errorf("render frame: %w", err)
	case errors.Unwrap(err) != nil:
		// irpc wraps its own failures; the server's message arrives bare
		return fmt.Errorf("render frame: %w", err)
	default:
		return fmt.Errorf("%w: %v", ErrRemote, err)
	}
}

// ServerElapsed is how long the server spent rendering the last frame.
func (c *Client) ServerElapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

func (c *Client) Close() error {
	return c.ep.Close()
}
