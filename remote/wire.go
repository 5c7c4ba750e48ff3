package remote

import "errors"

// ErrRemote wraps failures reported by the server.
var ErrRemote = errors.New("remote render failed")

// Frames travel as fractal.FrameRequest and fractal.Frame through the
// generated irpc stubs, one binary websocket per client. The server only
// ever reports errors by message.
