package remote

import (
	"context"
	"net"
	"net/http"

	"github.com/coder/websocket"
	fractal "github.com/marben/fractals"
)

// maxMessageBytes bounds a single websocket message. It fits the largest
// frame a valid request can ask for, plus framing.
const maxMessageBytes = 4*fractal.MaxPixels + 64<<10

// WebsocketListener implements net.Listener.
// Connections arrive through Handler, which upgrades http requests to
// websockets and hands them to Accept as binary net.Conns.
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWebsocketListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

// Handler upgrades the request and queues the connection for Accept.
func (l *WebsocketListener) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"},
		})
		if err != nil {
			fractal.Logger().Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "listener closed")
		}
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		c.SetReadLimit(maxMessageBytes)
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
