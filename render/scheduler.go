package render

import (
	"sync/atomic"

	fractal "github.com/marben/fractals"
)

// pass is one full-frame render: a request, the buffer it fills and how far
// along it is. Workers only touch the columns of their own band, so the
// buffer needs no locking.
type pass struct {
	req fractal.RenderRequest
	buf *fractal.FrameBuffer

	totalPixels    int64
	finishedPixels atomic.Int64
}

func newPass(req fractal.RenderRequest) *pass {
	v := req.Viewport
	return &pass{
		req:         req,
		buf:         fractal.NewFrameBuffer(v.Width, v.Height),
		totalPixels: int64(v.Pixels()),
	}
}

// renderBand fills the band column by column, top to bottom.
func (p *pass) renderBand(b Band) {
	v := p.req.Viewport
	for col := b.Start; col < b.End; col++ {
		for row := range v.Height {
			p.buf.Set(col, row, SamplePixel(p.req.Variant, v, col, row))
		}
		p.finishedPixels.Add(int64(v.Height))
	}
}

// tasks wraps each band into a unit of pool work.
func (p *pass) tasks(bands []Band) []func() {
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() { p.renderBand(b) }
	}
	return work
}

func (p *pass) finished() float32 {
	if p.totalPixels == 0 {
		return 1
	}
	return float32(p.finishedPixels.Load()) / float32(p.totalPixels)
}
