package fractal

import (
	"bytes"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// FrameBuffer is the rendered pixel grid of one pass.
//
// During a pass each pixel is written by exactly one worker; afterwards the
// buffer is only read. Storage is an RGBA image so it can be uploaded or
// encoded without conversion.
type FrameBuffer struct {
	img *image.RGBA
}

// NewFrameBuffer returns an opaque black buffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &FrameBuffer{img: img}
}

// FrameBufferFromPix wraps RGBA bytes received from elsewhere. The slice is
// not copied.
func FrameBufferFromPix(width, height int, pix []byte) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame size %dx%d", width, height)
	}
	if want := 4 * width * height; len(pix) != want {
		return nil, fmt.Errorf("frame %dx%d: got %d bytes, want %d", width, height, len(pix), want)
	}
	return &FrameBuffer{img: &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}}, nil
}

func (f *FrameBuffer) Width() int  { return f.img.Rect.Dx() }
func (f *FrameBuffer) Height() int { return f.img.Rect.Dy() }

// Set writes one pixel. Workers call it only inside their own column band.
func (f *FrameBuffer) Set(col, row int, p Pixel) {
	i := f.img.PixOffset(col, row)
	s := f.img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = p.R, p.G, p.B, 0xff
}

func (f *FrameBuffer) At(col, row int) Pixel {
	i := f.img.PixOffset(col, row)
	s := f.img.Pix[i : i+3 : i+3]
	return Pixel{R: s[0], G: s[1], B: s[2]}
}

// Image exposes the buffer as an image sharing the same storage.
func (f *FrameBuffer) Image() *image.RGBA {
	return f.img
}

// Pix returns the raw RGBA bytes, row major.
func (f *FrameBuffer) Pix() []byte {
	return f.img.Pix
}

// Equal reports whether both buffers hold bit-identical pixels.
func (f *FrameBuffer) Equal(o *FrameBuffer) bool {
	if f == nil || o == nil {
		return f == o
	}
	return f.img.Rect == o.img.Rect && bytes.Equal(f.img.Pix, o.img.Pix)
}

// Thumbnail returns a bilinear downscale of the frame into a width x height image.
func (f *FrameBuffer) Thumbnail(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), f.img, f.img.Bounds(), xdraw.Src, nil)
	return dst
}
