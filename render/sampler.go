package render

import (
	fractal "github.com/marben/fractals"
)

// SamplePixel computes one output pixel, averaging a Supersampling x
// Supersampling grid of virtual pixels. Virtual pixels are one zoom step
// apart, so pixel (col, row) covers virtual indices col*ss .. col*ss+ss-1.
// Interior samples add black; the channel sums are divided by ss^2 with
// integer truncation.
func SamplePixel(variant fractal.Variant, v fractal.Viewport, col, row int) fractal.Pixel {
	ss := v.Supersampling
	if ss < 1 {
		ss = 1
	}

	var r, g, b int
	vcol, vrow := col*ss, row*ss
	for i := range ss {
		for j := range ss {
			s := variant.Escape(v.PlanePoint(vcol+i, vrow+j), v.MaxIterations)
			if s.Interior(v.MaxIterations) {
				continue
			}
			p := fractal.Colorize(s, v.MaxIterations)
			r += int(p.R)
			g += int(p.G)
			b += int(p.B)
		}
	}

	n := ss * ss
	return fractal.Pixel{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}
