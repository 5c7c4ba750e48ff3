package fractal

import (
	"image/color"
	"math"
	"math/cmplx"
)

// Pixel is one opaque output color.
type Pixel struct {
	R, G, B uint8
}

var Black = Pixel{}

func (p Pixel) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff}
}

// brightenExponent lifts high iteration counts into the visible part of the palette.
const brightenExponent = 0.75

var ln2 = math.Log(2)

// Colorize maps an escape sample to a blue to gold gradient using the
// normalized (smooth) iteration count. Interior samples are black.
func Colorize(s Sample, maxIterations int) Pixel {
	if s.Interior(maxIterations) || maxIterations <= 0 {
		return Black
	}

	limit := float64(maxIterations)
	iter := math.Pow(float64(s.Iteration)/limit, brightenExponent) * limit

	mu := iter
	if m := cmplx.Abs(s.Z); m > 1 {
		if smooth := iter - math.Log(math.Log(m))/ln2; finite(smooth) {
			mu = smooth
		}
	}

	t := mu / limit
	switch {
	case !(t > 0):
		t = 0
	case t > 1:
		t = 1
	}
	u := 1 - t

	return Pixel{
		R: channel(9 * u * t * t * t),
		G: channel(15 * u * u * t * t),
		B: channel(8.5 * u * u * u * t),
	}
}

// channel scales an intensity in [0, 1] to a byte, truncating like an integer conversion.
func channel(f float64) uint8 {
	v := f * 255
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}
