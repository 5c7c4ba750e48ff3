package fractal

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestColorizeInteriorIsBlack(t *testing.T) {
	s := Sample{Iteration: 64, Z: complex(0.3, 0.2)}
	if got := Colorize(s, 64); got != Black {
		t.Errorf("Colorize(interior) = %v, want %v", got, Black)
	}
}

func TestColorizeKnownValue(t *testing.T) {
	// |z| = e makes the smoothing term vanish, so mu is the brightened count.
	const maxIter = 100
	got := Colorize(Sample{Iteration: 50, Z: complex(math.E, 0)}, maxIter)
	want := unsmoothed(50, maxIter)
	if !near(got, want, 1) {
		t.Errorf("Colorize() = %v, want %v", got, want)
	}
}

// unsmoothed computes the palette color without the log-log correction.
func unsmoothed(n, maxIter int) Pixel {
	limit := float64(maxIter)
	tt := math.Pow(float64(n)/limit, 0.75) * limit / limit
	u := 1 - tt
	return Pixel{
		R: uint8(9 * u * tt * tt * tt * 255),
		G: uint8(15 * u * u * tt * tt * 255),
		B: uint8(8.5 * u * u * u * tt * 255),
	}
}

func near(a, b Pixel, tol int) bool {
	for _, d := range []int{
		int(a.R) - int(b.R),
		int(a.G) - int(b.G),
		int(a.B) - int(b.B),
	} {
		if d > tol || d < -tol {
			return false
		}
	}
	return true
}

func TestColorizeSmallModulus(t *testing.T) {
	// log(log(m)) is undefined for m <= 1; the unsmoothed count is used instead.
	const maxIter = 100
	want := unsmoothed(50, maxIter)
	for _, z := range []complex128{0, complex(0.5, 0.5), 1, complex(math.NaN(), 0), complex(math.Inf(1), 0)} {
		if got := Colorize(Sample{Iteration: 50, Z: z}, maxIter); got != want {
			t.Errorf("Colorize(z=%v) = %v, want unsmoothed %v", z, got, want)
		}
	}
}

func TestColorizeChannelRange(t *testing.T) {
	// Peaks of the three palette polynomials over t in [0, 1].
	const maxR, maxG, maxB = 242, 239, 228

	moduli := []float64{1.0000001, 2, 2.0000001, 3, 10, 1e10, 1e300, math.Inf(1)}
	for _, maxIter := range []int{1, 2, 10, 256, 2048} {
		for n := 1; n < maxIter; n += 1 + maxIter/64 {
			for _, m := range moduli {
				p := Colorize(Sample{Iteration: n, Z: cmplx.Rect(m, 0.7)}, maxIter)
				if p.R > maxR || p.G > maxG || p.B > maxB {
					t.Errorf("Colorize(n=%d, |z|=%g, max=%d) = %v, outside palette", n, m, maxIter, p)
				}
			}
		}
	}
}

func TestColorizeContinuous(t *testing.T) {
	// Escaping one test later with a modulus squared-ish larger should land on
	// a nearby color: no banding at integer boundaries.
	const maxIter = 1000
	a := Colorize(Sample{Iteration: 400, Z: complex(4, 0)}, maxIter)
	b := Colorize(Sample{Iteration: 401, Z: complex(4.4, 0)}, maxIter)
	if !near(a, b, 3) {
		t.Errorf("colors %v and %v are not close", a, b)
	}
}

func TestChannelClamps(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-1, 0},
		{math.NaN(), 0},
		{0, 0},
		{0.5, 127},
		{1, 255},
		{7, 255},
	}
	for _, tt := range tests {
		if got := channel(tt.in); got != tt.want {
			t.Errorf("channel(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
