package fractal

import "math"

// escapeRadiusSq is the squared modulus past which an orbit diverges.
const escapeRadiusSq = 4.0

// JuliaC is the constant of the Julia recurrence z = z^2 + c.
var JuliaC = complex(-0.7, 0.27015)

// Sample is the outcome of one escape-time evaluation.
type Sample struct {
	// Iteration is the escape test at which |z|^2 exceeded 4, counted from 1.
	// It equals the iteration limit for points that never escaped.
	Iteration int
	Z         complex128
}

// Interior reports whether the orbit stayed bounded for the whole budget.
func (s Sample) Interior(maxIterations int) bool {
	return s.Iteration >= maxIterations
}

// All three recurrences test |z|^2 before stepping, so the n-th test sees z_{n-1}.

func mandelbrot(c complex128, maxIterations int) Sample {
	cx, cy := real(c), imag(c)
	zx, zy := cx, cy
	for n := 1; n <= maxIterations; n++ {
		if zx*zx+zy*zy > escapeRadiusSq {
			return Sample{Iteration: n, Z: complex(zx, zy)}
		}
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return Sample{Iteration: maxIterations, Z: complex(zx, zy)}
}

func julia(c complex128, maxIterations int) Sample {
	cx, cy := real(JuliaC), imag(JuliaC)
	zx, zy := real(c), imag(c)
	for n := 1; n <= maxIterations; n++ {
		if zx*zx+zy*zy > escapeRadiusSq {
			return Sample{Iteration: n, Z: complex(zx, zy)}
		}
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
	}
	return Sample{Iteration: maxIterations, Z: complex(zx, zy)}
}

func burningShip(c complex128, maxIterations int) Sample {
	cx, cy := real(c), imag(c)
	zx, zy := cx, cy
	for n := 1; n <= maxIterations; n++ {
		if zx*zx+zy*zy > escapeRadiusSq {
			return Sample{Iteration: n, Z: complex(zx, zy)}
		}
		zx, zy = math.Abs(zx*zx-zy*zy+cx), math.Abs(2*zx*zy+cy)
	}
	return Sample{Iteration: maxIterations, Z: complex(zx, zy)}
}
