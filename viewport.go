package fractal

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrInvalidViewport = errors.New("invalid viewport")

// Interactive feel of the reference explorer.
const (
	// PanStep is how many pixels one pan event moves the view.
	PanStep = 10

	ZoomInFactor  = 0.9
	ZoomOutFactor = 1.1
)

// Frame limits. A MaxPixels frame is 128 MiB of RGBA.
const (
	MaxPixels        = 1 << 25
	MaxSupersampling = 16
)

// Viewport maps pixel coordinates onto the complex plane.
//
// A Viewport is a value: pan and zoom produce a new one and a render pass
// only ever reads the copy it was started with.
type Viewport struct {
	Position      mgl64.Vec2 // plane coordinate of the image centre
	Zoom          float64    // plane units per pixel
	Width, Height int
	MaxIterations int
	Supersampling int // sub-samples per axis, 1 disables anti-aliasing
}

// DefaultViewport returns the startup view of the explorer.
func DefaultViewport() Viewport {
	return Viewport{
		Position:      mgl64.Vec2{-0.5, 0},
		Zoom:          0.004,
		Width:         1600,
		Height:        1240,
		MaxIterations: 2048,
		Supersampling: 1,
	}
}

// NewViewport builds a validated viewport.
func NewViewport(pos mgl64.Vec2, zoom float64, width, height, maxIterations, supersampling int) (Viewport, error) {
	v := Viewport{
		Position:      pos,
		Zoom:          zoom,
		Width:         width,
		Height:        height,
		MaxIterations: maxIterations,
		Supersampling: supersampling,
	}
	if err := v.Validate(); err != nil {
		return Viewport{}, err
	}
	return v, nil
}

func (v Viewport) Validate() error {
	switch {
	case !(v.Zoom > 0) || math.IsInf(v.Zoom, 0):
		return fmt.Errorf("%w: zoom %v must be positive and finite", ErrInvalidViewport, v.Zoom)
	case !finite(v.Position.X()) || !finite(v.Position.Y()):
		return fmt.Errorf("%w: position %v must be finite", ErrInvalidViewport, v.Position)
	case v.Width <= 0 || v.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidViewport, v.Width, v.Height)
	case v.Width > MaxPixels || v.Height > MaxPixels || int64(v.Width)*int64(v.Height) > MaxPixels:
		return fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrInvalidViewport, v.Width, v.Height, MaxPixels)
	case v.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d", ErrInvalidViewport, v.MaxIterations)
	case v.Supersampling <= 0 || v.Supersampling > MaxSupersampling:
		return fmt.Errorf("%w: supersampling %d not in [1, %d]", ErrInvalidViewport, v.Supersampling, MaxSupersampling)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// PlanePoint maps a (virtual) pixel index to the complex plane.
func (v Viewport) PlanePoint(col, row int) complex128 {
	x := (float64(col)-float64(v.Width)/2)*v.Zoom + v.Position.X()
	y := (float64(row)-float64(v.Height)/2)*v.Zoom + v.Position.Y()
	return complex(x, y)
}

// Pan returns the viewport moved by dx, dy pan steps. Negative dy moves up.
func (v Viewport) Pan(dx, dy int) Viewport {
	step := PanStep * v.Zoom
	v.Position = v.Position.Add(mgl64.Vec2{float64(dx) * step, float64(dy) * step})
	return v
}

// Scrolled applies one wheel tick: positive delta zooms in, negative zooms out.
func (v Viewport) Scrolled(delta float64) Viewport {
	switch {
	case delta > 0:
		v.Zoom *= ZoomInFactor
	case delta < 0:
		v.Zoom *= ZoomOutFactor
	}
	return v
}

// Resized returns the viewport with a new image size, keeping centre and zoom.
func (v Viewport) Resized(width, height int) Viewport {
	v.Width, v.Height = width, height
	return v
}

// Pixels is the number of output pixels.
func (v Viewport) Pixels() int {
	return v.Width * v.Height
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d at (%g, %g) zoom %g iter %d ss %d",
		v.Width, v.Height, v.Position.X(), v.Position.Y(), v.Zoom, v.MaxIterations, v.Supersampling)
}
