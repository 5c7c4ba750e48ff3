package fractal

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrUnknownLandmark = errors.New("unknown landmark")

// Region is a rectangle of the complex plane.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Center of the region.
func (r Region) Center() mgl64.Vec2 {
	return mgl64.Vec2{(r.Xmin + r.Xmax) / 2, (r.Ymin + r.Ymax) / 2}
}

// Viewport centres base on the region with a zoom that fits the region's
// width into base.Width pixels.
func (r Region) Viewport(base Viewport) Viewport {
	base.Position = r.Center()
	if base.Width > 0 && r.Xmax > r.Xmin {
		base.Zoom = (r.Xmax - r.Xmin) / float64(base.Width)
	}
	return base
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating "seahorse" curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

var landmarks = map[string]Region{
	"seahorse":     SeahorseValley,
	"elephant":     ElephantValley,
	"spiral":       SpiralMinibrot,
	"triplespiral": TripleSpiral,
	"dragon":       ValleyOfTheDragon,
	"minispiral":   MinibrotInMiniSpiral,
}

// LookupLandmark finds a landmark by its short name, e.g. "seahorse".
func LookupLandmark(name string) (Region, error) {
	r, ok := landmarks[strings.ToLower(name)]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownLandmark, name, strings.Join(LandmarkNames(), ", "))
	}
	return r, nil
}

// LandmarkNames returns the known landmark names sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for n := range landmarks {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
