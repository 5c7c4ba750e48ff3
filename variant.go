package fractal

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown fractal variant")

// Variant selects the escape-time recurrence of a render pass.
type Variant uint8

const (
	Mandelbrot Variant = iota
	Julia
	BurningShip

	numVariants
)

var variantNames = [numVariants]string{
	Mandelbrot:  "mandelbrot",
	Julia:       "julia",
	BurningShip: "burningship",
}

// Variants lists every supported variant in cycling order.
func Variants() []Variant {
	return []Variant{Mandelbrot, Julia, BurningShip}
}

func (v Variant) Valid() bool {
	return v < numVariants
}

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// Next cycles to the following variant, wrapping around.
func (v Variant) Next() Variant {
	return (v + 1) % numVariants
}

// ParseVariant accepts variant names case-insensitively, ignoring '-', '_' and spaces.
func ParseVariant(s string) (Variant, error) {
	key := strings.ToLower(s)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	for i, name := range variantNames {
		if key == name {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}
	return []byte(variantNames[v]), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Escape runs the variant's recurrence for the plane point c. An unknown
// variant has no recurrence; every point is reported interior.
func (v Variant) Escape(c complex128, maxIterations int) Sample {
	switch v {
	case Mandelbrot:
		return mandelbrot(c, maxIterations)
	case Julia:
		return julia(c, maxIterations)
	case BurningShip:
		return burningShip(c, maxIterations)
	}
	return Sample{Iteration: maxIterations, Z: c}
}
