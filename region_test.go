package fractal

import (
	"errors"
	"math"
	"testing"
)

func TestRegionViewport(t *testing.T) {
	base := DefaultViewport().Resized(1000, 1000)
	v := SeahorseValley.Viewport(base)

	if err := v.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if math.Abs(v.Zoom-0.1/1000) > 1e-15 {
		t.Errorf("Zoom = %v, want %v", v.Zoom, 0.1/1000)
	}
	left := v.PlanePoint(0, 500)
	if math.Abs(real(left)-SeahorseValley.Xmin) > 1e-12 {
		t.Errorf("left edge maps to %v, want %v", real(left), SeahorseValley.Xmin)
	}
	centre := v.PlanePoint(500, 500)
	if math.Abs(real(centre)+0.75) > 1e-12 || math.Abs(imag(centre)-0.1) > 1e-12 {
		t.Errorf("centre maps to %v, want (-0.75+0.1i)", centre)
	}
}

func TestLookupLandmark(t *testing.T) {
	for _, name := range LandmarkNames() {
		if _, err := LookupLandmark(name); err != nil {
			t.Errorf("LookupLandmark(%q) = %v", name, err)
		}
	}
	r, err := LookupLandmark("Dragon")
	if err != nil || r != ValleyOfTheDragon {
		t.Errorf("LookupLandmark(Dragon) = %v, %v", r, err)
	}
	if _, err := LookupLandmark("atlantis"); !errors.Is(err, ErrUnknownLandmark) {
		t.Errorf("LookupLandmark(atlantis) = %v, want ErrUnknownLandmark", err)
	}
}
