package render

import "fmt"

// Band is a contiguous range of image columns [Start, End).
type Band struct {
	Start, End int
}

func (b Band) Width() int {
	return b.End - b.Start
}

func (b Band) String() string {
	return fmt.Sprintf("[%d,%d)", b.Start, b.End)
}

// Bands splits width columns into at most workers contiguous bands.
// The width%workers remainder columns go one each to the leading bands, so
// the bands cover [0, width) exactly and differ in width by at most one.
// No band is empty: there are never more bands than columns.
func Bands(width, workers int) []Band {
	if width <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > width {
		workers = width
	}

	base, rem := width/workers, width%workers
	bands := make([]Band, workers)
	start := 0
	for i := range bands {
		w := base
		if i < rem {
			w++
		}
		bands[i] = Band{Start: start, End: start + w}
		start += w
	}
	return bands
}
