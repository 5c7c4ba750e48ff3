package main

import (
	"bufio"
	"io"

	fractal "github.com/marben/fractals"
)

// ramp orders characters from dark to bright.
const ramp = " .:-=+*#%@"

// writePreview draws the frame as text, columns characters wide. Terminal
// cells are about twice as tall as wide, so rows are halved.
func writePreview(out io.Writer, frame *fractal.FrameBuffer, columns int) {
	rows := columns * frame.Height() / frame.Width() / 2
	if rows < 1 {
		rows = 1
	}
	thumb := frame.Thumbnail(columns, rows)

	w := bufio.NewWriter(out)
	defer w.Flush()
	for y := range rows {
		for x := range columns {
			c := thumb.RGBAAt(x, y)
			w.WriteByte(shade(c.R, c.G, c.B))
		}
		w.WriteByte('\n')
	}
}

// shade maps a color's luma to a ramp character.
func shade(r, g, b uint8) byte {
	luma := (299*int(r) + 587*int(g) + 114*int(b)) / 1000
	return ramp[luma*(len(ramp)-1)/255]
}
