// Package fractal holds the data model and the per-pixel math of an
// escape-time fractal renderer: viewports, the Mandelbrot, Julia and Burning
// Ship recurrences, smooth coloring and the frame buffer they fill.
//
// Rendering whole frames in parallel lives in package render; package remote
// serves a Renderer over websockets.
package fractal
