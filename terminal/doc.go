// Package terminal hosts the particle field inside a tcell screen.
//
// Each terminal cell shows two vertically stacked raster pixels using the upper
// half block: foreground carries the upper pixel, background the lower one.
// The logical viewport is cols*CellWidth x rows*CellHeight so a pixel ratio of
// 1/CellWidth yields a raster of cols x 2*rows.
//
// Resize events arrive on the event pump goroutine and are forwarded to the
// frame loop through a post function, keeping simulator state single-threaded.
package terminal
