package render

import (
	"image/color"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
)

// Display is a fixed-size drawing target. Coordinates are in pixels, with the
// origin at the top left.
type Display interface {
	Clear(c color.RGBA)
	DrawLine(x1, y1, x2, y2 float64, c color.RGBA)

	// Present makes everything drawn since the last Clear visible.
	Present() error

	Close() error
}

// Transform maps model space into screen space. It's fixed for the lifetime of
// a run.
type Transform struct {
	Scale  float64
	Offset float64
}
