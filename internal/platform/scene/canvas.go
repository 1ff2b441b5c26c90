// Package scene describes what the game looks like as a list of draw calls
// in 800x600 world coordinates. Frontends implement Canvas and translate the
// calls to their own surface.
package scene

import "github.com/vovakirdan/snackrun/internal/core"

// Font sizes in world units.
const (
	FontNormal = 36
	FontLarge  = 72
)

// TextOptions controls how a string is placed.
type TextOptions struct {
	Size     float64
	Color    core.Color
	Centered bool // X, Y is the centre of the text instead of its top-left
}

// Canvas is the drawing surface a frontend provides.
type Canvas interface {
	FillRect(r core.RectF, c core.Color)
	FillEllipse(r core.RectF, c core.Color)
	Line(x0, y0, x1, y1, thickness float64, c core.Color)
	Text(x, y float64, s string, opts TextOptions)
}
