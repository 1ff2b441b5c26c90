package tui

import (
	"math"

	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/games/snacks"
	"github.com/vovakirdan/snackrun/internal/platform/scene"
)

// Glyphs used on the terminal canvas.
const (
	glyphSnack      = '●'
	glyphFinishLine = '━'
)

// Canvas draws scene calls onto a cell screen, scaling world units to cells.
// Font sizes are ignored: every string is one row high.
type Canvas struct {
	screen *core.Screen
	sx, sy float64
}

// NewCanvas wraps screen.
func NewCanvas(screen *core.Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.fit()
	return c
}

// fit recomputes the scale after the screen is resized.
func (c *Canvas) fit() {
	c.sx = float64(c.screen.Width()) / snacks.ScreenWidth
	c.sy = float64(c.screen.Height()) / snacks.ScreenHeight
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// FillRect implements scene.Canvas.
func (c *Canvas) FillRect(r core.RectF, clr core.Color) {
	c.screen.FillRect(r.Scale(c.sx, c.sy), clr)
}

// FillEllipse implements scene.Canvas. Each covered cell shows a dot.
func (c *Canvas) FillEllipse(r core.RectF, clr core.Color) {
	cells := r.Scale(c.sx, c.sy)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			c.screen.Set(x, y, glyphSnack, clr)
		}
	}
}

// Line implements scene.Canvas for horizontal lines; thickness is ignored.
func (c *Canvas) Line(x0, y0, x1, _, _ float64, clr core.Color) {
	row := c.row(y0)
	if row < 0 || row >= c.screen.Height() {
		return
	}
	from := int(math.Floor(x0 * c.sx))
	to := int(math.Ceil(x1 * c.sx))
	c.screen.DrawHLine(from, row, to-from, glyphFinishLine, clr)
}

// Text implements scene.Canvas.
func (c *Canvas) Text(x, y float64, s string, opts scene.TextOptions) {
	if opts.Centered {
		c.screen.DrawTextCentered(int(math.Round(x*c.sx)), c.row(y), s, opts.Color)
		return
	}
	c.screen.DrawText(int(math.Floor(x*c.sx)), int(math.Floor(y*c.sy)), s, opts.Color)
}

// row maps a world Y to the nearest row.
func (c *Canvas) row(y float64) int {
	return int(math.Round(y * c.sy))
}
