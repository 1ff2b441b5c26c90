package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/snackrun/internal/core"
	"github.com/vovakirdan/snackrun/internal/platform/scene"
)

// fontScale maps scene font sizes to Go Regular pixel sizes so the longest
// help line fits the 800 unit width.
const fontScale = 0.7

// Canvas draws scene calls onto an Ebitengine image. The logical screen is
// the 800x600 world, so no coordinate mapping is needed.
type Canvas struct {
	dst   *ebiten.Image
	src   *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
}

// NewCanvas creates a canvas that renders text with src.
func NewCanvas(src *text.GoTextFaceSource) *Canvas {
	return &Canvas{src: src, faces: make(map[float64]*text.GoTextFace)}
}

// Target sets the image drawn on by subsequent calls.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// FillRect implements scene.Canvas.
func (c *Canvas) FillRect(r core.RectF, clr core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr.NRGBA(), false)
}

// FillEllipse implements scene.Canvas. Snacks are square, so the ellipse is
// the circle inscribed in r.
func (c *Canvas) FillEllipse(r core.RectF, clr core.Color) {
	cx, cy := r.Center()
	radius := min(r.W, r.H) / 2
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), clr.NRGBA(), true)
}

// Line implements scene.Canvas.
func (c *Canvas) Line(x0, y0, x1, y1, thickness float64, clr core.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(thickness), clr.NRGBA(), false)
}

// Text implements scene.Canvas.
func (c *Canvas) Text(x, y float64, s string, opts scene.TextOptions) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(opts.Color.NRGBA())
	if opts.Centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, s, c.face(opts.Size), op)
}

// face returns a cached face for a scene font size.
func (c *Canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.src, Size: size * fontScale}
	c.faces[size] = f
	return f
}
