package core

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) RGBA colour.
// The zero value means "no colour": terminal cells keep the default style.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque colour.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns a colour with the given alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// IsZero reports whether the colour is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Opaque reports whether the colour fully covers what is below it.
func (c Color) Opaque() bool {
	return c.A == 255
}

// Hex returns the colour as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Over composites c on top of dst using source-over blending.
// An unset dst is treated as black.
func (c Color) Over(dst Color) Color {
	if c.IsZero() {
		return dst
	}
	if c.Opaque() {
		return c
	}
	if dst.IsZero() {
		dst = RGB(0, 0, 0)
	}

	a := float64(c.A) / 255
	da := float64(dst.A) / 255
	outA := a + da*(1-a)
	if outA == 0 {
		return Color{}
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*a + float64(d)*da*(1-a)) / outA
		return uint8(v + 0.5)
	}
	return Color{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(outA*255 + 0.5),
	}
}
