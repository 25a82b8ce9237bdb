// Package glyph provides the 5x7 dot bitmap format used for custom VFD characters.
//
// A glyph is stored as 5 column bytes. Byte x holds column x from left to right,
// bit y holds row y from top to bottom. Only the lower 7 bits of each byte are used.
package glyph

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// Width is the number of dot columns in a glyph.
	Width = 5
	// Height is the number of dot rows in a glyph.
	Height = 7
)

// Dot is a single VFD dot, lit or dark.
type Dot bool

const (
	// Off is a dark dot.
	Off Dot = false
	// On is a lit dot.
	On Dot = true
)

// RGBA converts the Dot to standard RGBA. A lit dot is white.
func (d Dot) RGBA() (r, g, b, a uint32) {
	if d {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (d Dot) String() string {
	if d {
		return "On"
	}
	return "Off"
}

// toDot converts any color.Color to Dot.
func toDot(c color.Color) color.Color {
	if d, ok := c.(Dot); ok {
		return d
	}
	r, g, b, a := c.RGBA()
	// Transparent pixels stay dark.
	if a < 0x8000 {
		return Off
	}
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Dot(y >= 0x8000)
}

// DotModel converts colors to Dot.
var DotModel = color.ModelFunc(toDot)

// Bitmap is a 5x7 glyph in controller order, ready to be uploaded.
type Bitmap [Width]byte

// ColorModel returns the color model of the glyph.
func (b *Bitmap) ColorModel() color.Model {
	return DotModel
}

// Bounds returns the glyph bounds, always (0,0)-(5,7).
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At returns the color of the dot at (x, y).
// It implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.DotAt(x, y)
}

// DotAt returns the dot at (x, y). Dots outside the glyph are Off.
func (b *Bitmap) DotAt(x, y int) Dot {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return Off
	}
	return b[x]&(1<<uint(y)) != 0
}

// Set sets the dot at (x, y) from any color.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetDot(x, y, DotModel.Convert(c).(Dot))
}

// SetDot sets the dot at (x, y). Dots outside the glyph are ignored.
func (b *Bitmap) SetDot(x, y int, d Dot) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	if d {
		b[x] |= 1 << uint(y)
	} else {
		b[x] &^= 1 << uint(y)
	}
}

// FromImage samples the top-left 5x7 area of img into a Bitmap.
func FromImage(img image.Image) Bitmap {
	var b Bitmap
	r := img.Bounds()
	draw.Draw(&b, b.Bounds(), img, r.Min, draw.Src)
	return b
}

// Render draws r from face with its baseline on the bottom row of the glyph.
// It returns false if face has no glyph for r.
func Render(face font.Face, r rune) (Bitmap, bool) {
	var b Bitmap
	dr, mask, maskp, _, ok := face.Glyph(fixed.P(0, Height), r)
	if !ok {
		return b, false
	}
	draw.DrawMask(&b, dr, image.NewUniform(On), image.Point{}, mask, maskp, draw.Over)
	return b, true
}

var _ draw.Image = &Bitmap{}
