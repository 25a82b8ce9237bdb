// Package glyph provides the 5x7 dot bitmap format used for custom VFD characters.
//
// The display controller stores up to 16 user glyphs. Each glyph is uploaded as
// 5 bytes, one per column, with bit 0 being the top row:
//
//	Columns: 0     1     2     3     4
//	Row 0:   .     #     #     #     .
//	Row 1:   #     .     .     .     #
//	Row 2:   #     .     .     .     #
//	Row 3:   #     #     #     #     #
//	Row 4:   #     .     .     .     #
//	Row 5:   #     .     .     .     #
//	Row 6:   #     .     .     .     #
//	Bytes:   0x7E  0x09  0x09  0x09  0x7E
//
// This package provides:
//
// - Dot: a color type for a single lit or dark dot
// - DotModel: a color model converting standard Go colors to Dot
// - Bitmap: a draw.Image implementation in controller byte order
// - Render: rasterizes a rune from a font.Face into a Bitmap
//
// Example usage:
//
//	var b glyph.Bitmap
//
//	// Light the top-left dot
//	b.SetDot(0, 0, glyph.On)
//
//	// Use with standard Go image operations
//	draw.Draw(&b, b.Bounds(), image.NewUniform(glyph.On), image.Point{}, draw.Src)
//
//	// Upload to the display under a lookup symbol
//	dev.AddGlyph('°', b)
package glyph
