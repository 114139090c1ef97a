package render

import "sprite-gen/internal/sprite"

// Pixel represents a single pixel with RGB color and transparency.
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// TransparentPixel returns a transparent pixel.
func TransparentPixel() Pixel {
	return Pixel{Transparent: true}
}

// P is a shorthand to create an opaque pixel.
func P(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// FromPacked converts a generated pixel. sprite.Unset becomes transparent
// when clear is set and white otherwise; every other value is the opaque
// color in its low 24 bits.
func FromPacked(v uint32, clear bool) Pixel {
	if v == sprite.Unset && clear {
		return TransparentPixel()
	}
	return P(uint8(v>>16), uint8(v>>8), uint8(v))
}

// Pixels converts a sprite to a [y][x] pixel grid.
func Pixels(s *sprite.Sprite, clear bool) [][]Pixel {
	grid := make([][]Pixel, s.Height)
	for y := 0; y < s.Height; y++ {
		grid[y] = make([]Pixel, s.Width)
		for x := 0; x < s.Width; x++ {
			grid[y][x] = FromPacked(s.At(x, y), clear)
		}
	}
	return grid
}

// Editor palette for template cells, matching the colors the mask editor
// paints with. LoadMaskPNG reads the same palette back.
var (
	SolidColor = P(0x66, 0x66, 0x66)
	EmptyColor = P(0xFA, 0xFA, 0xFA)
	Body1Color = P(0xFF, 0x66, 0x66)
	Body2Color = P(0x66, 0x66, 0xFF)
)

// MaskColor returns the editor color of a template cell.
func MaskColor(c sprite.MaskCell) Pixel {
	switch c {
	case sprite.MaskSolid:
		return SolidColor
	case sprite.MaskBody1:
		return Body1Color
	case sprite.MaskBody2:
		return Body2Color
	default:
		return EmptyColor
	}
}
