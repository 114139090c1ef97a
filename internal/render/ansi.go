package render

import (
	"fmt"
	"strconv"
	"strings"

	"sprite-gen/internal/sprite"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// UpperHalf draws the top pixel as foreground and the bottom pixel as
	// background, packing two pixel rows into one terminal row.
	UpperHalf = '▀'
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// WriteCellSGR writes a single cell's full SGR + character to the builder.
// Uses combined SGR to avoid state leakage between cells.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	if c.Bold {
		sb.WriteString("\x1b[0;1;38;2;")
	} else {
		sb.WriteString("\x1b[0;38;2;")
	}
	sb.WriteString(strconv.Itoa(int(c.FgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.FgB)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(c.BgR)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.BgB)))
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

// HalfBlockCells packs a pixel grid into terminal cells, two pixel rows per
// cell. Transparent pixels, and the missing bottom row of an odd-height
// grid, take the background color bg.
func HalfBlockCells(pixels [][]Pixel, bg Pixel) [][]Cell {
	rows := (len(pixels) + 1) / 2
	cells := make([][]Cell, rows)
	for row := 0; row < rows; row++ {
		top := pixels[row*2]
		var bottom []Pixel
		if row*2+1 < len(pixels) {
			bottom = pixels[row*2+1]
		}
		cells[row] = make([]Cell, len(top))
		for x := range top {
			t := opaque(top[x], bg)
			b := bg
			if bottom != nil {
				b = opaque(bottom[x], bg)
			}
			cells[row][x] = Cell{
				Ch:  UpperHalf,
				FgR: t.R, FgG: t.G, FgB: t.B,
				BgR: b.R, BgG: b.G, BgB: b.B,
			}
		}
	}
	return cells
}

// HalfBlocks renders a sprite as truecolor ANSI text, one line per two
// pixel rows, each line ending in a reset and a newline.
func HalfBlocks(s *sprite.Sprite, clear bool, bg Pixel) string {
	var sb strings.Builder
	sb.Grow(s.Width * (s.Height/2 + 1) * 24)
	for _, row := range HalfBlockCells(Pixels(s, clear), bg) {
		for _, c := range row {
			WriteCellSGR(&sb, c)
		}
		sb.WriteString(Reset)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func opaque(p, bg Pixel) Pixel {
	if p.Transparent {
		return bg
	}
	return p
}
