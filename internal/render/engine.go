package render

import (
	"strings"

	"sprite-gen/internal/sprite"
)

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

var sentinel = Cell{Ch: '\x00', FgR: 255, BgB: 255, Bold: true}

// Background is the screen color behind sprites and panels.
var Background = P(10, 10, 15)

// Frame is the data one preview screen shows.
type Frame struct {
	Title            string
	Mask             [][]sprite.MaskCell // [y][x], drawn in the editor panel
	CursorX, CursorY int
	Sprites          []*sprite.Sprite
	Clear            bool     // draw sprite.Unset pixels as background
	Status           []string // HUD lines below the separator
}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{
		width:      width,
		height:     height,
		firstFrame: true,
	}
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	return e
}

// Resize adjusts the renderer for a new terminal size.
func (e *Engine) Resize(width, height int) {
	e.width = width
	e.height = height
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

// Invalidate forces the next Render to redraw every cell.
func (e *Engine) Invalidate() {
	e.firstFrame = true
}

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for the frame, emitting only the
// cells that changed since the previous call.
func (e *Engine) Render(f Frame, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	bgCell := Cell{Ch: ' ', BgR: Background.R, BgG: Background.G, BgB: Background.B}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = bgCell
		}
	}

	maskW, maskH := 0, len(f.Mask)
	if maskH > 0 {
		maskW = len(f.Mask[0])
	}
	spriteW, spriteH := 0, 0
	if len(f.Sprites) > 0 {
		spriteW, spriteH = f.Sprites[0].Width, f.Sprites[0].Height
	}
	layout := NewLayout(termW, termH, maskW, maskH, spriteW, spriteH)

	e.drawMask(f, layout)

	for i, s := range f.Sprites {
		if i >= layout.Capacity() {
			break
		}
		col, row := layout.SlotOrigin(i)
		e.stamp(col, row, HalfBlockCells(Pixels(s, f.Clear), Background))
	}

	e.drawHUD(f.Title, f.Status)

	// Diff current vs next, emit only changed cells
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// stamp writes cells into the buffer at screen position (sx, sy), clipped
// to the screen.
func (e *Engine) stamp(sx, sy int, cells [][]Cell) {
	for row, line := range cells {
		screenY := sy + row
		if screenY < 0 || screenY >= e.height-HUDRows {
			continue
		}
		for col, c := range line {
			screenX := sx + col
			if screenX < 0 || screenX >= e.width {
				continue
			}
			e.next[screenY][screenX] = c
		}
	}
}

// drawMask draws the template editor grid with the cursor cell bracketed.
func (e *Engine) drawMask(f Frame, l Layout) {
	ox, oy := l.MaskOrigin()
	cells := make([][]Cell, len(f.Mask))
	for y, row := range f.Mask {
		cells[y] = make([]Cell, len(row)*MaskCellCols)
		for x, m := range row {
			p := MaskColor(m)
			left := Cell{Ch: ' ', BgR: p.R, BgG: p.G, BgB: p.B}
			right := left
			if x == f.CursorX && y == f.CursorY {
				left.Ch, right.Ch = '[', ']'
				left.FgR, left.FgG, left.FgB = 0, 0, 0
				right.FgR, right.FgG, right.FgB = 0, 0, 0
				left.Bold, right.Bold = true, true
			}
			cells[y][x*MaskCellCols] = left
			cells[y][x*MaskCellCols+1] = right
		}
	}
	e.stamp(ox, oy, cells)
}

// drawHUD draws the separator and status lines at the bottom.
func (e *Engine) drawHUD(title string, status []string) {
	hudY := e.height - HUDRows
	if hudY < 0 {
		return
	}

	bgR, bgG, bgB := uint8(15), uint8(18), uint8(30)

	// Row 0: separator with the title embedded
	for x := 0; x < e.width; x++ {
		t := uint8(60 - x*40/max(e.width, 1))
		e.next[hudY][x] = Cell{
			Ch: '━', FgR: 40 + t, FgG: 70 + t, FgB: 90 + t,
			BgR: bgR, BgG: bgG, BgB: bgB,
		}
	}
	if title != "" {
		e.writeText(hudY, 2, e.width, " "+title+" ", 230, 230, 240, bgR, bgG, bgB, true)
	}

	for i := 0; i < HUDRows-1; i++ {
		line := ""
		if i < len(status) {
			line = status[i]
		}
		e.writeHUDTextLine(hudY+1+i, " "+line, 180, 180, 195, bgR, bgG, bgB)
	}
}

// writeText writes colored text into a bounded region [col, maxCol). Returns the next column position.
func (e *Engine) writeText(row, col, maxCol int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8, bold bool) int {
	for _, r := range text {
		if col >= maxCol || col >= e.width {
			break
		}
		if row >= 0 && row < e.height && col >= 0 {
			e.next[row][col] = Cell{Ch: r, FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB, Bold: bold}
		}
		col++
	}
	return col
}

func (e *Engine) writeHUDTextLine(row int, text string, fgR, fgG, fgB, bgR, bgG, bgB uint8) {
	if row < 0 || row >= e.height {
		return
	}
	runes := []rune(text)
	for x := 0; x < e.width; x++ {
		if x < len(runes) {
			e.next[row][x] = Cell{Ch: runes[x], FgR: fgR, FgG: fgG, FgB: fgB, BgR: bgR, BgG: bgG, BgB: bgB}
		} else {
			e.next[row][x] = Cell{Ch: ' ', BgR: bgR, BgG: bgG, BgB: bgB}
		}
	}
}
