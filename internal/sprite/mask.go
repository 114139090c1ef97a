package sprite

import "fmt"

// MaskCell is one cell of a hand-authored sprite template.
type MaskCell int8

const (
	// MaskSolid always becomes an outline pixel.
	MaskSolid MaskCell = -1
	// MaskEmpty always stays empty.
	MaskEmpty MaskCell = 0
	// MaskBody1 becomes either empty or filled, with equal probability.
	MaskBody1 MaskCell = 1
	// MaskBody2 becomes either an outline or filled, with equal probability.
	MaskBody2 MaskCell = 2
)

// MaskCellFromInt8 converts a raw template value. Unknown values are empty.
func MaskCellFromInt8(v int8) MaskCell {
	switch MaskCell(v) {
	case MaskSolid, MaskBody1, MaskBody2:
		return MaskCell(v)
	default:
		return MaskEmpty
	}
}

// FromInt8 converts a raw template buffer.
func FromInt8(values []int8) []MaskCell {
	mask := make([]MaskCell, len(values))
	for i, v := range values {
		mask[i] = MaskCellFromInt8(v)
	}
	return mask
}

// Rune returns the character used for the cell in text templates.
func (m MaskCell) Rune() rune {
	switch m {
	case MaskSolid:
		return '#'
	case MaskBody1:
		return '1'
	case MaskBody2:
		return '2'
	default:
		return '.'
	}
}

// MaskCellFromRune parses a text template character.
func MaskCellFromRune(r rune) (MaskCell, bool) {
	switch r {
	case '#':
		return MaskSolid, true
	case '.', ' ':
		return MaskEmpty, true
	case '1':
		return MaskBody1, true
	case '2':
		return MaskBody2, true
	}
	return MaskEmpty, false
}

func (m MaskCell) String() string {
	switch m {
	case MaskSolid:
		return "solid"
	case MaskEmpty:
		return "empty"
	case MaskBody1:
		return "body1"
	case MaskBody2:
		return "body2"
	}
	return fmt.Sprintf("MaskCell(%d)", int8(m))
}

// Cell is a template cell after resolution and edge growth.
// Negative values are drawn as outline, zero is empty, positive is body.
type Cell int8

const (
	// CellSolid is an outline cell that came from the template (or from a
	// Body2 cell that resolved to outline). It grows borders.
	CellSolid Cell = -2
	// CellBorder is an outline cell added by GrowEdges. It does not grow.
	CellBorder Cell = -1
	// CellEmpty is transparent.
	CellEmpty Cell = 0
	// CellFilled is a body pixel.
	CellFilled Cell = 1
)

// IsBorder reports whether the cell is drawn as outline.
func (c Cell) IsBorder() bool { return c < 0 }

// seeds reports whether the cell grows a border around itself.
func (c Cell) seeds() bool { return c == CellSolid || c > 0 }

func (c Cell) String() string {
	switch {
	case c == CellSolid:
		return "solid"
	case c < 0:
		return "border"
	case c == 0:
		return "empty"
	default:
		return "filled"
	}
}
