package sprite

import "math"

// Resolve replaces every ambiguous template cell with a concrete one.
// Cells are visited once in row-major order and each ambiguous cell consumes
// exactly one sample from rng.
func Resolve(mask []MaskCell, rng Source) []Cell {
	cells := make([]Cell, len(mask))
	for i, m := range mask {
		switch m {
		case MaskSolid:
			cells[i] = CellSolid
		case MaskBody1:
			// Rounds to 0 or 1
			if math.Round(rng.Float64()) >= 1 {
				cells[i] = CellFilled
			} else {
				cells[i] = CellEmpty
			}
		case MaskBody2:
			// Sign of a sample in [-1, 1); zero counts as positive
			if rng.Range(-1, 1) < 0 {
				cells[i] = CellSolid
			} else {
				cells[i] = CellFilled
			}
		default:
			cells[i] = CellEmpty
		}
	}
	return cells
}
