package sprite

// GrowEdges outlines every filled or solid cell: each empty 4-neighbor
// becomes CellBorder. The scan is a single in-place row-major pass and never
// wraps around the edges of the grid. Borders it creates do not grow further.
func GrowEdges(cells []Cell, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			index := x + y*width
			if !cells[index].seeds() {
				continue
			}

			if y > 0 && cells[index-width] == CellEmpty {
				cells[index-width] = CellBorder
			}
			if y < height-1 && cells[index+width] == CellEmpty {
				cells[index+width] = CellBorder
			}
			if x > 0 && cells[index-1] == CellEmpty {
				cells[index-1] = CellBorder
			}
			if x < width-1 && cells[index+1] == CellEmpty {
				cells[index+1] = CellBorder
			}
		}
	}
}
