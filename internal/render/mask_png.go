package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/gogpu/gg"

	"sprite-gen/internal/sprite"
)

// LoadMaskPNG reads a template painted in the editor palette. Each pixel
// maps to the nearest palette color; pixels with alpha below half are empty.
func LoadMaskPNG(path string) ([][]sprite.MaskCell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return MaskFromImage(img), nil
}

// MaskFromImage converts an image painted in the editor palette.
func MaskFromImage(img image.Image) [][]sprite.MaskCell {
	bounds := img.Bounds()
	grid := make([][]sprite.MaskCell, bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		grid[y] = make([]sprite.MaskCell, bounds.Dx())
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			if a < 0x8000 {
				grid[y][x] = sprite.MaskEmpty
				continue
			}
			grid[y][x] = nearestMaskCell(P(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
		}
	}
	return grid
}

// SaveMaskPNG writes a template in the editor palette, one pixel per cell.
func SaveMaskPNG(path string, grid [][]sprite.MaskCell) error {
	if len(grid) == 0 {
		return fmt.Errorf("save %s: empty template", path)
	}
	pm := gg.NewPixmap(len(grid[0]), len(grid))
	for y, row := range grid {
		for x, c := range row {
			pm.SetPixel(x, y, pixelRGBA(MaskColor(c)))
		}
	}
	if err := pm.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

var maskCells = []sprite.MaskCell{sprite.MaskSolid, sprite.MaskEmpty, sprite.MaskBody1, sprite.MaskBody2}

func nearestMaskCell(p Pixel) sprite.MaskCell {
	best, bestDist := sprite.MaskEmpty, -1
	for _, c := range maskCells {
		q := MaskColor(c)
		dr := int(p.R) - int(q.R)
		dg := int(p.G) - int(q.G)
		db := int(p.B) - int(q.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
