package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"sprite-gen/internal/sprite"
)

// ToPixmap copies a sprite into an RGBA pixmap.
func ToPixmap(s *sprite.Sprite, clear bool) *gg.Pixmap {
	pm := gg.NewPixmap(s.Width, s.Height)
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			pm.SetPixel(x, y, pixelRGBA(FromPacked(s.At(x, y), clear)))
		}
	}
	return pm
}

// ToImage converts a sprite to an image, scaled up by an integer factor
// with nearest-neighbor sampling so pixels stay crisp.
func ToImage(s *sprite.Sprite, clear bool, scale int) *image.RGBA {
	img := ToPixmap(s, clear).ToImage()
	if scale <= 1 {
		return img
	}
	return Scale(img, scale)
}

// Scale enlarges img by an integer factor using nearest-neighbor sampling.
func Scale(img image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SheetOptions controls how Sheet lays out sprites.
type SheetOptions struct {
	Cols    int  // sprites per row; <= 0 puts all sprites on one row
	Padding int  // gap between sprites before scaling, in pixels
	Scale   int  // integer upscale factor
	Clear   bool // draw sprite.Unset pixels transparent
}

// DefaultSheetOptions returns a 4-pixel gap and no scaling.
func DefaultSheetOptions() SheetOptions {
	return SheetOptions{Padding: 4, Scale: 1, Clear: true}
}

// Sheet composes sprites into one image in a grid. Cells are sized to the
// largest sprite and the sheet has Padding around and between sprites.
func Sheet(sprites []*sprite.Sprite, opts SheetOptions) *image.RGBA {
	if len(sprites) == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	cols := opts.Cols
	if cols <= 0 || cols > len(sprites) {
		cols = len(sprites)
	}
	rows := (len(sprites) + cols - 1) / cols

	cellW, cellH := 0, 0
	for _, s := range sprites {
		cellW = max(cellW, s.Width)
		cellH = max(cellH, s.Height)
	}

	pad, k := opts.Padding, opts.Scale
	sheet := image.NewRGBA(image.Rect(0, 0,
		(cols*(cellW+pad)+pad)*k,
		(rows*(cellH+pad)+pad)*k))

	for i, s := range sprites {
		x := pad + (i%cols)*(cellW+pad)
		y := pad + (i/cols)*(cellH+pad)
		src := ToPixmap(s, opts.Clear).ToImage()
		dst := image.Rect(x*k, y*k, (x+s.Width)*k, (y+s.Height)*k)
		xdraw.NearestNeighbor.Scale(sheet, dst, src, src.Bounds(), xdraw.Over, nil)
	}
	return sheet
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := EncodePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// EncodePNG writes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func pixelRGBA(p Pixel) gg.RGBA {
	if p.Transparent {
		return gg.Transparent
	}
	// Pixmap truncates on store; the half step keeps 8-bit values exact.
	return gg.RGB((float64(p.R)+0.5)/255, (float64(p.G)+0.5)/255, (float64(p.B)+0.5)/255)
}
