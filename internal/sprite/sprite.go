// Package sprite generates symmetric pixel-art sprites from small templates.
//
// A template ("mask") marks each cell as always outline, always empty, or one
// of two ambiguous body kinds. Generate resolves the ambiguous cells with a
// seeded random source, grows a one-pixel outline around the shape, colors
// it, and optionally mirrors the result:
//
//	Resolve -> GrowEdges -> Monochrome | Gradient -> Mirror
//
// Each stage is exported so callers can run or test it on its own. The
// pipeline keeps no state between calls.
package sprite

import "fmt"

// Sprite is a generated image: Width*Height packed pixels in row-major order.
type Sprite struct {
	Width  int
	Height int
	Pixels []uint32

	// Warning is set when the mask had to be truncated. It wraps
	// ErrTruncatedMask and does not invalidate the sprite.
	Warning error
	// Dropped is the number of trailing mask cells that were ignored.
	Dropped int
}

// At returns the pixel at (x, y).
func (s *Sprite) At(x, y int) uint32 {
	return s.Pixels[x+y*s.Width]
}

// Generate builds a sprite from mask, a row-major template mask width cells
// wide, using a random source seeded with opts.Seed.
func Generate(mask []MaskCell, width int, opts Options) (*Sprite, error) {
	return GenerateWith(mask, width, opts, NewSource(opts.Seed))
}

// GenerateWith is Generate with a caller-supplied random source; opts.Seed is
// ignored. rng must not be nil.
func GenerateWith(mask []MaskCell, width int, opts Options, rng Source) (*Sprite, error) {
	if rng == nil {
		panic("sprite: nil Source")
	}
	if err := checkDimensions(len(mask), width); err != nil {
		return nil, err
	}

	height := len(mask) / width
	s := &Sprite{}
	if rem := len(mask) % width; rem != 0 {
		s.Dropped = rem
		s.Warning = fmt.Errorf("%w: %d cells, width %d, dropped %d", ErrTruncatedMask, len(mask), width, rem)
		Logger().Warn("mask truncated", "cells", len(mask), "width", width, "dropped", rem)
		mask = mask[:width*height]
	}

	opts = opts.clamped()

	cells := Resolve(mask, rng)
	GrowEdges(cells, width, height)

	var colored []uint32
	if opts.Colored {
		colored = Gradient(cells, width, height, opts, rng)
	} else {
		colored = Monochrome(cells)
	}

	s.Pixels, s.Width, s.Height = Mirror(colored, width, height, opts.MirrorX, opts.MirrorY)
	return s, nil
}

// OutputSize returns the dimensions Generate will produce for a mask of
// cells cells and the given width.
func OutputSize(cells, width int, opts Options) (w, h int) {
	if width <= 0 {
		return 0, 0
	}
	w, h = width, cells/width
	if opts.MirrorX {
		w *= 2
	}
	if opts.MirrorY {
		h *= 2
	}
	return w, h
}

func checkDimensions(cells, width int) error {
	if width <= 0 || cells == 0 {
		return fmt.Errorf("%w: width %d, %d cells", ErrInvalidDimensions, width, cells)
	}
	if cells < width {
		return fmt.Errorf("%w: %d cells do not fill one row of %d", ErrInvalidDimensions, cells, width)
	}
	return nil
}
