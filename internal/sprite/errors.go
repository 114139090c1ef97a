package sprite

import "errors"

var (
	// ErrInvalidDimensions indicates a zero or negative mask width, an empty
	// mask, or a mask shorter than a single row.
	ErrInvalidDimensions = errors.New("sprite: mask must have a positive width and at least one full row")
	// ErrTruncatedMask reports that the mask length is not a multiple of its
	// width. It is a warning: the trailing partial row is dropped and
	// generation continues.
	ErrTruncatedMask = errors.New("sprite: mask length is not a multiple of the width")
)
