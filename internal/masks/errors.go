package masks

import "errors"

var (
	// ErrEmptyMask indicates a template with no rows or no columns.
	ErrEmptyMask = errors.New("masks: template must have at least one row and one column")
	// ErrRaggedMask indicates rows of differing lengths, or rows that
	// disagree with the declared width or height.
	ErrRaggedMask = errors.New("masks: all rows must have the same length")
	// ErrUnknownCell indicates a row character outside "#.12".
	ErrUnknownCell = errors.New("masks: unknown cell character")
	// ErrDuplicateName indicates two templates in one directory share a name.
	ErrDuplicateName = errors.New("masks: duplicate template name")
)
