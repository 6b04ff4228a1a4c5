package caret

import (
	"errors"

	"caret/internal/source"
)

// Validation failures. All of them surface at construction or validation
// time; rendering a validated report cannot fail.
var (
	// ErrInvalidSpan marks a label or primary span with start > end, or
	// with an endpoint outside its file under the active index mode.
	ErrInvalidSpan = errors.New("invalid span")
	// ErrUnknownFile marks a label whose path is not in the report's
	// file set.
	ErrUnknownFile = errors.New("unknown file")
	// ErrInvalidKind marks a custom kind without a color, or a built-in
	// kind combined with an explicit report color.
	ErrInvalidKind = errors.New("invalid kind")
	// ErrOutOfRange is returned by offset resolution for offsets past the
	// end of a buffer.
	ErrOutOfRange = source.ErrOutOfRange
)
