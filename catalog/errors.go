package catalog

import "errors"

// Validation errors returned by New and the decoders.
var (
	ErrDuplicateID       = errors.New("duplicate item id")
	ErrInvalidCategory   = errors.New("invalid item category")
	ErrRatingOutOfRange  = errors.New("rating out of range")
	ErrEmptyName         = errors.New("item name is empty")
	ErrMissingColumn     = errors.New("missing required column")
	ErrUnsupportedSource = errors.New("unsupported catalog source")
)
