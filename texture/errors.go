package texture

import "errors"

var (
	// ErrNilSource indicates a transform was handed a nil source image.
	ErrNilSource = errors.New("nil source image")

	// ErrSizeMismatch indicates packing inputs of differing resolution.
	ErrSizeMismatch = errors.New("size mismatch")

	// ErrNoReferenceDimension indicates no image in the sizing set carries
	// usable dimensions.
	ErrNoReferenceDimension = errors.New("no reference dimension")
)
