package material

import "errors"

// ErrMissingRequiredInput indicates a mandatory role (base color or the
// packed mask map) was absent at assembly time.
var ErrMissingRequiredInput = errors.New("missing required input")
