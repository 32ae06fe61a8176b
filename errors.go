package imgproc

import "errors"

// ErrInvalidParameter reports an unrecognized mode string or an argument
// outside its domain that cannot be silently clamped. Degenerate inputs
// (constant or all-zero buffers) never produce an error; each operation
// documents its local fallback instead.
var ErrInvalidParameter = errors.New("invalid parameter")
