package cycle

import "errors"

// ErrInvalidLength is returned for k < 2: the shortest cycle this
// construction can recover closes a length-1 path with one edge.
var ErrInvalidLength = errors.New("cycle: k must be >= 2")
