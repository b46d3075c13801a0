package vector

import "github.com/cockroachdb/errors"

// ErrOutOfRange is returned by At for an index outside [0, Len()).
var ErrOutOfRange = errors.New("vector: index out of range")
