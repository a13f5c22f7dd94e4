package linear

import "errors"

var (
	ErrBadTableSize = errors.New("linear: initial size cannot be less than one")
)
