package bytecursor

import (
	"errors"
	"fmt"
)

// ErrVarintOverflow is returned when a varint does not fit in a 64-bit
// integer.
var ErrVarintOverflow = errors.New("varint overflows a 64-bit integer")

// OutOfBoundsError is returned when a read asks for more bytes than remain.
// The failed read does not move the position, so the caller can recover by
// asking for less.
type OutOfBoundsError struct {
	Requested int
	Remaining int
}

func (o OutOfBoundsError) Error() string {
	return fmt.Sprintf("out of bounds: requested %d bytes with %d remaining", o.Requested, o.Remaining)
}
