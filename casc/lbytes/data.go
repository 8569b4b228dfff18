package lbytes

import (
	"bytes"
	"fmt"
)

type (
	Reader struct {
		bytes.Reader
	}
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
	// ErrOutOfBounds is returned by the offset readers when a field would
	// extend past the end of the underlying buffer.
	ErrOutOfBounds struct {
		Offset int64
		Length int64
		Size   int64
	}
)

func (r ErrOutOfBounds) Error() string {
	return fmt.Sprintf(
		"read of %d bytes at offset %d exceeds buffer of size %d",
		r.Length, r.Offset, r.Size,
	)
}
