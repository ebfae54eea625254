package linkedlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned when index passed to the list does not point to a stored value.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexOutOfRangeError carries the index rejected by the list.
type IndexOutOfRangeError struct {
	Index int
	Size  int
}

func newIndexOutOfRangeError(index, size int) error {
	return errors.WithStack(IndexOutOfRangeError{Index: index, Size: size})
}

func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s: %d (size %d)", ErrIndexOutOfRange, e.Index, e.Size)
}

// Is makes errors.Is(err, ErrIndexOutOfRange) work.
func (e IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange //nolint:errorlint
}
