package datastructure

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned when an element is requested from an empty container.
	ErrEmpty = errors.New("container is empty")
	// ErrOutOfRange is returned by checked index access outside [0, Len()).
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalidIterator is returned when an iterator does not point into the
	// container it is used with, was invalidated by Erase or Clear, or is the
	// end sentinel where an element is required.
	ErrInvalidIterator = errors.New("invalid iterator")
)

func emptyError(op string) error {
	return errors.Wrap(ErrEmpty, op)
}

func outOfRangeError(op string, i, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: index %d, size %d", op, i, size)
}
