package ot

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the algebra.
var (
	// ErrNotPositive is returned when a PositiveInt is built from a value below 1.
	ErrNotPositive = errors.New("value is less than 1")

	// ErrStateTooShort is returned when the state is shorter than the operation's previous length.
	ErrStateTooShort = errors.New("state too short")

	// ErrStateTooLong is returned when the state is longer than the operation's previous length.
	ErrStateTooLong = errors.New("state too long")

	// ErrDeleteValueNotMatch is returned when deleted content differs from the declared delete.
	ErrDeleteValueNotMatch = errors.New("delete value does not match")

	// ErrSecondTooShort is returned when the second operation covers fewer
	// elements than required by the first.
	ErrSecondTooShort = errors.New("second operation too short")

	// ErrSecondTooLong is returned when the second operation covers more
	// elements than required by the first.
	ErrSecondTooLong = errors.New("second operation too long")
)

// DeleteMismatchError describes a delete whose expected payload did not match
// the content found in the state. E is the delete payload type of the applied
// operation and A is the type of the content actually removed.
type DeleteMismatchError[E, A any] struct {
	StartCharIndex int
	Expected       E
	Actual         A
}

func (e *DeleteMismatchError[E, A]) Error() string {
	return fmt.Sprintf("%v at %d: expected %v, actual %v",
		ErrDeleteValueNotMatch, e.StartCharIndex, e.Expected, e.Actual)
}

func (e *DeleteMismatchError[E, A]) Unwrap() error {
	return ErrDeleteValueNotMatch
}

// LengthMismatchError is returned by Compose and Transform when the two
// operations cannot be combined. For Compose the lengths compared are the next
// length of first and the previous length of second; for Transform both are
// previous lengths.
type LengthMismatchError struct {
	Op           string
	FirstLength  int
	SecondLength int
	Err          error
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: %v (first %d, second %d)", e.Op, e.Err, e.FirstLength, e.SecondLength)
}

func (e *LengthMismatchError) Unwrap() error {
	return e.Err
}

func newLengthMismatch(op string, first, second int) error {
	err := ErrSecondTooShort
	if first < second {
		err = ErrSecondTooLong
	}

	return &LengthMismatchError{
		Op:           op,
		FirstLength:  first,
		SecondLength: second,
		Err:          err,
	}
}

// assert panics when an internal invariant is broken. Reaching it means a
// length precondition was not checked.
func assert(ok bool, msg string) {
	if !ok {
		panic("ot: " + msg)
	}
}
