package ot

import (
	"fmt"
	"strconv"
)

// PositiveInt is an integer that is always at least 1.
// The zero value is not valid; use NewPositiveInt, TryPositiveInt or MustPositiveInt.
type PositiveInt struct {
	value int
}

// One is the smallest PositiveInt.
var One = PositiveInt{value: 1}

// NewPositiveInt returns ErrNotPositive if n is less than 1.
func NewPositiveInt(n int) (PositiveInt, error) {
	if n < 1 {
		return PositiveInt{}, fmt.Errorf("%w: %d", ErrNotPositive, n)
	}

	return PositiveInt{value: n}, nil
}

// TryPositiveInt reports false instead of failing when n is less than 1.
func TryPositiveInt(n int) (PositiveInt, bool) {
	if n < 1 {
		return PositiveInt{}, false
	}

	return PositiveInt{value: n}, true
}

// MustPositiveInt panics if n is less than 1.
func MustPositiveInt(n int) PositiveInt {
	p, err := NewPositiveInt(n)
	if err != nil {
		panic(err)
	}

	return p
}

// Value returns the underlying int.
func (p PositiveInt) Value() int {
	return p.value
}

// Add returns p + other.
func (p PositiveInt) Add(other PositiveInt) PositiveInt {
	return PositiveInt{value: p.value + other.value}
}

// Successor returns p + 1.
func (p PositiveInt) Successor() PositiveInt {
	return PositiveInt{value: p.value + 1}
}

// sub returns p - other, which the caller has proven to be positive.
func (p PositiveInt) sub(other PositiveInt) PositiveInt {
	return MustPositiveInt(p.value - other.value)
}

func (p PositiveInt) String() string {
	return strconv.Itoa(p.value)
}
