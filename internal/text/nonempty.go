// Package text specializes the generic OT algebra for strings.
//
// An edit over text comes in three shapes that all share the structure of
// ot.Operation:
//
//   - UpOperation carries inserted text and deleted counts. It is what is
//     applied forward against known text.
//   - DownOperation carries inserted counts and deleted text. It is applied
//     backwards, for undo.
//   - TwoWayOperation carries text on both sides and can be projected to either.
//
// Lengths are measured in Unicode code points.
package text

import (
	"errors"
	"unicode/utf8"

	"github.com/serroba/textot/internal/ot"
)

var (
	// ErrEmptyString is returned when a NonEmptyString is built from "".
	ErrEmptyString = errors.New("empty string")

	// ErrInvalidUTF8 is returned for text that is not valid UTF-8. Lengths
	// count code points, so such text has no well defined length.
	ErrInvalidUTF8 = errors.New("text is not valid UTF-8")
)

// NonEmptyString is a string with at least one rune.
type NonEmptyString struct {
	value string
}

// NewNonEmptyString returns ErrEmptyString if s is empty and ErrInvalidUTF8
// if it is not valid UTF-8.
func NewNonEmptyString(s string) (NonEmptyString, error) {
	if s == "" {
		return NonEmptyString{}, ErrEmptyString
	}

	if !utf8.ValidString(s) {
		return NonEmptyString{}, ErrInvalidUTF8
	}

	return NonEmptyString{value: s}, nil
}

// TryNonEmptyString reports false instead of failing.
func TryNonEmptyString(s string) (NonEmptyString, bool) {
	n, err := NewNonEmptyString(s)

	return n, err == nil
}

// MustNonEmptyString panics if s is empty.
func MustNonEmptyString(s string) NonEmptyString {
	n, err := NewNonEmptyString(s)
	if err != nil {
		panic(err)
	}

	return n
}

// Value returns the underlying string.
func (s NonEmptyString) Value() string {
	return s.value
}

// Length returns the number of runes.
func (s NonEmptyString) Length() ot.PositiveInt {
	return ot.MustPositiveInt(utf8.RuneCountInString(s.value))
}

// Concat returns s followed by other.
func (s NonEmptyString) Concat(other NonEmptyString) NonEmptyString {
	return NonEmptyString{value: s.value + other.value}
}

// Split cuts s after index runes. index must be strictly inside s.
func (s NonEmptyString) Split(index ot.PositiveInt) (NonEmptyString, NonEmptyString) {
	runes := []rune(s.value)

	return MustNonEmptyString(string(runes[:index.Value()])),
		MustNonEmptyString(string(runes[index.Value():]))
}

func (s NonEmptyString) String() string {
	return s.value
}
