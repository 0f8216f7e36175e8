package text

import (
	"unicode/utf8"

	"github.com/serroba/textot/internal/ot"
)

// toRunes converts a state for splicing. Invalid UTF-8 is refused rather than
// replaced with U+FFFD.
func toRunes(s string) ([]rune, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUTF8
	}

	return []rune(s), nil
}

// runeSplicer edits text held as runes so indexes count code points.
type runeSplicer struct{}

func (runeSplicer) Len(state []rune) int {
	return len(state)
}

func (runeSplicer) Insert(state []rune, start int, insert NonEmptyString) []rune {
	chars := []rune(insert.value)

	newContent := make([]rune, 0, len(state)+len(chars))
	newContent = append(newContent, state[:start]...)
	newContent = append(newContent, chars...)
	newContent = append(newContent, state[start:]...)

	return newContent
}

func (runeSplicer) Replace(
	state []rune, start int, count ot.PositiveInt, replacement *NonEmptyString,
) ([]rune, NonEmptyString) {
	end := start + count.Value()
	deleted := NonEmptyString{value: string(state[start:end])}

	var chars []rune
	if replacement != nil {
		chars = []rune(replacement.value)
	}

	newContent := make([]rune, 0, len(state)-count.Value()+len(chars))
	newContent = append(newContent, state[:start]...)
	newContent = append(newContent, chars...)
	newContent = append(newContent, state[end:]...)

	return newContent, deleted
}
