package ot_test

import (
	"testing"

	"github.com/serroba/textot/internal/ot"
	"github.com/stretchr/testify/require"
)

// textOp inserts ASCII strings and deletes counts.
type textOp = ot.Operation[string, ot.PositiveInt]

type asciiFactory struct{}

func (asciiFactory) InsertLength(s string) ot.PositiveInt { return ot.MustPositiveInt(len(s)) }

func (asciiFactory) DeleteLength(n ot.PositiveInt) ot.PositiveInt { return n }

func (asciiFactory) ConcatInsert(a, b string) string { return a + b }

func (asciiFactory) ConcatDelete(a, b ot.PositiveInt) ot.PositiveInt { return a.Add(b) }

func (asciiFactory) SplitInsert(s string, i ot.PositiveInt) (string, string) {
	return s[:i.Value()], s[i.Value():]
}

func (asciiFactory) SplitDelete(n, i ot.PositiveInt) (ot.PositiveInt, ot.PositiveInt) {
	return ot.SplitCount(n, i)
}

type asciiSplicer struct{}

func (asciiSplicer) Len(s string) int { return len(s) }

func (asciiSplicer) Insert(s string, start int, insert string) string {
	return s[:start] + insert + s[start:]
}

func (asciiSplicer) Replace(s string, start int, count ot.PositiveInt, replacement *string) (string, string) {
	end := start + count.Value()

	repl := ""
	if replacement != nil {
		repl = *replacement
	}

	return s[:start] + repl + s[end:], s[start:end]
}

func pos(n int) ot.PositiveInt {
	return ot.MustPositiveInt(n)
}

func newBuilder() *ot.Builder[string, ot.PositiveInt] {
	return ot.NewBuilder[string, ot.PositiveInt](asciiFactory{}, nil)
}

func params(state string, op textOp) ot.ApplyParams[string, string, ot.PositiveInt] {
	return ot.ApplyParams[string, string, ot.PositiveInt]{
		State:   state,
		Steps:   op.Steps(),
		Factory: asciiFactory{},
		Splicer: asciiSplicer{},
	}
}

func mustApply(t *testing.T, state string, op textOp) string {
	t.Helper()

	got, err := ot.Apply(params(state, op))
	require.NoError(t, err)

	return got
}
