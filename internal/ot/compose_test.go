package ot_test

import (
	"errors"
	"testing"

	"github.com/serroba/textot/internal/ot"
	"github.com/stretchr/testify/require"
)

func compose(t *testing.T, first, second textOp) textOp {
	t.Helper()

	composed, err := ot.Compose[string, ot.PositiveInt](first.Units(), second.Units(), asciiFactory{})
	require.NoError(t, err)

	return composed
}

func TestCompose_InsertThenDeleteCancels(t *testing.T) {
	t.Parallel()

	// "abc" -> "aXbc"
	first := newBuilder()
	first.Retain(pos(1))
	first.Insert("X")
	first.Retain(pos(2))

	// "aXbc" -> "bc"
	second := newBuilder()
	second.Delete(pos(2))
	second.Retain(pos(2))

	composed := compose(t, first.Build(), second.Build())

	expected := newBuilder()
	expected.Delete(pos(1))
	expected.Retain(pos(2))

	require.Equal(t, expected.Build(), composed)
	require.Equal(t, "bc", mustApply(t, "abc", composed))
}

func TestCompose_MatchesSequentialApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		state         string
		first, second func(b *ot.Builder[string, ot.PositiveInt])
	}{
		{
			name:  "insert split by retain",
			state: "ab",
			first: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Retain(pos(1))
				b.Insert("XYZ")
				b.Retain(pos(1))
			},
			second: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Retain(pos(2))
				b.Insert("-")
				b.Retain(pos(3))
			},
		},
		{
			name:  "second deletes across inserted and original text",
			state: "abcdef",
			first: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Retain(pos(2))
				b.Insert("12")
				b.Retain(pos(4))
			},
			second: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Retain(pos(3))
				b.Delete(pos(3))
				b.Retain(pos(2))
			},
		},
		{
			name:  "deletes on both sides",
			state: "abcdef",
			first: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Delete(pos(2))
				b.Retain(pos(4))
			},
			second: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Retain(pos(1))
				b.Delete(pos(2))
				b.Insert("Q")
				b.Retain(pos(1))
			},
		},
		{
			name:  "trailing insert in second",
			state: "a",
			first: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Insert("b")
				b.Retain(pos(1))
			},
			second: func(b *ot.Builder[string, ot.PositiveInt]) {
				b.Retain(pos(2))
				b.Insert("c")
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first := newBuilder()
			tt.first(first)

			second := newBuilder()
			tt.second(second)

			expected := mustApply(t, mustApply(t, tt.state, first.Build()), second.Build())
			composed := compose(t, first.Build(), second.Build())

			require.Equal(t, expected, mustApply(t, tt.state, composed))
		})
	}
}

func TestCompose_LengthMismatch(t *testing.T) {
	t.Parallel()

	first := newBuilder()
	first.Retain(pos(3))

	t.Run("second too long", func(t *testing.T) {
		t.Parallel()

		second := newBuilder()
		second.Retain(pos(4))

		_, err := ot.Compose[string, ot.PositiveInt](first.Build().Units(), second.Build().Units(), asciiFactory{})
		if !errors.Is(err, ot.ErrSecondTooLong) {
			t.Errorf("expected ErrSecondTooLong, got %v", err)
		}

		var mismatch *ot.LengthMismatchError
		require.ErrorAs(t, err, &mismatch)
		require.Equal(t, "compose", mismatch.Op)
		require.Equal(t, 3, mismatch.FirstLength)
		require.Equal(t, 4, mismatch.SecondLength)
	})

	t.Run("second too short", func(t *testing.T) {
		t.Parallel()

		second := newBuilder()
		second.Retain(pos(2))

		_, err := ot.Compose[string, ot.PositiveInt](first.Build().Units(), second.Build().Units(), asciiFactory{})
		if !errors.Is(err, ot.ErrSecondTooShort) {
			t.Errorf("expected ErrSecondTooShort, got %v", err)
		}
	})
}

func TestCompose_Empty(t *testing.T) {
	t.Parallel()

	composed, err := ot.Compose[string, ot.PositiveInt](nil, nil, asciiFactory{})
	require.NoError(t, err)
	require.True(t, composed.IsNoop())
}
