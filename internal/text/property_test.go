package text_test

import (
	"encoding/json"
	"testing"

	"github.com/serroba/textot/internal/text"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// texts draws strings from a small alphabet so diffs overlap often.
func texts() *rapid.Generator[string] {
	return rapid.StringOf(rapid.RuneFrom([]rune("abcあ\n ")))
}

func TestProperty_DiffApply(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		prev := texts().Draw(t, "prev")
		next := texts().Draw(t, "next")

		op := diff(t, prev, next)

		got, err := op.Up().Apply(prev)
		require.NoError(t, err)
		require.Equal(t, next, got)

		got, err = op.Apply(prev)
		require.NoError(t, err)
		require.Equal(t, next, got)
	})
}

func TestProperty_ApplyAndRestore(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		prev := texts().Draw(t, "prev")
		next := texts().Draw(t, "next")

		op := diff(t, prev, next)

		got, restored, err := op.Up().ApplyAndRestore(prev)
		require.NoError(t, err)
		require.Equal(t, next, got)
		require.Equal(t, op, restored)
	})
}

func TestProperty_Compose(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		a := texts().Draw(t, "a")
		b := texts().Draw(t, "b")
		c := texts().Draw(t, "c")

		first := diff(t, a, b)
		second := diff(t, b, c)

		up, err := first.Up().Compose(second.Up())
		require.NoError(t, err)

		got, err := up.Apply(a)
		require.NoError(t, err)
		require.Equal(t, c, got)

		twoWay, err := first.Compose(second)
		require.NoError(t, err)

		got, err = twoWay.Apply(a)
		require.NoError(t, err)
		require.Equal(t, c, got)

		down, err := first.Down().Compose(second.Down())
		require.NoError(t, err)

		got, err = down.ApplyBack(c)
		require.NoError(t, err)
		require.Equal(t, a, got)
	})
}

func TestProperty_TransformConverges(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		base := texts().Draw(t, "base")
		x := texts().Draw(t, "x")
		y := texts().Draw(t, "y")

		first := diff(t, base, x)
		second := diff(t, base, y)

		firstPrime, secondPrime, err := first.Up().Transform(second.Up())
		require.NoError(t, err)

		left, err := firstPrime.Apply(y)
		require.NoError(t, err)

		right, err := secondPrime.Apply(x)
		require.NoError(t, err)
		require.Equal(t, left, right)

		twoFirst, twoSecond, err := first.Transform(second)
		require.NoError(t, err)

		left, err = twoFirst.Apply(y)
		require.NoError(t, err)

		right, err = twoSecond.Apply(x)
		require.NoError(t, err)
		require.Equal(t, left, right)
	})
}

func TestProperty_InvertRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		prev := texts().Draw(t, "prev")
		next := texts().Draw(t, "next")

		op := diff(t, prev, next)

		got, err := op.Down().ApplyBack(next)
		require.NoError(t, err)
		require.Equal(t, prev, got)

		got, restored, err := op.Down().ApplyBackAndRestore(next)
		require.NoError(t, err)
		require.Equal(t, prev, got)
		require.Equal(t, op, restored)

		got, err = op.Invert().Apply(next)
		require.NoError(t, err)
		require.Equal(t, prev, got)
	})
}

func TestProperty_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		op := diff(t, texts().Draw(t, "prev"), texts().Draw(t, "next"))

		data, err := json.Marshal(op.Units())
		require.NoError(t, err)

		var units []*text.Unit
		require.NoError(t, json.Unmarshal(data, &units))

		require.Equal(t, op, text.TwoWayFromUnits(units))
		require.Equal(t, op.Up(), text.UpFromUnits(units))
		require.Equal(t, op.Down(), text.DownFromUnits(units))
	})
}
