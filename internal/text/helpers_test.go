package text_test

import (
	"github.com/serroba/textot/internal/ot"
	"github.com/serroba/textot/internal/text"
	"github.com/stretchr/testify/require"
)

func str(s string) text.NonEmptyString {
	return text.MustNonEmptyString(s)
}

func pos(n int) ot.PositiveInt {
	return ot.MustPositiveInt(n)
}

func upBuilder() *ot.Builder[text.NonEmptyString, ot.PositiveInt] {
	return ot.NewBuilder[text.NonEmptyString, ot.PositiveInt](text.UpFactory{}, nil)
}

// diff is text.Diff for inputs known to be valid UTF-8. It accepts both
// *testing.T and *rapid.T.
func diff(t require.TestingT, prev, next string) text.TwoWayOperation {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	op, err := text.Diff(prev, next)
	require.NoError(t, err)

	return op
}
