package text

import "fmt"

// PairError is returned when two operations cannot be composed or
// transformed. It keeps both inputs for diagnostics; Err wraps
// ot.ErrSecondTooShort or ot.ErrSecondTooLong.
type PairError[O any] struct {
	First  O
	Second O
	Err    error
}

func (e *PairError[O]) Error() string {
	return fmt.Sprintf("text: %v", e.Err)
}

func (e *PairError[O]) Unwrap() error {
	return e.Err
}
