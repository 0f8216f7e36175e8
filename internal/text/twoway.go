package text

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/serroba/textot/internal/ot"
)

// TwoWayOperation carries text for both inserts and deletes.
type TwoWayOperation ot.Operation[NonEmptyString, NonEmptyString]

// TwoWayApplyError is returned by TwoWayOperation.Apply when the text at a
// delete position differs from the recorded text.
type TwoWayApplyError = ot.DeleteMismatchError[NonEmptyString, NonEmptyString]

func (o TwoWayOperation) core() ot.Operation[NonEmptyString, NonEmptyString] {
	return ot.Operation[NonEmptyString, NonEmptyString](o)
}

// Diff computes the operation that turns prevState into nextState. Both must
// be valid UTF-8, otherwise ErrInvalidUTF8 is returned.
func Diff(prevState, nextState string) (TwoWayOperation, error) {
	if !utf8.ValidString(prevState) || !utf8.ValidString(nextState) {
		return TwoWayOperation{}, ErrInvalidUTF8
	}

	builder := ot.NewBuilder[NonEmptyString, NonEmptyString](TwoWayFactory{}, nil)
	dmp := diffmatchpatch.New()

	for _, d := range dmp.DiffMain(prevState, nextState, false) {
		run, ok := TryNonEmptyString(d.Text)
		if !ok {
			continue
		}

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			builder.Delete(run)
		case diffmatchpatch.DiffEqual:
			builder.Retain(run.Length())
		case diffmatchpatch.DiffInsert:
			builder.Insert(run)
		}
	}

	return TwoWayOperation(builder.Build()), nil
}

// Apply applies o to prevState, checking that every deleted run matches the
// text recorded in o.
func (o TwoWayOperation) Apply(prevState string) (string, error) {
	state, err := toRunes(prevState)
	if err != nil {
		return "", err
	}

	next, err := ot.Apply(ot.ApplyParams[[]rune, NonEmptyString, NonEmptyString]{
		State:   state,
		Steps:   o.core().Steps(),
		Factory: TwoWayFactory{},
		Splicer: runeSplicer{},
		Match: func(expected, actual NonEmptyString) bool {
			return expected == actual
		},
	})
	if err != nil {
		return "", err
	}

	return string(next), nil
}

// Compose returns an operation equivalent to o followed by second.
func (o TwoWayOperation) Compose(second TwoWayOperation) (TwoWayOperation, error) {
	composed, err := ot.Compose[NonEmptyString, NonEmptyString](o.core().Units(), second.core().Units(), TwoWayFactory{})
	if err != nil {
		return TwoWayOperation{}, &PairError[TwoWayOperation]{First: o, Second: second, Err: err}
	}

	return TwoWayOperation(composed), nil
}

// Transform rebases o and second, which were made against the same text, onto
// each other.
func (o TwoWayOperation) Transform(second TwoWayOperation) (firstPrime, secondPrime TwoWayOperation, err error) {
	a, b, err := ot.Transform[NonEmptyString, NonEmptyString](o.core().Units(), second.core().Units(), TwoWayFactory{})
	if err != nil {
		return TwoWayOperation{}, TwoWayOperation{}, &PairError[TwoWayOperation]{First: o, Second: second, Err: err}
	}

	return TwoWayOperation(a), TwoWayOperation(b), nil
}

// Invert returns the operation that turns the next state of o back into its
// previous state.
func (o TwoWayOperation) Invert() TwoWayOperation {
	return TwoWayOperation(ot.Invert(o.core()))
}

// Up drops the deleted text, keeping only its length.
func (o TwoWayOperation) Up() UpOperation {
	return UpOperation(ot.MapOperation(o.core(), keepText, NonEmptyString.Length))
}

// Down drops the inserted text, keeping only its length.
func (o TwoWayOperation) Down() DownOperation {
	return DownOperation(ot.MapOperation(o.core(), NonEmptyString.Length, keepText))
}

// Units serializes o.
func (o TwoWayOperation) Units() []*Unit {
	return unitsToWire(o.core().Units(), textPayload, textPayload)
}

// TwoWayFromUnits parses serialized units leniently.
func TwoWayFromUnits(units []*Unit) TwoWayOperation {
	return TwoWayOperation(unitsFromWire[NonEmptyString, NonEmptyString](units, TwoWayFactory{}, textFromPayload, textFromPayload))
}

func keepText(s NonEmptyString) NonEmptyString {
	return s
}
