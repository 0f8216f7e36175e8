package text

import "github.com/serroba/textot/internal/ot"

// UpOperation is an edit with inserted text and deleted counts.
type UpOperation ot.Operation[NonEmptyString, ot.PositiveInt]

func (u UpOperation) core() ot.Operation[NonEmptyString, ot.PositiveInt] {
	return ot.Operation[NonEmptyString, ot.PositiveInt](u)
}

func (u UpOperation) applyParams(prevState string) (ot.ApplyParams[[]rune, NonEmptyString, ot.PositiveInt], error) {
	state, err := toRunes(prevState)
	if err != nil {
		return ot.ApplyParams[[]rune, NonEmptyString, ot.PositiveInt]{}, err
	}

	return ot.ApplyParams[[]rune, NonEmptyString, ot.PositiveInt]{
		State:   state,
		Steps:   u.core().Steps(),
		Factory: UpFactory{},
		Splicer: runeSplicer{},
	}, nil
}

// Apply returns the text produced by applying u to prevState.
// It fails with ot.ErrStateTooShort or ot.ErrStateTooLong when prevState does
// not have exactly the length u expects, and with ErrInvalidUTF8 when it is not
// valid UTF-8.
func (u UpOperation) Apply(prevState string) (string, error) {
	params, err := u.applyParams(prevState)
	if err != nil {
		return "", err
	}

	next, err := ot.Apply(params)
	if err != nil {
		return "", err
	}

	return string(next), nil
}

// ApplyAndRestore applies u and also returns the TwoWayOperation recording
// the text that was actually deleted.
func (u UpOperation) ApplyAndRestore(prevState string) (string, TwoWayOperation, error) {
	params, err := u.applyParams(prevState)
	if err != nil {
		return "", TwoWayOperation{}, err
	}

	next, restored, err := ot.ApplyAndRestore[[]rune, NonEmptyString, ot.PositiveInt, NonEmptyString](
		params,
		TwoWayFactory{},
		func(_ ot.PositiveInt, actual NonEmptyString) (NonEmptyString, bool) {
			return actual, true
		},
	)
	if err != nil {
		return "", TwoWayOperation{}, err
	}

	return string(next), TwoWayOperation(restored), nil
}

// Compose returns an operation equivalent to u followed by second.
func (u UpOperation) Compose(second UpOperation) (UpOperation, error) {
	composed, err := ot.Compose[NonEmptyString, ot.PositiveInt](u.core().Units(), second.core().Units(), UpFactory{})
	if err != nil {
		return UpOperation{}, &PairError[UpOperation]{First: u, Second: second, Err: err}
	}

	return UpOperation(composed), nil
}

// Transform rebases u and second, which were made against the same text, onto
// each other.
func (u UpOperation) Transform(second UpOperation) (firstPrime, secondPrime UpOperation, err error) {
	a, b, err := ot.Transform[NonEmptyString, ot.PositiveInt](u.core().Units(), second.core().Units(), UpFactory{})
	if err != nil {
		return UpOperation{}, UpOperation{}, &PairError[UpOperation]{First: u, Second: second, Err: err}
	}

	return UpOperation(a), UpOperation(b), nil
}

// Invert turns u into a DownOperation with the same payloads.
func (u UpOperation) Invert() DownOperation {
	return DownOperation(ot.Invert(u.core()))
}

// PrevLength is the rune length of the text u applies to.
func (u UpOperation) PrevLength() int {
	return u.core().PrevLength(UpFactory{})
}

// NextLength is the rune length of the text u produces.
func (u UpOperation) NextLength() int {
	return u.core().NextLength(UpFactory{})
}

// Units serializes u.
func (u UpOperation) Units() []*Unit {
	return unitsToWire(u.core().Units(), textPayload, countPayload)
}

// UpFromUnits parses serialized units leniently. TwoWay units are accepted:
// deleted text contributes its length.
func UpFromUnits(units []*Unit) UpOperation {
	return UpOperation(unitsFromWire[NonEmptyString, ot.PositiveInt](units, UpFactory{}, textFromPayload, countFromPayload))
}
