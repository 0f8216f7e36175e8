package text

import "github.com/serroba/textot/internal/ot"

// DownOperation is an edit with inserted counts and deleted text. It is
// applied backwards: from the next state to the previous one.
type DownOperation ot.Operation[ot.PositiveInt, NonEmptyString]

func (d DownOperation) core() ot.Operation[ot.PositiveInt, NonEmptyString] {
	return ot.Operation[ot.PositiveInt, NonEmptyString](d)
}

func (d DownOperation) backParams(nextState string) (ot.ApplyParams[[]rune, NonEmptyString, ot.PositiveInt], error) {
	state, err := toRunes(nextState)
	if err != nil {
		return ot.ApplyParams[[]rune, NonEmptyString, ot.PositiveInt]{}, err
	}

	return ot.ApplyParams[[]rune, NonEmptyString, ot.PositiveInt]{
		State:   state,
		Steps:   ot.Invert(d.core()).Steps(),
		Factory: UpFactory{},
		Splicer: runeSplicer{},
	}, nil
}

// ApplyBack undoes d: given the text d produced, returns the text it was
// applied to.
func (d DownOperation) ApplyBack(nextState string) (string, error) {
	params, err := d.backParams(nextState)
	if err != nil {
		return "", err
	}

	prev, err := ot.Apply(params)
	if err != nil {
		return "", err
	}

	return string(prev), nil
}

// ApplyBackAndRestore undoes d and also returns the forward TwoWayOperation,
// including the text that d had inserted.
func (d DownOperation) ApplyBackAndRestore(nextState string) (string, TwoWayOperation, error) {
	params, err := d.backParams(nextState)
	if err != nil {
		return "", TwoWayOperation{}, err
	}

	prev, restored, err := ot.ApplyAndRestore[[]rune, NonEmptyString, ot.PositiveInt, NonEmptyString](
		params,
		TwoWayFactory{},
		func(_ ot.PositiveInt, actual NonEmptyString) (NonEmptyString, bool) {
			return actual, true
		},
	)
	if err != nil {
		return "", TwoWayOperation{}, err
	}

	return string(prev), TwoWayOperation(ot.Invert(restored)), nil
}

// Compose returns an operation equivalent to d followed by second.
func (d DownOperation) Compose(second DownOperation) (DownOperation, error) {
	composed, err := ot.Compose[ot.PositiveInt, NonEmptyString](d.core().Units(), second.core().Units(), DownFactory{})
	if err != nil {
		return DownOperation{}, &PairError[DownOperation]{First: d, Second: second, Err: err}
	}

	return DownOperation(composed), nil
}

// Invert turns d into an UpOperation with the same payloads.
func (d DownOperation) Invert() UpOperation {
	return UpOperation(ot.Invert(d.core()))
}

// Units serializes d.
func (d DownOperation) Units() []*Unit {
	return unitsToWire(d.core().Units(), countPayload, textPayload)
}

// DownFromUnits parses serialized units leniently. TwoWay units are accepted:
// inserted text contributes its length.
func DownFromUnits(units []*Unit) DownOperation {
	return DownOperation(unitsFromWire[ot.PositiveInt, NonEmptyString](units, DownFactory{}, countFromPayload, textFromPayload))
}
