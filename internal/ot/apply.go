package ot

// Splicer edits a state of type S whose elements are inserted as I.
// Implementations must not modify the state they are given.
type Splicer[S, I any] interface {
	// Len returns the number of elements in state.
	Len(state S) int

	// Insert adds insert at start.
	Insert(state S, start int, insert I) S

	// Replace removes count elements from start, adds replacement there if it
	// is not nil, and returns the removed elements.
	Replace(state S, start int, count PositiveInt, replacement *I) (S, I)
}

// ApplyParams describes an apply call.
type ApplyParams[S, I, D any] struct {
	State   S
	Steps   []Step[I, D]
	Factory Factory[I, D]
	Splicer Splicer[S, I]

	// Match reports whether content removed from the state equals the delete
	// declared by the operation. Nil means deletes always match, which suits
	// payloads that only carry a length.
	Match func(expected D, actual I) bool
}

// Apply replays steps against the state and returns the new state.
func Apply[S, I, D any](p ApplyParams[S, I, D]) (S, error) {
	mapping := func(expected D, actual I) (struct{}, bool) {
		if p.Match == nil {
			return struct{}{}, true
		}

		return struct{}{}, p.Match(expected, actual)
	}

	state, _, err := applyAndRestore(p, nil, mapping)

	return state, err
}

// ApplyAndRestore behaves like Apply and also records what actually happened as
// an Operation[I, R]. mapping turns the declared delete and the removed
// content into the restored delete payload; returning false reports a mismatch.
func ApplyAndRestore[S, I, D, R any](
	p ApplyParams[S, I, D], restore Factory[I, R], mapping func(expected D, actual I) (R, bool),
) (S, Operation[I, R], error) {
	state, builder, err := applyAndRestore(p, NewBuilder[I, R](restore, nil), mapping)
	if err != nil {
		return state, Operation[I, R]{}, err
	}

	return state, builder.Build(), nil
}

func applyAndRestore[S, I, D, R any](
	p ApplyParams[S, I, D], builder *Builder[I, R], mapping func(expected D, actual I) (R, bool),
) (S, *Builder[I, R], error) {
	var zero S

	prevLength := StepsPrevLength(p.Steps, p.Factory)
	stateLength := p.Splicer.Len(p.State)

	if stateLength < prevLength {
		return zero, nil, ErrStateTooShort
	}

	if stateLength > prevLength {
		return zero, nil, ErrStateTooLong
	}

	state := p.State
	cursor := 0

	for _, step := range p.Steps {
		if step.Kind == StepRetain {
			cursor += step.Retain.Value()

			if builder != nil {
				builder.Retain(step.Retain)
			}

			continue
		}

		edit := step.Edit

		if !edit.HasDelete() {
			if cursor > p.Splicer.Len(state) {
				return zero, nil, ErrStateTooShort
			}

			state = p.Splicer.Insert(state, cursor, edit.Insert)
		} else {
			count := p.Factory.DeleteLength(edit.Delete)
			if cursor+count.Value() > p.Splicer.Len(state) {
				return zero, nil, ErrStateTooShort
			}

			var replacement *I
			if edit.HasInsert() {
				replacement = &edit.Insert
			}

			newState, deleted := p.Splicer.Replace(state, cursor, count, replacement)

			mapped, ok := mapping(edit.Delete, deleted)
			if !ok {
				return zero, nil, &DeleteMismatchError[D, I]{
					StartCharIndex: cursor,
					Expected:       edit.Delete,
					Actual:         deleted,
				}
			}

			if builder != nil {
				builder.Delete(mapped)
			}

			state = newState
		}

		if edit.HasInsert() {
			if builder != nil {
				builder.Insert(edit.Insert)
			}

			cursor += p.Factory.InsertLength(edit.Insert).Value()
		}
	}

	return state, builder, nil
}
