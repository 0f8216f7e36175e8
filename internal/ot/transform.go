package ot

// Transform takes two operations made concurrently against the same state and
// returns transformed versions that can be applied in either order to reach
// the same final state.
//
// Given: first and second share a previous state.
// Returns: firstPrime (first rebased onto second) and secondPrime (second
// rebased onto first), so that second then firstPrime equals first then secondPrime.
func Transform[I, D any](
	first, second []Unit[I, D], f SplitFactory[I, D],
) (firstPrime, secondPrime Operation[I, D], err error) {
	prevLengthOfFirst := UnitsPrevLength[I, D](first, f)
	prevLengthOfSecond := UnitsPrevLength[I, D](second, f)

	if prevLengthOfFirst != prevLengthOfSecond {
		err = newLengthMismatch("transform", prevLengthOfFirst, prevLengthOfSecond)

		return firstPrime, secondPrime, err
	}

	t := &transformer[I, D]{
		factory:     f,
		first:       newUnitQueue(first),
		second:      newUnitQueue(second),
		firstPrime:  NewBuilder[I, D](f, nil),
		secondPrime: NewBuilder[I, D](f, nil),
	}

	for t.step() {
	}

	return t.firstPrime.Build(), t.secondPrime.Build(), nil
}

type transformer[I, D any] struct {
	factory     SplitFactory[I, D]
	first       *unitQueue[I, D]
	second      *unitQueue[I, D]
	firstPrime  *Builder[I, D]
	secondPrime *Builder[I, D]
}

// step consumes at least part of one unit and returns false when both sides
// are exhausted.
func (t *transformer[I, D]) step() bool {
	a := t.first.Next()
	b := t.second.Next()

	switch {
	case a == nil && b == nil:
		return false
	case a == nil:
		if b.Kind == UnitInsert {
			t.firstPrime.Retain(t.factory.InsertLength(b.Insert))
		}

		t.secondPrime.Unit(*b)
		t.second.Consume()

		return true
	case b == nil:
		t.firstPrime.Unit(*a)

		if a.Kind == UnitInsert {
			t.secondPrime.Retain(t.factory.InsertLength(a.Insert))
		}

		t.first.Consume()

		return true
	}

	// Inserts survive in their own prime and are skipped over by the other.
	if a.Kind == UnitInsert {
		t.firstPrime.Insert(a.Insert)
		t.secondPrime.Retain(t.factory.InsertLength(a.Insert))
		t.first.Consume()

		return true
	}

	if b.Kind == UnitInsert {
		t.firstPrime.Retain(t.factory.InsertLength(b.Insert))
		t.secondPrime.Insert(b.Insert)
		t.second.Consume()

		return true
	}

	switch {
	case a.Kind == UnitRetain && b.Kind == UnitRetain:
		t.retainRetain(a.Retain, b.Retain)
	case a.Kind == UnitRetain && b.Kind == UnitDelete:
		t.retainDelete(a.Retain, b.Delete)
	case a.Kind == UnitDelete && b.Kind == UnitRetain:
		t.deleteRetain(a.Delete, b.Retain)
	case a.Kind == UnitDelete && b.Kind == UnitDelete:
		t.deleteDelete(a.Delete, b.Delete)
	default:
		assert(false, "unexpected unit pair in transform")
	}

	return true
}

func (t *transformer[I, D]) retainRetain(a, b PositiveInt) {
	switch {
	case a.Value() < b.Value():
		t.firstPrime.Retain(a)
		t.secondPrime.Retain(a)
		t.first.Consume()
		t.second.Hold(RetainUnit[I, D](b.sub(a)))
	case a.Value() == b.Value():
		t.firstPrime.Retain(a)
		t.secondPrime.Retain(a)
		t.first.Consume()
		t.second.Consume()
	default:
		t.firstPrime.Retain(b)
		t.secondPrime.Retain(b)
		t.first.Hold(RetainUnit[I, D](a.sub(b)))
		t.second.Consume()
	}
}

// retainDelete handles content kept by first and deleted by second: only
// secondPrime deletes it, firstPrime skips nothing because it is gone.
func (t *transformer[I, D]) retainDelete(retain PositiveInt, del D) {
	deleteLength := t.factory.DeleteLength(del)

	switch {
	case retain.Value() < deleteLength.Value():
		intersection, remaining := t.factory.SplitDelete(del, retain)
		t.secondPrime.Delete(intersection)
		t.first.Consume()
		t.second.Hold(DeleteUnit[I](remaining))
	case retain.Value() == deleteLength.Value():
		t.secondPrime.Delete(del)
		t.first.Consume()
		t.second.Consume()
	default:
		t.secondPrime.Delete(del)
		t.first.Hold(RetainUnit[I, D](retain.sub(deleteLength)))
		t.second.Consume()
	}
}

func (t *transformer[I, D]) deleteRetain(del D, retain PositiveInt) {
	deleteLength := t.factory.DeleteLength(del)

	switch {
	case retain.Value() < deleteLength.Value():
		intersection, remaining := t.factory.SplitDelete(del, retain)
		t.firstPrime.Delete(intersection)
		t.first.Hold(DeleteUnit[I](remaining))
		t.second.Consume()
	case retain.Value() == deleteLength.Value():
		t.firstPrime.Delete(del)
		t.first.Consume()
		t.second.Consume()
	default:
		t.firstPrime.Delete(del)
		t.first.Consume()
		t.second.Hold(RetainUnit[I, D](retain.sub(deleteLength)))
	}
}

// deleteDelete drops the overlap of two deletes: both sides already agree the
// content is gone.
func (t *transformer[I, D]) deleteDelete(a, b D) {
	aLength := t.factory.DeleteLength(a)
	bLength := t.factory.DeleteLength(b)

	switch {
	case aLength.Value() < bLength.Value():
		_, remaining := t.factory.SplitDelete(b, aLength)
		t.first.Consume()
		t.second.Hold(DeleteUnit[I](remaining))
	case aLength.Value() == bLength.Value():
		t.first.Consume()
		t.second.Consume()
	default:
		_, remaining := t.factory.SplitDelete(a, bLength)
		t.first.Hold(DeleteUnit[I](remaining))
		t.second.Consume()
	}
}
