package ot

// unitQueue hands out units one at a time. A unit that was only partly
// consumed is put back with Hold and returned by the next Next call.
type unitQueue[I, D any] struct {
	units []Unit[I, D]
	held  *Unit[I, D]
}

func newUnitQueue[I, D any](units []Unit[I, D]) *unitQueue[I, D] {
	return &unitQueue[I, D]{units: units}
}

// Next returns the current unit, pulling a new one when nothing is held.
// It returns nil once the queue is exhausted.
func (q *unitQueue[I, D]) Next() *Unit[I, D] {
	if q.held == nil && len(q.units) > 0 {
		u := q.units[0]
		q.units = q.units[1:]
		q.held = &u
	}

	return q.held
}

// Consume drops the current unit.
func (q *unitQueue[I, D]) Consume() {
	q.held = nil
}

// Hold replaces the current unit with the unconsumed remainder u.
func (q *unitQueue[I, D]) Hold(u Unit[I, D]) {
	q.held = &u
}

// Compose combines first (state0 to state1) and second (state1 to state2)
// into a single operation from state0 to state2.
func Compose[I, D any](first, second []Unit[I, D], f SplitFactory[I, D]) (Operation[I, D], error) {
	nextLengthOfFirst := UnitsNextLength[I, D](first, f)
	prevLengthOfSecond := UnitsPrevLength[I, D](second, f)

	if nextLengthOfFirst != prevLengthOfSecond {
		return Operation[I, D]{}, newLengthMismatch("compose", nextLengthOfFirst, prevLengthOfSecond)
	}

	firstQueue := newUnitQueue(first)
	secondQueue := newUnitQueue(second)
	builder := NewBuilder[I, D](f, nil)

	for {
		a := firstQueue.Next()
		b := secondQueue.Next()

		switch {
		case a == nil && b == nil:
			return builder.Build(), nil
		case a == nil:
			builder.Unit(*b)
			secondQueue.Consume()

			continue
		case b == nil:
			builder.Unit(*a)
			firstQueue.Consume()

			continue
		}

		// A delete in first is untouched by anything second does.
		if a.Kind == UnitDelete {
			builder.Delete(a.Delete)
			firstQueue.Consume()

			continue
		}

		// An insert in second is new content, untouched by first.
		if b.Kind == UnitInsert {
			builder.Insert(b.Insert)
			secondQueue.Consume()

			continue
		}

		switch {
		case a.Kind == UnitRetain && b.Kind == UnitRetain:
			composeRetainRetain(builder, firstQueue, secondQueue, a.Retain, b.Retain)
		case a.Kind == UnitRetain && b.Kind == UnitDelete:
			composeRetainDelete(builder, firstQueue, secondQueue, a.Retain, b.Delete, f)
		case a.Kind == UnitInsert && b.Kind == UnitRetain:
			composeInsertRetain(builder, firstQueue, secondQueue, a.Insert, b.Retain, f)
		case a.Kind == UnitInsert && b.Kind == UnitDelete:
			composeInsertDelete(firstQueue, secondQueue, a.Insert, b.Delete, f)
		default:
			assert(false, "unexpected unit pair in compose")
		}
	}
}

func composeRetainRetain[I, D any](
	builder *Builder[I, D], firstQueue, secondQueue *unitQueue[I, D], a, b PositiveInt,
) {
	switch {
	case a.Value() < b.Value():
		builder.Retain(a)
		firstQueue.Consume()
		secondQueue.Hold(RetainUnit[I, D](b.sub(a)))
	case a.Value() == b.Value():
		builder.Retain(a)
		firstQueue.Consume()
		secondQueue.Consume()
	default:
		builder.Retain(b)
		firstQueue.Hold(RetainUnit[I, D](a.sub(b)))
		secondQueue.Consume()
	}
}

func composeRetainDelete[I, D any](
	builder *Builder[I, D], firstQueue, secondQueue *unitQueue[I, D], retain PositiveInt, del D, f SplitFactory[I, D],
) {
	deleteLength := f.DeleteLength(del)

	switch {
	case retain.Value() < deleteLength.Value():
		intersection, remaining := f.SplitDelete(del, retain)
		builder.Delete(intersection)
		firstQueue.Consume()
		secondQueue.Hold(DeleteUnit[I](remaining))
	case retain.Value() == deleteLength.Value():
		builder.Delete(del)
		firstQueue.Consume()
		secondQueue.Consume()
	default:
		builder.Delete(del)
		firstQueue.Hold(RetainUnit[I, D](retain.sub(deleteLength)))
		secondQueue.Consume()
	}
}

func composeInsertRetain[I, D any](
	builder *Builder[I, D], firstQueue, secondQueue *unitQueue[I, D], insert I, retain PositiveInt, f SplitFactory[I, D],
) {
	insertLength := f.InsertLength(insert)

	switch {
	case insertLength.Value() < retain.Value():
		builder.Insert(insert)
		firstQueue.Consume()
		secondQueue.Hold(RetainUnit[I, D](retain.sub(insertLength)))
	case insertLength.Value() == retain.Value():
		builder.Insert(insert)
		firstQueue.Consume()
		secondQueue.Consume()
	default:
		intersection, remaining := f.SplitInsert(insert, retain)
		builder.Insert(intersection)
		firstQueue.Hold(InsertUnit[I, D](remaining))
		secondQueue.Consume()
	}
}

// composeInsertDelete cancels content inserted by first and deleted by second;
// nothing is emitted for the overlap.
func composeInsertDelete[I, D any](
	firstQueue, secondQueue *unitQueue[I, D], insert I, del D, f SplitFactory[I, D],
) {
	insertLength := f.InsertLength(insert)
	deleteLength := f.DeleteLength(del)

	switch {
	case insertLength.Value() < deleteLength.Value():
		_, remaining := f.SplitDelete(del, insertLength)
		firstQueue.Consume()
		secondQueue.Hold(DeleteUnit[I](remaining))
	case insertLength.Value() == deleteLength.Value():
		firstQueue.Consume()
		secondQueue.Consume()
	default:
		_, remaining := f.SplitInsert(insert, deleteLength)
		firstQueue.Hold(InsertUnit[I, D](remaining))
		secondQueue.Consume()
	}
}
