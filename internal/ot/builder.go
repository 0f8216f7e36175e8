package ot

// Builder accumulates retains and edits into a canonical Operation, merging
// adjacent edits as they arrive. A Builder is not safe for concurrent use.
type Builder[I, D any] struct {
	factory    Factory[I, D]
	headEdit   *Edit[I, D]
	body       []Element[I, D]
	tailRetain *PositiveInt
}

// NewBuilder creates a builder. If source is not nil the builder starts from it.
func NewBuilder[I, D any](f Factory[I, D], source *Operation[I, D]) *Builder[I, D] {
	b := &Builder[I, D]{factory: f}
	if source == nil {
		return b
	}

	if source.HeadEdit != nil {
		head := *source.HeadEdit
		b.headEdit = &head
	}

	b.body = append(b.body, source.Body...)

	if source.TailRetain != nil {
		tail := *source.TailRetain
		b.tailRetain = &tail
	}

	return b
}

// Retain skips count elements.
func (b *Builder[I, D]) Retain(count PositiveInt) {
	if b.tailRetain == nil {
		b.tailRetain = &count

		return
	}

	sum := b.tailRetain.Add(count)
	b.tailRetain = &sum
}

// Edit appends an edit at the current position.
func (b *Builder[I, D]) Edit(e Edit[I, D]) {
	if b.tailRetain != nil {
		b.body = append(b.body, Element[I, D]{
			FirstRetain: *b.tailRetain,
			SecondEdit:  e,
		})
		b.tailRetain = nil

		return
	}

	if len(b.body) != 0 {
		last := &b.body[len(b.body)-1]
		last.SecondEdit = MergeEdit(last.SecondEdit, e, b.factory)

		return
	}

	if b.headEdit == nil {
		b.headEdit = &e

		return
	}

	merged := MergeEdit(*b.headEdit, e, b.factory)
	b.headEdit = &merged
}

// Insert appends an insertion.
func (b *Builder[I, D]) Insert(insert I) {
	b.Edit(InsertEdit[I, D](insert))
}

// Delete appends a deletion.
func (b *Builder[I, D]) Delete(del D) {
	b.Edit(DeleteEdit[I](del))
}

// Step appends a flattened step.
func (b *Builder[I, D]) Step(s Step[I, D]) {
	if s.Kind == StepRetain {
		b.Retain(s.Retain)

		return
	}

	b.Edit(s.Edit)
}

// Unit appends a single unit.
func (b *Builder[I, D]) Unit(u Unit[I, D]) {
	switch u.Kind {
	case UnitRetain:
		b.Retain(u.Retain)
	case UnitInsert:
		b.Insert(u.Insert)
	case UnitDelete:
		b.Delete(u.Delete)
	}
}

// Build returns a snapshot of the accumulated operation. The builder may keep
// being used afterwards without affecting the result.
func (b *Builder[I, D]) Build() Operation[I, D] {
	op := Operation[I, D]{
		Body: make([]Element[I, D], len(b.body)),
	}
	copy(op.Body, b.body)

	if b.headEdit != nil {
		head := *b.headEdit
		op.HeadEdit = &head
	}

	if b.tailRetain != nil {
		tail := *b.tailRetain
		op.TailRetain = &tail
	}

	return op
}

// Steps expands the operation into retain and edit steps: the head edit,
// then each body retain and edit, then the tail retain.
func (b *Builder[I, D]) Steps() []Step[I, D] {
	steps := make([]Step[I, D], 0, 2*len(b.body)+2)

	if b.headEdit != nil {
		steps = append(steps, EditStep(*b.headEdit))
	}

	for _, e := range b.body {
		steps = append(steps, RetainStep[I, D](e.FirstRetain), EditStep(e.SecondEdit))
	}

	if b.tailRetain != nil {
		steps = append(steps, RetainStep[I, D](*b.tailRetain))
	}

	return steps
}

// Units expands the operation further, emitting the delete of an edit before
// its insert.
func (b *Builder[I, D]) Units() []Unit[I, D] {
	steps := b.Steps()
	units := make([]Unit[I, D], 0, len(steps))

	for _, s := range steps {
		if s.Kind == StepRetain {
			units = append(units, RetainUnit[I, D](s.Retain))

			continue
		}

		if s.Edit.HasDelete() {
			units = append(units, DeleteUnit[I](s.Edit.Delete))
		}

		if s.Edit.HasInsert() {
			units = append(units, InsertUnit[I, D](s.Edit.Insert))
		}
	}

	return units
}
