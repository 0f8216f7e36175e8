package ot

// Element is a body entry of an Operation: a retain followed by an edit.
// Two edits in a canonical operation are always separated by at least one
// retained element, otherwise the builder would have merged them.
type Element[I, D any] struct {
	FirstRetain PositiveInt
	SecondEdit  Edit[I, D]
}

// Operation is the canonical, merged representation of an edit over a sequence.
// It is immutable once built; use a Builder to create one.
type Operation[I, D any] struct {
	HeadEdit   *Edit[I, D]
	Body       []Element[I, D]
	TailRetain *PositiveInt
}

// IsNoop returns true if the operation changes nothing.
func (o Operation[I, D]) IsNoop() bool {
	return o.HeadEdit == nil && len(o.Body) == 0
}

// PrevLength is the length of the state the operation applies to.
func (o Operation[I, D]) PrevLength(f Factory[I, D]) int {
	n := o.retained()

	if o.HeadEdit != nil {
		n += o.HeadEdit.PrevLength(f)
	}

	for _, e := range o.Body {
		n += e.SecondEdit.PrevLength(f)
	}

	return n
}

// NextLength is the length of the state the operation produces.
func (o Operation[I, D]) NextLength(f Factory[I, D]) int {
	n := o.retained()

	if o.HeadEdit != nil {
		n += o.HeadEdit.NextLength(f)
	}

	for _, e := range o.Body {
		n += e.SecondEdit.NextLength(f)
	}

	return n
}

func (o Operation[I, D]) retained() int {
	n := 0

	for _, e := range o.Body {
		n += e.FirstRetain.Value()
	}

	if o.TailRetain != nil {
		n += o.TailRetain.Value()
	}

	return n
}

// MapOperation converts every payload of source, keeping its structure.
func MapOperation[I1, D1, I2, D2 any](
	source Operation[I1, D1], mapInsert func(I1) I2, mapDelete func(D1) D2,
) Operation[I2, D2] {
	result := Operation[I2, D2]{
		Body:       make([]Element[I2, D2], 0, len(source.Body)),
		TailRetain: source.TailRetain,
	}

	if source.HeadEdit != nil {
		head := MapEdit(*source.HeadEdit, mapInsert, mapDelete)
		result.HeadEdit = &head
	}

	for _, e := range source.Body {
		result.Body = append(result.Body, Element[I2, D2]{
			FirstRetain: e.FirstRetain,
			SecondEdit:  MapEdit(e.SecondEdit, mapInsert, mapDelete),
		})
	}

	return result
}

// Invert swaps inserts and deletes in every edit. Applying the inverted
// operation to the next state of source yields its previous state.
func Invert[I, D any](source Operation[I, D]) Operation[D, I] {
	result := Operation[D, I]{
		Body:       make([]Element[D, I], 0, len(source.Body)),
		TailRetain: source.TailRetain,
	}

	if source.HeadEdit != nil {
		head := InvertEdit(*source.HeadEdit)
		result.HeadEdit = &head
	}

	for _, e := range source.Body {
		result.Body = append(result.Body, Element[D, I]{
			FirstRetain: e.FirstRetain,
			SecondEdit:  InvertEdit(e.SecondEdit),
		})
	}

	return result
}

// Steps returns o in flattened retain/edit form.
func (o Operation[I, D]) Steps() []Step[I, D] {
	return NewBuilder[I, D](nil, &o).Steps()
}

// Units returns o in retain/insert/delete form.
func (o Operation[I, D]) Units() []Unit[I, D] {
	return NewBuilder[I, D](nil, &o).Units()
}
