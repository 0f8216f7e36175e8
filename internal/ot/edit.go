package ot

// EditKind identifies which payloads an Edit carries.
type EditKind int

const (
	EditInsert EditKind = iota
	EditDelete
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditDelete:
		return "delete"
	case EditReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Edit is a change at a single position: an insertion, a deletion, or a
// deletion immediately followed by an insertion (replace).
// Only the payloads implied by Kind are meaningful.
type Edit[I, D any] struct {
	Kind   EditKind
	Insert I
	Delete D
}

// InsertEdit creates a pure insertion.
func InsertEdit[I, D any](insert I) Edit[I, D] {
	return Edit[I, D]{Kind: EditInsert, Insert: insert}
}

// DeleteEdit creates a pure deletion.
func DeleteEdit[I, D any](del D) Edit[I, D] {
	return Edit[I, D]{Kind: EditDelete, Delete: del}
}

// ReplaceEdit creates a deletion followed by an insertion at the same position.
func ReplaceEdit[I, D any](insert I, del D) Edit[I, D] {
	return Edit[I, D]{Kind: EditReplace, Insert: insert, Delete: del}
}

// HasInsert returns true if the edit inserts content.
func (e Edit[I, D]) HasInsert() bool {
	return e.Kind != EditDelete
}

// HasDelete returns true if the edit deletes content.
func (e Edit[I, D]) HasDelete() bool {
	return e.Kind != EditInsert
}

// PrevLength is the number of elements the edit consumes.
func (e Edit[I, D]) PrevLength(f Factory[I, D]) int {
	if !e.HasDelete() {
		return 0
	}

	return f.DeleteLength(e.Delete).Value()
}

// NextLength is the number of elements the edit produces.
func (e Edit[I, D]) NextLength(f Factory[I, D]) int {
	if !e.HasInsert() {
		return 0
	}

	return f.InsertLength(e.Insert).Value()
}

// MapEdit converts both payloads, keeping the kind.
func MapEdit[I1, D1, I2, D2 any](e Edit[I1, D1], mapInsert func(I1) I2, mapDelete func(D1) D2) Edit[I2, D2] {
	switch e.Kind {
	case EditInsert:
		return InsertEdit[I2, D2](mapInsert(e.Insert))
	case EditDelete:
		return DeleteEdit[I2](mapDelete(e.Delete))
	default:
		return ReplaceEdit(mapInsert(e.Insert), mapDelete(e.Delete))
	}
}

// InvertEdit swaps the roles of the payloads: inserts become deletes and vice versa.
func InvertEdit[I, D any](e Edit[I, D]) Edit[D, I] {
	switch e.Kind {
	case EditInsert:
		return DeleteEdit[D](e.Insert)
	case EditDelete:
		return InsertEdit[D, I](e.Delete)
	default:
		return ReplaceEdit(e.Delete, e.Insert)
	}
}

// MergeEdit combines a with an edit b that directly follows it at the same
// position. A delete followed by an insert becomes a replace; payloads of the
// same kind are concatenated in order.
func MergeEdit[I, D any](a, b Edit[I, D], f Factory[I, D]) Edit[I, D] {
	merged := a

	if b.HasDelete() {
		merged = mergeDelete(merged, b.Delete, f)
	}

	if b.HasInsert() {
		merged = mergeInsert(merged, b.Insert, f)
	}

	return merged
}

func mergeInsert[I, D any](e Edit[I, D], insert I, f Factory[I, D]) Edit[I, D] {
	switch e.Kind {
	case EditInsert:
		return InsertEdit[I, D](f.ConcatInsert(e.Insert, insert))
	case EditDelete:
		return ReplaceEdit(insert, e.Delete)
	default:
		return ReplaceEdit(f.ConcatInsert(e.Insert, insert), e.Delete)
	}
}

func mergeDelete[I, D any](e Edit[I, D], del D, f Factory[I, D]) Edit[I, D] {
	switch e.Kind {
	case EditInsert:
		return ReplaceEdit(e.Insert, del)
	case EditDelete:
		return DeleteEdit[I](f.ConcatDelete(e.Delete, del))
	default:
		return ReplaceEdit(e.Insert, f.ConcatDelete(e.Delete, del))
	}
}
