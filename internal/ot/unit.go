package ot

// StepKind distinguishes the two kinds of Step.
type StepKind int

const (
	StepRetain StepKind = iota
	StepEdit
)

// Step is one entry of the flattened array form of an Operation: either a
// retain or an edit. Apply consumes operations in this form.
type Step[I, D any] struct {
	Kind   StepKind
	Retain PositiveInt
	Edit   Edit[I, D]
}

// RetainStep creates a retain step.
func RetainStep[I, D any](count PositiveInt) Step[I, D] {
	return Step[I, D]{Kind: StepRetain, Retain: count}
}

// EditStep creates an edit step.
func EditStep[I, D any](e Edit[I, D]) Step[I, D] {
	return Step[I, D]{Kind: StepEdit, Edit: e}
}

// StepsPrevLength sums retains and delete lengths.
func StepsPrevLength[I, D any](steps []Step[I, D], f Factory[I, D]) int {
	n := 0

	for _, s := range steps {
		if s.Kind == StepRetain {
			n += s.Retain.Value()

			continue
		}

		n += s.Edit.PrevLength(f)
	}

	return n
}

// UnitKind identifies a Unit.
type UnitKind int

const (
	UnitRetain UnitKind = iota
	UnitInsert
	UnitDelete
)

func (k UnitKind) String() string {
	switch k {
	case UnitRetain:
		return "retain"
	case UnitInsert:
		return "insert"
	case UnitDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Unit is the finest-grained view of an operation: retain, insert or delete.
// Compose and Transform walk operations unit by unit.
type Unit[I, D any] struct {
	Kind   UnitKind
	Retain PositiveInt
	Insert I
	Delete D
}

// RetainUnit creates a retain unit.
func RetainUnit[I, D any](count PositiveInt) Unit[I, D] {
	return Unit[I, D]{Kind: UnitRetain, Retain: count}
}

// InsertUnit creates an insert unit.
func InsertUnit[I, D any](insert I) Unit[I, D] {
	return Unit[I, D]{Kind: UnitInsert, Insert: insert}
}

// DeleteUnit creates a delete unit.
func DeleteUnit[I, D any](del D) Unit[I, D] {
	return Unit[I, D]{Kind: UnitDelete, Delete: del}
}

// UnitsPrevLength sums retains and delete lengths.
func UnitsPrevLength[I, D any](units []Unit[I, D], f Factory[I, D]) int {
	n := 0

	for _, u := range units {
		switch u.Kind {
		case UnitRetain:
			n += u.Retain.Value()
		case UnitDelete:
			n += f.DeleteLength(u.Delete).Value()
		case UnitInsert:
		}
	}

	return n
}

// UnitsNextLength sums retains and insert lengths.
func UnitsNextLength[I, D any](units []Unit[I, D], f Factory[I, D]) int {
	n := 0

	for _, u := range units {
		switch u.Kind {
		case UnitRetain:
			n += u.Retain.Value()
		case UnitInsert:
			n += f.InsertLength(u.Insert).Value()
		case UnitDelete:
		}
	}

	return n
}
