package text

import "github.com/serroba/textot/internal/ot"

// UpFactory drives operations with text inserts and counted deletes.
type UpFactory struct{}

// DownFactory drives operations with counted inserts and text deletes.
type DownFactory struct{}

// TwoWayFactory drives operations with text on both sides.
type TwoWayFactory struct{}

var (
	_ ot.SplitFactory[NonEmptyString, ot.PositiveInt] = UpFactory{}
	_ ot.SplitFactory[ot.PositiveInt, NonEmptyString] = DownFactory{}
	_ ot.SplitFactory[NonEmptyString, NonEmptyString] = TwoWayFactory{}
)

func (UpFactory) InsertLength(insert NonEmptyString) ot.PositiveInt { return insert.Length() }

func (UpFactory) DeleteLength(del ot.PositiveInt) ot.PositiveInt { return del }

func (UpFactory) ConcatInsert(first, second NonEmptyString) NonEmptyString {
	return first.Concat(second)
}

func (UpFactory) ConcatDelete(first, second ot.PositiveInt) ot.PositiveInt { return first.Add(second) }

func (UpFactory) SplitInsert(insert NonEmptyString, index ot.PositiveInt) (NonEmptyString, NonEmptyString) {
	return insert.Split(index)
}

func (UpFactory) SplitDelete(del, index ot.PositiveInt) (ot.PositiveInt, ot.PositiveInt) {
	return ot.SplitCount(del, index)
}

func (DownFactory) InsertLength(insert ot.PositiveInt) ot.PositiveInt { return insert }

func (DownFactory) DeleteLength(del NonEmptyString) ot.PositiveInt { return del.Length() }

func (DownFactory) ConcatInsert(first, second ot.PositiveInt) ot.PositiveInt {
	return first.Add(second)
}

func (DownFactory) ConcatDelete(first, second NonEmptyString) NonEmptyString {
	return first.Concat(second)
}

func (DownFactory) SplitInsert(insert, index ot.PositiveInt) (ot.PositiveInt, ot.PositiveInt) {
	return ot.SplitCount(insert, index)
}

func (DownFactory) SplitDelete(del NonEmptyString, index ot.PositiveInt) (NonEmptyString, NonEmptyString) {
	return del.Split(index)
}

func (TwoWayFactory) InsertLength(insert NonEmptyString) ot.PositiveInt { return insert.Length() }

func (TwoWayFactory) DeleteLength(del NonEmptyString) ot.PositiveInt { return del.Length() }

func (TwoWayFactory) ConcatInsert(first, second NonEmptyString) NonEmptyString {
	return first.Concat(second)
}

func (TwoWayFactory) ConcatDelete(first, second NonEmptyString) NonEmptyString {
	return first.Concat(second)
}

func (TwoWayFactory) SplitInsert(insert NonEmptyString, index ot.PositiveInt) (NonEmptyString, NonEmptyString) {
	return insert.Split(index)
}

func (TwoWayFactory) SplitDelete(del NonEmptyString, index ot.PositiveInt) (NonEmptyString, NonEmptyString) {
	return del.Split(index)
}
