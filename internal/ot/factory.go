package ot

// Factory supplies the payload behaviour the builder needs.
type Factory[I, D any] interface {
	InsertLength(insert I) PositiveInt
	DeleteLength(del D) PositiveInt
	ConcatInsert(first, second I) I
	ConcatDelete(first, second D) D
}

// SplitFactory extends Factory with splitting, needed by Compose and Transform.
//
// SplitInsert("foo", 1) returns ("f", "oo"); for a count payload
// SplitDelete(5, 2) returns (2, 3). The index is always strictly inside the payload.
type SplitFactory[I, D any] interface {
	Factory[I, D]
	SplitInsert(insert I, index PositiveInt) (I, I)
	SplitDelete(del D, index PositiveInt) (D, D)
}

// CountFactory is the numeric specialization: both payloads are plain counts.
type CountFactory struct{}

var _ SplitFactory[PositiveInt, PositiveInt] = CountFactory{}

func (CountFactory) InsertLength(insert PositiveInt) PositiveInt { return insert }

func (CountFactory) DeleteLength(del PositiveInt) PositiveInt { return del }

func (CountFactory) ConcatInsert(first, second PositiveInt) PositiveInt { return first.Add(second) }

func (CountFactory) ConcatDelete(first, second PositiveInt) PositiveInt { return first.Add(second) }

func (CountFactory) SplitInsert(insert, index PositiveInt) (PositiveInt, PositiveInt) {
	return SplitCount(insert, index)
}

func (CountFactory) SplitDelete(del, index PositiveInt) (PositiveInt, PositiveInt) {
	return SplitCount(del, index)
}

// SplitCount splits a count into index and count-index.
func SplitCount(count, index PositiveInt) (PositiveInt, PositiveInt) {
	return index, count.sub(index)
}
