package vector

import "iter"

// Iterator is a position in a vector, from Begin (the first element) to End
// (one past the last). It is stored as an offset, so after a reallocation it
// still addresses the same index; callers must nonetheless treat it as
// invalidated by any capacity change. Invalidation is not detected.
type Iterator[T any] struct {
	v   *Vector[T]
	pos int
}

// ReverseIterator is a position in a vector walked back to front, from
// RBegin (the last element) to REnd (one before the first). It is
// invalidated under the same rules as Iterator.
type ReverseIterator[T any] struct {
	v   *Vector[T]
	pos int
}

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v: v, pos: 0} }

// End returns an iterator one past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v: v, pos: v.length} }

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{v: v, pos: v.length - 1}
}

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{v: v, pos: -1} }

// Next returns the iterator one element toward the back.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one element toward the front.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator n elements toward the back; n may be negative.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{v: it.v, pos: it.pos + n} }

// Sub returns the iterator n elements toward the front.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Index returns the element index it refers to; End has index Len().
func (it Iterator[T]) Index() int { return it.pos }

// Equal reports whether it and o refer to the same position of the same
// vector.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.v == o.v && it.pos == o.pos }

// Less reports whether it comes before o.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.pos < o.pos }

// Distance returns the number of steps from it to to.
func (it Iterator[T]) Distance(to Iterator[T]) int { return to.pos - it.pos }

// Ptr returns a pointer to the element at it.
func (it Iterator[T]) Ptr() *T { return it.v.storage.At(it.pos) }

// Value returns the element at it.
func (it Iterator[T]) Value() T { return *it.Ptr() }

// Set overwrites the element at it.
func (it Iterator[T]) Set(value T) { *it.Ptr() = value }

// Next returns the iterator one element toward the front of the vector.
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return it.Add(1) }

// Prev returns the iterator one element toward the back of the vector.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return it.Add(-1) }

// Add returns the iterator n steps further in reverse order, that is n
// elements toward the front of the vector.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{v: it.v, pos: it.pos - n}
}

// Sub returns the iterator n steps back in reverse order.
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return it.Add(-n) }

// Index returns the element index it refers to; REnd has index -1.
func (it ReverseIterator[T]) Index() int { return it.pos }

// Equal reports whether it and o refer to the same position of the same
// vector.
func (it ReverseIterator[T]) Equal(o ReverseIterator[T]) bool {
	return it.v == o.v && it.pos == o.pos
}

// Less reports whether it comes before o in reverse order.
func (it ReverseIterator[T]) Less(o ReverseIterator[T]) bool { return it.pos > o.pos }

// Distance returns the number of steps from it to to in reverse order.
func (it ReverseIterator[T]) Distance(to ReverseIterator[T]) int { return it.pos - to.pos }

// Base returns the forward iterator one past the element at it, so
// v.RBegin().Base() equals v.End().
func (it ReverseIterator[T]) Base() Iterator[T] { return Iterator[T]{v: it.v, pos: it.pos + 1} }

// Ptr returns a pointer to the element at it.
func (it ReverseIterator[T]) Ptr() *T { return it.v.storage.At(it.pos) }

// Value returns the element at it.
func (it ReverseIterator[T]) Value() T { return *it.Ptr() }

// Set overwrites the element at it.
func (it ReverseIterator[T]) Set(value T) { *it.Ptr() = value }

// All returns a sequence of index/element pairs from front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, *v.storage.At(i)) {
				return
			}
		}
	}
}

// Values returns a sequence of the elements from front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(*v.storage.At(i)) {
				return
			}
		}
	}
}

// Backward returns a sequence of index/element pairs from back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.length - 1; i >= 0; i-- {
			if !yield(i, *v.storage.At(i)) {
				return
			}
		}
	}
}
