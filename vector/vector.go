package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/pavanmanishd/container/owned"
)

// Vector is a growable sequence of T stored contiguously. The zero value is
// an empty vector ready to use.
type Vector[T any] struct {
	length   int
	capacity int
	storage  owned.Array[T]

	allocations int
}

// New returns an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// Of returns a vector holding elems, with capacity equal to len(elems).
func Of[T any](elems ...T) *Vector[T] {
	v := &Vector[T]{}
	v.assign(elems)
	return v
}

// Filled returns a vector of n copies of value.
func Filled[T any](n int, value T) *Vector[T] {
	v := WithLen[T](n)
	for i := 0; i < n; i++ {
		*v.storage.At(i) = value
	}
	return v
}

// WithLen returns a vector of n zero values.
func WithLen[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative length")
	}
	v := &Vector[T]{}
	if n > 0 {
		v.realloc(n)
	}
	v.length = n
	return v
}

// Clone returns a deep copy of v with the same length and capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.copyFrom(v)
	return c
}

// Move returns a vector that owns v's storage. v is left empty with no
// capacity. No element is copied.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.MoveFrom(v)
	return m
}

// CopyFrom replaces the contents of v with a deep copy of src and returns v.
// v's previous storage is released first. Copying a vector onto itself does
// nothing.
func (v *Vector[T]) CopyFrom(src *Vector[T]) *Vector[T] {
	if v == src {
		return v
	}
	v.Destroy()
	v.copyFrom(src)
	return v
}

// MoveFrom releases v's storage, takes over src's storage and returns v.
// src is left empty with no capacity. Moving a vector onto itself does
// nothing.
func (v *Vector[T]) MoveFrom(src *Vector[T]) *Vector[T] {
	if v == src {
		return v
	}
	v.storage.MoveFrom(&src.storage)
	v.length, v.capacity = src.length, src.capacity
	v.allocations = src.allocations
	src.length, src.capacity, src.allocations = 0, 0, 0
	return v
}

// Destroy releases the storage. v is left empty with no capacity and may be
// reused.
func (v *Vector[T]) Destroy() {
	v.storage.Destroy()
	v.length, v.capacity, v.allocations = 0, 0, 0
}

// At returns element i, or ErrOutOfRange when i is outside [0, Len()).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, v.length)
	}
	return *v.storage.At(i), nil
}

// Index returns a pointer to slot i without checking it against Len().
// Slots in [Len(), Cap()) hold zero values.
func (v *Vector[T]) Index(i int) *T {
	return v.storage.At(i)
}

// Front returns a pointer to the first element. v must not be empty.
func (v *Vector[T]) Front() *T {
	return v.storage.At(0)
}

// Back returns a pointer to the last element. v must not be empty.
func (v *Vector[T]) Back() *T {
	return v.storage.At(v.length - 1)
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.length }

// Cap returns the number of elements v can hold before it reallocates.
func (v *Vector[T]) Cap() int { return v.capacity }

// Empty reports whether v has no elements.
func (v *Vector[T]) Empty() bool { return v.length == 0 }

// Reserve grows the capacity to exactly n if n exceeds the current capacity.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.realloc(n)
	}
}

// ShrinkToFit lowers the capacity to the current length. The backing block
// is kept; the next growth reallocates from the lowered capacity.
func (v *Vector[T]) ShrinkToFit() {
	v.capacity = v.length
}

// Clear removes every element and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.length = 0
}

// Insert places value before pos and returns an iterator to it.
func (v *Vector[T]) Insert(pos Iterator[T], value T) Iterator[T] {
	i := pos.pos
	v.openSlot(i)
	*v.storage.At(i) = value
	return Iterator[T]{v: v, pos: i}
}

// Emplace opens a zeroed slot before pos, lets build construct the element
// in place and returns an iterator to it.
func (v *Vector[T]) Emplace(pos Iterator[T], build func(*T)) Iterator[T] {
	i := pos.pos
	v.openSlot(i)
	if build != nil {
		build(v.storage.At(i))
	}
	return Iterator[T]{v: v, pos: i}
}

// Erase removes the element at pos and returns an iterator to the element
// that takes its place.
func (v *Vector[T]) Erase(pos Iterator[T]) Iterator[T] {
	return v.EraseRange(pos, pos.Next())
}

// EraseRange removes the elements in [first, last) and returns an iterator
// to the element that takes first's place.
func (v *Vector[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	i, j := first.pos, last.pos
	if i == j {
		return first
	}
	s := v.live()
	n := copy(s[i:], s[j:])
	clear(s[i+n:])
	v.length -= j - i
	return Iterator[T]{v: v, pos: i}
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) {
	v.growIfFull()
	*v.storage.At(v.length) = value
	v.length++
}

// EmplaceBack appends a zeroed element, lets build construct it in place
// and returns a pointer to it.
func (v *Vector[T]) EmplaceBack(build func(*T)) *T {
	v.growIfFull()
	p := v.storage.At(v.length)
	v.length++
	if build != nil {
		build(p)
	}
	return p
}

// PopBack removes the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	p := v.storage.At(v.length - 1)
	var zero T
	*p = zero
	v.length--
}

// Resize changes the length to n. Growing reallocates to exactly n unless
// the capacity is already n; new elements are zero values. Shrinking drops
// the trailing elements and keeps the capacity.
func (v *Vector[T]) Resize(n int) {
	switch {
	case n > v.length:
		if n != v.capacity {
			v.realloc(n)
		}
		clear(v.storage.Get()[v.length:n])
		v.length = n
	case n < v.length:
		clear(v.storage.Get()[n:v.length])
		v.length = n
	}
}

// live returns the live elements. The slice aliases the storage and is only
// valid until the next reallocation.
func (v *Vector[T]) live() []T {
	return v.storage.Get()[:v.length]
}

// openSlot shifts [i, Len()) one slot toward the back and leaves slot i
// zeroed, growing first if v is full.
func (v *Vector[T]) openSlot(i int) {
	v.growIfFull()
	s := v.storage.Get()[:v.length+1]
	copy(s[i+1:], s[i:v.length])
	var zero T
	s[i] = zero
	v.length++
}

func (v *Vector[T]) growIfFull() {
	if v.length == v.capacity {
		v.realloc(max(1, 2*v.capacity))
	}
}

// realloc moves the live elements, in order, into a new block of n slots.
// The old block is released once the new one owns the elements.
func (v *Vector[T]) realloc(n int) {
	block := owned.MakeArray[T](n)
	copy(block.Get(), v.live())
	v.storage.MoveFrom(&block)
	v.capacity = n
	v.allocations++
}

// assign replaces the contents of v with a copy of elems, sized exactly.
func (v *Vector[T]) assign(elems []T) {
	v.Destroy()
	if len(elems) > 0 {
		v.realloc(len(elems))
		copy(v.storage.Get(), elems)
	}
	v.length = len(elems)
}

// copyFrom fills an empty v with src's live elements in a block of src's
// capacity.
func (v *Vector[T]) copyFrom(src *Vector[T]) {
	if src.capacity > 0 {
		v.realloc(src.capacity)
		copy(v.storage.Get(), src.live())
	}
	v.length = src.length
}
