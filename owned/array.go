package owned

import (
	"cmp"
	"fmt"
	"unsafe"

	"github.com/pavanmanishd/container/arena"
)

// ArrayDeleter reclaims a block owned by an Array.
type ArrayDeleter[T any] func([]T)

// DefaultArrayDeleter zeroes every element of the block.
func DefaultArrayDeleter[T any](block []T) {
	clear(block)
}

// Array is the sole owner of a block of elements. The zero value is an
// empty Array.
type Array[T any] struct {
	_   noCopy
	raw []T
	del ArrayDeleter[T]
}

// NewArray takes ownership of raw. The caller must not keep another owning
// reference to the block.
func NewArray[T any](raw []T) Array[T] {
	return Array[T]{raw: raw}
}

// NewArrayWithDeleter takes ownership of raw and releases it with del
// instead of DefaultArrayDeleter. A nil del selects DefaultArrayDeleter.
func NewArrayWithDeleter[T any](raw []T, del ArrayDeleter[T]) Array[T] {
	return Array[T]{raw: raw, del: del}
}

// MakeArray allocates a zeroed block of n elements and returns its owner.
// MakeArray(0) returns an empty Array.
func MakeArray[T any](n int) Array[T] {
	if n == 0 {
		return Array[T]{}
	}
	return Array[T]{raw: make([]T, n)}
}

// MakeArrayIn allocates a zeroed block of n elements from a and returns its
// owner. Destroying the owner returns the block to the arena. It panics if T
// contains pointers, strings, slices, maps or other references: arena chunks
// are not scanned by the garbage collector.
func MakeArrayIn[T any](a *arena.Arena, n int) Array[T] {
	return Array[T]{
		raw: arena.Block[T](a, n),
		del: func(block []T) { arena.Return(a, block) },
	}
}

// Move transfers ownership to the returned Array, leaving a empty.
func (a *Array[T]) Move() Array[T] {
	raw, del := a.raw, a.del
	a.raw, a.del = nil, nil
	return Array[T]{raw: raw, del: del}
}

// MoveFrom releases whatever a owns and takes over other's block and
// deleter. other is left empty. Moving an Array into itself does nothing.
func (a *Array[T]) MoveFrom(other *Array[T]) {
	if a == other {
		return
	}
	a.Destroy()
	a.raw, a.del = other.raw, other.del
	other.raw, other.del = nil, nil
}

// Release gives up ownership without running the deleter and returns the
// block. The caller becomes responsible for it.
func (a *Array[T]) Release() []T {
	raw := a.raw
	a.raw = nil
	return raw
}

// Reset takes ownership of raw and then releases the previously owned
// block. Reset(nil) empties a. Resetting to the block a already owns is a
// no-op.
func (a *Array[T]) Reset(raw []T) {
	old := a.raw
	if sameBlock(old, raw) {
		return
	}
	a.raw = raw
	if old != nil {
		a.deleter()(old)
	}
}

// Swap exchanges the owned blocks and deleters of a and other.
func (a *Array[T]) Swap(other *Array[T]) {
	a.raw, other.raw = other.raw, a.raw
	a.del, other.del = other.del, a.del
}

// Destroy runs the deleter on the owned block, if any, and empties a.
func (a *Array[T]) Destroy() {
	a.Reset(nil)
}

// At returns a pointer to element i. There is no check beyond the runtime's
// own bounds check, which panics when i is outside [0, Len()).
func (a *Array[T]) At(i int) *T {
	return &a.raw[i]
}

// Get returns the owned block without giving up ownership, or nil.
func (a *Array[T]) Get() []T {
	return a.raw
}

// Len returns the number of elements in the owned block.
func (a *Array[T]) Len() int {
	return len(a.raw)
}

// Deleter returns the function that will reclaim the owned block.
func (a *Array[T]) Deleter() ArrayDeleter[T] {
	return a.deleter()
}

// Valid reports whether a owns a block.
func (a *Array[T]) Valid() bool {
	return a.raw != nil
}

// Equal reports whether a and other own blocks starting at the same address.
func (a *Array[T]) Equal(other *Array[T]) bool {
	return a.addr() == other.addr()
}

// Compare orders handles by the start address of their blocks; empty
// handles sort first.
func (a *Array[T]) Compare(other *Array[T]) int {
	return cmp.Compare(a.addr(), other.addr())
}

func (a *Array[T]) String() string {
	return fmt.Sprintf("owned.Array(len=%d)", len(a.raw))
}

func (a *Array[T]) addr() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.raw)))
}

func (a *Array[T]) deleter() ArrayDeleter[T] {
	if a.del == nil {
		return DefaultArrayDeleter[T]
	}
	return a.del
}

// sameBlock reports whether x and y are the same block, nil included.
func sameBlock[T any](x, y []T) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	return unsafe.SliceData(x) == unsafe.SliceData(y) && len(x) == len(y)
}
