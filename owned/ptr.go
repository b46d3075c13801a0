package owned

import (
	"cmp"
	"fmt"
	"unsafe"
)

// Deleter reclaims a value owned by a Ptr.
type Deleter[T any] func(*T)

// DefaultDeleter zeroes the value so anything it references becomes
// unreachable through it.
func DefaultDeleter[T any](p *T) {
	var zero T
	*p = zero
}

// Ptr is the sole owner of a value of type T. The zero value is an empty Ptr.
type Ptr[T any] struct {
	_   noCopy
	raw *T
	del Deleter[T]
}

// New takes ownership of raw. The caller must not keep another owning
// reference to it.
func New[T any](raw *T) Ptr[T] {
	return Ptr[T]{raw: raw}
}

// NewWithDeleter takes ownership of raw and releases it with del instead of
// DefaultDeleter. A nil del selects DefaultDeleter.
func NewWithDeleter[T any](raw *T, del Deleter[T]) Ptr[T] {
	return Ptr[T]{raw: raw, del: del}
}

// Make allocates a new value initialized to v and returns its owner.
func Make[T any](v T) Ptr[T] {
	raw := new(T)
	*raw = v
	return Ptr[T]{raw: raw}
}

// Move transfers ownership to the returned Ptr, leaving p empty.
func (p *Ptr[T]) Move() Ptr[T] {
	raw, del := p.raw, p.del
	p.raw, p.del = nil, nil
	return Ptr[T]{raw: raw, del: del}
}

// MoveFrom releases whatever p owns and takes over other's value and
// deleter. other is left empty. Moving a Ptr into itself does nothing.
func (p *Ptr[T]) MoveFrom(other *Ptr[T]) {
	if p == other {
		return
	}
	p.Destroy()
	p.raw, p.del = other.raw, other.del
	other.raw, other.del = nil, nil
}

// Release gives up ownership without running the deleter and returns the
// value. The caller becomes responsible for it.
func (p *Ptr[T]) Release() *T {
	raw := p.raw
	p.raw = nil
	return raw
}

// Reset takes ownership of raw and then releases the previously owned value.
// Reset(nil) empties p. Resetting to the value p already owns is a no-op.
func (p *Ptr[T]) Reset(raw *T) {
	old := p.raw
	if old == raw {
		return
	}
	p.raw = raw
	if old != nil {
		p.deleter()(old)
	}
}

// Swap exchanges the owned values and deleters of p and other.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	p.raw, other.raw = other.raw, p.raw
	p.del, other.del = other.del, p.del
}

// Destroy runs the deleter on the owned value, if any, and empties p.
func (p *Ptr[T]) Destroy() {
	p.Reset(nil)
}

// Get returns the owned value without giving up ownership, or nil.
func (p *Ptr[T]) Get() *T {
	return p.raw
}

// Value returns a copy of the owned value. p must not be empty.
func (p *Ptr[T]) Value() T {
	return *p.raw
}

// Deleter returns the function that will reclaim the owned value.
func (p *Ptr[T]) Deleter() Deleter[T] {
	return p.deleter()
}

// Valid reports whether p owns a value.
func (p *Ptr[T]) Valid() bool {
	return p.raw != nil
}

// Equal reports whether p and other own the same address.
func (p *Ptr[T]) Equal(other *Ptr[T]) bool {
	return p.raw == other.raw
}

// Compare orders handles by the address they own; empty handles sort first.
func (p *Ptr[T]) Compare(other *Ptr[T]) int {
	return cmp.Compare(uintptr(unsafe.Pointer(p.raw)), uintptr(unsafe.Pointer(other.raw)))
}

func (p *Ptr[T]) String() string {
	return fmt.Sprintf("owned.Ptr(%p)", p.raw)
}

func (p *Ptr[T]) deleter() Deleter[T] {
	if p.del == nil {
		return DefaultDeleter[T]
	}
	return p.del
}
