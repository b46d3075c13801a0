package owned

import (
	"strings"
	"testing"
)

type resource struct {
	id   int
	name string
}

// countingDeleter returns a Deleter that records every value it reclaims.
func countingDeleter[T any](released *[]*T) Deleter[T] {
	return func(p *T) {
		*released = append(*released, p)
	}
}

func TestPtrZeroValue(t *testing.T) {
	var p Ptr[int]
	if p.Valid() {
		t.Error("zero Ptr should be empty")
	}
	if p.Get() != nil {
		t.Errorf("zero Ptr Get() = %v, want nil", p.Get())
	}
	p.Destroy() // no-op on an empty handle
}

func TestPtrNew(t *testing.T) {
	x := 42
	p := New(&x)
	if !p.Valid() {
		t.Fatal("New(&x) should own a value")
	}
	if p.Get() != &x {
		t.Error("Get() should return the owned address")
	}
	if p.Value() != 42 {
		t.Errorf("Value() = %d, want 42", p.Value())
	}

	p.Destroy()
	if p.Valid() {
		t.Error("Ptr should be empty after Destroy()")
	}
	if x != 0 {
		t.Errorf("default deleter should zero the value, got %d", x)
	}
}

func TestPtrMake(t *testing.T) {
	p := Make(resource{id: 7, name: "seven"})
	defer p.Destroy()

	if got := p.Value(); got.id != 7 || got.name != "seven" {
		t.Errorf("Value() = %+v, want {7 seven}", got)
	}
	p.Get().id = 8
	if p.Value().id != 8 {
		t.Error("writes through Get() should be visible")
	}
}

func TestPtrMove(t *testing.T) {
	var released []*resource
	r := &resource{id: 1}
	p := NewWithDeleter(r, countingDeleter(&released))

	q := p.Move()
	if p.Valid() {
		t.Error("source should be empty after Move()")
	}
	if q.Get() != r {
		t.Error("destination should own the moved value")
	}

	p.Destroy()
	if len(released) != 0 {
		t.Fatalf("destroying the moved-from Ptr released %d values, want 0", len(released))
	}
	q.Destroy()
	if len(released) != 1 || released[0] != r {
		t.Errorf("released = %v, want exactly [%p]", released, r)
	}
}

func TestPtrMoveFrom(t *testing.T) {
	var released []*resource
	del := countingDeleter(&released)
	r1, r2 := &resource{id: 1}, &resource{id: 2}

	dst := NewWithDeleter(r1, del)
	src := NewWithDeleter(r2, del)

	dst.MoveFrom(&src)
	if src.Valid() {
		t.Error("source should be empty after MoveFrom")
	}
	if dst.Get() != r2 {
		t.Error("destination should own the source's value")
	}
	if len(released) != 1 || released[0] != r1 {
		t.Fatalf("released = %v, want the destination's previous value only", released)
	}

	dst.MoveFrom(&dst)
	if dst.Get() != r2 {
		t.Error("self move should leave the Ptr unchanged")
	}
	if len(released) != 1 {
		t.Errorf("self move released a value")
	}

	dst.Destroy()
	src.Destroy()
	if len(released) != 2 {
		t.Errorf("released %d values over the lifetime, want 2", len(released))
	}
}

func TestPtrMoveChain(t *testing.T) {
	var released []*int
	x := 5
	p := NewWithDeleter(&x, countingDeleter(&released))

	q := p.Move()
	r := q.Move()
	var s Ptr[int]
	s.MoveFrom(&r)

	live := 0
	for _, h := range []*Ptr[int]{&p, &q, &r, &s} {
		if h.Valid() {
			live++
		}
	}
	if live != 1 {
		t.Errorf("%d handles own the value, want 1", live)
	}

	for _, h := range []*Ptr[int]{&p, &q, &r, &s} {
		h.Destroy()
	}
	if len(released) != 1 {
		t.Errorf("deleter ran %d times, want 1", len(released))
	}
}

func TestPtrRelease(t *testing.T) {
	var released []*int
	x := 3
	p := NewWithDeleter(&x, countingDeleter(&released))

	raw := p.Release()
	if raw != &x {
		t.Error("Release() should return the owned address")
	}
	if p.Valid() {
		t.Error("Ptr should be empty after Release()")
	}
	p.Destroy()
	if len(released) != 0 {
		t.Error("Release() must not run the deleter")
	}

	// Manual cleanup of the released value matches letting a Ptr destroy it.
	p.Deleter()(raw)
	q := NewWithDeleter(new(int), countingDeleter(&released))
	q.Destroy()
	if len(released) != 2 {
		t.Errorf("released %d values, want 2", len(released))
	}
}

func TestPtrReset(t *testing.T) {
	var released []*int
	a, b := 1, 2
	p := NewWithDeleter(&a, countingDeleter(&released))

	p.Reset(&b)
	if p.Get() != &b {
		t.Error("Reset(&b) should take ownership of b")
	}
	if len(released) != 1 || released[0] != &a {
		t.Errorf("released = %v, want [&a]", released)
	}

	p.Reset(&b)
	if len(released) != 1 {
		t.Error("resetting to the owned value must not release it")
	}

	p.Reset(nil)
	if p.Valid() {
		t.Error("Reset(nil) should empty the Ptr")
	}
	if len(released) != 2 || released[1] != &b {
		t.Errorf("released = %v, want [&a &b]", released)
	}
}

func TestPtrSwap(t *testing.T) {
	var releasedA, releasedB []*int
	x, y := 10, 20
	p := NewWithDeleter(&x, countingDeleter(&releasedA))
	q := NewWithDeleter(&y, countingDeleter(&releasedB))

	p.Swap(&q)
	if p.Value() != 20 || q.Value() != 10 {
		t.Errorf("after Swap p=%d q=%d, want 20 10", p.Value(), q.Value())
	}
	if len(releasedA)+len(releasedB) != 0 {
		t.Error("Swap must not release anything")
	}

	// Deleters travel with their values.
	p.Destroy()
	if len(releasedB) != 1 || releasedB[0] != &y {
		t.Errorf("p's deleter after Swap should be q's original: %v", releasedB)
	}
	q.Destroy()
	if len(releasedA) != 1 || releasedA[0] != &x {
		t.Errorf("q's deleter after Swap should be p's original: %v", releasedA)
	}
}

func TestPtrCompare(t *testing.T) {
	values := make([]int, 2)
	p := NewWithDeleter(&values[0], func(*int) {})
	q := NewWithDeleter(&values[1], func(*int) {})
	var empty Ptr[int]

	tests := []struct {
		name string
		a, b *Ptr[int]
		want int
	}{
		{"lower address", &p, &q, -1},
		{"higher address", &q, &p, 1},
		{"same handle", &p, &p, 0},
		{"empty first", &empty, &p, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare = %d, want %d", got, tt.want)
			}
			if got := tt.a.Equal(tt.b); got != (tt.want == 0) {
				t.Errorf("Equal = %v, want %v", got, tt.want == 0)
			}
		})
	}

	// Comparison is by identity, not content.
	r1, r2 := Make(1), Make(1)
	if r1.Equal(&r2) {
		t.Error("distinct allocations with equal content should not be Equal")
	}
}

func TestPtrDerefEmptyPanics(t *testing.T) {
	var p Ptr[int]
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic dereferencing an empty Ptr")
		}
	}()
	_ = p.Value()
}

func TestPtrString(t *testing.T) {
	p := Make(1)
	if s := p.String(); !strings.HasPrefix(s, "owned.Ptr(0x") {
		t.Errorf("String() = %q", s)
	}
}
