package arena

import (
	"fmt"
	"reflect"
	"unsafe"
)

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized and may hold data from before a Reset.
// Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	a.noteShared()
	return allocSlice[T](a, n)
}

// AllocSliceZeroed is AllocSlice with every element set to the zero value.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	clear(s)
	return s
}

func allocSlice[T any](a *Arena, n int) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	b := a.bump(size * n)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Block hands out a zeroed block of n elements and counts it as live until
// it is given back with Return. Block panics if T contains pointers, since
// the garbage collector does not scan arena chunks.
func Block[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	if t := reflect.TypeFor[T](); hasPointers(t) {
		panic(fmt.Sprintf("arena: element type %s contains pointers", t))
	}
	a.panicIfReleased()
	if a.live == 0 {
		a.setMark()
	}
	s := allocSlice[T](a, n)
	clear(s)
	a.live++
	return s
}

// Return gives back a block obtained from Block and zeroes it. When it was
// the last live block the arena rewinds to where the first of them was
// handed out, unless AllocBytes or AllocSlice were used in the meantime.
// Returning a nil block is a no-op.
func Return[T any](a *Arena, block []T) {
	if block == nil {
		return
	}
	a.panicIfReleased()
	if a.live == 0 {
		panic("arena: Return without matching Block")
	}
	clear(block)
	a.live--
	if a.live == 0 {
		if !a.shared {
			a.rewind()
		}
		a.clearMark()
	}
}

// hasPointers reports whether values of t hold anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
