// Package owned provides single-ownership handles for heap values and
// element blocks.
//
// # Overview
//
// A Ptr owns one value, an Array owns a block of elements. Each handle
// carries a deleter, a function that knows how to reclaim what it owns.
// Ownership is never duplicated, only transferred:
//
//	p := owned.Make(conn{}) // p owns a new conn
//	q := p.Move()           // q owns it now, p is empty
//	defer q.Destroy()       // runs the deleter once
//
// # Copying
//
// Handles embed a noCopy marker; `go vet` reports any copy of a Ptr or an
// Array value. Use Move, MoveFrom or Swap to transfer ownership, and pass
// handles by pointer.
//
// # Destruction
//
// Go has no destructors. Destroy plays that role and is normally deferred
// right after the handle is created. A handle that is dropped without
// Destroy is still reclaimed by the garbage collector, but its deleter
// never runs.
//
// # Arena-backed blocks
//
// MakeArrayIn carves its block out of an arena.Arena. Only pointer-free
// element types are accepted (integers, floats, bools and arrays or structs
// of them); anything else panics, because the garbage collector cannot see
// references stored in arena memory.
//
// # Undefined behavior
//
// Like the raw pointers they stand in for, handles do not guard against
// misuse. Dereferencing an empty Ptr panics with a nil pointer dereference,
// indexing an Array out of range panics in the runtime bounds check, and
// destroying a value that was also Released is a double release the
// package cannot detect.
package owned

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
