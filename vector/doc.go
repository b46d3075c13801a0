// Package vector implements a growable contiguous sequence container.
//
// # Overview
//
// A Vector keeps its elements in a single block owned through an
// owned.Array. Appending to a full vector doubles its capacity (a vector
// with no capacity grows to one slot), so N appends cost O(N) copies in
// total.
//
//	v := vector.Of(1, 2, 3)
//	defer v.Destroy()
//
//	v.PushBack(4)
//	v.Insert(v.Begin().Add(1), 10) // [1, 10, 2, 3, 4]
//	v.Erase(v.End().Prev())        // [1, 10, 2, 3]
//
//	if _, err := v.At(7); errors.Is(err, vector.ErrOutOfRange) {
//		// bounds-checked access failed
//	}
//
// # Iterators
//
// Iterator and ReverseIterator are positions inside a vector. They are
// plain offsets and support stepping, offset arithmetic and distance.
// Every operation that may change the capacity (PushBack, EmplaceBack,
// Insert, Emplace, Reserve, Resize, CopyFrom, MoveFrom, Destroy) must be
// treated as invalidating all outstanding iterators, as must Erase, Clear
// and PopBack for positions at or after the removed elements. Because an
// iterator is only an index, an invalidated one keeps addressing the same
// slot of whatever storage the vector holds now; this is not detected and
// must not be relied on.
//
// All, Values and Backward return range-over-func sequences over the live
// elements.
//
// # Unchecked access
//
// At is the only bounds-checked accessor and the only method that reports
// an error. Index, Front, Back, PopBack and iterator dereferences trust the
// caller; out-of-range use panics in the runtime bounds check or reads
// stale slots, it is never clamped.
//
// # Copying
//
// A Vector must not be copied by value; use Clone or CopyFrom for a deep
// copy and Move or MoveFrom to transfer the storage. `go vet` reports value
// copies.
//
// # Thread Safety
//
// Vectors are not safe for concurrent use.
package vector
