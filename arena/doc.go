// Package arena implements a chunked bump allocator that can back owned
// element blocks.
//
// # Overview
//
// The arena hands out memory from large chunks and never frees individual
// allocations. Blocks obtained through Block are counted; once every block
// has been handed back with Return the arena rewinds to where it stood when
// the first of them was handed out, and that memory is reused for the next
// round of blocks. Memory from AllocBytes or AllocSlice taken before the
// first block is kept. If any is taken while blocks are live, the rewind is
// skipped and the space is only reclaimed by Reset. This is what lets an
// owned.Array built by owned.MakeArrayIn release its storage through a
// custom deleter instead of the garbage collector.
//
// # Basic Usage
//
//	a := arena.NewArena(0) // Use default chunk size
//	defer a.Release()
//
//	block := arena.Block[int64](a, 128)
//	// ... use block ...
//	arena.Return(a, block) // last live block: the arena rewinds
//
// # Restrictions
//
//   - Element types must not contain Go pointers. Chunks are plain byte
//     slices and are not scanned by the garbage collector.
//   - Memory is only valid while the arena exists and until it rewinds.
//   - The arena is not safe for concurrent use.
//
// # Metrics
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Live blocks: %d\n", m.LiveBlocks)
package arena
