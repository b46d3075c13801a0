package arena

import "unsafe"

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is a single region of backing memory.
type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator. Not goroutine-safe.
type Arena struct {
	chunks    []chunk
	chunkSize int
	cur       int // index of the chunk allocations are carved from

	live   int       // blocks handed out by Block and not yet returned
	mark   []uintptr // chunk offsets when the first live block was handed out
	markAt int       // cur at the same moment
	shared bool      // non-block memory was handed out while blocks were live
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// AllocBytes returns n bytes carved from the current chunk, adding a chunk
// when the current one is full. Returns nil if n <= 0.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	a.noteShared()
	return a.bump(n)
}

// bump carves n > 0 bytes without touching block accounting.
func (a *Arena) bump(n int) []byte {
	a.panicIfReleased()

	c := &a.chunks[a.cur]
	off := alignPtr(c.offset)
	if off+uintptr(n) > uintptr(len(c.buf)) {
		a.grow(n)
		c = &a.chunks[a.cur]
		off = 0
	}
	c.offset = off + uintptr(n)
	return unsafe.Slice((*byte)(unsafe.Pointer(&c.buf[off])), n)
}

// EnsureCapacity makes sure the current chunk has at least n free bytes.
func (a *Arena) EnsureCapacity(n int) {
	a.panicIfReleased()
	c := &a.chunks[a.cur]
	if uintptr(n)+alignPtr(c.offset) > uintptr(len(c.buf)) {
		a.grow(n)
	}
}

// Reset rewinds every chunk so its memory can be handed out again.
// Everything previously handed out, blocks included, becomes invalid.
func (a *Arena) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.cur = 0
	a.clearMark()
}

// Release drops all chunks and makes the arena unusable.
// Any subsequent allocation panics.
func (a *Arena) Release() {
	a.chunks = nil
	a.cur = 0
	a.clearMark()
}

// grow makes a chunk with at least min free bytes current. An untouched
// chunk left over from a rewind is reused before a new one is appended.
func (a *Arena) grow(min int) {
	for i := range a.chunks {
		c := &a.chunks[i]
		if i != a.cur && c.offset == 0 && len(c.buf) >= min {
			a.cur = i
			return
		}
	}
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.cur = len(a.chunks) - 1
}

// setMark records the allocation state before the first live block.
func (a *Arena) setMark() {
	a.mark = a.mark[:0]
	for _, c := range a.chunks {
		a.mark = append(a.mark, c.offset)
	}
	a.markAt = a.cur
	a.shared = false
}

// rewind restores the state recorded by setMark. Chunks added since then
// become empty.
func (a *Arena) rewind() {
	for i := range a.chunks {
		if i < len(a.mark) {
			a.chunks[i].offset = a.mark[i]
		} else {
			a.chunks[i].offset = 0
		}
	}
	a.cur = a.markAt
}

func (a *Arena) clearMark() {
	a.live = 0
	a.mark = a.mark[:0]
	a.markAt = 0
	a.shared = false
}

func (a *Arena) noteShared() {
	if a.live > 0 {
		a.shared = true
	}
}

func (a *Arena) panicIfReleased() {
	if a.chunks == nil {
		panic("arena: use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
