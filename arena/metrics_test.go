package arena

import "testing"

func TestArenaMetrics(t *testing.T) {
	a := NewArena(1024)

	if a.SizeInUse() != 0 {
		t.Errorf("Initial SizeInUse = %d, want 0", a.SizeInUse())
	}
	if a.NumChunks() != 1 {
		t.Errorf("Initial NumChunks = %d, want 1", a.NumChunks())
	}
	if a.ChunkSize() != 1024 {
		t.Errorf("ChunkSize = %d, want 1024", a.ChunkSize())
	}
	if a.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", a.Utilization())
	}

	a.AllocBytes(100)
	block := Block[int32](a, 10)

	utilization := a.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	m := a.Metrics()
	want := ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    1024,
		NumChunks:   1,
		ChunkSize:   1024,
		LiveBlocks:  1,
		Utilization: utilization,
	}
	if m != want {
		t.Errorf("Metrics() = %+v, want %+v", m, want)
	}

	Return(a, block)
	// The 100 plain bytes handed out before the block stay in use.
	if got := a.Metrics(); got.LiveBlocks != 0 || got.SizeInUse != 100 {
		t.Errorf("Metrics after Return = %+v, want no live blocks and 100 bytes in use", got)
	}
}

func TestReleasedArenaMetrics(t *testing.T) {
	a := NewArena(1024)
	a.Release()

	m := a.Metrics()
	if m.SizeInUse != 0 || m.Capacity != 0 || m.NumChunks != 0 || m.Utilization != 0 {
		t.Errorf("Metrics after Release = %+v, want zeroes", m)
	}
}
