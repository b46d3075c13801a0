package vector

// Metrics returns a snapshot of v's size and allocation statistics.
// Allocations starts over whenever the storage is released (Destroy,
// CopyFrom, decoding) and travels with the storage on a move.
func (v *Vector[T]) Metrics() VectorMetrics {
	m := VectorMetrics{
		Len:         v.length,
		Cap:         v.capacity,
		Allocated:   v.storage.Len(),
		Allocations: v.allocations,
	}
	if v.capacity > 0 {
		m.Utilization = float64(v.length) / float64(v.capacity)
	}
	return m
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Logical capacity
	Allocated   int     // Slots in the backing block, at least Cap
	Allocations int     // Blocks allocated since the storage was last released
	Utilization float64 // Ratio of Len to Cap (0.0-1.0)
}
