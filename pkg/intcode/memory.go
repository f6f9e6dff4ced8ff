package intcode

// Memory is the machine's addressable store: a sparse mapping from
// non-negative address to signed word. Addresses that were never written
// read as zero, and the mapping grows on demand — relative-base arithmetic
// can reach far past the end of the loaded program, so a fixed-size array
// would not do.
type Memory map[int64]int64

// NewMemory creates an empty memory.
func NewMemory() Memory {
	return make(Memory)
}

// Read returns the word at addr, or zero if addr was never written.
func (m Memory) Read(addr int64) int64 {
	return m[addr]
}

// Write stores value at addr.
func (m Memory) Write(addr, value int64) {
	m[addr] = value
}

// ReadRange returns the words in the half-open range [start, end).
// Unwritten addresses contribute zeros.
func (m Memory) ReadRange(start, end int64) []int64 {
	if end <= start {
		return nil
	}
	out := make([]int64, 0, end-start)
	for addr := start; addr < end; addr++ {
		out = append(out, m[addr])
	}
	return out
}

// WriteRange stores data at consecutive addresses beginning at start.
func (m Memory) WriteRange(start int64, data []int64) {
	for i, v := range data {
		m[start+int64(i)] = v
	}
}
