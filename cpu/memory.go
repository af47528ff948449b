package cpu

import (
	"slices"
)

const (
	MEMORY_MIN_GROWTH = 64 // Smallest capacity step when growing.
)

// Memory is a zero-initialized, auto-growing array of words.
type Memory struct {
	Limit int     // Maximum size in words. Zero is unbounded.
	Data  []int64 // Backing store. Words past len(Data) read as zero.
}

// NewMemory creates a memory holding a copy of program.
func NewMemory(program Program) (mem *Memory) {
	mem = &Memory{
		Data: slices.Clone([]int64(program)),
	}
	return
}

// Len returns the number of words backed by storage.
func (mem *Memory) Len() int {
	return len(mem.Data)
}

// Read returns the word at addr. Unwritten addresses read as zero.
func (mem *Memory) Read(addr int64) (value int64, err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr < int64(len(mem.Data)) {
		value = mem.Data[addr]
	}

	return
}

// Write stores value at addr, extending the memory as needed.
func (mem *Memory) Write(addr int64, value int64) (err error) {
	if addr < 0 {
		err = ErrAddressNegative
		return
	}

	if addr >= int64(len(mem.Data)) {
		if mem.Limit > 0 && addr >= int64(mem.Limit) {
			err = ErrAddressLimit
			return
		}
		mem.grow(int(addr) + 1)
	}

	mem.Data[addr] = value

	return
}

// grow extends the memory to size words, doubling capacity when it runs out.
func (mem *Memory) grow(size int) {
	if size > cap(mem.Data) {
		capacity := max(2*cap(mem.Data), size, MEMORY_MIN_GROWTH)
		if mem.Limit > 0 {
			capacity = min(capacity, max(mem.Limit, size))
		}
		mem.Data = slices.Grow(mem.Data, capacity-len(mem.Data))
	}

	// Newly exposed words must read as zero.
	old := len(mem.Data)
	mem.Data = mem.Data[:size]
	clear(mem.Data[old:])
}

// Snapshot returns a copy of the backed memory contents.
func (mem *Memory) Snapshot() []int64 {
	return slices.Clone(mem.Data)
}

// Clone returns an independent copy of the memory.
func (mem *Memory) Clone() *Memory {
	return &Memory{
		Limit: mem.Limit,
		Data:  slices.Clone(mem.Data),
	}
}
