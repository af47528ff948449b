package io

import (
	"iter"
)

// Buffer implements an in-memory FIFO of values, keeping everything sent.
// A zero Capacity is unbounded.
type Buffer struct {
	Capacity int

	ReadIndex int
	Data      []int64
}

var _ Channel = (*Buffer)(nil)

// NewBuffer creates an unbounded buffer preloaded with values.
func NewBuffer(values ...int64) *Buffer {
	return &Buffer{Data: values}
}

// Rewind rewinds to the start of the buffered data, so already received
// values are received again.
func (buf *Buffer) Rewind() {
	buf.ReadIndex = 0
}

// Len returns the number of values not yet received.
func (buf *Buffer) Len() int {
	return len(buf.Data) - buf.ReadIndex
}

// Values returns every value sent to the buffer.
func (buf *Buffer) Values() []int64 {
	return buf.Data
}

// Receive returns an iterator that yields values until the buffer is empty.
func (buf *Buffer) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for buf.ReadIndex < len(buf.Data) {
			value := buf.Data[buf.ReadIndex]
			buf.ReadIndex++
			if !yield(value) {
				return
			}
		}
	}
}

// Send appends a value to the buffer.
// Returns ErrChannelFull if the buffer holds Capacity unreceived values.
func (buf *Buffer) Send(value int64) (err error) {
	if buf.Capacity > 0 && buf.Len() >= buf.Capacity {
		err = ErrChannelFull
		return
	}

	buf.Data = append(buf.Data, value)

	return
}
