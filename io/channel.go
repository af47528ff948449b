// Package io provides value channels that feed processors and collect
// their output. It includes an in-memory FIFO (Buffer) and a text stream
// over an io.Reader and io.Writer (Tape).
package io

import (
	"iter"
)

// Channel defines the interface for a processor's value source or sink.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Receive returns an iterator that yields values from the channel.
	Receive() iter.Seq[int64]
	// Send writes a single value to the channel.
	Send(value int64) error
}

// Faulted is implemented by channels that can stop early on a read error.
type Faulted interface {
	// Fault returns the error that stopped the channel, if any.
	Fault() error
}
