// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator connects a processor to input and output channels.
package emulator

import (
	"errors"
	"iter"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/io"
)

// Emulator state. CPU + IO channels.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*cpu.Cpu      // Reference to the CPU simulation.

	Inputs []io.Channel // Input sources, drained in order.
	Output io.Channel   // Output sink. May be nil.

	sent int // Output log entries already forwarded.
}

// NewEmulator creates a new emulator running prog.
func NewEmulator(prog cpu.Program) (emu *Emulator) {
	emu = &Emulator{
		Cpu: cpu.NewCpu(prog),
	}

	return
}

// input returns the concatenated input sources.
func (emu *Emulator) input() iter.Seq[int64] {
	seqs := make([]iter.Seq[int64], len(emu.Inputs))
	for n, ch := range emu.Inputs {
		seqs[n] = ch.Receive()
	}
	return internal.IterSeqConcat(seqs...)
}

// flush forwards new output values to the output channel.
func (emu *Emulator) flush() (err error) {
	fresh := emu.Cpu.OutputSince(emu.sent)
	for _, value := range fresh {
		if emu.Output != nil {
			err = emu.Output.Send(value)
			if err != nil {
				return
			}
		}
		emu.sent++
	}

	return
}

// Tick runs the processor until it halts or waits for input. When it
// waits, exactly one value is pulled from the inputs for the next tick.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			err = &ErrRuntime{Ticks: emu.Cpu.Ticks, Ip: emu.Cpu.Ip, Err: err}
		}
	}()

	// The log restarts under OUTPUT_CLEAR, or when cleared by the caller.
	emu.sent = min(emu.sent, emu.Cpu.OutputMark())

	res, err := emu.Cpu.Run()
	if err != nil {
		return
	}

	err = emu.flush()
	if err != nil {
		return
	}

	if res.Halted {
		done = true
		return
	}

	for value := range emu.input() {
		if emu.Verbose {
			log.Debugf("emulator: input %d", value)
		}
		emu.Cpu.AddInputs(value)
		return
	}

	err = ErrInputExhausted
	for _, ch := range emu.Inputs {
		if faulted, ok := ch.(io.Faulted); ok && faulted.Fault() != nil {
			err = errors.Join(err, faulted.Fault())
		}
	}

	return
}

// Execute ticks the emulator until the program halts.
func (emu *Emulator) Execute() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
