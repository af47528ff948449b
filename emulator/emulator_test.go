package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

func doParse(t *testing.T, text string) cpu.Program {
	prog, err := cpu.ParseProgram(text)
	if err != nil {
		t.Fatalf("%v: %v", text, err)
	}
	return prog
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, "99"))

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu.Memory)

	done, err := emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorEcho(t *testing.T) {
	assert := assert.New(t)

	// Echo three values: in, out, in, out, in, out, halt.
	emu := NewEmulator(doParse(t, "3,0,4,0,3,0,4,0,3,0,4,0,99"))
	emu.Inputs = []io.Channel{io.NewBuffer(1), io.NewBuffer(2, 3)}
	output := &io.Buffer{}
	emu.Output = output

	// Each tick consumes one input.
	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Empty(output.Values())
	assert.Equal(1, emu.Cpu.Input.Len())

	assert.NoError(emu.Execute())
	assert.True(emu.Cpu.Halted())
	assert.Equal([]int64{1, 2, 3}, output.Values())
}

func TestEmulatorOutputClear(t *testing.T) {
	assert := assert.New(t)

	// out 1; in [0]; out [0]; out 3; halt
	emu := NewEmulator(doParse(t, "104,1,3,0,4,0,104,3,99"))
	emu.Cpu.Policy = cpu.OUTPUT_CLEAR
	emu.Inputs = []io.Channel{io.NewBuffer(2)}
	output := &io.Buffer{}
	emu.Output = output

	assert.NoError(emu.Execute())
	assert.Equal([]int64{1, 2, 3}, output.Values())

	// A caller clearing the log between ticks does not drop values.
	emu = NewEmulator(doParse(t, "104,1,3,0,4,0,104,3,99"))
	emu.Inputs = []io.Channel{io.NewBuffer(2)}
	output = &io.Buffer{}
	emu.Output = output

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	emu.Cpu.ClearOutput()
	assert.NoError(emu.Execute())
	assert.Equal([]int64{1, 2, 3}, output.Values())
}

func TestEmulatorTape(t *testing.T) {
	assert := assert.New(t)

	// Sum of inputs until a zero is read.
	prog := doParse(t, "3,20,1006,20,13,1,20,21,21,1105,1,0,99,4,21,99")
	emu := NewEmulator(prog)

	out := &bytes.Buffer{}
	emu.Inputs = []io.Channel{&io.Tape{Input: strings.NewReader("5, 6\n7\n0\n")}}
	emu.Output = &io.Tape{Output: out}

	assert.NoError(emu.Execute())
	assert.Equal("18\n", out.String())
}

func TestEmulatorInputExhausted(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, "3,0,3,0,99"))
	emu.Inputs = []io.Channel{io.NewBuffer(1)}

	err := emu.Execute()
	assert.True(errors.Is(err, ErrInputExhausted))

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(int64(2), rerr.Ip)
		assert.Equal(1, rerr.Ticks)
	}

	// Supplying more input resumes where it stopped.
	emu.Inputs = []io.Channel{io.NewBuffer(2)}
	assert.NoError(emu.Execute())
	value, _ := emu.Cpu.Peek(0)
	assert.Equal(int64(2), value)
}

func TestEmulatorTapeBadToken(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, "3,0,3,0,99"))
	emu.Inputs = []io.Channel{&io.Tape{Input: strings.NewReader("1,two")}}

	err := emu.Execute()
	assert.True(errors.Is(err, ErrInputExhausted))
	assert.True(errors.Is(err, io.ErrToken("two")))
	assert.Contains(err.Error(), "two")
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator(doParse(t, "104,5,77"))
	output := &io.Buffer{}
	emu.Output = output

	done, err := emu.Tick()
	assert.False(done)
	assert.True(errors.Is(err, cpu.ErrOpcodeInvalid))
	assert.Empty(output.Values())

	emu = NewEmulator(doParse(t, "104,5,104,6,99"))
	emu.Output = &io.Buffer{Capacity: 1}
	err = emu.Execute()
	assert.True(errors.Is(err, io.ErrChannelFull))
}
