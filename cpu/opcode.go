package cpu

import (
	"fmt"
)

// Opcode is the operation selected by the low two decimal digits of an
// instruction word.
type Opcode int

const (
	OP_ADD  = Opcode(1)  // add
	OP_MUL  = Opcode(2)  // mul
	OP_IN   = Opcode(3)  // in
	OP_OUT  = Opcode(4)  // out
	OP_JNZ  = Opcode(5)  // jnz
	OP_JZ   = Opcode(6)  // jz
	OP_LT   = Opcode(7)  // lt
	OP_EQ   = Opcode(8)  // eq
	OP_ARB  = Opcode(9)  // arb
	OP_HALT = Opcode(99) // halt
)

var _opcode_names = map[Opcode]string{
	OP_ADD:  "add",
	OP_MUL:  "mul",
	OP_IN:   "in",
	OP_OUT:  "out",
	OP_JNZ:  "jnz",
	OP_JZ:   "jz",
	OP_LT:   "lt",
	OP_EQ:   "eq",
	OP_ARB:  "arb",
	OP_HALT: "halt",
}

// Valid returns true if the opcode is part of the instruction set.
func (op Opcode) Valid() bool {
	_, ok := _opcode_names[op]
	return ok
}

// Params returns the number of parameters following the opcode.
func (op Opcode) Params() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 3
	case OP_JNZ, OP_JZ:
		return 2
	case OP_IN, OP_OUT, OP_ARB:
		return 1
	}

	return 0
}

// Writes returns the parameter index written by the opcode, or -1.
func (op Opcode) Writes() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LT, OP_EQ:
		return 2
	case OP_IN:
		return 0
	}

	return -1
}

func (op Opcode) String() string {
	name, ok := _opcode_names[op]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int(op))
	}
	return name
}

// Mode is a parameter addressing mode.
type Mode int

const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

func (mode Mode) String() string {
	switch mode {
	case MODE_POSITION:
		return "position"
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_RELATIVE:
		return "relative"
	}

	return fmt.Sprintf("Mode(%d)", int(mode))
}

// Code is a single instruction word.
type Code int64

var _mode_scale = [3]int64{100, 1000, 10000}

// Opcode returns the operation from the instruction word.
func (code Code) Opcode() Opcode {
	return Opcode(int64(code) % 100)
}

// Mode returns the addressing mode of parameter index (0, 1 or 2).
func (code Code) Mode(index int) Mode {
	return Mode((int64(code) / _mode_scale[index]) % 10)
}

// Modes returns the addressing modes of all three parameter slots.
func (code Code) Modes() (modes [3]Mode) {
	for n := range modes {
		modes[n] = code.Mode(n)
	}
	return
}

// String returns the opcode name and its parameter modes.
func (code Code) String() string {
	modes := code.Modes()
	return fmt.Sprintf("%v.%d%d%d", code.Opcode(), modes[0], modes[1], modes[2])
}
