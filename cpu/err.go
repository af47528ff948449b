package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Run loop signals
	ErrHalted    = errors.New(f("halted"))
	ErrInputWait = errors.New(f("input wait"))

	// Memory errors
	ErrAddressNegative = errors.New(f("address negative"))
	ErrAddressLimit    = errors.New(f("address beyond memory limit"))

	// Instruction decode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrModeInvalid   = errors.New(f("parameter mode invalid"))
	ErrModeWrite     = errors.New(f("immediate mode write target"))
	ErrOpcodeArg1    = errors.New(f("arg1"))
	ErrOpcodeArg2    = errors.New(f("arg2"))
	ErrOpcodeArg3    = errors.New(f("arg3"))

	// Program errors
	ErrProgramEmpty = errors.New(f("program empty"))
)

// errArg maps a parameter index to its decode error.
var errArg = [3]error{ErrOpcodeArg1, ErrOpcodeArg2, ErrOpcodeArg3}

// ErrOpcode identifies the instruction word, and where it was fetched from,
// that failed to execute. The cause is joined alongside it.
type ErrOpcode struct {
	Ip   int64
	Word Code
}

func (eo ErrOpcode) Error() string {
	// Raw digits, so the word never reads as comma-separated program text.
	return f("instruction %v at %v", strconv.FormatInt(int64(eo.Word), 10), strconv.FormatInt(eo.Ip, 10))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrParse reports a program token that is not a base-10 integer.
type ErrParse struct {
	Index int
	Token string
	Err   error
}

func (err ErrParse) Error() string {
	return f("token %v '%v' is not a number", strconv.Itoa(err.Index), err.Token)
}

func (err ErrParse) Unwrap() error {
	return err.Err
}
