package emulator

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrInputExhausted = errors.New(f("input exhausted"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ticks int
	Ip    int64
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("tick %v ip %v %v", strconv.Itoa(err.Ticks), strconv.FormatInt(err.Ip, 10), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
