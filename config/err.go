package config

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrProgramMissing = errors.New(f("program missing"))
	ErrPhasesMissing  = errors.New(f("phases missing"))
	ErrMemoryLimit    = errors.New(f("memory_limit negative"))
)

// ErrConfig locates a run file error.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
