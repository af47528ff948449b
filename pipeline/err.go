package pipeline

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrNoStages = errors.New(f("no stages"))
)

// ErrStageOutput reports a stage that did not produce exactly one value in
// a round.
type ErrStageOutput struct {
	Stage int
	Round int
	Count int
}

func (err ErrStageOutput) Error() string {
	return f("stage %v round %v produced %v outputs", strconv.Itoa(err.Stage), strconv.Itoa(err.Round), strconv.Itoa(err.Count))
}

// ErrStage wraps a processor failure with the stage that raised it.
type ErrStage struct {
	Stage int
	Err   error
}

func (err ErrStage) Error() string {
	return f("stage %v %v", strconv.Itoa(err.Stage), err.Err)
}

func (err ErrStage) Unwrap() error {
	return err.Err
}
