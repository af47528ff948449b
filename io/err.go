package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
)

// ErrToken reports input text that is not a base-10 integer.
type ErrToken string

func (err ErrToken) Error() string {
	return f("'%v' is not a number", string(err))
}
