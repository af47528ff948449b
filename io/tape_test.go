package io

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		input  string
		values []int64
	}){
		{"commas", "1,2,3", []int64{1, 2, 3}},
		{"lines", "5\n-6\n\n7\n", []int64{5, -6, 7}},
		{"mixed", " 9 , 8\t7,\n", []int64{9, 8, 7}},
		{"empty", "", nil},
		{"large", "1125899906842624", []int64{1125899906842624}},
		{"unicode space", "1\u00a02\u20283", []int64{1, 2, 3}},
	}

	for _, entry := range table {
		tape := &Tape{Input: strings.NewReader(entry.input)}
		values := slices.Collect(tape.Receive())
		assert.Equal(entry.values, values, entry.name)
		assert.NoError(tape.Err, entry.name)
	}
}

func TestTape_ReceiveIncremental(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1 2 3")}
	for value := range tape.Receive() {
		assert.Equal(int64(1), value)
		break
	}
	assert.Equal([]int64{2, 3}, slices.Collect(tape.Receive()))
}

func TestTape_ReceiveBadToken(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("4,five,6")}
	assert.Equal([]int64{4}, slices.Collect(tape.Receive()))
	assert.Equal(ErrToken("five"), tape.Err)
}

func TestTape_ReceiveMultibyte(t *testing.T) {
	assert := assert.New(t)

	// U+00E0 and U+0145 encode with 0xA0 and 0x85 continuation bytes.
	tape := &Tape{Input: strings.NewReader("1,\u00e0\u0145,2")}
	assert.Equal([]int64{1}, slices.Collect(tape.Receive()))
	assert.Equal(ErrToken("\u00e0\u0145"), tape.Err)
	assert.Equal(tape.Err, tape.Fault())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}
	assert.NoError(tape.Send(139629729))
	assert.NoError(tape.Send(-1))
	assert.Equal("139629729\n-1\n", out.String())

	// No output attached drops values.
	assert.NoError((&Tape{}).Send(1))
	assert.Empty(slices.Collect((&Tape{}).Receive()))
}
