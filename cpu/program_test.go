package cpu

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgram(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		text    string
		program Program
	}){
		{"simple", "1,0,0,0,99", Program{1, 0, 0, 0, 99}},
		{"negative", "3,9,8,9,10,9,4,9,99,-1,8", Program{3, 9, 8, 9, 10, 9, 4, 9, 99, -1, 8}},
		{"trailing_newline", "104,1125899906842624,99\n", Program{104, 1125899906842624, 99}},
		{"spaces", "  1, 2 ,3 ", Program{1, 2, 3}},
		{"plus_sign", "+5,-5", Program{5, -5}},
	}

	for _, entry := range table {
		prog, err := ParseProgram(entry.text)
		assert.NoError(err, entry.name)
		assert.Equal(entry.program, prog, entry.name)
	}
}

func TestParseProgramErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseProgram("  \n")
	assert.Equal(ErrProgramEmpty, err)

	table := [](struct {
		text  string
		index int
		token string
	}){
		{"1,2,x", 2, "x"},
		{"1,,2", 1, ""},
		{"0x10,1", 0, "0x10"},
		{"1,2.5", 1, "2.5"},
		{"1,99999999999999999999", 1, "99999999999999999999"},
	}

	for _, entry := range table {
		prog, err := ParseProgram(entry.text)
		assert.Nil(prog, entry.text)
		var perr ErrParse
		if assert.True(errors.As(err, &perr), entry.text) {
			assert.Equal(entry.index, perr.Index, entry.text)
			assert.Equal(entry.token, perr.Token, entry.text)
		}
		var nerr *strconv.NumError
		assert.True(errors.As(err, &nerr), entry.text)
	}

	_, err = NewCpuFromText("1,a")
	assert.Error(err)
}

func TestProgramString(t *testing.T) {
	assert := assert.New(t)

	prog := Program{1002, 4, 3, 4, -33}
	assert.Equal("1002,4,3,4,-33", prog.String())

	again, err := ParseProgram(prog.String())
	assert.NoError(err)
	assert.Equal(prog, again)
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	mem := NewMemory(Program{1002, 4, 3, 4, 33, 204, -1})

	in, err := Decode(mem, 0)
	assert.NoError(err)
	assert.Equal(OP_MUL, in.Code.Opcode())
	assert.Equal([]int64{4, 3, 4}, in.Args)
	assert.Equal(int64(4), in.Len())
	assert.Equal("0000: mul [4] #3 [4]", in.String())

	in, err = Decode(mem, 5)
	assert.NoError(err)
	assert.Equal("0005: out [rb-1]", in.String())

	_, err = Decode(mem, 4)
	assert.True(errors.Is(err, ErrOpcode{}))
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseProgram("1102,34915192,34915192,7,4,7,99,0")
	assert.NoError(err)

	var lines []string
	var ips []int64
	for ip, in := range Disassemble(prog) {
		ips = append(ips, ip)
		lines = append(lines, in.String())
	}

	assert.Equal([]int64{0, 4, 6, 7}, ips)
	assert.Equal([]string{
		"0000: mul #34915192 #34915192 [7]",
		"0004: out [7]",
		"0006: halt",
		"0007: .word 0",
	}, lines)

	// Early exit stops the walk.
	count := 0
	for range Disassemble(prog) {
		count++
		break
	}
	assert.Equal(1, count)
	assert.True(slices.IsSorted(ips))
}
