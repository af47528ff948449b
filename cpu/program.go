package cpu

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Program is a loaded instruction stream.
type Program []int64

// ParseProgram parses comma-separated base-10 integers.
func ParseProgram(text string) (prog Program, err error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		err = ErrProgramEmpty
		return
	}

	words := strings.Split(text, ",")
	prog = make(Program, 0, len(words))
	for n, word := range words {
		word = strings.TrimSpace(word)
		var value int64
		value, err = strconv.ParseInt(word, 10, 64)
		if err != nil {
			err = ErrParse{Index: n, Token: word, Err: err}
			prog = nil
			return
		}
		prog = append(prog, value)
	}

	return
}

// String returns the program in its comma-separated text form.
func (prog Program) String() string {
	words := make([]string, len(prog))
	for n, value := range prog {
		words[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(words, ",")
}

// Instruction is a decoded instruction with its raw parameter words.
type Instruction struct {
	Ip   int64
	Code Code
	Args []int64
}

// Len returns the number of words occupied by the instruction.
func (in Instruction) Len() int64 {
	return int64(1 + len(in.Args))
}

// String returns the assembly-like form of the instruction.
//
// Position parameters are shown as [n], immediates as #n, and
// relative parameters as [rb+n].
func (in Instruction) String() string {
	op := in.Code.Opcode()
	if !op.Valid() {
		return fmt.Sprintf("%04d: .word %d", in.Ip, int64(in.Code))
	}

	text := fmt.Sprintf("%04d: %v", in.Ip, op)
	for n, arg := range in.Args {
		switch in.Code.Mode(n) {
		case MODE_POSITION:
			text += fmt.Sprintf(" [%d]", arg)
		case MODE_IMMEDIATE:
			text += fmt.Sprintf(" #%d", arg)
		case MODE_RELATIVE:
			text += fmt.Sprintf(" [rb%+d]", arg)
		default:
			text += fmt.Sprintf(" ?%d", arg)
		}
	}

	return text
}

// Decode reads the instruction at ip without executing it.
func Decode(mem *Memory, ip int64) (in Instruction, err error) {
	word, err := mem.Read(ip)
	if err != nil {
		return
	}

	in = Instruction{Ip: ip, Code: Code(word)}

	op := in.Code.Opcode()
	if !op.Valid() {
		err = ErrOpcode{Ip: ip, Word: in.Code}
		return
	}

	for n := range op.Params() {
		var arg int64
		arg, err = mem.Read(ip + 1 + int64(n))
		if err != nil {
			return
		}
		in.Args = append(in.Args, arg)
	}

	return
}

// Disassemble walks the program from address zero, yielding each
// instruction. Words that do not decode are yielded as single-word data.
func Disassemble(prog Program) iter.Seq2[int64, Instruction] {
	return func(yield func(ip int64, in Instruction) bool) {
		mem := NewMemory(prog)
		for ip := int64(0); ip < int64(len(prog)); {
			in, err := Decode(mem, ip)
			if err != nil {
				in = Instruction{Ip: ip, Code: Code(prog[ip])}
			}
			if !yield(ip, in) {
				return
			}
			ip += in.Len()
		}
	}
}
