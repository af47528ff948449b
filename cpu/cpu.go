package cpu

import (
	"errors"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
)

// OutputPolicy selects how the output log behaves across Run calls.
type OutputPolicy int

const (
	OUTPUT_RETAIN = OutputPolicy(0) // Log persists across resumes.
	OUTPUT_CLEAR  = OutputPolicy(1) // Log is cleared at the start of each Run.
)

// Result is the state snapshot returned by Run.
type Result struct {
	Output []int64 // Output log contents.
	Halted bool    // Set once the program executed a halt.
}

// Last returns the most recent output value.
func (res Result) Last() (value int64, ok bool) {
	if len(res.Output) == 0 {
		return
	}
	return res.Output[len(res.Output)-1], true
}

// Cpu is the execution context of a single processor.
type Cpu struct {
	Verbose bool         // Set to enable verbose logging.
	Policy  OutputPolicy // Output log policy.

	Memory       *Memory // Owned program memory.
	Input        Queue   // Pending input values.
	Ip           int64   // Current instruction pointer.
	RelativeBase int64   // Relative-mode base register.

	Ticks int // Executed instruction counter.

	output []int64
	halted bool
}

// NewCpu creates a processor with its own copy of the program.
func NewCpu(prog Program) (cpu *Cpu) {
	cpu = &Cpu{
		Memory: NewMemory(prog),
	}

	return
}

// NewCpuFromText parses the program text and creates a processor.
func NewCpuFromText(text string) (cpu *Cpu, err error) {
	prog, err := ParseProgram(text)
	if err != nil {
		return
	}

	cpu = NewCpu(prog)
	return
}

// String returns the current register state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("%6s: %d\n", "ip", cpu.Ip)
	text += fmt.Sprintf("%6s: %d\n", "rb", cpu.RelativeBase)
	text += fmt.Sprintf("%6s: %v\n", "halted", cpu.halted)
	text += fmt.Sprintf("%6s: %v\n", "input", cpu.Input.Data)
	text += fmt.Sprintf("%6s: %v\n", "output", cpu.output)
	text += fmt.Sprintf("%6s: %d\n", "ticks", cpu.Ticks)

	return
}

// Halted returns true once the program has executed a halt.
func (cpu *Cpu) Halted() bool {
	return cpu.halted
}

// AddInputs appends values to the input queue. Execution is not started.
func (cpu *Cpu) AddInputs(values ...int64) {
	cpu.Input.Push(values...)
}

// Output returns a copy of the output log.
func (cpu *Cpu) Output() []int64 {
	return slices.Clone(cpu.output)
}

// OutputLen returns the number of values in the output log.
func (cpu *Cpu) OutputLen() int {
	return len(cpu.output)
}

// OutputMark returns the log index at which the next Run's output starts.
func (cpu *Cpu) OutputMark() int {
	if cpu.Policy == OUTPUT_CLEAR {
		return 0
	}
	return len(cpu.output)
}

// OutputSince returns the values logged at or after index mark.
func (cpu *Cpu) OutputSince(mark int) []int64 {
	if mark >= len(cpu.output) {
		return nil
	}
	return slices.Clone(cpu.output[max(mark, 0):])
}

// ClearOutput empties the output log.
func (cpu *Cpu) ClearOutput() {
	cpu.output = nil
}

// Peek reads memory at addr.
func (cpu *Cpu) Peek(addr int64) (int64, error) {
	return cpu.Memory.Read(addr)
}

// Poke writes memory at addr, typically to patch a program before it runs.
func (cpu *Cpu) Poke(addr int64, value int64) error {
	return cpu.Memory.Write(addr, value)
}

// Clone returns an independent copy of the complete processor state.
func (cpu *Cpu) Clone() *Cpu {
	clone := *cpu
	clone.Memory = cpu.Memory.Clone()
	clone.Input = Queue{Data: slices.Clone(cpu.Input.Data)}
	clone.output = slices.Clone(cpu.output)
	return &clone
}

// Result returns a snapshot of the output log and halt state.
func (cpu *Cpu) Result() Result {
	return Result{
		Output: cpu.Output(),
		Halted: cpu.halted,
	}
}

// Address resolves the memory address of parameter index for the
// instruction at the current instruction pointer.
func (cpu *Cpu) Address(code Code, index int) (addr int64, err error) {
	slot := cpu.Ip + 1 + int64(index)

	switch code.Mode(index) {
	case MODE_POSITION:
		addr, err = cpu.Memory.Read(slot)
	case MODE_IMMEDIATE:
		addr = slot
	case MODE_RELATIVE:
		addr, err = cpu.Memory.Read(slot)
		addr += cpu.RelativeBase
	default:
		err = ErrModeInvalid
	}

	return
}

// Run executes instructions until the program halts or waits for input.
//
// A halted program returns with Result.Halted set. A program waiting
// for input returns with the instruction pointer on the input opcode, and
// resumes there on the next call to Run.
func (cpu *Cpu) Run() (res Result, err error) {
	if cpu.Policy == OUTPUT_CLEAR {
		cpu.ClearOutput()
	}

	for !cpu.halted {
		err = cpu.Step()
		if errors.Is(err, ErrHalted) {
			err = nil
			break
		}
		if errors.Is(err, ErrInputWait) {
			err = nil
			if cpu.Verbose {
				log.Debugf("cpu: %04d: input wait", cpu.Ip)
			}
			break
		}
		if err != nil {
			return
		}
	}

	res = cpu.Result()

	return
}

// Step executes a single instruction.
//
// ErrHalted is returned when the halt opcode is reached, and ErrInputWait
// when an input opcode finds the queue empty. Neither advances the
// instruction pointer.
func (cpu *Cpu) Step() (err error) {
	if cpu.halted {
		return ErrHalted
	}

	word, err := cpu.Memory.Read(cpu.Ip)
	if err != nil {
		return
	}

	code := Code(word)

	err = cpu.Execute(code)
	if err != nil {
		return
	}

	cpu.Ticks++

	return
}

// Execute executes code as the instruction at the current instruction
// pointer.
func (cpu *Cpu) Execute(code Code) (err error) {
	defer func() {
		if err != nil && err != ErrHalted && err != ErrInputWait {
			err = errors.Join(ErrOpcode{Ip: cpu.Ip, Word: code}, err)
		}
	}()

	op := code.Opcode()
	if cpu.Verbose {
		if in, derr := Decode(cpu.Memory, cpu.Ip); derr == nil {
			log.Debugf("cpu: %v (rb %d)", in, cpu.RelativeBase)
		}
	}

	var addr [3]int64
	for n := range op.Params() {
		addr[n], err = cpu.Address(code, n)
		if err != nil {
			err = errors.Join(errArg[n], err)
			return
		}
	}

	if w := op.Writes(); w >= 0 && code.Mode(w) == MODE_IMMEDIATE {
		err = errors.Join(errArg[w], ErrModeWrite)
		return
	}

	// Operand values, read through the resolved addresses.
	var val [3]int64
	for n := range op.Params() {
		if n == op.Writes() {
			continue
		}
		val[n], err = cpu.Memory.Read(addr[n])
		if err != nil {
			err = errors.Join(errArg[n], err)
			return
		}
	}

	next_ip := cpu.Ip + 1 + int64(op.Params())

	switch op {
	case OP_ADD:
		err = cpu.Memory.Write(addr[2], val[0]+val[1])
	case OP_MUL:
		err = cpu.Memory.Write(addr[2], val[0]*val[1])
	case OP_IN:
		value, ok := cpu.Input.Peek()
		if !ok {
			return ErrInputWait
		}
		err = cpu.Memory.Write(addr[0], value)
		if err == nil {
			cpu.Input.Pop()
		}
	case OP_OUT:
		cpu.output = append(cpu.output, val[0])
	case OP_JNZ:
		if val[0] != 0 {
			next_ip = val[1]
		}
	case OP_JZ:
		if val[0] == 0 {
			next_ip = val[1]
		}
	case OP_LT:
		err = cpu.Memory.Write(addr[2], boolWord(val[0] < val[1]))
	case OP_EQ:
		err = cpu.Memory.Write(addr[2], boolWord(val[0] == val[1]))
	case OP_ARB:
		cpu.RelativeBase += val[0]
	case OP_HALT:
		cpu.halted = true
		if cpu.Verbose {
			log.Debugf("cpu: %04d: halt after %d ticks", cpu.Ip, cpu.Ticks)
		}
		return ErrHalted
	default:
		err = ErrOpcodeInvalid
		return
	}

	if err != nil {
		return
	}

	cpu.Ip = next_ip

	return
}

func boolWord(cond bool) int64 {
	if cond {
		return 1
	}
	return 0
}
