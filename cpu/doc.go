// Package cpu implements the intcode processor.
//
// A processor owns a private, auto-growing memory loaded from a program of
// signed 64-bit words, an input queue, an output log, an instruction
// pointer (IP), and a relative base register. Each instruction word holds
// the opcode in its two low decimal digits and one addressing mode digit
// per parameter above them: position, immediate, or relative.
//
// Run executes until the program halts or an input instruction finds the
// queue empty. Waiting for input is not an error: the IP stays on the
// input instruction, and the next Run after AddInputs resumes there.
package cpu
