// Package script hosts Starlark driver scripts for intcode programs.
//
// Scripts build processors and pipelines with the predeclared functions
// processor, chain, loop, and search:
//
//	p = processor("3,0,4,0,99")
//	p.add_inputs(7)
//	print(p.run().output)
//	print(loop(text, [9, 8, 7, 6, 5]))
package script

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/pipeline"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrFrozen = errors.New(f("processor frozen"))
	ErrNotInt = errors.New(f("not a 64-bit integer"))
)

// Host runs scripts with the intcode builtins predeclared.
type Host struct {
	Verbose bool      // If set, processors log their execution.
	Output  io.Writer // Destination of print(). Nil discards.
}

// Predeclared returns the builtins visible to scripts.
func (host *Host) Predeclared() starlark.StringDict {
	return starlark.StringDict{
		"processor": starlark.NewBuiltin("processor", host.processor),
		"chain":     starlark.NewBuiltin("chain", host.pipe),
		"loop":      starlark.NewBuiltin("loop", host.pipe),
		"search":    starlark.NewBuiltin("search", host.search),
		"struct":    starlark.NewBuiltin("struct", starlarkstruct.Make),
	}
}

// Exec runs the script src, which may be a string, []byte, or io.Reader,
// and returns its global variables.
func (host *Host) Exec(filename string, src any) (globals starlark.StringDict, err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			if host.Output != nil {
				fmt.Fprintln(host.Output, msg)
			}
		},
	}

	if host.Verbose {
		log.Debugf("script: exec %v", filename)
	}

	opts := syntax.FileOptions{}
	globals, err = starlark.ExecFileOptions(&opts, thread, filename, src, host.Predeclared())

	return
}

// Exec runs a script with a default host writing to out.
func Exec(filename string, src any, out io.Writer) (starlark.StringDict, error) {
	host := &Host{Output: out}
	return host.Exec(filename, src)
}

func (host *Host) processor(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text); err != nil {
		return nil, err
	}

	c, err := cpu.NewCpuFromText(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	c.Verbose = host.Verbose

	return &Processor{Cpu: c}, nil
}

// pipe implements both chain() and loop().
func (host *Host) pipe(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	var phases starlark.Iterable
	var seed starlark.Int = starlark.MakeInt(0)
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text, "phases", &phases, "seed?", &seed); err != nil {
		return nil, err
	}

	order, err := iterInt64s(fn.Name(), phases)
	if err != nil {
		return nil, err
	}
	start, err := toInt64(fn.Name(), seed)
	if err != nil {
		return nil, err
	}

	pipe, err := pipeline.NewFromText(text, order...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}
	pipe.Verbose = host.Verbose

	var signal int64
	if fn.Name() == "loop" {
		signal, err = pipe.Loop(start)
	} else {
		signal, err = pipe.Chain(start)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	return starlark.MakeInt64(signal), nil
}

func (host *Host) search(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	var phases starlark.Iterable
	var seed starlark.Int = starlark.MakeInt(0)
	var feedback bool
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "text", &text, "phases", &phases, "seed?", &seed, "feedback?", &feedback); err != nil {
		return nil, err
	}

	set, err := iterInt64s(fn.Name(), phases)
	if err != nil {
		return nil, err
	}
	start, err := toInt64(fn.Name(), seed)
	if err != nil {
		return nil, err
	}

	prog, err := cpu.ParseProgram(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	best, err := pipeline.Search(prog, set, start, feedback)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Name(), err)
	}

	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"signal": starlark.MakeInt64(best.Signal),
		"phases": intList(best.Phases),
	}), nil
}

func intList(values []int64) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeInt64(value)
	}
	return starlark.NewList(elems)
}

func toInt64(name string, v starlark.Value) (value int64, err error) {
	i, ok := v.(starlark.Int)
	if !ok {
		err = fmt.Errorf("%s: got %s: %w", name, v.Type(), ErrNotInt)
		return
	}

	value, ok = i.Int64()
	if !ok {
		err = fmt.Errorf("%s: %v: %w", name, i, ErrNotInt)
	}

	return
}

func toInt64s(name string, values starlark.Tuple) (out []int64, err error) {
	out = make([]int64, len(values))
	for n, v := range values {
		out[n], err = toInt64(name, v)
		if err != nil {
			return
		}
	}
	return
}

func iterInt64s(name string, values starlark.Iterable) (out []int64, err error) {
	it := values.Iterate()
	defer it.Done()

	var v starlark.Value
	for it.Next(&v) {
		var value int64
		value, err = toInt64(name, v)
		if err != nil {
			return
		}
		out = append(out, value)
	}

	return
}
