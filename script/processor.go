package script

import (
	"fmt"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"

	"github.com/ezrec/intcode/cpu"
)

// Processor exposes a cpu.Cpu to scripts.
type Processor struct {
	Cpu *cpu.Cpu

	frozen bool
}

var (
	_ starlark.Value    = (*Processor)(nil)
	_ starlark.HasAttrs = (*Processor)(nil)
)

var processorMethods = map[string]*starlark.Builtin{
	"add_inputs": starlark.NewBuiltin("add_inputs", processorAddInputs),
	"run":        starlark.NewBuiltin("run", processorRun),
	"peek":       starlark.NewBuiltin("peek", processorPeek),
	"poke":       starlark.NewBuiltin("poke", processorPoke),
}

func (p *Processor) String() string {
	return fmt.Sprintf("<processor ip=%d halted=%v>", p.Cpu.Ip, p.Cpu.Halted())
}

func (p *Processor) Type() string         { return "processor" }
func (p *Processor) Freeze()              { p.frozen = true }
func (p *Processor) Truth() starlark.Bool { return starlark.True }

func (p *Processor) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable: %s", p.Type())
}

func (p *Processor) Attr(name string) (starlark.Value, error) {
	switch name {
	case "output":
		return intList(p.Cpu.Output()), nil
	case "halted":
		return starlark.Bool(p.Cpu.Halted()), nil
	case "ip":
		return starlark.MakeInt64(p.Cpu.Ip), nil
	case "relative_base":
		return starlark.MakeInt64(p.Cpu.RelativeBase), nil
	case "ticks":
		return starlark.MakeInt(p.Cpu.Ticks), nil
	}

	method, ok := processorMethods[name]
	if !ok {
		return nil, nil
	}
	return method.BindReceiver(p), nil
}

func (p *Processor) AttrNames() []string {
	names := []string{"halted", "ip", "output", "relative_base", "ticks"}
	for name := range processorMethods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (p *Processor) mutable(fn *starlark.Builtin) error {
	if p.frozen {
		return fmt.Errorf("%s: %w", fn.Name(), ErrFrozen)
	}
	return nil
}

func processorAddInputs(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p := fn.Receiver().(*Processor)
	if err := p.mutable(fn); err != nil {
		return nil, err
	}
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%s: unexpected keyword arguments", fn.Name())
	}

	values, err := toInt64s(fn.Name(), args)
	if err != nil {
		return nil, err
	}

	p.Cpu.AddInputs(values...)

	return starlark.None, nil
}

func processorRun(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p := fn.Receiver().(*Processor)
	if err := p.mutable(fn); err != nil {
		return nil, err
	}
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs); err != nil {
		return nil, err
	}

	res, err := p.Cpu.Run()
	if err != nil {
		return nil, err
	}

	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"output": intList(res.Output),
		"halted": starlark.Bool(res.Halted),
	}), nil
}

func processorPeek(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p := fn.Receiver().(*Processor)

	var addr starlark.Int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &addr); err != nil {
		return nil, err
	}

	a, err := toInt64(fn.Name(), addr)
	if err != nil {
		return nil, err
	}

	value, err := p.Cpu.Peek(a)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt64(value), nil
}

func processorPoke(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	p := fn.Receiver().(*Processor)
	if err := p.mutable(fn); err != nil {
		return nil, err
	}

	var addr, value starlark.Int
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &addr, &value); err != nil {
		return nil, err
	}

	values, err := toInt64s(fn.Name(), starlark.Tuple{addr, value})
	if err != nil {
		return nil, err
	}

	return starlark.None, p.Cpu.Poke(values[0], values[1])
}
