// Package pipeline composes processors into amplifier chains.
//
// Every stage runs its own copy of the same program, primed with a phase
// value. A value is handed from stage to stage, either once through the
// chain, or around a feedback loop until the last stage halts.
package pipeline

import (
	log "github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/cpu"
)

// Pipeline is an ordered set of stages sharing one program.
type Pipeline struct {
	Verbose bool       // Set to enable verbose logging.
	Stages  []*cpu.Cpu // Processors, in hand-off order.
	Rounds  int        // Rounds completed by the last Chain or Loop.
}

// New creates one stage per phase, each with its phase value queued as
// its first input.
func New(prog cpu.Program, phases ...int64) (pipe *Pipeline, err error) {
	if len(phases) == 0 {
		err = ErrNoStages
		return
	}

	pipe = &Pipeline{
		Stages: make([]*cpu.Cpu, len(phases)),
	}

	for n, phase := range phases {
		stage := cpu.NewCpu(prog)
		stage.AddInputs(phase)
		pipe.Stages[n] = stage
	}

	return
}

// NewFromText parses the program text and creates the pipeline.
func NewFromText(text string, phases ...int64) (pipe *Pipeline, err error) {
	prog, err := cpu.ParseProgram(text)
	if err != nil {
		return
	}

	return New(prog, phases...)
}

// Last returns the terminal stage.
func (pipe *Pipeline) Last() *cpu.Cpu {
	return pipe.Stages[len(pipe.Stages)-1]
}

// Halted returns true once the terminal stage has halted.
func (pipe *Pipeline) Halted() bool {
	return pipe.Last().Halted()
}

// Chain passes seed once through every stage, returning the output of the
// last stage.
func (pipe *Pipeline) Chain(seed int64) (signal int64, err error) {
	pipe.Rounds = 0

	signal, err = pipe.round(seed)
	if err != nil {
		return
	}

	pipe.Rounds = 1

	return
}

// Loop feeds the output of the last stage back into the first, one round
// at a time, until the last stage halts. The result is the final output
// of the last stage.
func (pipe *Pipeline) Loop(seed int64) (signal int64, err error) {
	pipe.Rounds = 0
	signal = seed

	for !pipe.Halted() {
		signal, err = pipe.round(signal)
		if err != nil {
			return
		}
		pipe.Rounds++
	}

	if pipe.Verbose {
		log.Debugf("pipeline: halted after %d rounds, signal %d", pipe.Rounds, signal)
	}

	return
}

// round runs every stage once, in order, handing each stage's single
// fresh output to the next.
func (pipe *Pipeline) round(value int64) (signal int64, err error) {
	signal = value

	for n, stage := range pipe.Stages {
		stage.Verbose = pipe.Verbose

		mark := stage.OutputMark()
		stage.AddInputs(signal)

		_, err = stage.Run()
		if err != nil {
			err = ErrStage{Stage: n, Err: err}
			return
		}

		fresh := stage.OutputSince(mark)
		if len(fresh) != 1 {
			err = ErrStageOutput{Stage: n, Round: pipe.Rounds, Count: len(fresh)}
			return
		}

		signal = fresh[0]

		if pipe.Verbose {
			log.Debugf("pipeline: round %d stage %d -> %d (halted %v)", pipe.Rounds, n, signal, stage.Halted())
		}
	}

	return
}
