package pipeline

import (
	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
)

// Best is the strongest signal found by Search, and the phase order that
// produced it.
type Best struct {
	Signal int64
	Phases []int64
}

// Search runs a fresh pipeline for every ordering of phases and returns
// the ordering with the highest signal. With feedback set, each pipeline
// is driven by Loop, otherwise by Chain.
func Search(prog cpu.Program, phases []int64, seed int64, feedback bool) (best Best, err error) {
	if len(phases) == 0 {
		err = ErrNoStages
		return
	}

	found := false
	for order := range internal.Permutations(phases) {
		var pipe *Pipeline
		pipe, err = New(prog, order...)
		if err != nil {
			return
		}

		var signal int64
		if feedback {
			signal, err = pipe.Loop(seed)
		} else {
			signal, err = pipe.Chain(seed)
		}
		if err != nil {
			return
		}

		if !found || signal > best.Signal {
			best = Best{Signal: signal, Phases: order}
			found = true
		}
	}

	return
}
