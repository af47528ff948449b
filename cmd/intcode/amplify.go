package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/pipeline"
)

var amplifyCmd = &cobra.Command{
	Use:     "amplify [flags] program.txt",
	Short:   "Run an amplifier pipeline.",
	Long:    `Run one processor per phase value, passing a signal from each to the next.`,
	Aliases: []string{"amp"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		prog := loadProgram(cfg, args)
		applyAmplifyFlags(cmd, cfg)

		if len(cfg.Phases) == 0 {
			log.Fatal(config.ErrPhasesMissing)
		}

		verbose := getFlag(cmd, "verbose")

		if cfg.Search {
			best, err := pipeline.Search(prog, cfg.Phases, cfg.Seed, cfg.Feedback)
			if err != nil {
				log.Fatal(err)
			}
			report("signal", best.Signal)
			report("phases", joinValues(best.Phases))
			return
		}

		signal, rounds, err := amplify(prog, cfg, memoryLimit(cmd, cfg), verbose)
		if err != nil {
			log.Fatal(err)
		}
		report("signal", signal)
		if isTerminal() {
			report("rounds", rounds)
		}
	},
}

func init() {
	amplifyCmd.Flags().Int64SliceP("phases", "p", nil, "phase values, one per stage")
	amplifyCmd.Flags().Int64P("seed", "s", 0, "signal fed to the first stage")
	amplifyCmd.Flags().BoolP("feedback", "f", false, "loop the last stage back to the first")
	amplifyCmd.Flags().Bool("search", false, "try every ordering of the phases")
}

// applyAmplifyFlags overrides run file settings with explicit flags.
func applyAmplifyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	var err error
	if flags.Changed("phases") {
		cfg.Phases, err = flags.GetInt64Slice("phases")
	}
	if err == nil && flags.Changed("seed") {
		cfg.Seed, err = flags.GetInt64("seed")
	}
	if err == nil && flags.Changed("feedback") {
		cfg.Feedback, err = flags.GetBool("feedback")
	}
	if err == nil && flags.Changed("search") {
		cfg.Search, err = flags.GetBool("search")
	}
	if err != nil {
		log.Fatal(err)
	}
}

func amplify(prog cpu.Program, cfg *config.Config, limit int, verbose bool) (signal int64, rounds int, err error) {
	pipe, err := pipeline.New(prog, cfg.Phases...)
	if err != nil {
		return
	}

	pipe.Verbose = verbose
	for _, stage := range pipe.Stages {
		stage.Memory.Limit = limit
	}

	if cfg.Feedback {
		signal, err = pipe.Loop(cfg.Seed)
	} else {
		signal, err = pipe.Chain(cfg.Seed)
	}

	rounds = pipe.Rounds

	return
}
