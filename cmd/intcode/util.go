package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/cpu"
)

// getFlag gets an expected boolean flag, exiting if it is not defined.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		log.Fatal(err)
	}

	return r
}

// loadConfig reads the run file named by --config, or returns an empty
// configuration.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		log.Fatal(err)
	}

	if len(path) == 0 {
		return &config.Config{}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatal(err)
	}

	log.Debugf("intcode: config %v", path)

	return cfg
}

// loadProgram reads the program named on the command line, falling back
// to the one named by the run file.
func loadProgram(cfg *config.Config, args []string) cpu.Program {
	if len(args) > 0 {
		// Command line paths are relative to the working directory.
		path, err := filepath.Abs(args[0])
		if err != nil {
			log.Fatal(err)
		}
		cfg.Program = path
	}

	if len(cfg.Program) == 0 {
		log.Fatal("intcode: no program given")
	}

	prog, err := cfg.LoadProgram()
	if err != nil {
		log.Fatal(err)
	}

	log.Debugf("intcode: %v: %d words", cfg.ProgramPath(), len(prog))

	return prog
}

// memoryLimit applies --memory-limit over the run file setting.
func memoryLimit(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("memory-limit") {
		limit, err := cmd.Flags().GetInt("memory-limit")
		if err != nil {
			log.Fatal(err)
		}
		return limit
	}

	return cfg.MemoryLimit
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// report prints a result, labelled when stdout is a terminal.
func report(label string, value any) {
	if isTerminal() {
		fmt.Printf("%s: %v\n", label, value)
	} else {
		fmt.Println(value)
	}
}

func joinValues(values []int64) string {
	words := make([]string, len(values))
	for n, value := range values {
		words[n] = fmt.Sprintf("%d", value)
	}
	return strings.Join(words, ",")
}
