package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program.txt",
	Short: "Run a single program.",
	Long: `Run a single program, feeding it the --input values, then values read
from standard input when --stdin is set. Each output value is written to
standard output on its own line.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		prog := loadProgram(cfg, args)

		inputs, err := cmd.Flags().GetInt64Slice("input")
		if err != nil {
			log.Fatal(err)
		}
		if !cmd.Flags().Changed("input") {
			inputs = cfg.Inputs
		}

		emu := emulator.NewEmulator(prog)
		emu.Verbose = getFlag(cmd, "verbose")
		emu.Cpu.Memory.Limit = memoryLimit(cmd, cfg)

		emu.Inputs = []io.Channel{io.NewBuffer(inputs...)}
		if getFlag(cmd, "stdin") {
			emu.Inputs = append(emu.Inputs, &io.Tape{Input: os.Stdin})
		}
		emu.Output = &io.Tape{Output: os.Stdout}

		err = emu.Execute()
		if err != nil {
			log.Fatal(err)
		}

		if isTerminal() {
			report("ticks", emu.Cpu.Ticks)
		}
		if getFlag(cmd, "dump") {
			report("memory", joinValues(emu.Cpu.Memory.Snapshot()))
		}
	},
}

func init() {
	runCmd.Flags().Int64SliceP("input", "i", nil, "input values, comma separated")
	runCmd.Flags().Bool("stdin", false, "read further input values from standard input")
	runCmd.Flags().Bool("dump", false, "print memory after the program halts")
}
