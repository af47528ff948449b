package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/cpu"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] program.txt",
	Short: "Disassemble a program.",
	Long: `Print one decoded instruction per line. Words that do not decode as an
instruction are printed as .word data.`,
	Aliases: []string{"dis"},
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		prog := loadProgram(cfg, args)

		for _, in := range cpu.Disassemble(prog) {
			fmt.Println(in.String())
		}
	},
}
