// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "intcode",
	Short: "Run intcode programs and amplifier pipelines.",
	Long:  "Run intcode programs, amplifier pipelines, and Starlark driver scripts.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML run file")
	rootCmd.PersistentFlags().Int("memory-limit", 0, "processor memory limit in words (0 for unbounded)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(amplifyCmd)
	rootCmd.AddCommand(disasmCmd)
	rootCmd.AddCommand(scriptCmd)
}

func main() {
	log.SetOutput(os.Stderr)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
