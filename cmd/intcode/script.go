package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script [flags] driver.star",
	Short: "Run a Starlark driver script.",
	Long: `Run a Starlark driver script. Scripts may call processor(), chain(),
loop() and search() to build and drive processors.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		host := &script.Host{
			Verbose: getFlag(cmd, "verbose"),
			Output:  os.Stdout,
		}

		_, err = host.Exec(args[0], src)
		if err != nil {
			log.Fatal(err)
		}
	},
}
