package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if len(args) > 0 {
		switch args[0] {
		case "serve":
			return runServe(args[1:])
		case "version", "--version":
			fmt.Println("hwpxgen " + Version)
			return ExitSuccess
		case "help", "--help", "-h":
			printUsage(os.Stdout)
			return ExitSuccess
		}
	}

	return runGenerate(args)
}
