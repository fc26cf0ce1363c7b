package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	if len(args) < 2 {
		printUsage(os.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	switch cmd {
	case "help", "-h", "--help":
		return runHelp(rest)
	case "version", "-v", "--version":
		fmt.Fprintf(os.Stdout, "html2pdf %s\n", Version)
		return ExitSuccess
	case "doctor":
		return runDoctorEntry(rest)
	case "convert":
		return runConvertEntry(rest)
	case "batch":
		return runBatchEntry(rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		printUsage(os.Stderr)
		return ExitUsage
	}
}

func runHelp(args []string) int {
	if len(args) == 0 {
		printUsage(os.Stdout)
		return ExitSuccess
	}
	switch args[0] {
	case "convert":
		printConvertUsage(os.Stdout)
	case "batch":
		printBatchUsage(os.Stdout)
	case "doctor":
		printDoctorUsage(os.Stdout)
	default:
		printUsage(os.Stdout)
	}
	return ExitSuccess
}

func runDoctorEntry(args []string) int {
	chromePath := ""
	for i, a := range args {
		if a == "--chrome-path" && i+1 < len(args) {
			chromePath = args[i+1]
		}
	}
	return runDoctorCmd(args, os.Stdout, chromePath)
}

func runConvertEntry(args []string) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	setupMaxProcs(args)

	if err := runConvertCmd(ctx, args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

func runBatchEntry(args []string) int {
	ctx, stop := notifyContext(context.Background())
	defer stop()

	setupMaxProcs(args)

	if err := runBatchCmd(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setupMaxProcs configures GOMAXPROCS for the container's CPU quota,
// logging what it did only when --verbose/-v was passed.
func setupMaxProcs(args []string) {
	verbose := false
	for _, a := range args {
		if a == "--verbose" || a == "-v" {
			verbose = true
		}
	}

	logger := func(string, ...interface{}) {}
	if verbose {
		logger = func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS is set to an
	// invalid value, in which case the Go runtime's own default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(logger))
}
