package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args[1:], DefaultEnv()))
}

// runMain parses args, runs one generation and returns the exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		fmt.Fprintln(env.Stderr, "Run 'resumaker --help' for usage.")
		return exitCodeFor(err)
	}

	if flags.common.version {
		fmt.Fprintf(env.Stdout, "resumaker %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	if err := run(ctx, positional, flags, env); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}
