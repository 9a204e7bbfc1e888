package main

import (
	"fmt"
	"io"
	"os"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

const (
	exitOK       = 0
	exitUsage    = 1
	exitRejected = 2
)

func main() {
	os.Exit(mainAux(os.Args[1:]))
}

func mainAux(args []string) int {
	if handled, code := dispatchSubcommand(args); handled {
		return code
	}
	if len(args) > 0 {
		fmt.Fprintf(stderr, "unknown subcommand %q\n", args[0])
	}
	printRootUsage()
	return exitUsage
}
