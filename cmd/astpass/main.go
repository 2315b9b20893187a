// Command astpass runs tree passes over YAML tree files and Go sources.
//
// Usage:
//
//	astpass run [-config file] [-passes list] [-no-usage] [-o pretty|yaml|none] file
//	astpass usage [-config file] file
//	astpass watch [-config file] [-passes list] [-no-usage] [-o pretty|yaml|none] file
//	astpass shell [-config file] [file]
//	astpass version
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	exitOK          = 0
	exitError       = 1
	exitDiagnostics = 2
)

func main() {
	os.Exit(runCLI(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries the output streams of a command.
type app struct {
	stdout io.Writer
	stderr io.Writer
}

func runCLI(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	if len(args) == 0 {
		a.printUsage(stderr)
		return exitError
	}

	var code int
	var err error
	switch args[0] {
	case "run":
		code, err = a.cmdRun(args[1:])
	case "usage":
		code, err = a.cmdUsage(args[1:])
	case "watch":
		code, err = a.cmdWatch(args[1:])
	case "shell":
		code, err = a.cmdShell(args[1:])
	case "version":
		code, err = a.cmdVersion(args[1:])
	case "help", "-h", "-help", "--help":
		a.printUsage(stdout)
		return exitOK
	default:
		err = errors.Errorf("unknown command %q, see astpass help", args[0])
	}

	if err != nil {
		fmt.Fprintf(stderr, "astpass: %s\n", err)
		return exitError
	}
	return code
}

func (a *app) printUsage(w io.Writer) {
	fmt.Fprint(w, `astpass runs constant branch pruning, call-only function inlining,
normalization and variable usage analysis over trees.

Usage:

	astpass <command> [flags] [file]

Commands:

	run      run the configured passes over a file and print the result
	usage    report unused variables and variables used before definition
	watch    rerun the passes whenever the file changes
	shell    interactive session over a tree
	version  print the version

Files are YAML trees (.yaml, .yml) or Go sources (.go).
Run "astpass <command> -h" for the flags of a command.
`)
}
