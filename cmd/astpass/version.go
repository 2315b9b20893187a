package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// version is set with -ldflags "-X main.version=...".
var version = "devel"

func (a *app) cmdVersion(args []string) (int, error) {
	fs := newFlagSet("version", a.stderr)
	if err := fs.Parse(args); err != nil {
		return exitError, err
	}

	fmt.Fprintf(a.stdout, "astpass %s %s\n", buildVersion(), runtime.Version())
	return exitOK, nil
}

func buildVersion() string {
	if version != "devel" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}
