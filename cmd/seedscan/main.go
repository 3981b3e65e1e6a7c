package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/seedscan/internal/cli"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(seedscan.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(seedscan.ExitCodeForError(err))
	}
}
