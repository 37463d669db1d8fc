package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/airnav-tools/nasr/internal/cli"
	"github.com/airnav-tools/nasr/pkg/nasr"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(nasr.ExitPanic)
		}
	}()

	if os.Getenv("NASR_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(nasr.ExitCodeForError(err))
	}
}
