// Command sketch checks, resolves, previews and shows window sketches.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/sketch/internal/sketch"
)

// Build-time variables (set via ldflags)
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on success,
// 2 for usage errors and 1 for everything else.
func run(args []string, stdout, stderr io.Writer) int {
	return runApp(newApp(stdout, stderr), args)
}

func runApp(a *app, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)

	err := root.Execute()
	if err == nil {
		return 0
	}
	printError(a.stderr, err)

	var uerr *usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}

func printError(w io.Writer, err error) {
	var serr *sketch.Error
	if errors.As(err, &serr) {
		fmt.Fprintln(w, serr.Diagnostic())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

// usageError marks errors caused by bad arguments rather than bad input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
