package simplearg

import (
	"fmt"
	"os"
)

// ParseArgs dispatches args to params. It returns the cursor so the caller
// can read whatever a StopAt option left behind, and the error if parsing
// failed. Empty args is not an error.
func ParseArgs(params Params, args []string, opts ...parseOpt) (*Arguments, error) {
	a := New(args)
	if a.Empty() || a.Parse(params, opts...) {
		return a, nil
	}
	return a, a.Err()
}

// Parse dispatches the program's arguments to params. On failure the error
// text is printed to stderr and the program exits with status 2.
func Parse(params Params, opts ...parseOpt) *Arguments {
	a, err := ParseArgs(params, os.Args[1:], opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(2)
	}
	return a
}
