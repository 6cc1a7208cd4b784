package main

import (
	"errors"
	"fmt"
	"io"
	"navigation-service/internal/domain"
	"os"

	"github.com/joho/godotenv"
)

// inputError marks unusable command-line input such as a non-numeric
// angle or a missing flag.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }

func (e *inputError) Unwrap() error { return e.err }

func isInputError(err error) bool {
	var ie *inputError
	return errors.As(err, &ie) || domain.IsRangeError(err)
}

// report prints err and returns the process exit code: 2 for bad input,
// 1 for everything else.
func report(w io.Writer, err error) int {
	if isInputError(err) {
		fmt.Fprintf(w, "Input Error: %v\n", err)
		return 2
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}

func main() {
	// A missing .env is normal for the CLI.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(report(os.Stderr, err))
	}
}
