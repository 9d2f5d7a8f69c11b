// Package giveup provides user geared program termination for CLIs.
//
// It is meant to be used in place of panicking or hand written
// print-and-exit code when an error occurs that the program cannot recover from:
//
//	cfg := giveup.Try(config.Read(path)).
//		Hint("Create a configuration file").
//		Example("giveup init").
//		Giveup("Missing configuration file")
//
// On failure the message, the error and its causes, and the hint are written
// to stderr, then the program exits with status 1:
//
//	Missing configuration file: not found: no config file at /home/me/.giveuprc.yml
//	Caused by: open /home/me/.giveuprc.yml
//	Caused by: no such file or directory
//	Create a configuration file: `giveup init`
//
// The fatal, hint and errors packages provide the same functionality for
// plain error values.
package giveup

import (
	"github.com/TouchBistro/giveup/fatal"
	"github.com/TouchBistro/giveup/hint"
)

// Result is the outcome of a fallible computation.
type Result[T any] struct {
	value T
	err   error
}

// Try creates a Result from the return values of a function.
func Try[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Check creates a Result from a function that only returns an error.
func Check(err error) Result[struct{}] {
	return Result[struct{}]{err: err}
}

// Hint attaches a hint to the error of r. It has no effect if r succeeded.
func (r Result[T]) Hint(text string) Hinted[T] {
	h := Hinted[T]{value: r.value}
	if r.err != nil {
		h.err = hint.Wrap(r.err, text).(*hint.Error)
	}
	return h
}

// Giveup returns the value of r if it succeeded. Otherwise it writes message
// and the error to stderr and exits the program.
func (r Result[T]) Giveup(message string) T {
	return giveup(r.value, r.err, message)
}

// Unwrap returns the value and error of r.
func (r Result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Hinted is a Result whose error, if any, has a hint attached.
type Hinted[T any] struct {
	value T
	err   *hint.Error
}

// Example sets the example of the hint. It has no effect if h succeeded.
// Setting an example again replaces the previous one.
func (h Hinted[T]) Example(text string) Hinted[T] {
	if h.err != nil {
		h.err.SetExample(text)
	}
	return h
}

// Giveup returns the value of h if it succeeded. Otherwise it writes message,
// the error and the hint to stderr and exits the program.
func (h Hinted[T]) Giveup(message string) T {
	_, err := h.Unwrap()
	return giveup(h.value, err, message)
}

// Unwrap returns the value and error of h.
func (h Hinted[T]) Unwrap() (T, error) {
	if h.err == nil {
		return h.value, nil
	}
	return h.value, h.err
}

func giveup[T any](value T, err error, message string) T {
	if err == nil {
		return value
	}
	fatal.ExitErr(err, message)
	// Only reached if fatal.Default was configured not to exit.
	var zero T
	return zero
}
