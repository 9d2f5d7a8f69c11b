// Package cli provides general functionality for all CLI commands.
package cli

import (
	"fmt"
	"io"

	"github.com/TouchBistro/giveup/color"
	"github.com/TouchBistro/giveup/config"
	"github.com/TouchBistro/giveup/fatal"
	"github.com/sirupsen/logrus"
)

// Container stores all the dependencies that can be used by commands.
type Container struct {
	Config  config.Config
	Logger  *logrus.Logger
	Exiter  *fatal.Exiter
	Verbose bool
	// Stdin, Stdout and Stderr are the streams commands use for I/O.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// ExitError is used to signal that the CLI should exit with the given
// message. Err, if set, is formatted with its causes and hints after Message.
type ExitError struct {
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit terminates the program with err using c.Exiter.
// If err is an ExitError its message is used, otherwise a generic one.
func (c *Container) Exit(err error) {
	exitErr, ok := err.(*ExitError)
	if !ok {
		exitErr = &ExitError{Message: "Error", Err: err}
	}
	c.Exiter.ExitErr(exitErr.Err, exitErr.Message)
}

// Style applies fn to s if output written to w should be styled.
func (c *Container) Style(w io.Writer, fn func(string) string, s string) string {
	if !color.Enabled(c.Exiter.Color, w) {
		return s
	}
	return fn(s)
}

// Success prints a success message to stdout.
func (c *Container) Success(format string, a ...interface{}) {
	fmt.Fprintln(c.Stdout, c.Style(c.Stdout, color.Green, "✔ "+fmt.Sprintf(format, a...)))
}

// Warn prints a warning to stderr.
func (c *Container) Warn(format string, a ...interface{}) {
	fmt.Fprintln(c.Stderr, c.Style(c.Stderr, color.Yellow, fmt.Sprintf(format, a...)))
}

// NewLogger creates a logger that writes to w.
// Debug messages are only logged if verbose is true.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}
