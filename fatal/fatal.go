// Package fatal terminates the program with a user friendly error message.
//
// All failures handled by this package print a message and the formatted error
// chain to stderr and exit with status 1. There is no recovery once one of the
// exit functions is called.
package fatal

import (
	"fmt"
	"io"
	"os"

	"github.com/TouchBistro/giveup/color"
	"github.com/TouchBistro/giveup/errors"
	"github.com/sirupsen/logrus"
)

// ExitCode is the status the process exits with on failure.
const ExitCode = 1

// Exiter writes failures and terminates the process.
// The zero value is ready to use and writes to os.Stderr, exits with os.Exit
// and styles the message when stderr is a terminal.
type Exiter struct {
	// Out is where failures are written. Defaults to os.Stderr.
	Out io.Writer
	// ExitFunc ends the process. Defaults to os.Exit.
	ExitFunc func(code int)
	// Color controls whether the message is emphasized.
	Color color.Mode
	// Logger, if set, receives a debug entry with the full error details
	// before the process exits.
	Logger logrus.FieldLogger
}

// Default is the Exiter used by the package level functions.
var Default = &Exiter{}

// ExitErr writes message followed by the formatted chain of err and exits.
func (e *Exiter) ExitErr(err error, message string) {
	if e.Logger != nil && err != nil {
		e.Logger.WithField("message", message).Debugf("Exiting due to error: %+v", err)
	}
	out := e.out()
	// Nothing can be done if stderr is unwritable, exit regardless.
	_, _ = io.WriteString(out, Message(message, err, color.Enabled(e.Color, out)))
	e.exit()
}

// ExitErrf is like ExitErr but formats the message according to a format specifier.
func (e *Exiter) ExitErrf(err error, format string, a ...interface{}) {
	e.ExitErr(err, fmt.Sprintf(format, a...))
}

// Exit writes message and exits.
func (e *Exiter) Exit(message string) {
	e.ExitErr(nil, message)
}

// Exitf is like Exit but formats the message according to a format specifier.
func (e *Exiter) Exitf(format string, a ...interface{}) {
	e.ExitErr(nil, fmt.Sprintf(format, a...))
}

func (e *Exiter) out() io.Writer {
	if e.Out == nil {
		return os.Stderr
	}
	return e.Out
}

func (e *Exiter) exit() {
	if e.ExitFunc == nil {
		os.Exit(ExitCode)
	}
	e.ExitFunc(ExitCode)
}

// Message returns the text written when exiting with message and err.
//
// The result has the form "<message>: <formatted chain of err>". Since the
// formatted chain is newline terminated no further newline is added.
// If err is nil only the message and a newline are returned.
// If message is empty only the formatted chain is returned.
// If styled is true the message is emphasized.
func Message(message string, err error, styled bool) string {
	if styled && message != "" {
		message = color.Bold(message)
	}
	if err == nil {
		return message + "\n"
	}
	body := errors.FormatChain(err)
	if message == "" {
		return body
	}
	return message + ": " + body
}

// ExitErr calls Default.ExitErr.
func ExitErr(err error, message string) {
	Default.ExitErr(err, message)
}

// ExitErrf calls Default.ExitErrf.
func ExitErrf(err error, format string, a ...interface{}) {
	Default.ExitErrf(err, format, a...)
}

// Exit calls Default.Exit.
func Exit(message string) {
	Default.Exit(message)
}

// Exitf calls Default.Exitf.
func Exitf(format string, a ...interface{}) {
	Default.Exitf(format, a...)
}
