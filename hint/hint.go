// Package hint attaches remediation hints to errors.
//
// A hint is short advice telling the user how to fix the problem that caused
// an error, optionally accompanied by an example of the action to take:
//
//	err = hint.Wrap(err, "Create a configuration file")
//	err = hint.WithExample(err, "giveup init")
//
// The wrapped error is left untouched and stays reachable through Unwrap,
// so errors.Is and errors.As keep working on hinted errors.
package hint

import (
	"errors"
	"fmt"
)

// Hint is remediation text with an optional example.
type Hint struct {
	text       string
	example    string
	hasExample bool
}

// New creates a hint without an example.
func New(text string) Hint {
	return Hint{text: text}
}

// Text returns the hint text.
func (h Hint) Text() string {
	return h.text
}

// Example returns the example and whether one was set.
func (h Hint) Example() (string, bool) {
	return h.example, h.hasExample
}

// String renders the hint as "<hint>" or "<hint>: `<example>`".
func (h Hint) String() string {
	if !h.hasExample {
		return h.text
	}
	return fmt.Sprintf("%s: `%s`", h.text, h.example)
}

// Error is an error with a hint attached to it.
type Error struct {
	err  error
	hint Hint
}

// Wrap attaches a hint with the given text to err.
// If err is nil, Wrap returns nil.
func Wrap(err error, text string) error {
	if err == nil {
		return nil
	}
	return &Error{err: err, hint: New(text)}
}

// WithExample sets the example of the hint attached to err.
// The nearest hint in err's chain is modified and err itself is returned.
// Calling WithExample again replaces the previous example.
// If err is nil or has no hint in its chain, err is returned unchanged.
func WithExample(err error, example string) error {
	var e *Error
	if errors.As(err, &e) {
		e.SetExample(example)
	}
	return err
}

// SetExample sets the example of the hint, replacing any previous one.
func (e *Error) SetExample(example string) {
	e.hint.example = example
	e.hint.hasExample = true
}

// Hint returns the rendered hint.
func (e *Error) Hint() string {
	return e.hint.String()
}

// HintValue returns the hint attached to e.
func (e *Error) HintValue() Hint {
	return e.hint
}

func (e *Error) Error() string {
	return e.err.Error() + "\n" + e.hint.String()
}

func (e *Error) Unwrap() error {
	return e.err
}
