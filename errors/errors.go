// Package errors defines the error values used by giveup and the formatting
// of an error's chain of causes into user facing text.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error represents a structured error. It contains details about the error
// and where it originated.
type Error struct {
	// Kind is the category of error.
	Kind Kind
	// Reason is a human-readable message containing
	// the details of the error.
	Reason string
	// Op is the operation being performed, usually the
	// name of a function or method being invoked.
	Op Op
	// Err is the underlying error that triggered this one.
	// If no underlying error occurred, it will be nil.
	Err error
}

// Op describes an operation, usually a function or method name.
type Op string

// Kind identifies the category of an error.
//
// Kind is used to group errors based on how they can be actioned.
type Kind uint8

const (
	Unspecified Kind = iota // Error that does not fall into any category.
	Invalid                 // Invalid operation on an item.
	Internal                // Internal error or inconsistency.
	IO                      // An OS level I/O error.
	NotFound                // Item does not exist.
)

func (k Kind) String() string {
	switch k {
	case Unspecified:
		return "unspecified error"
	case Invalid:
		return "invalid operation"
	case Internal:
		return "internal error"
	case IO:
		return "I/O error"
	case NotFound:
		return "not found"
	}
	return "unknown error kind"
}

// New creates an error value from its arguments.
// There must be at least one argument or New panics.
// The type of each argument determines what field of Error
// it is assigned to. If an argument has an invalid type New panics.
func New(args ...interface{}) error {
	if len(args) == 0 {
		panic("errors.New called with no arguments")
	}
	e := &Error{}
	for _, arg := range args {
		switch arg := arg.(type) {
		case Kind:
			e.Kind = arg
		case string:
			e.Reason = arg
		case Op:
			e.Op = arg
		case *Error:
			// Make a copy so error chains are immutable.
			copy := *arg
			e.Err = &copy
		case error:
			e.Err = arg
		default:
			panic(fmt.Sprintf("unknown type %T, value %v passed to errors.New", arg, arg))
		}
	}
	return e
}

func (e *Error) Error() string {
	sb := &strings.Builder{}
	if e.Kind != Unspecified {
		pad(sb, ": ")
		sb.WriteString(e.Kind.String())
	}
	if e.Reason != "" {
		pad(sb, ": ")
		sb.WriteString(e.Reason)
	}
	if e.Err != nil {
		pad(sb, ": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

// Description returns the kind and reason of e without the error it wraps.
// It allows FormatChain to render each link of a chain on its own line.
func (e *Error) Description() string {
	sb := &strings.Builder{}
	if e.Kind != Unspecified {
		sb.WriteString(e.Kind.String())
	}
	if e.Reason != "" {
		pad(sb, ": ")
		sb.WriteString(e.Reason)
	}
	return sb.String()
}

func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		// If '%+v' print a detailed description for debugging purposes.
		if s.Flag('+') {
			sb := &strings.Builder{}
			if e.Op != "" {
				pad(sb, ": ")
				sb.WriteString(string(e.Op))
			}
			if e.Kind != Unspecified {
				pad(sb, ": ")
				sb.WriteString(e.Kind.String())
			}
			if e.Reason != "" {
				pad(sb, ": ")
				sb.WriteString(e.Reason)
			}
			if e.Err != nil {
				if prevErr, ok := e.Err.(*Error); ok {
					pad(sb, ":\n\t")
					fmt.Fprintf(sb, "%+v", prevErr)
				} else {
					pad(sb, ": ")
					sb.WriteString(e.Err.Error())
				}
			}
			fmt.Fprint(s, sb.String())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// pad appends s to sb if b already has some data.
func pad(sb *strings.Builder, s string) {
	if sb.Len() == 0 {
		return
	}
	sb.WriteString(s)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// List contains multiple errors that occurred while performing an operation.
type List []error

func (e List) Error() string {
	strs := make([]string, len(e))
	for i, err := range e {
		strs[i] = err.Error()
	}
	return strings.Join(strs, "\n")
}

func (e List) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		// If '%+v' print a detailed description of each error.
		if s.Flag('+') {
			sb := &strings.Builder{}
			for i, err := range e {
				if i > 0 {
					sb.WriteByte('\n')
				}
				fmt.Fprintf(sb, "%+v", err)
			}
			fmt.Fprint(s, sb.String())
			return
		}
		fallthrough
	case 's':
		fmt.Fprint(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// The following functions are wrappers over the standard library errors package functions.
// This is so that this package can be used exclusively for errors.

// Unwrap calls the standard library errors.Unwrap.
func Unwrap(err error) error {
	return stderrors.Unwrap(err)
}

// Is reports whether any error in err's chain matches target.
// See the standard library errors.Is for details.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so, sets
// target to that error value and returns true. See the standard library
// errors.As for details.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
