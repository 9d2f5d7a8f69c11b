// Package color provides terminal styling for text shown to users.
package color

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"golang.org/x/term"
)

// Mode controls when styling is applied.
type Mode uint8

const (
	Auto   Mode = iota // Style only when writing to a terminal.
	Always             // Always style.
	Never              // Never style.
)

func (m Mode) String() string {
	switch m {
	case Auto:
		return "auto"
	case Always:
		return "always"
	case Never:
		return "never"
	}
	return "unknown"
}

// ParseMode parses the string form of a Mode. The empty string is Auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "always":
		return Always, nil
	case "never":
		return Never, nil
	}
	return Auto, fmt.Errorf("unknown color mode %q, must be one of auto, always, never", s)
}

// Enabled reports whether text written to w should be styled under mode.
// In Auto mode styling is used if NO_COLOR is not set and w is a terminal.
func Enabled(mode Mode, w io.Writer) bool {
	switch mode {
	case Always:
		return true
	case Never:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func style(attrs ...fcolor.Attribute) func(string) string {
	c := fcolor.New(attrs...)
	// Callers decide if styling applies, so never let fatih/color's
	// stdout detection turn it off.
	c.EnableColor()
	return func(s string) string {
		return c.Sprint(s)
	}
}

var (
	bold   = style(fcolor.Bold)
	green  = style(fcolor.FgGreen)
	yellow = style(fcolor.FgYellow)
)

// Bold creates a bold string
func Bold(str string) string {
	return bold(str)
}

// Green creates a green colored string
func Green(str string) string {
	return green(str)
}

// Yellow creates a yellow colored string
func Yellow(str string) string {
	return yellow(str)
}
