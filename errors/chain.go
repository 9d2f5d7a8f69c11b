package errors

import (
	stderrors "errors"
	"strings"
)

// causePrefix is written before the description of every cause in a chain.
const causePrefix = "Caused by: "

var causeIndent = strings.Repeat(" ", len(causePrefix))

// Describer is implemented by errors that can describe themselves without
// including the text of the error they wrap.
type Describer interface {
	Description() string
}

// Hinter is implemented by errors that carry a remediation hint for the user.
// Hinters do not contribute a line of their own to a formatted chain,
// instead their hint is written after all causes.
type Hinter interface {
	error
	Hint() string
}

// Describe returns the description of err alone, excluding the errors it wraps.
//
// If err implements Describer its Description is used. Otherwise the description
// is err.Error() with the text of its cause trimmed from the end, so an error
// created with fmt.Errorf("disk full: %w", cause) is described as "disk full".
// An error whose text is identical to its cause's text has an empty description.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if d, ok := err.(Describer); ok {
		return d.Description()
	}
	msg := err.Error()
	cause := stderrors.Unwrap(err)
	if cause == nil {
		return msg
	}
	causeMsg := cause.Error()
	if msg == causeMsg {
		return ""
	}
	if desc, ok := strings.CutSuffix(msg, ": "+causeMsg); ok {
		return desc
	}
	if _, ok := cause.(Hinter); ok {
		// The hint may have changed after err's text was built,
		// so match on the text of the hinted error instead.
		hintedMsg := unhinted(cause).Error()
		if strings.HasPrefix(msg, hintedMsg+"\n") {
			return ""
		}
		if i := strings.LastIndex(msg, ": "+hintedMsg+"\n"); i >= 0 {
			return msg[:i]
		}
	}
	return msg
}

// Causes returns the errors that caused err, nearest cause first.
// Links that only decorate their cause, such as stack trace wrappers and
// hints, are skipped.
func Causes(err error) []error {
	var causes []error
	for cause := next(err); cause != nil; cause = next(cause) {
		if skip(cause) {
			continue
		}
		causes = append(causes, cause)
	}
	return causes
}

// FormatChain formats err and its chain of causes into text meant for a user.
//
// The first line is the description of err. Each cause follows on its own line
// prefixed with "Caused by: ", in the order they are reached by unwrapping.
// Hints found anywhere in the chain are written last, outermost first.
// Continuation lines of a multi-line cause are indented to line up with the
// text after the prefix.
// Every line, including the last one, is terminated with a newline.
// FormatChain returns an empty string if err is nil.
func FormatChain(err error) string {
	sb := &strings.Builder{}
	var hints []string
	wroteFirst := false
	for ; err != nil; err = next(err) {
		if h, ok := err.(Hinter); ok {
			hints = append(hints, h.Hint())
			continue
		}
		if skip(err) {
			continue
		}
		desc := Describe(err)
		if wroteFirst {
			sb.WriteString(causePrefix)
			desc = strings.ReplaceAll(desc, "\n", "\n"+causeIndent)
		}
		sb.WriteString(desc)
		sb.WriteByte('\n')
		wroteFirst = true
	}
	for _, h := range hints {
		sb.WriteString(h)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// unhinted returns the first error in err's chain that is not a Hinter.
func unhinted(err error) error {
	for {
		if _, ok := err.(Hinter); !ok {
			return err
		}
		cause := next(err)
		if cause == nil {
			return err
		}
		err = cause
	}
}

func next(err error) error {
	return stderrors.Unwrap(err)
}

// skip reports whether err is a link in a chain that should not be rendered.
func skip(err error) bool {
	if _, ok := err.(Hinter); ok {
		return true
	}
	return next(err) != nil && Describe(err) == ""
}
