package hint_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/TouchBistro/giveup/errors"
	"github.com/TouchBistro/giveup/hint"
	"github.com/matryer/is"
)

const (
	flatMsg    = "I am the message of a flat error without a cause"
	hintMsg    = "I am a hint."
	exampleMsg = "I am an example."
)

func TestHintString(t *testing.T) {
	is := is.New(t)
	h := hint.New(hintMsg)
	is.Equal(h.String(), hintMsg)
	is.Equal(h.Text(), hintMsg)
	_, ok := h.Example()
	is.True(!ok)
}

func TestWrapNil(t *testing.T) {
	is := is.New(t)
	is.NoErr(hint.Wrap(nil, hintMsg))
	is.NoErr(hint.WithExample(nil, exampleMsg))
}

func TestWrap(t *testing.T) {
	is := is.New(t)
	base := stderrors.New(flatMsg)
	err := hint.Wrap(base, hintMsg)

	is.Equal(err.Error(), flatMsg+"\n"+hintMsg)
	is.Equal(errors.FormatChain(err), errors.FormatChain(base)+hintMsg+"\n")
	is.True(stderrors.Is(err, base))
	is.Equal(stderrors.Unwrap(err), base)
}

func TestWithExample(t *testing.T) {
	is := is.New(t)
	err := hint.WithExample(hint.Wrap(stderrors.New(flatMsg), hintMsg), exampleMsg)

	is.Equal(errors.FormatChain(err), fmt.Sprintf("%s\n%s: `%s`\n", flatMsg, hintMsg, exampleMsg))

	var he *hint.Error
	is.True(stderrors.As(err, &he))
	example, ok := he.HintValue().Example()
	is.True(ok)
	is.Equal(example, exampleMsg)
}

func TestWithExampleOverwrites(t *testing.T) {
	is := is.New(t)
	err := hint.Wrap(stderrors.New(flatMsg), hintMsg)
	err = hint.WithExample(err, "first")
	err = hint.WithExample(err, "second")

	is.Equal(errors.FormatChain(err), flatMsg+"\n"+hintMsg+": `second`\n")
}

func TestWithExampleKeepsIdentity(t *testing.T) {
	is := is.New(t)
	err := hint.Wrap(stderrors.New(flatMsg), hintMsg)
	is.Equal(hint.WithExample(err, exampleMsg), err)
}

func TestWithExampleWithoutHint(t *testing.T) {
	is := is.New(t)
	base := stderrors.New(flatMsg)
	err := hint.WithExample(base, exampleMsg)
	is.Equal(err, base)
	is.Equal(errors.FormatChain(err), flatMsg+"\n")
}

func TestWithExampleThroughWrapping(t *testing.T) {
	is := is.New(t)
	err := fmt.Errorf("load config: %w", hint.Wrap(stderrors.New("file not found"), "Create a configuration file"))
	err = hint.WithExample(err, "giveup init")

	is.Equal(errors.FormatChain(err), "load config\nCaused by: file not found\nCreate a configuration file: `giveup init`\n")
}

func TestWrapDoesNotTouchCause(t *testing.T) {
	is := is.New(t)
	cause := stderrors.New("no space on device")
	base := fmt.Errorf("disk full: %w", cause)
	err := hint.WithExample(hint.Wrap(base, "Free up space"), "rm largefile")

	is.Equal(base.Error(), "disk full: no space on device")
	is.Equal(errors.FormatChain(err), "disk full\nCaused by: no space on device\nFree up space: `rm largefile`\n")
}

func TestWithExampleThroughTransparentWrapping(t *testing.T) {
	is := is.New(t)
	err := fmt.Errorf("%w", hint.Wrap(stderrors.New("file not found"), "Create a configuration file"))
	err = hint.WithExample(err, "giveup init")

	is.Equal(errors.FormatChain(err), "file not found\nCreate a configuration file: `giveup init`\n")
}
