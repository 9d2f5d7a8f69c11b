package fatal_test

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/TouchBistro/giveup/color"
	"github.com/TouchBistro/giveup/fatal"
	"github.com/TouchBistro/giveup/hint"
	"github.com/matryer/is"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

// newExiter returns an Exiter that records output and exit codes instead of exiting.
func newExiter(codes *[]int) (*fatal.Exiter, *bytes.Buffer) {
	var buf bytes.Buffer
	return &fatal.Exiter{
		Out:      &buf,
		ExitFunc: func(code int) { *codes = append(*codes, code) },
		Color:    color.Never,
	}, &buf
}

func diskFullErr() error {
	err := fmt.Errorf("disk full: %w", stderrors.New("no space on device"))
	err = hint.Wrap(err, "Free up space")
	return hint.WithExample(err, "rm largefile")
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		err     error
		want    string
	}{
		{
			name:    "flat error",
			message: "Failed to read input",
			err:     stderrors.New("unexpected EOF"),
			want:    "Failed to read input: unexpected EOF\n",
		},
		{
			name:    "error with cause and hint",
			message: "Write failed",
			err:     diskFullErr(),
			want:    "Write failed: disk full\nCaused by: no space on device\nFree up space: `rm largefile`\n",
		},
		{
			name:    "nil error",
			message: "Nothing to do",
			err:     nil,
			want:    "Nothing to do\n",
		},
		{
			name:    "empty message",
			message: "",
			err:     stderrors.New("unexpected EOF"),
			want:    "unexpected EOF\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			is := is.New(t)
			is.Equal(fatal.Message(tt.message, tt.err, false), tt.want)
		})
	}
}

func TestMessageStyled(t *testing.T) {
	is := is.New(t)
	got := fatal.Message("Write failed", stderrors.New("disk full"), true)
	is.Equal(got, color.Bold("Write failed")+": disk full\n")
}

func TestExitErr(t *testing.T) {
	is := is.New(t)
	var codes []int
	e, buf := newExiter(&codes)

	e.ExitErr(diskFullErr(), "Write failed")
	is.Equal(buf.String(), "Write failed: disk full\nCaused by: no space on device\nFree up space: `rm largefile`\n")
	is.Equal(codes, []int{1})
}

func TestExitErrf(t *testing.T) {
	is := is.New(t)
	var codes []int
	e, buf := newExiter(&codes)

	e.ExitErrf(stderrors.New("permission denied"), "Failed to open %s", "config.yml")
	is.Equal(buf.String(), "Failed to open config.yml: permission denied\n")
	is.Equal(codes, []int{1})
}

func TestExit(t *testing.T) {
	is := is.New(t)
	var codes []int
	e, buf := newExiter(&codes)

	e.Exit("Unsupported platform")
	e.Exitf("Unsupported shell %q", "fish")
	is.Equal(buf.String(), "Unsupported platform\nUnsupported shell \"fish\"\n")
	is.Equal(codes, []int{1, 1})
}

func TestExitErrAlwaysColor(t *testing.T) {
	is := is.New(t)
	var codes []int
	e, buf := newExiter(&codes)
	e.Color = color.Always

	e.ExitErr(stderrors.New("disk full"), "Write failed")
	is.Equal(buf.String(), color.Bold("Write failed")+": disk full\n")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, stderrors.New("broken pipe")
}

func TestExitErrWriteFails(t *testing.T) {
	is := is.New(t)
	var codes []int
	e := &fatal.Exiter{
		Out:      failingWriter{},
		ExitFunc: func(code int) { codes = append(codes, code) },
	}

	e.ExitErr(stderrors.New("disk full"), "Write failed")
	is.Equal(codes, []int{1}) // still exits
}

func TestExitErrLogs(t *testing.T) {
	is := is.New(t)
	var codes []int
	e, _ := newExiter(&codes)
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	e.Logger = logger

	e.ExitErr(stderrors.New("disk full"), "Write failed")
	is.Equal(len(hook.Entries), 1)
	entry := hook.LastEntry()
	is.Equal(entry.Level, logrus.DebugLevel)
	is.Equal(entry.Data["message"], "Write failed")
	is.True(strings.Contains(entry.Message, "disk full"))
}

func TestDefaultExiter(t *testing.T) {
	is := is.New(t)
	var codes []int
	e, buf := newExiter(&codes)
	orig := fatal.Default
	fatal.Default = e
	t.Cleanup(func() { fatal.Default = orig })

	fatal.ExitErr(stderrors.New("disk full"), "Write failed")
	fatal.ExitErrf(stderrors.New("disk full"), "Write %s failed", "report")
	fatal.Exit("Bye")
	fatal.Exitf("Bye %d", 2)
	is.Equal(buf.String(), "Write failed: disk full\nWrite report failed: disk full\nBye\nBye 2\n")
	is.Equal(codes, []int{1, 1, 1, 1})
}

// TestExitErrProcess runs the zero value Exiter in a child process to check
// the real stderr output and exit status.
func TestExitErrProcess(t *testing.T) {
	if os.Getenv("GIVEUP_FATAL_CHILD") == "1" {
		var e fatal.Exiter
		e.ExitErr(diskFullErr(), "Write failed")
		return
	}

	is := is.New(t)
	cmd := exec.Command(os.Args[0], "-test.run=^TestExitErrProcess$")
	cmd.Env = append(os.Environ(), "GIVEUP_FATAL_CHILD=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()

	var exitErr *exec.ExitError
	is.True(stderrors.As(err, &exitErr))
	is.Equal(exitErr.ExitCode(), 1)
	is.Equal(stderr.String(), "Write failed: disk full\nCaused by: no space on device\nFree up space: `rm largefile`\n")
}
