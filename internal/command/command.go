// Package command runs the external programs the setup depends on: git, npm
// and npx.
package command

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Runner invokes external commands in a working directory.
type Runner interface {
	// Run executes name with args and discards its output unless it fails.
	Run(ctx context.Context, dir, name string, args ...string) error
	// Output executes name with args and returns its trimmed stdout.
	Output(ctx context.Context, dir, name string, args ...string) (string, error)
}

// Error is returned when a command exits unsuccessfully. Output holds what
// the command printed, which callers inspect to classify the failure.
type Error struct {
	Cmd    string
	Output string
	Err    error
}

func (e *Error) Error() string {
	out := strings.TrimSpace(e.Output)
	if out == "" {
		return fmt.Sprintf("%s: %v", e.Cmd, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Cmd, e.Err, lastLine(out))
}

func (e *Error) Unwrap() error { return e.Err }

// Exec is the Runner backed by os/exec.
type Exec struct {
	logger *log.Logger
}

// NewExec creates an exec runner. A nil logger discards debug output.
func NewExec(logger *log.Logger) *Exec {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
	}
	return &Exec{logger: logger}
}

var _ Runner = (*Exec)(nil)

// Run implements Runner. Stdout and stderr are captured together.
func (x *Exec) Run(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	x.logger.Debug("running command", "cmd", cmd.String(), "dir", dir)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return &Error{Cmd: cmd.String(), Output: string(out), Err: err}
	}
	return nil
}

// Output implements Runner.
func (x *Exec) Output(ctx context.Context, dir, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	x.logger.Debug("running command", "cmd", cmd.String(), "dir", dir)
	out, err := cmd.Output()
	if err != nil {
		return "", &Error{Cmd: cmd.String(), Output: stderr.String(), Err: err}
	}
	return strings.TrimSpace(string(out)), nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}
