// Package prompt asks the wizard's questions, one answer per call.
//
// Two implementations exist: Engine renders directly on a raw terminal and
// Forms renders through huh. Both satisfy Prompter.
package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// ErrAborted is returned when the user interrupts a prompt. It is fatal to
// the whole setup flow.
var ErrAborted = errors.New("user aborted setup")

// Text describes a free-text question.
type Text struct {
	Prompt  string
	Default string
	Hint    string
	// Required renders the "(required)" marker before the first answer.
	// Empty input is rejected whenever Default is empty, regardless.
	Required bool
}

// Confirm describes a yes/no question. Only "n" and "no" answer no.
type Confirm struct {
	Prompt string
	Hint   string
	// DefaultNo renders [y/N] instead of [Y/n]. Empty input still means yes.
	DefaultNo bool
}

// Option is one choice of a Select.
type Option struct {
	Key   string
	Label string
}

// Select describes a single choice among ordered options.
type Select struct {
	Prompt  string
	Options []Option
	Default string
}

// Prompter resolves questions to answers.
type Prompter interface {
	AskText(ctx context.Context, q Text) (string, error)
	AskConfirm(ctx context.Context, q Confirm) (bool, error)
	AskSelect(ctx context.Context, q Select) (string, error)
}

// IsYes reports how a confirm answer resolves.
func IsYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	return a != "n" && a != "no"
}

// DefaultIndex returns the index of key in options, or 0.
func DefaultIndex(options []Option, key string) int {
	for i, opt := range options {
		if opt.Key == key {
			return i
		}
	}
	return 0
}

// Label returns the label of key, or key itself.
func (s Select) Label(key string) string {
	for _, opt := range s.Options {
		if opt.Key == key {
			return opt.Label
		}
	}
	return key
}

func baseQuery(prompt string) string {
	return ui.Indent + "• " + strings.TrimSuffix(prompt, ":")
}
