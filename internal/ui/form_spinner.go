package ui

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/huh/spinner"
)

// FormSpinner is the spinner used together with the form prompts. It renders
// the animation through huh and prints the same final lines as Spinner.
type FormSpinner struct {
	ctx     context.Context
	out     io.Writer
	label   string
	styles  Styles
	started time.Time

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// NewFormSpinner creates a huh backed spinner bound to ctx.
func NewFormSpinner(ctx context.Context, out io.Writer, label string, styles Styles) *FormSpinner {
	return &FormSpinner{
		ctx:     ctx,
		out:     out,
		label:   label,
		styles:  styles,
		started: time.Now(),
	}
}

// Start runs the huh spinner until Stop or Fail is called.
func (s *FormSpinner) Start() {
	if s.done != nil {
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		_ = spinner.New().
			Title(s.label + "...").
			Context(ctx).
			Run()
	}()
}

// Stop halts the animation and renders the success line.
func (s *FormSpinner) Stop(final string) {
	s.finish(func(elapsed int) {
		fmt.Fprintf(s.out, "\r%s%s %s %s\n", Indent, s.styles.Success.Sprint("✔"), final, s.styles.Dim.Sprintf("(%ds)", elapsed))
	})
}

// Fail halts the animation and renders the failure line.
func (s *FormSpinner) Fail(message string) {
	s.finish(func(elapsed int) {
		fmt.Fprintf(s.out, "\r%s%s %s\n", Indent, s.styles.Failure.Sprintf("! %s", message), s.styles.Dim.Sprintf("(%ds)", elapsed))
	})
}

func (s *FormSpinner) finish(render func(elapsed int)) {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
			<-s.done
		}
		render(int(time.Since(s.started) / time.Second))
	})
}
