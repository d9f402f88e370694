package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fvena/typescript-library-template-pro/internal/terminal"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// Engine asks questions on a terminal using ANSI cursor control.
//
// Text and confirm prompts read whole lines in the terminal's current mode.
// Select prompts switch the terminal to raw mode for their duration and
// restore it on every exit path.
//
// Reads are abandoned, not interrupted, when ctx is done. An Engine must not
// be used again after a call returned a context error.
type Engine struct {
	term   terminal.Terminal
	in     *bufio.Reader
	out    io.Writer
	styles ui.Styles
}

// NewEngine creates an engine reading from in and rendering to out.
func NewEngine(term terminal.Terminal, in io.Reader, out io.Writer, styles ui.Styles) *Engine {
	return &Engine{
		term:   term,
		in:     bufio.NewReader(in),
		out:    out,
		styles: styles,
	}
}

var _ Prompter = (*Engine)(nil)

// AskText renders "prompt (hint) (default) (required): " and reads a line.
// Empty input resolves to the default, or re-renders the question marked
// required when there is none.
func (e *Engine) AskText(ctx context.Context, q Text) (string, error) {
	base := baseQuery(q.Prompt)
	required := q.Required

	for {
		fmt.Fprint(e.out, e.textQuery(base, q, required))

		answer, err := e.readLine(ctx)
		if err != nil {
			return "", err
		}

		if answer == "" && q.Default == "" {
			fmt.Fprint(e.out, terminal.CursorUp(1)+terminal.EraseLine)
			required = true
			continue
		}

		value := answer
		if value == "" {
			value = q.Default
		}
		fmt.Fprint(e.out, terminal.CursorUp(1)+terminal.EraseLine+"\r"+base+": "+e.styles.Success.Sprint(value)+"\n")
		return value, nil
	}
}

func (e *Engine) textQuery(base string, q Text, required bool) string {
	var b strings.Builder
	b.WriteString(base)
	if q.Hint != "" {
		b.WriteString(" " + e.styles.Dim.Sprintf("(%s)", q.Hint))
	}
	if q.Default != "" {
		b.WriteString(" " + e.styles.Dim.Sprintf("(%s)", q.Default))
	}
	if required {
		b.WriteString(" " + e.styles.Failure.Sprint("(required)"))
	}
	b.WriteString(": ")
	return b.String()
}

// AskConfirm renders "prompt (hint) [Y/n] " and reads a line.
func (e *Engine) AskConfirm(ctx context.Context, q Confirm) (bool, error) {
	base := baseQuery(q.Prompt)

	var b strings.Builder
	b.WriteString(base)
	if q.Hint != "" {
		b.WriteString(" " + e.styles.Dim.Sprintf("(%s)", q.Hint))
	}
	options := "[Y/n]"
	if q.DefaultNo {
		options = "[y/N]"
	}
	b.WriteString(" " + e.styles.Dim.Sprint(options) + " ")
	fmt.Fprint(e.out, b.String())

	answer, err := e.readLine(ctx)
	if err != nil {
		return false, err
	}

	result := IsYes(answer)
	label := "No"
	if result {
		label = "Yes"
	}
	fmt.Fprint(e.out, terminal.CursorUp(1)+terminal.EraseLine+"\r"+base+" "+e.styles.Success.Sprint(label)+"\n")
	return result, nil
}

// AskSelect renders the question and one line per option, then lets the user
// move with the arrow keys and commit with Enter. Ctrl+C returns ErrAborted.
func (e *Engine) AskSelect(ctx context.Context, q Select) (string, error) {
	if len(q.Options) == 0 {
		return "", fmt.Errorf("select %q has no options", q.Prompt)
	}

	restore, err := e.term.MakeRaw()
	if err != nil {
		return "", fmt.Errorf("failed to enter raw mode: %w", err)
	}
	cleanup := newCleanup(func() {
		_ = restore()
		fmt.Fprint(e.out, terminal.ShowCursor)
	})
	defer cleanup.Run()

	base := baseQuery(q.Prompt)
	labels := e.fitLabels(q.Options)
	state := newSelectState(len(labels), DefaultIndex(q.Options, q.Default))

	fmt.Fprint(e.out, terminal.HideCursor)
	fmt.Fprint(e.out, e.renderSelect(base, labels, state.index, true))

	for {
		k, err := e.readKey(ctx)
		if err != nil {
			return "", err
		}

		switch k {
		case terminal.KeyUp:
			if state.up() {
				fmt.Fprint(e.out, e.renderSelect(base, labels, state.index, false))
			} else {
				fmt.Fprint(e.out, "\r"+terminal.EraseToEndOfLine)
			}
		case terminal.KeyDown:
			if state.down() {
				fmt.Fprint(e.out, e.renderSelect(base, labels, state.index, false))
			} else {
				fmt.Fprint(e.out, "\r"+terminal.EraseToEndOfLine)
			}
		case terminal.KeyEnter:
			fmt.Fprint(e.out, terminal.CursorUp(len(labels)+1)+"\r"+terminal.EraseDown+
				base+": "+e.styles.Success.Sprint(q.Options[state.index].Label)+"\r\n")
			cleanup.Run()
			return q.Options[state.index].Key, nil
		case terminal.KeyInterrupt:
			cleanup.Run()
			return "", ErrAborted
		default:
			fmt.Fprint(e.out, "\r"+terminal.EraseToEndOfLine)
		}
	}
}

// renderSelect draws the question and options from the current line down.
// Lines end in "\r\n" since raw mode disables output post-processing.
func (e *Engine) renderSelect(base string, labels []string, active int, first bool) string {
	var b strings.Builder
	if !first {
		b.WriteString(terminal.CursorUp(len(labels)+1) + "\r")
	}
	b.WriteString(terminal.EraseDown)
	b.WriteString(base + "\r\n")
	for i, label := range labels {
		if i == active {
			b.WriteString("     " + e.styles.Accent.Sprint("> "+label) + "\r\n")
		} else {
			b.WriteString("       " + label + "\r\n")
		}
	}
	b.WriteString("\r")
	return b.String()
}

// fitLabels truncates labels so every option fits on one terminal line;
// a wrapped line would break the cursor arithmetic of re-renders.
func (e *Engine) fitLabels(options []Option) []string {
	width := e.term.Width() - 8
	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = ui.TruncateText(opt.Label, width)
	}
	return labels
}

func (e *Engine) readLine(ctx context.Context) (string, error) {
	line, err := await(ctx, func() (string, error) {
		return e.in.ReadString('\n')
	})
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, ErrAborted) {
			return "", err
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (e *Engine) readKey(ctx context.Context) (terminal.Key, error) {
	k, err := await(ctx, func() (terminal.Key, error) {
		return terminal.ReadKey(e.in)
	})
	if err != nil {
		if errors.Is(err, ErrAborted) {
			return terminal.KeyOther, err
		}
		return terminal.KeyOther, fmt.Errorf("failed to read key: %w", err)
	}
	return k, nil
}

type result[T any] struct {
	value T
	err   error
}

// await runs read in a goroutine and returns its result, or ErrAborted once
// ctx is done.
func await[T any](ctx context.Context, read func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, fmt.Errorf("%w: %w", ErrAborted, err)
	}

	ch := make(chan result[T], 1)
	go func() {
		v, err := read()
		ch <- result[T]{v, err}
	}()

	select {
	case <-ctx.Done():
		return zero, fmt.Errorf("%w: %w", ErrAborted, ctx.Err())
	case r := <-ch:
		return r.value, r.err
	}
}
