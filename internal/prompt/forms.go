package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/fvena/typescript-library-template-pro/internal/ui"
	"github.com/fvena/typescript-library-template-pro/internal/util"
)

// Forms asks questions through huh forms and prints the same committed
// answer lines as Engine, so the transcript looks alike in both modes.
type Forms struct {
	out    io.Writer
	styles ui.Styles
}

// NewForms creates a huh backed Prompter writing answer lines to out.
func NewForms(out io.Writer, styles ui.Styles) *Forms {
	return &Forms{out: out, styles: styles}
}

var _ Prompter = (*Forms)(nil)

// AskText runs a single input form.
func (f *Forms) AskText(ctx context.Context, q Text) (string, error) {
	var validator func(string) error
	if q.Default == "" {
		validator = func(s string) error {
			return util.ValidateNonEmpty(s, q.Prompt)
		}
	}

	value := ""
	form := ui.CreateInputForm(q.Prompt, q.Default, q.Hint, validator, &value)
	if err := f.run(ctx, form); err != nil {
		return "", err
	}

	if value == "" {
		value = q.Default
	}
	fmt.Fprintln(f.out, baseQuery(q.Prompt)+": "+f.styles.Success.Sprint(value))
	return value, nil
}

// AskConfirm runs a single confirm form.
func (f *Forms) AskConfirm(ctx context.Context, q Confirm) (bool, error) {
	value := !q.DefaultNo
	form := ui.CreateConfirmForm(q.Prompt, q.Hint, "Yes", "No", &value)
	if err := f.run(ctx, form); err != nil {
		return false, err
	}

	label := "No"
	if value {
		label = "Yes"
	}
	fmt.Fprintln(f.out, baseQuery(q.Prompt)+" "+f.styles.Success.Sprint(label))
	return value, nil
}

// AskSelect runs a single select form.
func (f *Forms) AskSelect(ctx context.Context, q Select) (string, error) {
	if len(q.Options) == 0 {
		return "", fmt.Errorf("select %q has no options", q.Prompt)
	}

	options := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		options[i] = huh.NewOption(opt.Label, opt.Key)
	}

	value := q.Options[DefaultIndex(q.Options, q.Default)].Key
	form := ui.CreateSelectForm(q.Prompt, "", options, &value)
	if err := f.run(ctx, form); err != nil {
		return "", err
	}

	fmt.Fprintln(f.out, baseQuery(q.Prompt)+": "+f.styles.Success.Sprint(q.Label(value)))
	return value, nil
}

func (f *Forms) run(ctx context.Context, form *huh.Form) error {
	err := ui.CollectWithForm(ctx, form, "failed to collect answer")
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %w", ErrAborted, err)
	default:
		return err
	}
}
