package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// CreateInputGroup creates an input group for a form
func CreateInputGroup(title, placeholder, description string, validator func(string) error, value *string) *huh.Group {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Description(description).
		Value(value)

	if validator != nil {
		input.Validate(validator)
	}

	return huh.NewGroup(input)
}

// CreateConfirmGroup creates a confirm group for a form
func CreateConfirmGroup(title, description, affirmative, negative string, value *bool) *huh.Group {
	return huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Affirmative(affirmative).
			Negative(negative).
			Value(value),
	)
}

// CreateSelectGroup creates a select group for a form
func CreateSelectGroup(title, description string, options []huh.Option[string], value *string) *huh.Group {
	return huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Description(description).
			Options(options...).
			Value(value),
	)
}

// CreateInputForm creates an input form
func CreateInputForm(title, placeholder, description string, validator func(string) error, value *string) *huh.Form {
	return huh.NewForm(CreateInputGroup(title, placeholder, description, validator, value))
}

// CreateConfirmForm creates a confirm form
func CreateConfirmForm(title, description, affirmative, negative string, value *bool) *huh.Form {
	return huh.NewForm(CreateConfirmGroup(title, description, affirmative, negative, value))
}

// CreateSelectForm creates a select form
func CreateSelectForm(title, description string, options []huh.Option[string], value *string) *huh.Form {
	return huh.NewForm(CreateSelectGroup(title, description, options, value))
}

// CollectWithForm runs form until it is completed, aborted or ctx is done
func CollectWithForm(ctx context.Context, form *huh.Form, errorMsg string) error {
	if err := form.RunWithContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", errorMsg, err)
	}
	return nil
}
