package ui

import (
	"github.com/fatih/color"
)

// Styles are the ANSI styles used by prompts, the spinner and the task runner.
// A zero Styles is not usable; build one with NewStyles.
type Styles struct {
	Success   *color.Color
	Failure   *color.Color
	Warning   *color.Color
	Accent    *color.Color
	Dim       *color.Color
	Underline *color.Color
}

// NewStyles returns the wizard palette. When enabled is false every style
// renders its input unchanged, regardless of the global color.NoColor.
func NewStyles(enabled bool) Styles {
	s := Styles{
		Success:   color.New(color.FgGreen),
		Failure:   color.New(color.FgRed),
		Warning:   color.New(color.FgYellow, color.Bold),
		Accent:    color.New(color.FgCyan, color.Bold),
		Dim:       color.New(color.Faint),
		Underline: color.New(color.Underline),
	}

	for _, c := range []*color.Color{s.Success, s.Failure, s.Warning, s.Accent, s.Dim, s.Underline} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// PlainStyles is NewStyles(false).
func PlainStyles() Styles {
	return NewStyles(false)
}
