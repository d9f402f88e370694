// Package ui provides UI components for interactive flows
package ui

import (
	"fmt"
	"io"
)

// ProgressTracker prints the section headings of a multi-step interactive flow
type ProgressTracker struct {
	out         io.Writer
	styles      Styles
	currentStep int
	steps       []string
}

// NewProgressTracker creates a tracker over the given section titles
func NewProgressTracker(out io.Writer, styles Styles, steps ...string) *ProgressTracker {
	return &ProgressTracker{
		out:    out,
		styles: styles,
		steps:  steps,
	}
}

// NextStep prints the heading of the current section and moves to the next one
func (pt *ProgressTracker) NextStep() {
	title := pt.GetCurrentStep()
	prefix := ""
	if pt.currentStep > 0 {
		prefix = "\n"
	}
	fmt.Fprintln(pt.out, pt.styles.Dim.Sprint(prefix+Indent+title+"\n"))
	pt.currentStep++
}

// GetCurrentStep returns the title of the current section
func (pt *ProgressTracker) GetCurrentStep() string {
	if pt.currentStep >= len(pt.steps) {
		return "Complete"
	}
	return pt.steps[pt.currentStep]
}

// Step returns the zero-based index of the current section
func (pt *ProgressTracker) Step() int { return pt.currentStep }
