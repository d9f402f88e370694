package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Step is one line of a next-steps or workflow list.
type Step struct {
	Title  string
	Detail string
	// Link underlines Detail.
	Link bool
}

// PrintNumbered prints steps as "1. Title → detail" with aligned arrows.
func PrintNumbered(out io.Writer, styles Styles, steps []Step) {
	width := titleWidth(steps)
	for i, step := range steps {
		fmt.Fprintf(out, "%s%d. %s\n", Indent, i+1, formatStep(styles, step, width))
	}
}

// PrintBulleted prints steps as "- Title → detail" with aligned arrows.
func PrintBulleted(out io.Writer, styles Styles, steps []Step) {
	width := titleWidth(steps)
	for _, step := range steps {
		fmt.Fprintf(out, "%s- %s\n", Indent, formatStep(styles, step, width))
	}
}

func formatStep(styles Styles, step Step, width int) string {
	pad := strings.Repeat(" ", width-runewidth.StringWidth(step.Title))
	detail := step.Detail
	if step.Link {
		detail = styles.Underline.Sprint(detail)
	}
	return fmt.Sprintf("%s%s %s %s", styles.Accent.Sprint(step.Title), pad, styles.Dim.Sprint("→"), detail)
}

func titleWidth(steps []Step) int {
	width := 0
	for _, step := range steps {
		width = max(width, runewidth.StringWidth(step.Title))
	}
	return width
}
