package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Banner renders the boxed title shown when the wizard starts.
func Banner(title string, colored bool) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(BannerWidth).
		PaddingLeft(1)
	if colored {
		style = style.
			Foreground(lipgloss.Color(ColorBrightCyan)).
			BorderForeground(lipgloss.Color(ColorBrightCyan))
	}
	return style.Render(title)
}

// Heading prints msg in style followed by a newline.
func Heading(out io.Writer, style interface{ Sprint(...any) string }, msg string) {
	fmt.Fprintln(out, style.Sprint(msg))
}
