package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Column describes one column of a Table. A column is as wide as its widest
// cell, kept between Min and Max. Max 0 leaves it unbounded.
type Column struct {
	Title  string
	Key    string
	Min    int
	Max    int
	Style  func(value string) lipgloss.Style
	Hidden bool
}

// Row maps column keys to cell values.
type Row map[string]string

// Table renders rows under a bold header and a rule.
type Table struct {
	columns []Column
	rows    []Row
	width   int
	header  lipgloss.Style
	rule    lipgloss.Style
}

// NewTable creates a table of rows showing the visible columns.
func NewTable(columns []Column, rows []Row) *Table {
	visible := make([]Column, 0, len(columns))
	for _, col := range columns {
		if !col.Hidden {
			visible = append(visible, col)
		}
	}
	return &Table{
		columns: visible,
		rows:    rows,
		header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorBrightCyan)),
		rule:    lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightGray)),
	}
}

// Fit limits the rendered width. The widest columns give up space first,
// never below their minimum.
func (t *Table) Fit(width int) *Table {
	t.width = width
	return t
}

func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		w := max(runewidth.StringWidth(col.Title), col.Min)
		for _, row := range t.rows {
			w = max(w, runewidth.StringWidth(row[col.Key]))
		}
		if col.Max > 0 {
			w = min(w, col.Max)
		}
		widths[i] = w
	}

	if t.width <= 0 {
		return widths
	}
	for excess := tableWidth(widths) - t.width; excess > 0; excess-- {
		widest := -1
		for i, w := range widths {
			if w > max(t.columns[i].Min, 1) && (widest < 0 || w > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			break
		}
		widths[widest]--
	}
	return widths
}

// tableWidth counts one space of padding on each side of every cell.
func tableWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	return total
}

func cell(style lipgloss.Style, value string, width int) string {
	content := style.Width(width).MaxWidth(width).Inline(true).Render(TruncateText(value, width))
	return " " + content + " "
}

// Render returns the table, one line per row. A table without visible
// columns renders as the empty string.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	widths := t.widths()

	var sb strings.Builder
	for i, col := range t.columns {
		sb.WriteString(cell(t.header, col.Title, widths[i]))
	}
	sb.WriteString("\n")
	sb.WriteString(t.rule.Render(strings.Repeat("─", tableWidth(widths))))
	sb.WriteString("\n")

	for _, row := range t.rows {
		for i, col := range t.columns {
			value := row[col.Key]
			if value == "" {
				value = "-"
			}
			style := lipgloss.NewStyle()
			if col.Style != nil {
				style = col.Style(value)
			}
			sb.WriteString(cell(style, value, widths[i]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Print writes the rendered table to out.
func (t *Table) Print(out io.Writer) {
	fmt.Fprint(out, t.Render())
}

// TruncateText shortens text to maxWidth cells, ending it with an ellipsis.
func TruncateText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(text, maxWidth-1, "…")
}

// GetStatusStyle styles the planned status of a setup task
func GetStatusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "run":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen)).Bold(true)
	case "skip":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrightGray))
	case "command":
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow)).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray))
	}
}
