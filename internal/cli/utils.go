// Copyright 2025 The Library Template Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// PlanRow is one task of a dry run as displayed in the plan table.
type PlanRow struct {
	Index  int
	Task   string
	Kind   string
	Status string
}

// Row converts the plan row to a table row keyed by the plan columns.
func (p PlanRow) Row() ui.Row {
	return ui.Row{
		"index":  strconv.Itoa(p.Index),
		"task":   p.Task,
		"kind":   p.Kind,
		"status": p.Status,
	}
}

// PlanRows converts plan rows for ui.Table.
func PlanRows(plan []PlanRow) []ui.Row {
	rows := make([]ui.Row, 0, len(plan))
	for _, p := range plan {
		rows = append(rows, p.Row())
	}
	return rows
}

// GetPlanColumns returns the column configuration of the plan table. The
// kind column is only shown when detailed is set.
func GetPlanColumns(detailed bool) []ui.Column {
	return []ui.Column{
		{
			Title: "#",
			Key:   "index",
			Min:   3,
			Max:   3,
			Style: func(string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorGray))
			},
		},
		{
			Title: "TASK",
			Key:   "task",
			Min:   20,
			Max:   40,
			Style: func(string) lipgloss.Style {
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorBrightWhite))
			},
		},
		{
			Title: "KIND",
			Key:   "kind",
			Min:   7,
			Max:   10,
			Style: func(value string) lipgloss.Style {
				if value == StatusCommand {
					return ui.GetStatusStyle(StatusCommand)
				}
				return lipgloss.NewStyle().Foreground(lipgloss.Color(ui.ColorBrightCyan))
			},
			Hidden: !detailed,
		},
		{
			Title: "STATUS",
			Key:   "status",
			Min:   6,
			Max:   8,
			Style: ui.GetStatusStyle,
		},
	}
}

// Highlight applies syntax highlighting to data in the given chroma
// language. Data is returned unchanged when colored is false.
func Highlight(data []byte, language string, colored bool) (string, error) {
	if !colored {
		return string(data), nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	// Use a terminal-friendly style
	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(data))
	if err != nil {
		return "", fmt.Errorf("failed to tokenize %s: %w", language, err)
	}

	var result strings.Builder
	if err := formatter.Format(&result, style, iterator); err != nil {
		return "", fmt.Errorf("failed to format %s: %w", language, err)
	}

	return result.String(), nil
}
