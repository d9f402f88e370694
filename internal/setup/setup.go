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

// Package setup runs the wizard end to end: banner, answers, tasks and
// next steps.
//
// Only collecting answers can abort a run. Every task failure is reported
// and the sequence moves on.
package setup

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"sigs.k8s.io/yaml"

	"github.com/fvena/typescript-library-template-pro/internal/answers"
	"github.com/fvena/typescript-library-template-pro/internal/answers/schema"
	"github.com/fvena/typescript-library-template-pro/internal/cli"
	"github.com/fvena/typescript-library-template-pro/internal/runtime"
	"github.com/fvena/typescript-library-template-pro/internal/task"
	"github.com/fvena/typescript-library-template-pro/internal/terminal"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// answersFile is the answer record as written to an answers file.
type answersFile struct {
	APIVersion string `json:"apiVersion"`
	answers.Answers
}

// Run executes the wizard. The returned error is the one fatal failure of
// the run; it has already been printed.
func Run(ctx context.Context, rt runtime.Provider) (err error) {
	out := rt.Out()
	styles := rt.Styles()
	logger := rt.Logger()

	defer func() {
		if err != nil {
			fmt.Fprintln(out, styles.Failure.Sprint("\n[!] Setup failed: "+err.Error()))
			logger.Error("setup failed", "err", err)
		}
	}()

	if rt.ClearScreen() {
		fmt.Fprint(out, terminal.Reset)
	}
	fmt.Fprintln(out, ui.Banner(ui.BannerTitle, colored(rt)))

	a, err := collect(ctx, rt)
	if err != nil {
		return err
	}
	logger.Info("collected answers", "name", a.Name, "environment", a.Environment)

	steps := Plan(a, rt.Project())
	if rt.Settings().DryRun {
		return printPlan(out, rt, a, steps)
	}

	ui.Heading(out, styles.Accent, "\n\n🔧 Updating project files...\n")
	runner := task.NewRunner(out, styles, task.WithIndicator(rt.Indicator()), task.WithLogger(logger))
	report := runner.RunAll(ctx, Tasks(steps))
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("setup interrupted with %s left: %w", english.Plural(report.Skipped, "task", ""), err)
	}

	printSummary(out, styles, report)
	printNextSteps(out, styles, a)

	for _, m := range logger.Metrics() {
		logger.Debug("metric", "name", m.Name, "value", m.Value, "count", m.Count, "tags", m.Tags)
	}
	return nil
}

// collect reads the answers file when one is configured and asks the
// questions otherwise.
func collect(ctx context.Context, rt runtime.Provider) (answers.Answers, error) {
	defaults, err := rt.Defaults(ctx)
	if err != nil {
		return answers.Answers{}, err
	}

	if path := rt.Settings().Answers; path != "" {
		rt.Logger().Info("reading answers file", "path", path)
		return answers.Load(rt.Fs(), path, defaults, rt.Lookup())
	}
	return answers.NewCollector(rt.Prompter(), rt.Out(), rt.Styles()).Collect(ctx, defaults)
}

func printPlan(out io.Writer, rt runtime.Provider, a answers.Answers, steps []Step) error {
	version, err := schema.GetLatestVersion()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(answersFile{APIVersion: version, Answers: a})
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}
	highlighted, err := cli.Highlight(data, cli.OutputFormatYAML, colored(rt))
	if err != nil {
		return err
	}

	styles := rt.Styles()
	ui.Heading(out, styles.Accent, "\n📋 Answers\n")
	fmt.Fprintln(out, highlighted)

	ui.Heading(out, styles.Accent, "🗂  Planned tasks\n")
	ui.NewTable(cli.GetPlanColumns(true), cli.PlanRows(PlanRows(steps))).
		Fit(ui.TableMaxWidth).
		Print(out)
	fmt.Fprintln(out, styles.Dim.Sprint("\n   Dry run: no file was changed and no command was run."))
	return nil
}

func printSummary(out io.Writer, styles ui.Styles, report task.Report) {
	if report.OK() {
		fmt.Fprintln(out, styles.Success.Sprint("\n   Setup completed successfully!"))
		return
	}
	fmt.Fprintln(out, styles.Warning.Sprintf("\n   Setup completed with %s: %s",
		english.Plural(len(report.Failed), "failed task", ""),
		english.WordSeries(report.Failed, "and")))
}

func printNextSteps(out io.Writer, styles ui.Styles, a answers.Answers) {
	ui.Heading(out, styles.Accent, "\n🚀 Next steps:")

	ui.Heading(out, styles.Dim, "\n   Finish setup\n")
	ui.PrintNumbered(out, styles, NextSteps(a))

	ui.Heading(out, styles.Dim, "\n   Daily workflow\n")
	ui.PrintBulleted(out, styles, Workflow(a))

	ui.Heading(out, styles.Accent, "\n✨ Happy coding!\n")
}

// colored reports whether output is styled at all.
func colored(rt runtime.Provider) bool {
	return !rt.Settings().NoColor && !color.NoColor
}
