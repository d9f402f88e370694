package setup

import (
	"context"
	"fmt"

	"github.com/fvena/typescript-library-template-pro/internal/answers"
	"github.com/fvena/typescript-library-template-pro/internal/cli"
	"github.com/fvena/typescript-library-template-pro/internal/project"
	"github.com/fvena/typescript-library-template-pro/internal/task"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// Kind tells whether a step edits files or runs an external command.
type Kind string

const (
	KindFile    Kind = "file"
	KindCommand Kind = "command"
)

// Step is one candidate task of a setup run. Skipped steps are shown in a
// dry run plan and never run.
type Step struct {
	task.Task
	Kind Kind
	Skip bool
}

// Links printed in the next steps.
const (
	PagesGuideURL  = "https://shorturl.at/xuPq3"
	TokensGuideURL = "https://shorturl.at/XvwKS"
)

// Plan returns every candidate step of a run in execution order. Which ones
// are skipped depends only on a.
func Plan(a answers.Answers, p *project.Project) []Step {
	file := func(loading, success string, skip bool, fn func() error) Step {
		return Step{
			Task: task.Task{Loading: loading, Success: success, Run: func(context.Context) error { return fn() }},
			Kind: KindFile,
			Skip: skip,
		}
	}
	command := func(loading, success string, skip bool, fn task.Func) Step {
		return Step{
			Task: task.Task{Loading: loading, Success: success, Run: fn},
			Kind: KindCommand,
			Skip: skip,
		}
	}

	return []Step{
		file("Updating package.json", "Updated package.json", false, func() error {
			return p.UpdatePackageJSON(a)
		}),
		file("Updating LICENSE", "Updated LICENSE", false, func() error {
			return p.UpdateLicense(a)
		}),
		file("Updating VitePress configuration", "Updated VitePress configuration", !a.IncludeDocs, func() error {
			return p.UpdateDocsConfig(a)
		}),
		file("Removing VitePress documentation", "Removed VitePress documentation", a.IncludeDocs, p.RemoveDocs),
		file("Updating playground", "Updated playground", false, func() error {
			return p.UpdatePlayground(a)
		}),
		file("Creating README.md", "Created README.md", false, func() error {
			return p.CreateReadme(a)
		}),
		command("Updating & installing dependencies", "Updated & installed dependencies", false, p.UpdateDependencies),
		file("Removing browser support", "Removed browser support", a.Environment != answers.EnvironmentNode, p.RemoveBrowserSupport),
		file("Removing node support", "Removed node support", a.Environment != answers.EnvironmentBrowser, p.RemoveNodeSupport),
		command("Publishing npm library", "Published npm library", !a.Publish, p.Publish),
		command("Committing changes", "Committed changes", !a.Commit, p.Commit),
		file("Cleaning up setup script", "Cleaned up setup script", false, p.RemoveScript),
	}
}

// Tasks returns the tasks of the steps that are not skipped.
func Tasks(steps []Step) []task.Task {
	tasks := make([]task.Task, 0, len(steps))
	for _, s := range steps {
		if !s.Skip {
			tasks = append(tasks, s.Task)
		}
	}
	return tasks
}

// PlanRows describes steps for the dry run table.
func PlanRows(steps []Step) []cli.PlanRow {
	rows := make([]cli.PlanRow, 0, len(steps))
	for i, s := range steps {
		status := cli.StatusRun
		if s.Skip {
			status = cli.StatusSkip
		}
		rows = append(rows, cli.PlanRow{Index: i + 1, Task: s.Loading, Kind: string(s.Kind), Status: status})
	}
	return rows
}

// NextSteps returns what is left for the user once setup is done.
func NextSteps(a answers.Answers) []ui.Step {
	var steps []ui.Step
	if a.IncludeDocs {
		steps = append(steps, ui.Step{Title: "Configure GitHub pages", Detail: PagesGuideURL, Link: true})
	}
	steps = append(steps, ui.Step{Title: "Configure Tokens", Detail: TokensGuideURL, Link: true})
	if !a.Publish {
		steps = append(steps, ui.Step{Title: "Publish to npm", Detail: "npm publish"})
	}
	if !a.Commit {
		steps = append(steps, ui.Step{Title: "Commit changes", Detail: fmt.Sprintf("git commit -m %q", project.CommitMessage)})
	}
	steps = append(steps, ui.Step{Title: "Push to GitHub", Detail: "git push origin main"})
	if a.IncludeDocs {
		steps = append(steps, ui.Step{
			Title:  "View online docs",
			Detail: fmt.Sprintf("https://%s.github.io/%s", a.UserName, a.RepoName),
			Link:   true,
		})
	}
	return steps
}

// Workflow returns the everyday commands of the configured library.
func Workflow(a answers.Answers) []ui.Step {
	steps := []ui.Step{
		{Title: "Start development", Detail: "npm run dev"},
		{Title: "Test your library", Detail: "npm test"},
		{Title: "Try the playground", Detail: "npm run playground"},
	}
	if a.IncludeDocs {
		steps = append(steps, ui.Step{Title: "Preview docs", Detail: "npm run docs:dev"})
	}
	return steps
}
