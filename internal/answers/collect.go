package answers

import (
	"context"
	"fmt"
	"io"

	"github.com/fvena/typescript-library-template-pro/internal/prompt"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// Section headings printed while collecting.
const (
	SectionBasic    = "Basic Project Information"
	SectionAuthor   = "Author Details"
	SectionFeatures = "Configuration & Features"
)

// Collector asks the setup questions in a fixed order.
type Collector struct {
	prompter prompt.Prompter
	out      io.Writer
	styles   ui.Styles
}

// NewCollector creates a collector asking through p and printing headings
// to out.
func NewCollector(p prompt.Prompter, out io.Writer, styles ui.Styles) *Collector {
	return &Collector{prompter: p, out: out, styles: styles}
}

// Collect asks every question, offering the values of defaults, and returns
// the completed record. Any prompt error, ErrAborted included, stops the
// collection.
func (c *Collector) Collect(ctx context.Context, defaults Answers) (Answers, error) {
	a := defaults
	var err error

	fmt.Fprintln(c.out, c.styles.Accent.Sprint("\n📦 Please provide information about your library:\n"))
	sections := ui.NewProgressTracker(c.out, c.styles, SectionBasic, SectionAuthor, SectionFeatures)

	sections.NextStep()
	if a.Name, err = c.prompter.AskText(ctx, prompt.Text{Prompt: "Library name:", Default: defaults.Name}); err != nil {
		return Answers{}, err
	}
	if a.Description, err = c.prompter.AskText(ctx, prompt.Text{Prompt: "Library description:", Required: true}); err != nil {
		return Answers{}, err
	}
	if a.Keywords, err = c.askKeywords(ctx); err != nil {
		return Answers{}, err
	}

	sections.NextStep()
	if a.Author, err = c.prompter.AskText(ctx, prompt.Text{Prompt: "Author name:", Default: defaults.Author}); err != nil {
		return Answers{}, err
	}
	if a.Email, err = c.prompter.AskText(ctx, prompt.Text{Prompt: "Author email:", Default: defaults.Email}); err != nil {
		return Answers{}, err
	}
	if a.UserName == "" {
		if a.UserName, err = c.prompter.AskText(ctx, prompt.Text{Prompt: "GitHub username:"}); err != nil {
			return Answers{}, err
		}
	}
	if a.Repository == "" {
		if a.Repository, err = c.prompter.AskText(ctx, prompt.Text{Prompt: "Repository URL:", Required: true}); err != nil {
			return Answers{}, err
		}
	}
	Derive(&a)

	sections.NextStep()
	env, err := c.prompter.AskSelect(ctx, prompt.Select{
		Prompt:  "Supported environments",
		Options: EnvironmentOptions,
		Default: string(EnvironmentBoth),
	})
	if err != nil {
		return Answers{}, err
	}
	a.Environment = Environment(env)

	if a.IncludeDocs, err = c.prompter.AskConfirm(ctx, prompt.Confirm{Prompt: "Include VitePress documentation?"}); err != nil {
		return Answers{}, err
	}
	if a.Publish, err = c.prompter.AskConfirm(ctx, prompt.Confirm{
		Prompt: "Publish library to npm?",
		Hint:   "Verifies name availability and prevents CI errors",
	}); err != nil {
		return Answers{}, err
	}
	if a.Commit, err = c.prompter.AskConfirm(ctx, prompt.Confirm{
		Prompt: "Commit changes?",
		Hint:   "Initial commit with updated configuration",
	}); err != nil {
		return Answers{}, err
	}

	return a, nil
}

// askKeywords repeats the keywords question until at least one keyword
// survives parsing, so input such as "," is not accepted.
func (c *Collector) askKeywords(ctx context.Context) ([]string, error) {
	for {
		input, err := c.prompter.AskText(ctx, prompt.Text{Prompt: "Keywords", Hint: "comma separated", Required: true})
		if err != nil {
			return nil, err
		}
		if keywords := ParseKeywords(input); len(keywords) > 0 {
			return keywords, nil
		}
	}
}
