package runtime

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"github.com/fvena/typescript-library-template-pro/internal/answers"
	"github.com/fvena/typescript-library-template-pro/internal/command"
	"github.com/fvena/typescript-library-template-pro/internal/config"
	"github.com/fvena/typescript-library-template-pro/internal/gitinfo"
	"github.com/fvena/typescript-library-template-pro/internal/logging"
	"github.com/fvena/typescript-library-template-pro/internal/project"
	"github.com/fvena/typescript-library-template-pro/internal/prompt"
	"github.com/fvena/typescript-library-template-pro/internal/task"
	"github.com/fvena/typescript-library-template-pro/internal/terminal"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// runtimeKey is a private context key for storing the Runtime in context
type runtimeKey struct{}

// Runtime holds per-invocation state and lazily initialized collaborators.
// It implements the Provider interface for dependency injection.
type Runtime struct {
	settings    config.Settings
	fs          afero.Fs
	in          io.Reader
	out         io.Writer
	term        terminal.Terminal
	styles      *ui.Styles
	lookup      answers.LookupFunc
	now         func() time.Time
	clearScreen bool

	logger   *logging.ObservableLogger
	runner   command.Runner
	gitInfo  *gitinfo.Info
	project  *project.Project
	prompter prompt.Prompter
	mu       sync.Mutex

	// Factory functions for creating collaborators (enables testing)
	prompterFactory  func(*Runtime) prompt.Prompter
	indicatorFactory task.IndicatorFactory
}

// Option defines a functional option for configuring Runtime.
type Option func(*Runtime)

// WithSettings sets the resolved configuration of the run.
func WithSettings(settings config.Settings) Option {
	return func(r *Runtime) {
		r.settings = settings
	}
}

// WithFs sets the filesystem the project and answers file are read from.
func WithFs(fs afero.Fs) Option {
	return func(r *Runtime) {
		r.fs = fs
	}
}

// WithIO sets the streams prompts read from and the wizard writes to.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(r *Runtime) {
		r.in = in
		r.out = out
	}
}

// WithTerminal sets the terminal handle the select prompt switches to raw mode.
func WithTerminal(term terminal.Terminal) Option {
	return func(r *Runtime) {
		r.term = term
	}
}

// WithStyles overrides the palette derived from the settings.
func WithStyles(styles ui.Styles) Option {
	return func(r *Runtime) {
		r.styles = &styles
	}
}

// WithLookup sets how ${VAR} references in an answers file are resolved.
func WithLookup(lookup answers.LookupFunc) Option {
	return func(r *Runtime) {
		r.lookup = lookup
	}
}

// WithClock sets the time source used for the license year.
func WithClock(now func() time.Time) Option {
	return func(r *Runtime) {
		r.now = now
	}
}

// WithClearScreen controls whether the screen is reset before the banner.
func WithClearScreen(clear bool) Option {
	return func(r *Runtime) {
		r.clearScreen = clear
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *logging.ObservableLogger) Option {
	return func(r *Runtime) {
		r.logger = logger
	}
}

// WithCommandRunner sets how git and npm are invoked.
func WithCommandRunner(runner command.Runner) Option {
	return func(r *Runtime) {
		r.runner = runner
	}
}

// WithPrompterFactory sets a custom prompter factory for testing.
func WithPrompterFactory(factory func(*Runtime) prompt.Prompter) Option {
	return func(r *Runtime) {
		r.prompterFactory = factory
	}
}

// WithIndicator sets the progress indicator of every task.
func WithIndicator(factory task.IndicatorFactory) Option {
	return func(r *Runtime) {
		r.indicatorFactory = factory
	}
}

// defaultPrompterFactory picks the raw terminal engine, or huh forms when
// the settings ask for them.
func defaultPrompterFactory(r *Runtime) prompt.Prompter {
	if r.settings.Forms {
		return prompt.NewForms(r.out, r.Styles())
	}
	return prompt.NewEngine(r.term, r.in, r.out, r.Styles())
}

// New constructs a Runtime with functional options. Unset collaborators
// default to the process streams and the OS filesystem.
func New(options ...Option) *Runtime {
	r := &Runtime{
		fs:              afero.NewOsFs(),
		in:              os.Stdin,
		out:             os.Stdout,
		lookup:          os.LookupEnv,
		now:             time.Now,
		prompterFactory: defaultPrompterFactory,
	}

	for _, option := range options {
		option(r)
	}

	if r.term == nil {
		r.term = terminal.NewStd(os.Stdin, os.Stdout)
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	if r.indicatorFactory == nil {
		r.indicatorFactory = task.SpinnerIndicator
		if r.settings.Forms {
			r.indicatorFactory = task.FormSpinnerIndicator
		}
	}
	return r
}

// WithRuntime returns a new context carrying the provided runtime.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// FromRuntime extracts a Runtime from the command context, or nil if absent.
func FromRuntime(ctx context.Context) *Runtime {
	if v := ctx.Value(runtimeKey{}); v != nil {
		if rt, ok := v.(*Runtime); ok {
			return rt
		}
	}
	return nil
}

// Settings returns the resolved configuration.
func (r *Runtime) Settings() config.Settings { return r.settings }

// Fs returns the filesystem of the run.
func (r *Runtime) Fs() afero.Fs { return r.fs }

// Out returns the writer the wizard prints to.
func (r *Runtime) Out() io.Writer { return r.out }

// Lookup returns the resolver of ${VAR} references.
func (r *Runtime) Lookup() answers.LookupFunc { return r.lookup }

// Now returns the current time of the run's clock.
func (r *Runtime) Now() time.Time { return r.now() }

// ClearScreen reports whether the screen is reset before the banner.
func (r *Runtime) ClearScreen() bool { return r.clearScreen }

// Logger returns the observable logger of the run.
func (r *Runtime) Logger() *logging.ObservableLogger { return r.logger }

// Indicator returns the progress indicator factory of the task runner.
func (r *Runtime) Indicator() task.IndicatorFactory { return r.indicatorFactory }

// Styles returns the palette, colored unless disabled by the settings or
// an output that is not a terminal.
func (r *Runtime) Styles() ui.Styles {
	if r.styles != nil {
		return *r.styles
	}
	return ui.NewStyles(!r.settings.NoColor && !color.NoColor)
}

// Commands returns a memoized command runner.
func (r *Runtime) Commands() command.Runner {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.commandsLocked()
}

func (r *Runtime) commandsLocked() command.Runner {
	if r.runner == nil {
		r.runner = command.NewExec(r.logger.Logger())
	}
	return r.runner
}

// GitInfo returns what git knows about the project directory. Lookups are
// made once; failures leave fields empty.
func (r *Runtime) GitInfo(ctx context.Context) gitinfo.Info {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gitInfo != nil {
		return *r.gitInfo
	}

	info := gitinfo.Discover(ctx, r.commandsLocked(), r.settings.Dir)
	r.logger.Debug("Discovered git information", "user", info.UserName, "repo", info.RepoName)
	r.gitInfo = &info
	return info
}

// Defaults returns the answers offered before any question is asked.
func (r *Runtime) Defaults(ctx context.Context) (answers.Answers, error) {
	info := r.GitInfo(ctx)
	return answers.Defaults(info, r.settings.Dir, answers.Fallback{
		Author:  r.settings.Author,
		Email:   r.settings.Email,
		License: r.settings.License,
	}, r.now())
}

// Project returns the memoized template checkout the tasks operate on.
func (r *Runtime) Project() *project.Project {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.project != nil {
		return r.project
	}

	r.project = project.New(r.fs, r.settings.Dir, r.commandsLocked(),
		project.WithLogger(r.logger.Logger()),
		project.WithScript(r.settings.Script),
	)
	return r.project
}

// Prompter returns the memoized prompter answers are collected with.
func (r *Runtime) Prompter() prompt.Prompter {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.prompter == nil {
		r.prompter = r.prompterFactory(r)
	}
	return r.prompter
}

// Close releases the collaborators of the runtime.
// It's safe to call multiple times.
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gitInfo = nil
	r.project = nil
	r.prompter = nil

	return r.logger.Close()
}
