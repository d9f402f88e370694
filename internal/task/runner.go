package task

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fvena/typescript-library-template-pro/internal/logging"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// Runner executes tasks one at a time.
type Runner struct {
	out       io.Writer
	styles    ui.Styles
	indicator IndicatorFactory
	logger    *logging.ObservableLogger
}

// Option configures a Runner.
type Option func(*Runner)

// WithIndicator replaces the spinner used for every task.
func WithIndicator(factory IndicatorFactory) Option {
	return func(r *Runner) {
		r.indicator = factory
	}
}

// WithLogger sets the logger receiving task outcomes and metrics.
func WithLogger(logger *logging.ObservableLogger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a runner printing to out.
func NewRunner(out io.Writer, styles ui.Styles, opts ...Option) *Runner {
	r := &Runner{
		out:       out,
		styles:    styles,
		indicator: SpinnerIndicator,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts an indicator for t, runs it and reports the outcome. It returns
// whether the task succeeded; a failure is printed, not returned.
func (r *Runner) Run(ctx context.Context, t Task) bool {
	indicator := r.indicator(ctx, r.out, t.Loading, r.styles)
	indicator.Start()

	started := time.Now()
	err := runSafely(ctx, t.Run)
	r.logger.Metric(ctx, logging.MetricPrefix+".tasks.duration_ms", float64(time.Since(started).Milliseconds()), map[string]string{
		"task": t.Loading,
	})

	if err != nil {
		indicator.Fail(t.Loading + "... [ERROR]")
		fmt.Fprintf(r.out, "\r%s%s\n", ui.Indent, r.styles.Failure.Sprint("  "+err.Error()))
		r.logger.Error("task failed", "task", t.Loading, "err", err)
		r.logger.Metric(ctx, logging.MetricPrefix+".tasks.total", 1, map[string]string{"result": "failed"})
		return false
	}

	indicator.Stop(t.Success)
	r.logger.Debug("task finished", "task", t.Loading)
	r.logger.Metric(ctx, logging.MetricPrefix+".tasks.total", 1, map[string]string{"result": "ok"})
	return true
}

// RunAll runs tasks in order. A failed task does not stop the sequence; a
// done context does, before the next task starts.
func (r *Runner) RunAll(ctx context.Context, tasks []Task) Report {
	report := Report{Total: len(tasks)}
	for i, t := range tasks {
		if ctx.Err() != nil {
			report.Skipped = len(tasks) - i
			r.logger.Warn("setup interrupted", "skipped", report.Skipped)
			break
		}
		if !r.Run(ctx, t) {
			report.Failed = append(report.Failed, t.Loading)
		}
	}
	return report
}

// runSafely turns a panicking unit of work into an error.
func runSafely(ctx context.Context, fn Func) (err error) {
	if fn == nil {
		return errors.New("task has nothing to run")
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("unexpected failure: %v", p)
		}
	}()
	return fn(ctx)
}
