package ui

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Spinner renders an animated status line with the seconds elapsed since it
// was created, and a single final success or failure line.
//
// Exactly one of Stop or Fail renders; later calls are ignored. Both join the
// ticking goroutine before writing, so nothing is written after the final line.
type Spinner struct {
	out      io.Writer
	label    string
	styles   Styles
	interval time.Duration
	now      func() time.Time

	started time.Time
	frame   int

	once     sync.Once
	done     chan struct{}
	finished chan struct{}
}

// SpinnerOption configures a Spinner.
type SpinnerOption func(*Spinner)

// WithInterval sets the tick interval.
func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) SpinnerOption {
	return func(s *Spinner) {
		s.now = now
	}
}

// NewSpinner creates a spinner for label. Elapsed time counts from here.
func NewSpinner(out io.Writer, label string, styles Styles, opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		out:      out,
		label:    label,
		styles:   styles,
		interval: SpinnerRefreshRate,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.started = s.now()
	return s
}

// Start begins ticking. It must be followed by exactly one Stop or Fail.
func (s *Spinner) Start() {
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	s.finished = make(chan struct{})
	go s.loop()
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer close(s.finished)

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.tick()
		}
	}
}

func (s *Spinner) tick() {
	s.frame = (s.frame + 1) % len(SpinnerFrames)
	fmt.Fprintf(s.out, "\r%s%s %s      ",
		Indent,
		s.styles.Warning.Sprintf("%s %s...", SpinnerFrames[s.frame], s.label),
		s.styles.Dim.Sprintf("(%ds)", s.elapsed()),
	)
}

// Stop halts the spinner and renders the success line.
func (s *Spinner) Stop(final string) {
	s.finish(func(elapsed int) {
		fmt.Fprintf(s.out, "\r%s%s %s %s     \n",
			Indent,
			s.styles.Success.Sprint("✔"),
			final,
			s.styles.Dim.Sprintf("(%ds)", elapsed),
		)
	})
}

// Fail halts the spinner and renders the failure line.
func (s *Spinner) Fail(message string) {
	s.finish(func(elapsed int) {
		fmt.Fprintf(s.out, "\r%s%s %s      \n",
			Indent,
			s.styles.Failure.Sprintf("! %s", message),
			s.styles.Dim.Sprintf("(%ds)", elapsed),
		)
	})
}

func (s *Spinner) finish(render func(elapsed int)) {
	s.once.Do(func() {
		if s.done != nil {
			close(s.done)
			<-s.finished
		}
		render(s.elapsed())
	})
}

func (s *Spinner) elapsed() int {
	return int(s.now().Sub(s.started) / time.Second)
}
