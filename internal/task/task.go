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

// Package task runs named units of setup work with progress feedback.
//
// A failing task is reported, never fatal: the runner returns false and the
// caller moves on to the next task.
package task

import (
	"context"
	"io"

	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// Func is a unit of work.
type Func func(ctx context.Context) error

// Task is one independently reported step of the setup.
type Task struct {
	// Loading is shown while Run is in flight.
	Loading string
	// Success replaces Loading when Run returns nil.
	Success string
	Run     Func
}

// Indicator renders progress for one task. Exactly one of Stop or Fail is
// called after Start.
type Indicator interface {
	Start()
	Stop(final string)
	Fail(message string)
}

// IndicatorFactory creates the indicator for a task's loading label.
type IndicatorFactory func(ctx context.Context, out io.Writer, label string, styles ui.Styles) Indicator

// SpinnerIndicator is the IndicatorFactory of the raw terminal mode.
func SpinnerIndicator(_ context.Context, out io.Writer, label string, styles ui.Styles) Indicator {
	return ui.NewSpinner(out, label, styles)
}

// FormSpinnerIndicator is the IndicatorFactory of the forms mode.
func FormSpinnerIndicator(ctx context.Context, out io.Writer, label string, styles ui.Styles) Indicator {
	return ui.NewFormSpinner(ctx, out, label, styles)
}

// Report summarizes a sequence of tasks.
type Report struct {
	Total  int
	Failed []string
	// Skipped counts tasks never started because the context was done.
	Skipped int
}

// OK reports whether every task succeeded.
func (r Report) OK() bool {
	return len(r.Failed) == 0 && r.Skipped == 0
}
