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

// Package runtime wires the collaborators of one setup run.
package runtime

import (
	"context"
	"io"
	"time"

	"github.com/spf13/afero"

	"github.com/fvena/typescript-library-template-pro/internal/answers"
	"github.com/fvena/typescript-library-template-pro/internal/config"
	"github.com/fvena/typescript-library-template-pro/internal/logging"
	"github.com/fvena/typescript-library-template-pro/internal/project"
	"github.com/fvena/typescript-library-template-pro/internal/prompt"
	"github.com/fvena/typescript-library-template-pro/internal/task"
	"github.com/fvena/typescript-library-template-pro/internal/ui"
)

// Provider defines what the setup flow needs from a run. It enables
// testing the flow against a runtime assembled from fakes.
type Provider interface {
	// Settings returns the resolved configuration
	Settings() config.Settings

	// Fs returns the filesystem answers files are read from
	Fs() afero.Fs

	// Out returns the writer every message is printed to
	Out() io.Writer

	// Styles returns the palette of the run
	Styles() ui.Styles

	// Lookup resolves ${VAR} references in answers files
	Lookup() answers.LookupFunc

	// Now returns the current time
	Now() time.Time

	// ClearScreen reports whether the screen is reset before the banner
	ClearScreen() bool

	// Logger returns the observable logger of the run
	Logger() *logging.ObservableLogger

	// Indicator returns how task progress is rendered
	Indicator() task.IndicatorFactory

	// Defaults returns the answers offered before any question is asked
	Defaults(ctx context.Context) (answers.Answers, error)

	// Project returns the template checkout the tasks operate on
	Project() *project.Project

	// Prompter returns the backend questions are asked with
	Prompter() prompt.Prompter

	// Close performs cleanup of resources held by the runtime
	Close() error
}

var _ Provider = (*Runtime)(nil)
