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

// Package cli holds presentation helpers shared by the commands.
package cli

// Exit Codes
const (
	// ExitSuccess indicates successful program execution
	ExitSuccess = 0

	// ExitError is the exit code used when setup fails or is interrupted
	ExitError = 1
)

// Output Formats
const (
	// OutputFormatYAML formats answers as an answers file
	OutputFormatYAML = "yaml"

	// OutputFormatJSON formats answers as JSON
	OutputFormatJSON = "json"
)

// OutputFormats contains all valid output formats
var OutputFormats = []string{OutputFormatYAML, OutputFormatJSON}

// Planned task statuses, styled by ui.GetStatusStyle.
const (
	StatusRun     = "run"
	StatusSkip    = "skip"
	StatusCommand = "command"
)
