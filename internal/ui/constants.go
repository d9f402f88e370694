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

package ui

import "time"

// UI and Display
const (
	// Indent prefixes every line the wizard prints.
	Indent = "   "

	// TableMaxWidth is the maximum width for table displays
	TableMaxWidth = 120

	// SpinnerRefreshRate is how often to refresh spinner animations
	SpinnerRefreshRate = 80 * time.Millisecond

	// BannerTitle is shown in the box at the top of the wizard
	BannerTitle = "TypeScript Library Template Setup"

	// BannerWidth is the inner width of the banner box
	BannerWidth = 61
)

// Color constants for lipgloss styling
const (
	ColorBrightCyan  = "14"
	ColorRed         = "9"
	ColorYellow      = "11"
	ColorGreen       = "10"
	ColorGray        = "7"
	ColorBrightGray  = "8"
	ColorBrightWhite = "15"
)

// SpinnerFrames are cycled by the spinner on every tick.
var SpinnerFrames = []string{"◐", "◓", "◑", "◒"}
