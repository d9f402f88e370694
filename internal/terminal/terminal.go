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

// Package terminal owns the process terminal: raw mode acquisition, key
// decoding and the ANSI control sequences the prompts render with.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 120

// Terminal is the handle an interactive prompt borrows for its lifetime.
//
// MakeRaw switches the input into raw mode and returns the function that puts
// it back exactly as it was. Callers own the returned restore func and must
// call it on every exit path.
type Terminal interface {
	IsTerminal() bool
	MakeRaw() (restore func() error, err error)
	Width() int
}

// Std is the Terminal backed by the process standard streams.
type Std struct {
	in  *os.File
	out *os.File
}

// NewStd returns a terminal handle for the given input and output files.
func NewStd(in, out *os.File) *Std {
	return &Std{in: in, out: out}
}

// IsTerminal reports whether the input is an interactive terminal.
func (s *Std) IsTerminal() bool {
	return term.IsTerminal(int(s.in.Fd()))
}

// MakeRaw puts the input into raw mode. When the input is not a terminal it
// does nothing and the returned restore func is a no-op.
func (s *Std) MakeRaw() (func() error, error) {
	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return func() error { return nil }, nil
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set terminal to raw mode: %w", err)
	}

	return func() error {
		return term.Restore(fd, oldState)
	}, nil
}

// Width returns the output width in columns, or DefaultWidth when unknown.
func (s *Std) Width() int {
	width, _, err := term.GetSize(int(s.out.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// IsOutputTerminal reports whether stdout is attached to a terminal.
func IsOutputTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
