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

// Package project applies the collected answers to a checked out library
// template: it rewrites configuration files, prunes optional tooling and
// drives npm and git.
package project

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/fvena/typescript-library-template-pro/internal/command"
)

// Paths of the template files, relative to the project directory.
const (
	PackageJSONPath       = "package.json"
	LicensePath           = "LICENSE"
	ReadmePath            = "README.md"
	TSConfigPath          = "tsconfig.json"
	ESLintConfigPath      = "eslint.config.js"
	VitestConfigPath      = "vitest.config.ts"
	TsupConfigPath        = "tsup.config.ts"
	DocsDir               = "docs"
	DocsConfigPath        = "docs/.vitepress/config.ts"
	DeployWorkflowPath    = ".github/workflows/deploy.yml"
	PlaygroundDir         = "playground"
	TerminalPlaygroundDir = "playground/terminal"
	BrowserPlaygroundDir  = "playground/browser"
	TestDir               = "test"
)

// ErrNameTaken is returned by Publish when npm refuses the package name.
var ErrNameTaken = errors.New("the package name is already taken on npm")

// Project is a library template checked out in a directory.
type Project struct {
	root   afero.Fs
	fs     afero.Fs
	dir    string
	script string
	runner command.Runner
	logger *log.Logger
}

// Option configures a Project.
type Option func(*Project)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *log.Logger) Option {
	return func(p *Project) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithScript sets the path of the setup tool removed by RemoveScript.
func WithScript(path string) Option {
	return func(p *Project) {
		p.script = path
	}
}

// New returns the project in dir. File paths are resolved inside dir on
// fsys and commands run with dir as working directory.
func New(fsys afero.Fs, dir string, runner command.Runner, opts ...Option) *Project {
	p := &Project{
		root:   fsys,
		fs:     afero.NewBasePathFs(fsys, dir),
		dir:    dir,
		runner: runner,
		logger: log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Dir returns the project directory.
func (p *Project) Dir() string {
	return p.dir
}

// Script returns the path removed by RemoveScript.
func (p *Project) Script() string {
	return p.script
}

func (p *Project) readFile(name string) (string, error) {
	data, err := afero.ReadFile(p.fs, name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (p *Project) writeFile(name, content string) error {
	perm := os.FileMode(0o644)
	if info, err := p.fs.Stat(name); err == nil {
		perm = info.Mode().Perm()
	}
	if err := afero.WriteFile(p.fs, name, []byte(content), perm); err != nil {
		return err
	}
	p.logger.Debug("Updated file", "file", name)
	return nil
}

// editFile rewrites name through fn. The file must exist.
func (p *Project) editFile(name string, fn func(string) string) error {
	content, err := p.readFile(name)
	if err != nil {
		return err
	}
	updated := fn(content)
	if updated == content {
		return nil
	}
	return p.writeFile(name, updated)
}

// editOptional is editFile for files a template may not ship.
func (p *Project) editOptional(name string, fn func(string) string) error {
	ok, err := afero.Exists(p.fs, name)
	if err != nil {
		return err
	}
	if !ok {
		p.logger.Debug("Skipping missing file", "file", name)
		return nil
	}
	return p.editFile(name, fn)
}

// flatten replaces dir with the merged contents of the given
// subdirectories. Later sources overwrite files of earlier ones and missing
// sources are skipped, but at least one must exist.
func (p *Project) flatten(dir string, sources ...string) error {
	type entry struct {
		data []byte
		mode os.FileMode
	}
	files := make(map[string]entry)
	var order []string

	found := 0
	for _, src := range sources {
		srcPath := filepath.Join(dir, src)
		if ok, err := afero.DirExists(p.fs, srcPath); err != nil {
			return err
		} else if !ok {
			p.logger.Debug("Skipping missing directory", "file", srcPath)
			continue
		}
		found++
		err := afero.Walk(p.fs, srcPath, func(path string, info fs.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			rel, err := filepath.Rel(srcPath, path)
			if err != nil {
				return err
			}
			data, err := afero.ReadFile(p.fs, path)
			if err != nil {
				return err
			}
			if _, seen := files[rel]; !seen {
				order = append(order, rel)
			}
			files[rel] = entry{data: data, mode: info.Mode().Perm()}
			return nil
		})
		if err != nil {
			return err
		}
	}

	if found == 0 {
		return fmt.Errorf("%s: none of %s found: %w", dir, strings.Join(sources, ", "), fs.ErrNotExist)
	}

	if err := p.fs.RemoveAll(dir); err != nil {
		return err
	}
	if err := p.fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, rel := range order {
		target := filepath.Join(dir, rel)
		if err := p.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		if err := afero.WriteFile(p.fs, target, files[rel].data, files[rel].mode); err != nil {
			return err
		}
	}
	p.logger.Debug("Flattened directory", "file", dir, "sources", strings.Join(sources, ","), "files", len(order))
	return nil
}
