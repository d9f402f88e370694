// Package answers holds the answer record of a setup run: how it is
// collected interactively, loaded from a file, defaulted and validated.
package answers

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"dario.cat/mergo"

	"github.com/fvena/typescript-library-template-pro/internal/gitinfo"
	"github.com/fvena/typescript-library-template-pro/internal/prompt"
	"github.com/fvena/typescript-library-template-pro/internal/util"
)

// DefaultLicense is used when neither settings nor the answers file name one.
const DefaultLicense = "MIT"

// Environment is the runtime the library targets.
type Environment string

const (
	EnvironmentBoth    Environment = "both"
	EnvironmentNode    Environment = "node"
	EnvironmentBrowser Environment = "browser"
)

// EnvironmentOptions are the choices of the environment select, in order.
var EnvironmentOptions = []prompt.Option{
	{Key: string(EnvironmentBoth), Label: "Node.js and browser"},
	{Key: string(EnvironmentBrowser), Label: "Browser only"},
	{Key: string(EnvironmentNode), Label: "Node.js only"},
}

// Valid reports whether e is one of the known environments.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentBoth, EnvironmentNode, EnvironmentBrowser:
		return true
	}
	return false
}

// Answers is the record every setup task reads. It is complete once
// collection returns and is not modified afterwards.
type Answers struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Keywords    []string    `json:"keywords"`
	Author      string      `json:"author"`
	Email       string      `json:"email"`
	UserName    string      `json:"userName"`
	RepoName    string      `json:"repoName"`
	Repository  string      `json:"repository"`
	Homepage    string      `json:"homepage"`
	Bugs        string      `json:"bugs"`
	License     string      `json:"license"`
	Year        string      `json:"year"`
	Environment Environment `json:"environment"`
	IncludeDocs bool        `json:"includeDocs"`
	Publish     bool        `json:"publish"`
	Commit      bool        `json:"commit"`
}

// Fallback carries the configured values used when git knows nothing.
type Fallback struct {
	Author  string
	Email   string
	License string
}

// Defaults builds the answers offered before the user says anything: git
// discoveries first, then fallback, then the directory name for the repo.
func Defaults(info gitinfo.Info, dir string, fallback Fallback, now time.Time) (Answers, error) {
	a := Answers{
		Author:     info.Author,
		Email:      info.Email,
		UserName:   info.UserName,
		RepoName:   info.RepoName,
		Repository: info.Repository,
	}

	err := mergo.Merge(&a, Answers{
		Author:   fallback.Author,
		Email:    fallback.Email,
		License:  fallback.License,
		RepoName: filepath.Base(dir),
	})
	if err != nil {
		return Answers{}, fmt.Errorf("failed to merge default answers: %w", err)
	}

	if a.License == "" {
		a.License = DefaultLicense
	}
	a.Name = a.RepoName
	a.Year = strconv.Itoa(now.Year())
	a.Environment = EnvironmentBoth
	a.IncludeDocs = true
	a.Publish = true
	a.Commit = true
	return a, nil
}

// ParseKeywords splits a comma separated list, trimming every keyword and
// dropping empty ones. Order and duplicates are kept.
func ParseKeywords(input string) []string {
	keywords := []string{}
	for _, k := range strings.Split(input, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

// Derive fills the fields computed from others.
func Derive(a *Answers) {
	a.Homepage = fmt.Sprintf("https://github.com/%s/%s#readme", a.UserName, a.RepoName)
	a.Bugs = fmt.Sprintf("https://github.com/%s/%s/issues", a.UserName, a.RepoName)
	if a.Keywords == nil {
		a.Keywords = []string{}
	}
}

// Validate checks that a complete record was produced.
func Validate(a Answers) error {
	var errs []error
	if err := util.ValidatePackageName(a.Name); err != nil {
		errs = append(errs, err)
	}
	for _, field := range []struct{ value, name string }{
		{a.Description, "description"},
		{a.Author, "author"},
		{a.UserName, "GitHub username"},
		{a.RepoName, "repository name"},
		{a.Repository, "repository URL"},
		{a.License, "license"},
		{a.Year, "year"},
	} {
		if err := util.ValidateNonEmpty(field.value, field.name); err != nil {
			errs = append(errs, err)
		}
	}
	if len(a.Keywords) == 0 {
		errs = append(errs, errors.New("keywords cannot be empty"))
	}
	if !a.Environment.Valid() {
		errs = append(errs, fmt.Errorf("environment %q is invalid: must be one of both, node, browser", a.Environment))
	}
	return errors.Join(errs...)
}
