package project

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/fvena/typescript-library-template-pro/internal/answers"
)

//go:embed templates/*.tmpl
var templates embed.FS

var (
	copyrightPattern = regexp.MustCompile(`(?m)Copyright \(c\) \d+ .*$`)
	basePathPattern  = regexp.MustCompile(`github\.com[/:](.*?/)(.*?)(?:\.git)?$`)
	baseOption       = regexp.MustCompile(`base: ".*?"`)
	titleOption      = regexp.MustCompile(`title: ".*?"`)
	descOption       = regexp.MustCompile(`description: ".*?"`)
	githubLink       = regexp.MustCompile(`link: "https://github\.com/.*?"`)
)

// docsScripts are the package.json scripts that drive the documentation site.
var docsScripts = []string{"docs:dev", "docs:build", "docs:preview"}

// replaceFirst replaces the first match of re in s with the literal repl.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + repl + s[loc[1]:]
}

// UpdatePackageJSON writes the identity of the library into package.json.
// Key order and unrelated fields are preserved.
func (p *Project) UpdatePackageJSON(a answers.Answers) error {
	err := p.editJSON(PackageJSONPath, func(doc *jsonDoc) error {
		author := a.Author
		if a.Email != "" {
			author += " <" + a.Email + ">"
		}
		repoURL := a.Repository
		if !strings.HasPrefix(repoURL, "git+") {
			repoURL = "git+" + repoURL
		}
		keywords := a.Keywords
		if keywords == nil {
			keywords = []string{}
		}

		if err := errors.Join(
			doc.set("name", a.Name),
			doc.set("description", a.Description),
			doc.set("keywords", keywords),
			doc.set("author", author),
			doc.set("homepage", a.Homepage),
		); err != nil {
			return err
		}

		if doc.get("repository").IsObject() {
			if err := doc.set("repository.url", repoURL); err != nil {
				return err
			}
		} else if err := doc.setRaw("repository", mustRaw(map[string]string{"type": "git", "url": repoURL}, "type", "url")); err != nil {
			return err
		}
		return doc.setRaw("bugs", mustRaw(map[string]string{"url": a.Bugs}, "url"))
	})
	if err != nil {
		return fmt.Errorf("failed to update package.json: %w", err)
	}
	return nil
}

// mustRaw encodes a string map as a JSON object with keys in the given order.
func mustRaw(m map[string]string, keys ...string) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := marshalValue(k)
		value, _ := marshalValue(m[k])
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

// UpdateLicense rewrites the copyright line of the LICENSE file.
func (p *Project) UpdateLicense(a answers.Answers) error {
	err := p.editFile(LicensePath, func(s string) string {
		return replaceFirst(copyrightPattern, s, fmt.Sprintf("Copyright (c) %s %s", a.Year, a.Author))
	})
	if err != nil {
		return fmt.Errorf("failed to update LICENSE: %w", err)
	}
	return nil
}

// DocsBasePath returns the path the documentation site is served under on
// GitHub Pages for repository.
func DocsBasePath(repository string) string {
	m := basePathPattern.FindStringSubmatch(repository)
	if m == nil || m[2] == "" {
		return "/"
	}
	return "/" + m[2] + "/"
}

// UpdateDocsConfig points the VitePress configuration at the library.
func (p *Project) UpdateDocsConfig(a answers.Answers) error {
	err := p.editFile(DocsConfigPath, func(s string) string {
		s = replaceFirst(baseOption, s, "base: "+strconv.Quote(DocsBasePath(a.Repository)))
		s = replaceFirst(titleOption, s, "title: "+strconv.Quote(a.Name))
		s = replaceFirst(descOption, s, "description: "+strconv.Quote(a.Description))
		if a.Homepage != "" {
			link, _, _ := strings.Cut(a.Homepage, "#")
			s = replaceFirst(githubLink, s, "link: "+strconv.Quote(link))
		}
		return s
	})
	if err != nil {
		return fmt.Errorf("failed to update VitePress config: %w", err)
	}
	return nil
}

// RemoveDocs deletes the documentation site with its deploy workflow,
// scripts and dependency.
func (p *Project) RemoveDocs() error {
	if err := p.removeDocs(); err != nil {
		return fmt.Errorf("failed to remove VitePress: %w", err)
	}
	return nil
}

func (p *Project) removeDocs() error {
	if err := p.fs.RemoveAll(DocsDir); err != nil {
		return err
	}
	if err := p.fs.Remove(DeployWorkflowPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return p.editJSON(PackageJSONPath, func(doc *jsonDoc) error {
		paths := make([]string, 0, len(docsScripts)+1)
		for _, script := range docsScripts {
			paths = append(paths, "scripts."+script)
		}
		return doc.delete(append(paths, "devDependencies.vitepress")...)
	})
}

// UpdatePlayground renames the library dependency of both playgrounds.
func (p *Project) UpdatePlayground(a answers.Answers) error {
	if err := p.updateTerminalPlayground(a.Name); err != nil {
		return fmt.Errorf("failed to update playground: %w", err)
	}
	if err := p.updateBrowserPlayground(a.Name); err != nil {
		return fmt.Errorf("failed to update browser playground: %w", err)
	}
	return nil
}

// renameDependency replaces the dependencies of a playground package.json
// with the library and returns the name it replaced.
func (p *Project) renameDependency(dir, name string) (string, error) {
	var old string
	err := p.editJSON(dir+"/package.json", func(doc *jsonDoc) error {
		var ok bool
		if old, ok = doc.firstKey("dependencies"); !ok {
			return fmt.Errorf("no dependency to rename")
		}
		return doc.setRaw("dependencies", mustRaw(map[string]string{name: "*"}, name))
	})
	return old, err
}

func (p *Project) updateTerminalPlayground(name string) error {
	dir := TerminalPlaygroundDir
	old, err := p.renameDependency(dir, name)
	if err != nil {
		return err
	}

	err = p.editFile(dir+"/src/index.ts", func(s string) string {
		return strings.ReplaceAll(s, `from "`+old+`"`, `from "`+name+`"`)
	})
	if err != nil {
		return err
	}

	return p.editJSON(dir+"/tsconfig.json", func(doc *jsonDoc) error {
		target := doc.valueOf("compilerOptions.paths", old)
		if !target.Exists() {
			return nil
		}
		key, err := marshalValue(name)
		if err != nil {
			return err
		}
		raw := append(append(append([]byte("{"), key...), ':'), target.Raw...)
		return doc.setRaw("compilerOptions.paths", append(raw, '}'))
	})
}

func (p *Project) updateBrowserPlayground(name string) error {
	dir := BrowserPlaygroundDir
	old, err := p.renameDependency(dir, name)
	if err != nil {
		return err
	}
	rename := func(s string) string {
		return strings.ReplaceAll(s, strconv.Quote(old), strconv.Quote(name))
	}
	if err := p.editFile(dir+"/vite.config.js", rename); err != nil {
		return err
	}
	return p.editFile(dir+"/src/main.js", rename)
}

// readmeData feeds templates/README.md.tmpl.
type readmeData struct {
	Name        string
	Description string
	License     string
	UserName    string
	RepoName    string
	Docs        bool
}

// CreateReadme replaces README.md with a short one generated from
// package.json.
func (p *Project) CreateReadme(a answers.Answers) error {
	content, err := p.renderReadme(a)
	if err != nil {
		return fmt.Errorf("failed to clean README.md: %w", err)
	}
	if err := p.writeFile(ReadmePath, content); err != nil {
		return fmt.Errorf("failed to clean README.md: %w", err)
	}
	return nil
}

func (p *Project) renderReadme(a answers.Answers) (string, error) {
	content, err := p.readFile(PackageJSONPath)
	if err != nil {
		return "", err
	}
	doc, err := parseJSON(content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", PackageJSONPath, err)
	}

	tmpl, err := template.New("README.md.tmpl").Funcs(sprig.TxtFuncMap()).ParseFS(templates, "templates/README.md.tmpl")
	if err != nil {
		return "", fmt.Errorf("failed to parse README template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, readmeData{
		Name:        doc.get("name").String(),
		Description: doc.get("description").String(),
		License:     doc.get("license").String(),
		UserName:    a.UserName,
		RepoName:    a.RepoName,
		Docs:        a.IncludeDocs,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render README: %w", err)
	}
	return buf.String(), nil
}
