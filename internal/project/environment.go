package project

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	vitestWorkspace   = regexp.MustCompile(`workspace: \[\s*\{[\s\S]*?\}\s*\],`)
	vitestEnvironment = regexp.MustCompile(`environment: ".*?"`)
	tsupNeutral       = regexp.MustCompile(`platform: "neutral"`)
	browserCodeBlock  = regexp.MustCompile("```javascript\\s*// Browser environment[\\s\\S]*?```")
	nodeCodeBlock     = regexp.MustCompile("```javascript\\s*// Node environment[\\s\\S]*?```")
)

// nodeTSConfig is the shared TypeScript configuration for Node.js only
// libraries.
const nodeTSConfig = "personal-style-guide/typescript/node"

// RemoveBrowserSupport turns the template into a Node.js only library.
func (p *Project) RemoveBrowserSupport() error {
	if err := p.removeBrowserSupport(); err != nil {
		return fmt.Errorf("failed to remove browser support: %w", err)
	}
	return nil
}

func (p *Project) removeBrowserSupport() error {
	if err := p.flatten(PlaygroundDir, "terminal"); err != nil {
		return err
	}
	if err := p.flatten(TestDir, "core", "terminal"); err != nil {
		return err
	}

	err := p.editJSON(TSConfigPath, func(doc *jsonDoc) error {
		return doc.set("extends", nodeTSConfig)
	})
	if err != nil {
		return err
	}

	err = p.editOptional(ESLintConfigPath, func(s string) string {
		s = strings.Replace(s, "import eslintBrowser from", "import eslintNode from", 1)
		return strings.Replace(s, "[...eslintBrowser]", "[...eslintNode]", 1)
	})
	if err != nil {
		return err
	}

	err = p.editOptional(VitestConfigPath, func(s string) string {
		s = replaceFirst(vitestWorkspace, s, "")
		return replaceFirst(vitestEnvironment, s, `environment: "node"`)
	})
	if err != nil {
		return err
	}

	err = p.editOptional(TsupConfigPath, func(s string) string {
		return replaceFirst(tsupNeutral, s, `platform: "node"`)
	})
	if err != nil {
		return err
	}

	if err := p.useSinglePlayground("play:terminal", "--workspace=playground/terminal", "jsdom"); err != nil {
		return err
	}

	return p.editOptional(ReadmePath, func(s string) string {
		s = removeSection(s, "## Browser Support")
		return browserCodeBlock.ReplaceAllLiteralString(s, "")
	})
}

// RemoveNodeSupport turns the template into a browser only library.
func (p *Project) RemoveNodeSupport() error {
	if err := p.removeNodeSupport(); err != nil {
		return fmt.Errorf("failed to remove node support: %w", err)
	}
	return nil
}

func (p *Project) removeNodeSupport() error {
	if err := p.flatten(PlaygroundDir, "browser"); err != nil {
		return err
	}

	// The playground moved one level up, and so did its alias to the build.
	err := p.editOptional(PlaygroundDir+"/vite.config.js", func(s string) string {
		return strings.ReplaceAll(s, `"../../dist"`, `"../dist"`)
	})
	if err != nil {
		return err
	}

	if err := p.flatten(TestDir, "core", "browser"); err != nil {
		return err
	}

	err = p.editOptional(VitestConfigPath, func(s string) string {
		s = replaceFirst(vitestWorkspace, s, "")
		return replaceFirst(vitestEnvironment, s, `environment: "jsdom"`)
	})
	if err != nil {
		return err
	}

	err = p.editOptional(TsupConfigPath, func(s string) string {
		return replaceFirst(tsupNeutral, s, `platform: "browser"`)
	})
	if err != nil {
		return err
	}

	if err := p.useSinglePlayground("play:browser", "--workspace=playground/browser"); err != nil {
		return err
	}

	return p.editOptional(ReadmePath, func(s string) string {
		s = removeSection(s, "## Node Support")
		return nodeCodeBlock.ReplaceAllLiteralString(s, "")
	})
}

// useSinglePlayground rewrites package.json for a playground living
// directly in playground/. The new "playground" script is derived from
// script, and devDeps that only served the removed runtime are dropped.
func (p *Project) useSinglePlayground(script, workspace string, devDeps ...string) error {
	return p.editJSON(PackageJSONPath, func(doc *jsonDoc) error {
		if err := doc.set("workspaces", []string{PlaygroundDir}); err != nil {
			return err
		}
		if cmd := doc.valueOf("scripts", script); cmd.Exists() {
			updated := strings.Replace(cmd.String(), workspace, "--workspace="+PlaygroundDir, 1)
			if err := doc.set("scripts.playground", updated); err != nil {
				return err
			}
		}
		paths := []string{"scripts.play:browser", "scripts.play:terminal"}
		for _, dep := range devDeps {
			paths = append(paths, "devDependencies."+dep)
		}
		return doc.delete(paths...)
	})
}

// removeSection deletes the Markdown section starting at heading up to the
// next heading, or the end of s.
func removeSection(s, heading string) string {
	start := strings.Index(s, heading)
	if start < 0 {
		return s
	}
	rest := s[start+len(heading):]
	if end := strings.Index(rest, "##"); end >= 0 {
		return s[:start] + rest[end:]
	}
	return s[:start]
}
