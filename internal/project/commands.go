package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"

	"github.com/fvena/typescript-library-template-pro/internal/command"
)

// CommitMessage is used for the commit recording the configured template.
const CommitMessage = "feat: update project information and configuration"

// nameTakenPattern matches the npm error codes and registry statuses of a
// rejected name. Bare digits are not enough: npm log paths carry timestamps.
var nameTakenPattern = regexp.MustCompile(`\b(E403|E409|EPUBLISHCONFLICT|403 Forbidden|409 Conflict)\b`)

// UpdateDependencies bumps every dependency to its latest version and
// installs them.
func (p *Project) UpdateDependencies(ctx context.Context) error {
	if err := p.runner.Run(ctx, p.dir, "npx", "npm-check-updates", "-u", "-s"); err != nil {
		return fmt.Errorf("failed to update dependencies: %w", err)
	}
	if err := p.runner.Run(ctx, p.dir, "npm", "install", "--prefer-offline", "--no-audit", "--no-fund"); err != nil {
		return fmt.Errorf("failed to update dependencies: %w", err)
	}
	return nil
}

// Publish builds the library and publishes it to npm with public access.
// A rejected name is reported as ErrNameTaken.
func (p *Project) Publish(ctx context.Context) error {
	if err := p.runner.Run(ctx, p.dir, "npm", "run", "build"); err != nil {
		return fmt.Errorf("publishing failed. Error details: %w", err)
	}
	if err := p.runner.Run(ctx, p.dir, "npm", "publish", "--access", "public"); err != nil {
		if nameTaken(err) {
			return fmt.Errorf("publishing failed: %w.\n   Please choose a different name for your library, update the configuration\n   and relaunch this assistant", ErrNameTaken)
		}
		return fmt.Errorf("publishing failed. Error details: %w", err)
	}
	return nil
}

func nameTaken(err error) bool {
	text := err.Error()
	var cmdErr *command.Error
	if errors.As(err, &cmdErr) {
		text += "\n" + cmdErr.Output
	}
	return nameTakenPattern.MatchString(text)
}

// Commit stages every change and commits it.
func (p *Project) Commit(ctx context.Context) error {
	if err := p.runner.Run(ctx, p.dir, "git", "add", "."); err != nil {
		return fmt.Errorf("failed to commit changes: %w. Please commit your changes manually", err)
	}
	if err := p.runner.Run(ctx, p.dir, "git", "commit", "-m", CommitMessage); err != nil {
		return fmt.Errorf("failed to commit changes: %w. Please commit your changes manually", err)
	}
	return nil
}

// RemoveScript deletes the setup tool itself. It is the last step of a run.
func (p *Project) RemoveScript() error {
	if p.script == "" {
		return fmt.Errorf("could not remove setup script: no script path configured")
	}
	if err := p.root.Remove(p.script); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug("Setup script already removed", "file", p.script)
			return nil
		}
		return fmt.Errorf("could not remove setup script: %w. Please delete %s manually", err, p.script)
	}
	p.logger.Debug("Removed setup script", "file", p.script)
	return nil
}
