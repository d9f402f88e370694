// Package gitinfo discovers author and repository defaults from the local
// git configuration.
package gitinfo

import (
	"context"
	"regexp"
	"strings"

	"github.com/fvena/typescript-library-template-pro/internal/command"
)

// Info holds what git knows about the author and the repository. Any field
// may be empty.
type Info struct {
	Author     string `json:"author,omitempty"`
	Email      string `json:"email,omitempty"`
	UserName   string `json:"userName,omitempty"`
	RepoName   string `json:"repoName,omitempty"`
	Repository string `json:"repository,omitempty"`
}

var githubRemote = regexp.MustCompile(`github\.com[/:](.*?)(\.git)?$`)

// Discover asks git for the author identity and the origin remote. Lookups
// fail independently; a missing git binary yields an empty Info.
func Discover(ctx context.Context, runner command.Runner, dir string) Info {
	var info Info

	if v, err := runner.Output(ctx, dir, "git", "config", "user.name"); err == nil {
		info.Author = v
	}
	if v, err := runner.Output(ctx, dir, "git", "config", "user.email"); err == nil {
		info.Email = v
	}
	if v, err := runner.Output(ctx, dir, "git", "remote", "get-url", "origin"); err == nil && v != "" {
		info.Repository = v
		info.UserName, info.RepoName = ParseRemote(v)
	}

	return info
}

// ParseRemote extracts owner and repository name from a GitHub remote URL in
// either https or scp-like form. It returns empty strings for other hosts.
func ParseRemote(remote string) (owner, repo string) {
	m := githubRemote.FindStringSubmatch(strings.TrimSpace(remote))
	if m == nil || m[1] == "" {
		return "", ""
	}
	parts := strings.Split(m[1], "/")
	return parts[0], parts[len(parts)-1]
}
