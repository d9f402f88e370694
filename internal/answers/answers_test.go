package answers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvena/typescript-library-template-pro/internal/gitinfo"
)

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a, b ,, c", []string{"a", "b", "c"}},
		{"typescript", []string{"typescript"}},
		{"x, x", []string{"x", "x"}},
		{"", []string{}},
		{" , ,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeywords(tt.input))
		})
	}
}

func TestDefaultsPreferGitOverFallback(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	info := gitinfo.Info{Author: "Git Author", UserName: "jane", RepoName: "my-lib", Repository: "git@github.com:jane/my-lib.git"}

	a, err := Defaults(info, "/work/other-dir", Fallback{Author: "Config Author", Email: "config@example.com"}, now)
	require.NoError(t, err)

	assert.Equal(t, "Git Author", a.Author)
	assert.Equal(t, "config@example.com", a.Email)
	assert.Equal(t, "my-lib", a.RepoName)
	assert.Equal(t, "my-lib", a.Name)
	assert.Equal(t, DefaultLicense, a.License)
	assert.Equal(t, "2025", a.Year)
	assert.Equal(t, EnvironmentBoth, a.Environment)
	assert.True(t, a.IncludeDocs)
	assert.True(t, a.Publish)
	assert.True(t, a.Commit)
}

func TestDefaultsRepoNameFromDirectory(t *testing.T) {
	a, err := Defaults(gitinfo.Info{}, "/work/fresh-lib", Fallback{License: "ISC"}, time.Now())
	require.NoError(t, err)

	assert.Equal(t, "fresh-lib", a.RepoName)
	assert.Equal(t, "fresh-lib", a.Name)
	assert.Equal(t, "ISC", a.License)
	assert.Empty(t, a.UserName)
}

func TestDerive(t *testing.T) {
	a := Answers{UserName: "jane", RepoName: "my-lib", Name: "@jane/other"}
	Derive(&a)

	assert.Equal(t, "https://github.com/jane/my-lib#readme", a.Homepage)
	assert.Equal(t, "https://github.com/jane/my-lib/issues", a.Bugs)
	assert.NotNil(t, a.Keywords)
}

func validAnswers() Answers {
	return Answers{
		Name:        "my-lib",
		Description: "A library",
		Keywords:    []string{"a"},
		Author:      "Jane",
		UserName:    "jane",
		RepoName:    "my-lib",
		Repository:  "https://github.com/jane/my-lib.git",
		License:     "MIT",
		Year:        "2025",
		Environment: EnvironmentNode,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validAnswers()))

	a := validAnswers()
	a.Name = "Bad Name"
	a.Keywords = nil
	a.Environment = "deno"
	err := Validate(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package name")
	assert.Contains(t, err.Error(), "keywords cannot be empty")
	assert.Contains(t, err.Error(), `environment "deno" is invalid`)
}

func TestEnvironmentOptionsOrder(t *testing.T) {
	keys := make([]string, len(EnvironmentOptions))
	for i, opt := range EnvironmentOptions {
		keys[i] = opt.Key
	}
	assert.Equal(t, []string{"both", "browser", "node"}, keys)
}
