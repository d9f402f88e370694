package answers

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

// LoaderTestSuite is a test suite for answers file loading
type LoaderTestSuite struct {
	suite.Suite
	fs       afero.Fs
	defaults Answers
	env      map[string]string
}

func (s *LoaderTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	s.defaults = Answers{
		Name:        "my-lib",
		RepoName:    "my-lib",
		Author:      "Jane Doe",
		Email:       "jane@example.com",
		UserName:    "jane",
		Repository:  "git@github.com:jane/my-lib.git",
		License:     "MIT",
		Year:        "2025",
		Environment: EnvironmentBoth,
		IncludeDocs: true,
		Publish:     true,
		Commit:      true,
	}
	s.env = map[string]string{"LIB_DESCRIPTION": "From the environment"}
}

func (s *LoaderTestSuite) lookup(name string) (string, bool) {
	v, ok := s.env[name]
	return v, ok
}

func (s *LoaderTestSuite) write(content string) {
	s.Require().NoError(afero.WriteFile(s.fs, "answers.yaml", []byte(content), 0o644))
}

func (s *LoaderTestSuite) TestLoadMergesOverDefaults() {
	s.write(`
description: ${LIB_DESCRIPTION}
keywords: "typescript, library"
environment: node
publish: false
year: 2024
`)

	a, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().NoError(err)

	s.Equal("my-lib", a.Name)
	s.Equal("From the environment", a.Description)
	s.Equal([]string{"typescript", "library"}, a.Keywords)
	s.Equal(EnvironmentNode, a.Environment)
	s.False(a.Publish)
	s.True(a.IncludeDocs)
	s.True(a.Commit)
	s.Equal("2024", a.Year)
	s.Equal("https://github.com/jane/my-lib#readme", a.Homepage)
}

func (s *LoaderTestSuite) TestLoadKeywordsAsList() {
	s.write(`
apiVersion: v1
description: d
keywords: [a, b]
`)

	a, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, a.Keywords)
}

func (s *LoaderTestSuite) TestLoadKeepsExplicitHomepage() {
	s.write(`
description: d
keywords: a
homepage: https://docs.example.com
`)

	a, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().NoError(err)
	s.Equal("https://docs.example.com", a.Homepage)
	s.Equal("https://github.com/jane/my-lib/issues", a.Bugs)
}

func (s *LoaderTestSuite) TestLoadRejectsUnknownFields() {
	s.write(`
description: d
keywords: a
color: blue
`)

	_, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().Error(err)
	s.Contains(err.Error(), "answers validation failed")
}

func (s *LoaderTestSuite) TestLoadRejectsInvalidEnvironment() {
	s.write(`
description: d
keywords: a
environment: deno
`)

	_, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().Error(err)
}

func (s *LoaderTestSuite) TestLoadRejectsInvalidPackageName() {
	s.write(`
name: Not Valid
description: d
keywords: a
`)

	_, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().Error(err)
}

func (s *LoaderTestSuite) TestLoadRejectsUnsupportedVersion() {
	s.write(`
apiVersion: v9
description: d
keywords: a
`)

	_, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().Error(err)
	s.Contains(err.Error(), "unsupported answers schema version")
}

func (s *LoaderTestSuite) TestLoadIncompleteAnswers() {
	s.write(`keywords: a`)

	_, err := Load(s.fs, "answers.yaml", s.defaults, s.lookup)
	s.Require().Error(err)
	s.Contains(err.Error(), "description cannot be empty")
}

func (s *LoaderTestSuite) TestLoadMissingFile() {
	_, err := Load(s.fs, "missing.yaml", s.defaults, s.lookup)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to read answers file")
}

func (s *LoaderTestSuite) TestParseInvalidYAML() {
	_, err := Parse([]byte("description: [unclosed"), s.defaults, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "failed to parse answers YAML")
}

// TestLoaderTestSuite runs the loader test suite
func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}
