package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("setup", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, flags.Parse(args))
	return flags
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(afero.NewMemMapFs(), parseFlags(t, "--dir", "/work"))
	require.NoError(t, err)

	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, "/work", s.Dir)
	assert.Empty(t, s.File)
	assert.Empty(t, s.Answers)
	assert.False(t, s.DryRun)
	assert.False(t, s.Forms)
	assert.Empty(t, s.Author)
}

func TestLoadSettingsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.setup.yaml", []byte("author: File Author\nlicense: ISC\nforms: true\n"), 0o644))

	s, err := Load(fs, parseFlags(t, "--dir", "/work"))
	require.NoError(t, err)

	assert.Equal(t, "/work/.setup.yaml", s.File)
	assert.Equal(t, "File Author", s.Author)
	assert.Equal(t, "ISC", s.License)
	assert.True(t, s.Forms)
}

func TestLoadPrecedence(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.setup.yaml", []byte("author: File Author\nemail: file@example.com\nlog-level: info\n"), 0o644))
	t.Setenv("SETUP_AUTHOR", "Env Author")
	t.Setenv("SETUP_LOG_LEVEL", "debug")

	s, err := Load(fs, parseFlags(t, "--dir", "/work", "--log-level", "error", "--dry-run"))
	require.NoError(t, err)

	assert.Equal(t, "Env Author", s.Author)
	assert.Equal(t, "file@example.com", s.Email)
	assert.Equal(t, "error", s.LogLevel)
	assert.True(t, s.DryRun)
}

func TestLoadInvalidSettingsFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/.setup.yaml", []byte("author: [unclosed\n"), 0o644))

	_, err := Load(fs, parseFlags(t, "--dir", "/work"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read settings file")
}
