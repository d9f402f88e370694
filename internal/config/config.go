// Package config resolves the settings of a setup run from flags,
// SETUP_* environment variables and an optional .setup.yaml file in the
// project directory, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes the environment variables read, as in SETUP_AUTHOR.
	EnvPrefix = "SETUP"

	fileName = ".setup"
	fileType = "yaml"
)

// Keys shared by flags, environment variables and the settings file.
const (
	KeyLogLevel = "log-level"
	KeyNoColor  = "no-color"
	KeyQuiet    = "quiet"
	KeyDir      = "dir"
	KeyAnswers  = "answers"
	KeyDryRun   = "dry-run"
	KeyForms    = "forms"
	KeyScript   = "script"
	KeyAuthor   = "author"
	KeyEmail    = "email"
	KeyLicense  = "license"
)

// Settings is the resolved configuration of a run.
type Settings struct {
	LogLevel string `mapstructure:"log-level"`
	NoColor  bool   `mapstructure:"no-color"`
	Quiet    bool   `mapstructure:"quiet"`

	// Dir is the absolute path of the template checkout.
	Dir string `mapstructure:"dir"`
	// Answers is an answers file; when set nothing is prompted.
	Answers string `mapstructure:"answers"`
	DryRun  bool   `mapstructure:"dry-run"`
	// Forms selects the full screen prompt backend.
	Forms bool `mapstructure:"forms"`
	// Script is the path removed by the last task.
	Script string `mapstructure:"script"`

	// Fallbacks for the answers git cannot provide.
	Author  string `mapstructure:"author"`
	Email   string `mapstructure:"email"`
	License string `mapstructure:"license"`

	// File is the settings file that was read, if any.
	File string `mapstructure:"-"`
}

// RegisterFlags defines the flags Load reads on flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP(KeyLogLevel, "l", "warn", "Set the logging level (debug|info|warn|error|fatal)")
	flags.Bool(KeyNoColor, false, "If specified, output won't contain any color.")
	flags.BoolP(KeyQuiet, "q", false, "Quiet or silent mode. Do not show logs.")
	flags.StringP(KeyDir, "C", ".", "Directory of the library template to configure")
	flags.StringP(KeyAnswers, "f", "", "Read answers from a YAML file instead of prompting")
	flags.Bool(KeyDryRun, false, "Collect answers and print the plan without changing anything")
	flags.Bool(KeyForms, false, "Use full screen forms for the questions")
	flags.String(KeyScript, "", "Path of the setup tool removed when setup finishes (default: this executable)")
}

// Load resolves the settings. Flags are bound by name; only the ones the
// user changed take precedence over the environment and the file.
func Load(fsys afero.Fs, flags *pflag.FlagSet) (Settings, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyAuthor, "")
	v.SetDefault(KeyEmail, "")
	v.SetDefault(KeyLicense, "")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	dir, err := filepath.Abs(v.GetString(KeyDir))
	if err != nil {
		return Settings{}, fmt.Errorf("failed to resolve project directory: %w", err)
	}

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	s.Dir = dir
	s.File = v.ConfigFileUsed()
	return s, nil
}
