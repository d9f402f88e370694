package answers

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/fluxcd/pkg/envsubst"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"sigs.k8s.io/yaml"

	"github.com/fvena/typescript-library-template-pro/internal/answers/schema"
)

// LookupFunc resolves a variable referenced as ${NAME} in an answers file.
// os.LookupEnv is the usual implementation.
type LookupFunc func(name string) (string, bool)

// Load reads an answers file and completes defaults with it. See Parse.
func Load(fsys afero.Fs, path string, defaults Answers, lookup LookupFunc) (Answers, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return Answers{}, fmt.Errorf("failed to read answers file: %w", err)
	}
	return Parse(data, defaults, lookup)
}

// Parse expands ${VAR} references in data, validates the YAML against the
// answers schema and decodes it over defaults. Fields absent from data keep
// their default. The result is derived and validated.
func Parse(data []byte, defaults Answers, lookup LookupFunc) (Answers, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	expanded, err := envsubst.Eval(string(data), lookup)
	if err != nil {
		return Answers{}, fmt.Errorf("failed to substitute variables: %w", err)
	}

	var obj map[string]any
	if err := yaml.Unmarshal([]byte(expanded), &obj); err != nil {
		return Answers{}, fmt.Errorf("failed to parse answers YAML: %w", err)
	}
	if obj == nil {
		obj = map[string]any{}
	}

	version, err := ValidateAPIVersion(obj)
	if err != nil {
		return Answers{}, err
	}
	if err := ValidateSchema(obj, version); err != nil {
		return Answers{}, err
	}
	delete(obj, "apiVersion")

	a := defaults
	if err := decode(obj, &a); err != nil {
		return Answers{}, err
	}

	// Derived URLs follow the user and repo unless the file sets them.
	homepage, bugs := a.Homepage, a.Bugs
	Derive(&a)
	if _, ok := obj["homepage"]; ok {
		a.Homepage = homepage
	}
	if _, ok := obj["bugs"]; ok {
		a.Bugs = bugs
	}

	if err := Validate(a); err != nil {
		return Answers{}, fmt.Errorf("incomplete answers: %w", err)
	}
	return a, nil
}

// ValidateAPIVersion returns the apiVersion of obj, or the latest schema
// version when the field is absent.
func ValidateAPIVersion(obj map[string]any) (string, error) {
	validVersions, err := schema.GetValidVersions()
	if err != nil {
		return "", fmt.Errorf("failed to get valid answers versions: %w", err)
	}

	raw, ok := obj["apiVersion"]
	if !ok {
		return schema.GetLatestVersion()
	}

	version, ok := raw.(string)
	if !ok || version == "" {
		return "", fmt.Errorf("'apiVersion' field must be a non-empty string")
	}
	if !slices.Contains(validVersions, version) {
		return "", fmt.Errorf("unsupported answers schema version: %s (valid: %v)", version, validVersions)
	}
	return version, nil
}

var stringSliceType = reflect.TypeOf([]string{})

// keywordsHook accepts keywords as a comma separated string.
func keywordsHook(from, to reflect.Type, data any) (any, error) {
	if to == stringSliceType && from.Kind() == reflect.String {
		return ParseKeywords(data.(string)), nil
	}
	return data, nil
}

// stringHook turns scalars such as a numeric year into strings.
func stringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() == reflect.String {
		return data, nil
	}
	s, err := cast.ToStringE(data)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %v to string: %w", data, err)
	}
	return s, nil
}

func decode(obj map[string]any, out *Answers) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      out,
		ZeroFields:  true,
		ErrorUnused: true,
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(keywordsHook, stringHook),
	})
	if err != nil {
		return fmt.Errorf("failed to create answers decoder: %w", err)
	}
	if err := decoder.Decode(obj); err != nil {
		return fmt.Errorf("failed to decode answers: %w", err)
	}
	return nil
}
