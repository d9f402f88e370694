package answers

import (
	"bytes"
	"fmt"
	"path"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/fvena/typescript-library-template-pro/internal/answers/schema"
)

// ValidateSchema validates a decoded answers file against the schema of the
// given version. Unknown fields are rejected.
func ValidateSchema(obj map[string]any, version string) error {
	schemaBytes, err := schema.GetAnswersSchema(version)
	if err != nil {
		return fmt.Errorf("failed to get answers schema version %q: %w", version, err)
	}

	// Compile schema with format assertions enabled
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat()

	schemaID := path.Join(version, "answers.json")
	jsonSchema, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return fmt.Errorf("invalid answers schema JSON for version %q: %w", version, err)
	}

	if err := compiler.AddResource(schemaID, jsonSchema); err != nil {
		return fmt.Errorf("failed to load answers schema version %q: %w", version, err)
	}

	compiled, err := compiler.Compile(schemaID)
	if err != nil {
		return fmt.Errorf("failed to compile answers schema version %q: %w", version, err)
	}

	if err := compiled.Validate(obj); err != nil {
		return fmt.Errorf("answers validation failed for schema version %q: %w", version, err)
	}
	return nil
}
