package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNonEmpty(t *testing.T) {
	assert.NoError(t, ValidateNonEmpty("x", "field"))
	assert.EqualError(t, ValidateNonEmpty(" \t", "field"), "field cannot be empty or contain only whitespace")
}

func TestValidatePackageName(t *testing.T) {
	valid := []string{"my-lib", "@fvena/my-lib", "lib.js", "a~b", "lib_2"}
	for _, name := range valid {
		assert.NoError(t, ValidatePackageName(name), name)
	}

	invalid := []string{"", "My-Lib", "my lib", "@scope", ".hidden", "_private", strings.Repeat("a", 215)}
	for _, name := range invalid {
		assert.Error(t, ValidatePackageName(name), name)
	}
}
