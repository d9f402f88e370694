package util

import (
	"fmt"
	"regexp"
	"strings"
)

// packageNameRegex matches npm package names, scoped or not.
var packageNameRegex = regexp.MustCompile(`^(?:@[a-z0-9-*~][a-z0-9-*._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)

// maxPackageNameLength is the npm registry limit.
const maxPackageNameLength = 214

// ValidateNonEmpty ensures a string is not empty or whitespace-only
func ValidateNonEmpty(value string, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty or contain only whitespace", fieldName)
	}
	return nil
}

// ValidatePackageName ensures a string is a publishable npm package name
func ValidatePackageName(value string) error {
	if err := ValidateNonEmpty(value, "package name"); err != nil {
		return err
	}
	if len(value) > maxPackageNameLength {
		return fmt.Errorf("package name '%s' is invalid: must not exceed %d characters", value, maxPackageNameLength)
	}
	if !packageNameRegex.MatchString(value) {
		return fmt.Errorf("package name '%s' is invalid: use lowercase letters, digits, '-', '.', '_' or '~', optionally scoped as @scope/name", value)
	}
	return nil
}
