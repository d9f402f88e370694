// Package schema provides the embedded JSON schemas of answers files.
package schema

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// FS is the embedded filesystem containing the schema files.
//
//go:embed **/*.json
var fs embed.FS

var (
	// versionRegex is a regular expression that matches version strings in the format "v1-alpha.1", "v1-beta.2", etc.
	versionRegex = regexp.MustCompile(`^v(\d+)(?:-(alpha|beta|rc)\.(\d+))?$`)
	// preReleaseOrder is a map that defines the order of pre-release types.
	preReleaseOrder = map[string]int{"alpha": 0, "beta": 1, "rc": 2, "": 3}
)

// GetAnswersSchema retrieves the JSON schema for validating answers files at a specific version.
// The schema file must be named "answers.json" within the version directory.
func GetAnswersSchema(version string) ([]byte, error) {
	fileName := version + "/answers.json"
	if _, err := fs.Open(fileName); err != nil {
		return nil, fmt.Errorf("answers schema not found for version %s", version)
	}
	return fs.ReadFile(fileName)
}

// getSortedVersions returns a sorted slice of version strings (ascending order)
func getSortedVersions() ([]string, error) {
	files, err := fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to read schema directory: %w", err)
	}

	versions := make([]string, 0, len(files))
	for _, file := range files {
		if file.IsDir() {
			versions = append(versions, file.Name())
		}
	}
	sort.Slice(versions, func(i, j int) bool {
		return compareSchemaVersions(versions[i], versions[j]) < 0
	})
	return versions, nil
}

// GetLatestVersion returns the latest answers schema version.
func GetLatestVersion() (string, error) {
	versions, err := getSortedVersions()
	if err != nil {
		return "", fmt.Errorf("failed to get sorted versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("no answers schemas found")
	}
	return versions[len(versions)-1], nil
}

// GetValidVersions returns every embedded schema version in ascending order.
func GetValidVersions() ([]string, error) {
	versions, err := getSortedVersions()
	if err != nil {
		return nil, fmt.Errorf("failed to get sorted versions: %w", err)
	}
	return versions, nil
}

// compareSchemaVersions returns -1 if a < b, 0 if a == b, 1 if a > b
func compareSchemaVersions(a, b string) int {
	parse := func(v string) (major int, pre string, preNum int, valid bool) {
		m := versionRegex.FindStringSubmatch(v)
		if m == nil {
			return 0, "", 0, false
		}
		major, _ = strconv.Atoi(m[1])
		pre = m[2]
		if m[3] != "" {
			preNum, _ = strconv.Atoi(m[3])
		}
		return major, pre, preNum, true
	}

	majA, preA, numA, validA := parse(a)
	majB, preB, numB, validB := parse(b)

	// If either version is invalid, fall back to lexicographical order
	if !validA && !validB {
		return strings.Compare(a, b)
	} else if !validA {
		return 1 // invalid versions are considered greater (sorted last)
	} else if !validB {
		return -1
	}

	if majA != majB {
		return compareInts(majA, majB)
	}

	// Compare pre-release types (alpha < beta < rc < "")
	if preReleaseOrder[preA] != preReleaseOrder[preB] {
		return compareInts(preReleaseOrder[preA], preReleaseOrder[preB])
	}

	return compareInts(numA, numB)
}

func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
