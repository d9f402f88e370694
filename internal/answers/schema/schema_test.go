package schema

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// SchemaTestSuite is a test suite for the schema package
type SchemaTestSuite struct {
	suite.Suite
}

func (s *SchemaTestSuite) TestGetAnswersSchema() {
	schema, err := GetAnswersSchema("v1")
	s.Require().NoError(err)
	s.Require().NotEmpty(schema)
	s.Contains(string(schema), `"additionalProperties": false`)
}

func (s *SchemaTestSuite) TestGetAnswersSchema_InvalidVersion() {
	schema, err := GetAnswersSchema("invalid")
	s.Require().Error(err)
	s.Require().Nil(schema)
}

func (s *SchemaTestSuite) TestGetLatestVersion() {
	latest, err := GetLatestVersion()
	s.Require().NoError(err)
	s.Equal("v1", latest)
}

func (s *SchemaTestSuite) TestGetValidVersions() {
	versions, err := GetValidVersions()
	s.Require().NoError(err)
	s.Contains(versions, "v1")
}

// TestCompareSchemaVersions tests the compareSchemaVersions function with table-driven subtests
func (s *SchemaTestSuite) TestCompareSchemaVersions() {
	cases := []struct {
		a, b   string
		expect int // -1 if a < b, 0 if a == b, 1 if a > b
	}{
		{"v1-alpha.1", "v1-beta.2", -1},
		{"v1-beta.2", "v1-beta.11", -1},
		{"v1-rc.1", "v1", -1},
		{"v1", "v1", 0},
		{"v2", "v1", 1},
		{"v1", "invalid", -1},
		{"invalid", "v1", 1},
		{"invalid", "invalid2", -1},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%s_vs_%s", c.a, c.b)
		s.T().Run(name, func(t *testing.T) {
			res := compareSchemaVersions(c.a, c.b)
			if c.expect < 0 {
				assert.Less(t, res, 0, "expected %s < %s", c.a, c.b)
			} else if c.expect > 0 {
				assert.Greater(t, res, 0, "expected %s > %s", c.a, c.b)
			} else {
				assert.Equal(t, 0, res, "expected %s == %s", c.a, c.b)
			}
		})
	}
}

func (s *SchemaTestSuite) TestSortSchemaVersions() {
	sorted := []string{"v2", "v1-beta.2", "v1", "v1-alpha.1"}
	sort.Slice(sorted, func(i, j int) bool {
		return compareSchemaVersions(sorted[i], sorted[j]) < 0
	})
	s.Equal([]string{"v1-alpha.1", "v1-beta.2", "v1", "v2"}, sorted)
}

// TestSchemaTestSuite runs the schema test suite
func TestSchemaTestSuite(t *testing.T) {
	suite.Run(t, new(SchemaTestSuite))
}
