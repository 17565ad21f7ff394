package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/gnresolve/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCanonicalTableDDL tests DDL generation for Canonical model
func TestCanonicalTableDDL(t *testing.T) {
	c := schema.Canonical{}
	ddl := c.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE canonicals")

	// Should have UUID primary key
	assert.Contains(t, ddl, "id UUID PRIMARY KEY")

	// Should have name field
	assert.Contains(t, ddl, "name VARCHAR(255) NOT NULL")
}

// TestCanonicalStemTableDDL tests DDL generation for CanonicalStem model
func TestCanonicalStemTableDDL(t *testing.T) {
	cs := schema.CanonicalStem{}
	ddl := cs.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE canonical_stems")

	// Should have UUID primary key
	assert.Contains(t, ddl, "id UUID PRIMARY KEY")

	// Should have name field
	assert.Contains(t, ddl, "name VARCHAR(255) NOT NULL")
}

// TestNameStringIndexTableDDL tests DDL generation for NameStringIndex model
func TestNameStringIndexTableDDL(t *testing.T) {
	nsi := schema.NameStringIndex{}
	ddl := nsi.TableDDL()

	// Should create table with correct name
	assert.Contains(t, ddl, "CREATE TABLE name_string_indices")

	// Should have data_source_id
	assert.Contains(t, ddl, "data_source_id SMALLINT NOT NULL")

	// Should have name_string_id as UUID
	assert.Contains(t, ddl, "name_string_id UUID NOT NULL")

	// Should have the canonical-form join columns the index loader reads
	assert.Contains(t, ddl, "canonical_id UUID")
	assert.Contains(t, ddl, "canonical_stem_id UUID")

	// Should have accepted_record_id
	assert.Contains(t, ddl, "accepted_record_id VARCHAR(255)")

	// Should have classification fields
	assert.Contains(t, ddl, "classification TEXT")
}

// TestNameStringIndexIndexDDL tests index generation for NameStringIndex model
func TestNameStringIndexIndexDDL(t *testing.T) {
	nsi := schema.NameStringIndex{}
	indexes := nsi.IndexDDL()

	require.NotEmpty(t, indexes, "NameStringIndex should have secondary indexes")

	allIndexes := strings.Join(indexes, "\n")
	assert.Contains(t, allIndexes, "name_string_id")
	assert.Contains(t, allIndexes, "accepted_record_id")
}

// TestAllModelsImplementDDLGenerator tests that all models implement the DDLGenerator interface
func TestAllModelsImplementDDLGenerator(t *testing.T) {
	models := []schema.DDLGenerator{
		&schema.Canonical{},
		&schema.CanonicalStem{},
		&schema.NameStringIndex{},
	}

	for _, model := range models {
		// Each model should return valid DDL
		ddl := model.TableDDL()
		assert.NotEmpty(t, ddl, "TableDDL should return non-empty string")
		assert.Contains(t, ddl, "CREATE TABLE", "DDL should contain CREATE TABLE")

		// Each model should return a table name
		tableName := model.TableName()
		assert.NotEmpty(t, tableName, "TableName should return non-empty string")

		// IndexDDL should return a slice (may be empty for some models)
		indexes := model.IndexDDL()
		assert.NotNil(t, indexes, "IndexDDL should return non-nil slice")
	}
}
