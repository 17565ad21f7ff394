package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// Canonical DDL methods
func (c Canonical) TableDDL() string {
	return generateDDL(c, "canonicals")
}

func (c Canonical) IndexDDL() []string {
	return []string{}
}

func (c Canonical) TableName() string {
	return "canonicals"
}

// CanonicalStem DDL methods
func (cs CanonicalStem) TableDDL() string {
	return generateDDL(cs, "canonical_stems")
}

func (cs CanonicalStem) IndexDDL() []string {
	return []string{}
}

func (cs CanonicalStem) TableName() string {
	return "canonical_stems"
}

// NameStringIndex DDL methods
func (nsi NameStringIndex) TableDDL() string {
	return generateDDL(nsi, "name_string_indices")
}

func (nsi NameStringIndex) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_name_string_indices_idx ON name_string_indices(data_source_id, record_id, name_string_id);",
		"CREATE INDEX idx_name_string_indices_name_string_id ON name_string_indices(name_string_id);",
		"CREATE INDEX idx_name_string_indices_accepted_record_id ON name_string_indices(accepted_record_id);",
		"CREATE INDEX idx_name_string_indices_canonical_id ON name_string_indices(canonical_id);",
	}
}

func (nsi NameStringIndex) TableName() string {
	return "name_string_indices"
}
