// Package schema provides the resolver's cache database models: the
// read-only subset of gnidump's canonical/name-index tables the index
// loader streams from at startup.
package schema

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Canonical is a 'simple' canonical form.
type Canonical struct {
	// ID is UUID v5 generated for simple canonical form.
	ID string `db:"id" ddl:"UUID PRIMARY KEY"`

	// Name is the canonical name-string.
	Name string `db:"name" ddl:"VARCHAR(255) NOT NULL"`
}

// CanonicalStem is a stemmed derivative of a simple canonical form.
type CanonicalStem struct {
	// ID is UUID v5 for the stemmed derivative.
	ID string `db:"id" ddl:"UUID PRIMARY KEY"`

	// Name is the stemmed canonical name-string.
	Name string `db:"name" ddl:"VARCHAR(255) NOT NULL"`
}

// NameStringIndex represents name-string relations to datasets.
type NameStringIndex struct {
	// DataSourceID refers to a data-source ID.
	DataSourceID int `db:"data_source_id" ddl:"SMALLINT NOT NULL"`

	// RecordID is a unique ID for the record.
	RecordID string `db:"record_id" ddl:"VARCHAR(255) NOT NULL"`

	// NameStringID is UUID5 of a full name-string from the dataset.
	NameStringID string `db:"name_string_id" ddl:"UUID NOT NULL"`

	// CanonicalID references the simple canonical form of this record's
	// name-string, when the name has one. Empty for names with no
	// canonical form (e.g. unparseable or surrogate names); the index
	// loader skips those rows.
	CanonicalID string `db:"canonical_id" ddl:"UUID"`

	// CanonicalStemID references the stemmed derivative of the same
	// canonical form, populated alongside CanonicalID.
	CanonicalStemID string `db:"canonical_stem_id" ddl:"UUID"`

	// OutlinkID is the id to create an outlink.
	OutlinkID string `db:"outlink_id" ddl:"VARCHAR(255)"`

	// GlobalID from the dataset.
	GlobalID string `db:"global_id" ddl:"VARCHAR(255)"`

	// NameID is an ID of a nomenclatural name provided by data source.
	NameID string `db:"name_id" ddl:"VARCHAR(255)"`

	// LocalID from the dataset.
	LocalID string `db:"local_id" ddl:"VARCHAR(255)"`

	// CodeID: 0-no info, 1-ICZN, 2-ICN, 3-ICNP, 4-ICTV.
	CodeID int `db:"code_id" ddl:"SMALLINT"`

	// Rank of the name.
	Rank string `db:"rank" ddl:"VARCHAR(255)"`

	// TaxonomicStatus: accepted, synonym, etc.
	TaxonomicStatus string `db:"taxonomic_status" ddl:"VARCHAR(255)"`

	// AcceptedRecordID of currently accepted name-string for the taxon.
	AcceptedRecordID string `db:"accepted_record_id" ddl:"VARCHAR(255)"`

	// Classification is pipe-delimited classification.
	Classification string `db:"classification" ddl:"TEXT"`

	// ClassificationIDs are RecordIDs of classification elements.
	ClassificationIDs string `db:"classification_ids" ddl:"TEXT"`

	// ClassificationRanks are ranks of classification elements.
	ClassificationRanks string `db:"classification_ranks" ddl:"TEXT"`
}
