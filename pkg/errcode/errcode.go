// Package errcode enumerates gn.ErrorCode values for every failure
// domain gnresolve recognizes, in one flat iota-based const block
// grouped by failure domain.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Configuration errors
	ConfigLoadError
	ConfigFileWriteError

	// Filesystem bootstrap errors (internal/iofs)
	CreateDirError
	CopyFileError
	ReadFileError

	// Index-loading errors
	IndexConnectionError
	IndexQueryError
	IndexScanError
	IndexEmptyError
	IndexMigrationChecksumError

	// Parsing errors
	ParserPoolClosedError
	ParserUnsupportedCodeError

	// Fuzzy-probe errors
	FuzzyProbeError

	// Data-source catalogue errors
	DataSourcesLoadError
	DataSourcesUnknownIDError

	// Resolver internal-consistency errors: programmer error in the core
	// algorithm, never masked or retried
	InternalConsistencyError

	// Schema-management errors (internal/ioschema)
	DBNotConnectedError
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaCollationError

	// Connection-pool errors (internal/iodb)
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBTableExistsCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError
)
