package lifecycle_test

import (
	"testing"

	"github.com/gnames/gnresolve/internal/ioindex"
	"github.com/gnames/gnresolve/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

// TestPostgresLoaderContract ensures that ioindex.PostgresLoader satisfies
// lifecycle.IndexLoader. This is a compile-time check, and the test will
// not run if the contract is broken.
func TestPostgresLoaderContract(t *testing.T) {
	var _ lifecycle.IndexLoader = &ioindex.PostgresLoader{}
	assert.True(t, true, "ioindex.PostgresLoader should implement lifecycle.IndexLoader")
}

// TestSQLiteLoaderContract ensures that ioindex.SQLiteLoader satisfies
// lifecycle.IndexLoader.
func TestSQLiteLoaderContract(t *testing.T) {
	var _ lifecycle.IndexLoader = &ioindex.SQLiteLoader{}
	assert.True(t, true, "ioindex.SQLiteLoader should implement lifecycle.IndexLoader")
}
