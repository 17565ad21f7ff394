package db_test

import (
	"testing"

	"github.com/gnames/gnresolve/internal/iodb"
	"github.com/gnames/gnresolve/pkg/db"
)

// TestPgxOperatorImplementsInterface verifies that iodb's pgx-backed
// operator implements the db.Operator interface.
// This test ensures compile-time contract compliance.
func TestPgxOperatorImplementsInterface(t *testing.T) {
	// This will fail to compile if NewPgxOperator doesn't implement db.Operator
	var _ db.Operator = iodb.NewPgxOperator()
}
