package ioschema

import (
	"testing"

	"github.com/gnames/gnresolve/internal/iodb"
	"github.com/gnames/gnresolve/pkg/lifecycle"
	"github.com/stretchr/testify/require"
)

// TestManager_ImplementsInterface verifies Manager
// implements lifecycle.SchemaManager.
func TestManager_ImplementsInterface(t *testing.T) {
	op := iodb.NewPgxOperator()
	var _ lifecycle.SchemaManager = NewManager(op)
}

// TestNewManager_CreatesManager verifies manager creation.
func TestNewManager_CreatesManager(t *testing.T) {
	op := iodb.NewPgxOperator()
	mgr := NewManager(op)
	require.NotNil(t, mgr)
}
