package ioindex

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnresolve/pkg/errcode"
)

func connectionError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexConnectionError,
		Msg:  "Cannot connect to the cache database to build the canonical index",
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func queryError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexQueryError,
		Msg:  "Cannot query canonical/stem rows for the index",
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func scanError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexScanError,
		Msg:  "Cannot read a canonical/stem row while building the index",
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

func emptyError() error {
	msg := `The cache database has no canonical names to index

<em>Required steps:</em>
  1. Create the schema: <em>gnresolve build-index --create-schema</em>
  2. Populate the cache tables from your own gnidump/gnverifier feed
  3. Then reload:        <em>gnresolve build-index</em>`

	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IndexEmptyError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: name_string_indices has no rows with a canonical form", fn),
	}
}
