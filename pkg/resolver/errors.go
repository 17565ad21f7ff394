package resolver

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnresolve/pkg/errcode"
)

// parseError wraps a collaborator failure from the name parser (e.g. a
// closed parser pool). Unparseable names are never an error -- they are
// a Parsed with Canonical() == ("", false) -- so this path is reserved
// for the parser itself breaking.
func parseError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ParserPoolClosedError,
		Msg:  "Name parser failed",
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

// fuzzyProbeError wraps a failure surfaced by the external fuzzy index.
// The resolver does not retry; the error propagates to the caller.
func fuzzyProbeError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.FuzzyProbeError,
		Msg:  "Fuzzy probe failed",
		Err:  fmt.Errorf("from %s: %w", fn, err),
	}
}

// assertResponseCount panics when the resolver produces a different
// number of Responses than the batch it consumed -- a programmer error
// in the core algorithm, never masked or retried.
func assertResponseCount(got, want int) {
	if got == want {
		return
	}
	panic(&gn.Error{
		Code: errcode.InternalConsistencyError,
		Msg:  "resolver produced %d responses for a batch of %d",
		Vars: []any{got, want},
		Err:  fmt.Errorf("resolveFromPartials: response count mismatch: got %d, want %d", got, want),
	})
}
