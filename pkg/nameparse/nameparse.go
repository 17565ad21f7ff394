// Package nameparse states the resolver's only contract with the
// scientific-name parser: the parser itself is treated as an
// external collaborator, so this package carries nothing but the seam.
package nameparse

import (
	"context"

	"github.com/google/uuid"
)

// Parsed is one parsed input (a ParsedName). InputID is
// derived deterministically from the raw input string; Canonical
// reports the parser's canonical form, or ok=false when the raw string
// failed to parse or produced no canonical.
type Parsed interface {
	InputID() uuid.UUID
	Canonical() (canon string, ok bool)
}

// Parser turns a raw name string into a Parsed value. It never errors on
// bad input -- unparseable names are a Parsed with Canonical() == ("",
// false), not an error. Errors are reserved for collaborator
// failures (e.g. a closed parser pool).
type Parser interface {
	Parse(ctx context.Context, raw string) (Parsed, error)
}
