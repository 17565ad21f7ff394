// Package resolved defines the wire-serializable response shape the
// resolver emits: Response, Result, Name and the MatchKind tagged union.
// These types are the "external" wire contract the core is built
// around; nothing in this package depends on the resolver itself.
package resolved

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Name pairs a matched canonical string with its deterministic UUID.
// ID always equals UuidGen(Value).
type Name struct {
	ID    uuid.UUID `json:"id"`
	Value string    `json:"name"`
}

// MatchKindTag discriminates MatchKind variants on the wire.
type MatchKindTag string

// MatchKindCanonical is the only variant this core ever emits. Other
// variants exist in the broader protocol but have no Go type here --
// there is nothing for this resolver to construct them from.
const MatchKindCanonical MatchKindTag = "CanonicalMatch"

// MatchKind is a small sum type: implementations report their own tag so
// callers can type-switch without reflection.
type MatchKind interface {
	Tag() MatchKindTag
}

// CanonicalMatch is emitted for exact, genus-only, and fuzzy hits alike;
// Partial and the edit distances distinguish which. Defaults
// (Partial=false, both distances 0) describe an un-shortened exact hit.
type CanonicalMatch struct {
	Partial              bool `json:"partial"`
	StemEditDistance     int  `json:"stemEditDistance"`
	VerbatimEditDistance int  `json:"verbatimEditDistance"`
}

// Tag implements MatchKind.
func (CanonicalMatch) Tag() MatchKindTag { return MatchKindCanonical }

// Result is one matched name within a Response.
type Result struct {
	NameMatched Name
	MatchKind   MatchKind
}

// MarshalJSON flattens the tagged union into a single object carrying a
// matchType discriminator, the convention the rest of the GNames wire
// protocol uses for its other MatchKind variants.
func (r Result) MarshalJSON() ([]byte, error) {
	switch mk := r.MatchKind.(type) {
	case CanonicalMatch:
		return json.Marshal(struct {
			NameMatched          Name         `json:"nameMatched"`
			MatchType            MatchKindTag `json:"matchType"`
			Partial              bool         `json:"partial"`
			StemEditDistance     int          `json:"stemEditDistance"`
			VerbatimEditDistance int          `json:"verbatimEditDistance"`
		}{
			NameMatched:          r.NameMatched,
			MatchType:            mk.Tag(),
			Partial:              mk.Partial,
			StemEditDistance:     mk.StemEditDistance,
			VerbatimEditDistance: mk.VerbatimEditDistance,
		})
	default:
		return nil, fmt.Errorf("resolved: unsupported match kind %T", r.MatchKind)
	}
}

// Response is the single terminal answer for one input ParsedName.
// Results is empty, never nil-vs-absent-significant, when nothing
// matched: callers always get exactly one Response per input.
type Response struct {
	InputID uuid.UUID `json:"inputUuid"`
	Results []Result  `json:"results"`
}
