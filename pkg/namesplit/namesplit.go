// Package namesplit implements the NameSplit value type: a parsed
// name paired with the canonical substring currently under
// consideration, and whether that substring has ever been shortened.
package namesplit

import (
	"strings"

	"github.com/gnames/gnresolve/pkg/nameparse"
)

// Split carries a ParsedName, its current working canonical substring,
// and whether that substring is still the original, un-shortened
// canonical the parser produced.
type Split struct {
	Parsed     nameparse.Parsed
	Partial    string
	IsOriginal bool
}

// FromParsed builds the initial Split for a successfully parsed name.
// Callers should only pass parses whose Canonical() is non-empty; an
// empty canonical produces a size-0 no-op split rather than an error.
func FromParsed(p nameparse.Parsed) Split {
	canon, _ := p.Canonical()
	return Split{Parsed: p, Partial: canon, IsOriginal: true}
}

// Size is the word count of Partial: 0 when empty, otherwise the number
// of space-separated tokens.
func (s Split) Size() int {
	if s.Partial == "" {
		return 0
	}
	return strings.Count(s.Partial, " ") + 1
}

// IsUninomial reports whether Partial is a single token.
func (s Split) IsUninomial() bool {
	return s.Size() == 1
}

// Shorten drops the final space-separated token from Partial, returning
// a new Split with IsOriginal=false. Shorten is pure: s is unchanged.
// Shortening a uninomial (or empty) split yields an empty Partial.
func (s Split) Shorten() Split {
	if s.Size() > 1 {
		idx := strings.LastIndex(s.Partial, " ")
		return Split{Parsed: s.Parsed, Partial: s.Partial[:idx], IsOriginal: false}
	}
	return Split{Parsed: s.Parsed, Partial: "", IsOriginal: false}
}
