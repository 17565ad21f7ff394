package resolved

import (
	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// UuidGen is the deterministic, collision-resistant string->UUID mapping
// the resolver uses as its external name-to-id collaborator. gnuuid.New
// derives a v5 UUID namespaced to globalnames.org, the same generator
// GNames name-string ids are built from.
func UuidGen(s string) uuid.UUID {
	return gnuuid.New(s)
}
