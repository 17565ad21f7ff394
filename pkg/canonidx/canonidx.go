// Package canonidx implements CanonicalIndex: an immutable, total
// mapping from canonical name string to the set of data-source ids
// that carry it. It is built once, at startup, by a loader
// (internal/ioindex) and never mutated afterward, so reads need no
// synchronization.
package canonidx

// Index is the read-only canonical-name membership index.
type Index struct {
	entries map[string]map[int]struct{}
}

// New wraps a prebuilt entries map. Most callers use Builder instead,
// which owns constructing that map incrementally while streaming rows.
func New(entries map[string]map[int]struct{}) *Index {
	if entries == nil {
		entries = map[string]map[int]struct{}{}
	}
	return &Index{entries: entries}
}

// Lookup returns the data-source ids indexed under name. Missing keys
// return a nil map, which reads as an empty set -- Lookup is total.
func (ix *Index) Lookup(name string) map[int]struct{} {
	if ix == nil {
		return nil
	}
	return ix.entries[name]
}

// Intersects reports whether name's indexed data sources intersect
// filter. An empty filter means "accept any source": the result is then
// simply whether name has any indexed source at all.
func (ix *Index) Intersects(name string, filter map[int]struct{}) bool {
	if ix == nil {
		return false
	}
	sources := ix.entries[name]
	if len(filter) == 0 {
		return len(sources) > 0
	}
	for id := range filter {
		if _, ok := sources[id]; ok {
			return true
		}
	}
	return false
}

// Len reports how many distinct canonical strings the index carries.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// Builder accumulates (canonical, data-source id) pairs streamed from a
// loader into an Index. It is not safe for concurrent use; loaders that
// parallelize row fetches must fan results back into a single goroutine
// that calls Add.
type Builder struct {
	entries map[string]map[int]struct{}
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[string]map[int]struct{})}
}

// Add records that canonical is carried by dataSourceID.
func (b *Builder) Add(canonical string, dataSourceID int) {
	set, ok := b.entries[canonical]
	if !ok {
		set = make(map[int]struct{})
		b.entries[canonical] = set
	}
	set[dataSourceID] = struct{}{}
}

// Build finalizes the Builder into an immutable Index. The Builder
// should not be reused afterward.
func (b *Builder) Build() *Index {
	return New(b.entries)
}
