// Package datasources loads the small read-only catalogue of known data
// sources (id, title, short title) that resolve results reference by id.
//
// The catalogue validates a caller-supplied data-source-id filter against
// known ids and supplies a human-readable title per id (Title); the resolve
// summary log does not include titles. It never influences matching itself.
package datasources

// Source describes one cataloged data source.
type Source struct {
	ID         int    `yaml:"id"`
	Title      string `yaml:"title"`
	TitleShort string `yaml:"title_short,omitempty"`
}

// Catalogue is an id-indexed, read-only view of the known data sources.
type Catalogue struct {
	byID map[int]Source
}

// New builds a Catalogue from a slice of sources, keyed by ID.
// Later duplicate IDs overwrite earlier ones.
func New(sources []Source) *Catalogue {
	byID := make(map[int]Source, len(sources))
	for _, s := range sources {
		byID[s.ID] = s
	}
	return &Catalogue{byID: byID}
}

// Get returns the source for id, if known.
func (c *Catalogue) Get(id int) (Source, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// Title returns the source's title, or a placeholder if id is unknown.
func (c *Catalogue) Title(id int) string {
	if s, ok := c.byID[id]; ok {
		return s.Title
	}
	return "unknown data source"
}

// Filter validates a caller-supplied list of data-source ids against the
// catalogue. It returns the ids that are known and the subset that are not.
// An empty input means "no filter, accept any source" and returns both
// slices empty.
func (c *Catalogue) Filter(ids []int) (known []int, unknown []int) {
	for _, id := range ids {
		if _, ok := c.byID[id]; ok {
			known = append(known, id)
		} else {
			unknown = append(unknown, id)
		}
	}
	return known, unknown
}

// Len returns the number of cataloged sources.
func (c *Catalogue) Len() int {
	return len(c.byID)
}
