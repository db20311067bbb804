package model

import "time"

// ContentKind distinguishes the two item shapes Reddit returns.
type ContentKind string

const (
	KindPost    ContentKind = "post"
	KindComment ContentKind = "comment"
)

// ContentUnit is one normalized post or comment. Text keeps the original
// casing for citation quotes; MatchText is the lowercased,
// whitespace-collapsed copy the classifier scans.
type ContentUnit struct {
	Kind      ContentKind `json:"kind"`
	ID        string      `json:"id"`
	Subreddit string      `json:"subreddit"`
	CreatedAt time.Time   `json:"created_at"`
	Score     int         `json:"score"`
	Permalink string      `json:"permalink"`
	Text      string      `json:"text"`
	MatchText string      `json:"-"`
}

// Corpus is an ordered, id-deduplicated, size-capped collection of content
// units. It is assembled once and then only read.
type Corpus struct {
	units []ContentUnit
	seen  map[string]struct{}
	limit int
}

// NewCorpus creates an empty corpus holding at most limit units. A limit of
// zero or less means unbounded.
func NewCorpus(limit int) *Corpus {
	return &Corpus{
		seen:  make(map[string]struct{}),
		limit: limit,
	}
}

// Add appends a unit unless its id was already seen or the corpus is full.
// Reports whether the unit was kept.
func (c *Corpus) Add(u ContentUnit) bool {
	if c.limit > 0 && len(c.units) >= c.limit {
		return false
	}
	if _, dup := c.seen[u.ID]; dup {
		return false
	}
	c.seen[u.ID] = struct{}{}
	c.units = append(c.units, u)
	return true
}

// AddAll adds units in order and returns how many were kept.
func (c *Corpus) AddAll(units []ContentUnit) int {
	kept := 0
	for _, u := range units {
		if c.Add(u) {
			kept++
		}
	}
	return kept
}

// Full reports whether the corpus has reached its cap.
func (c *Corpus) Full() bool {
	return c.limit > 0 && len(c.units) >= c.limit
}

// Units returns the underlying slice. Callers must not mutate it.
func (c *Corpus) Units() []ContentUnit {
	return c.units
}

// Len returns the number of units held.
func (c *Corpus) Len() int {
	return len(c.units)
}
