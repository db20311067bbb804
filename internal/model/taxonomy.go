package model

import "time"

// Category is one entry of a keyword taxonomy: a name plus the lowercase
// keywords that signal it. Taxonomies are loaded once at startup and shared
// read-only across analyses.
type Category struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// MatchRecord ties a category hit back to the content unit that produced it:
// the first keyword that matched, a bounded quote around the match, and the
// unit's permalink. Never mutated after creation.
type MatchRecord struct {
	Category  string    `json:"category"`
	UnitID    string    `json:"unit_id"`
	Keyword   string    `json:"keyword"`
	Quote     string    `json:"quote"`
	SourceURL string    `json:"source_url"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryResult is the classifier output for one category. Count is the
// number of distinct units with at least one keyword hit, never the raw
// occurrence count. Citations holds the top-ranked records; Records keeps
// every hit for ranking and inspection.
type CategoryResult struct {
	Name      string        `json:"name"`
	Count     int           `json:"count"`
	Citations []MatchRecord `json:"citations"`
	Records   []MatchRecord `json:"-"`
}
