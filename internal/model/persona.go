package model

import "time"

// ActivitySummary aggregates posting behavior over the corpus. Hour buckets
// are derived from each unit's creation time in UTC, since Reddit timestamps
// are absolute epoch seconds.
type ActivitySummary struct {
	HourCounts      [24]int        `json:"hour_counts"`
	SubredditCounts map[string]int `json:"subreddit_counts"`
	PostCount       int            `json:"post_count"`
	CommentCount    int            `json:"comment_count"`
	AvgPostScore    float64        `json:"avg_post_score"`
	AvgCommentScore float64        `json:"avg_comment_score"`
}

// HourCount pairs an hour-of-day with its activity count, for ranked views.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// SubredditCount pairs a subreddit with its activity count.
type SubredditCount struct {
	Subreddit string `json:"subreddit"`
	Count     int    `json:"count"`
}

// LocationMention is one matched place name with its frequency.
type LocationMention struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Demographics holds the mutually-exclusive bucket labels plus the ranked
// location frequency table. Labels are "unknown" when no bucket scored.
// Citations substantiate the winning bucket only.
type Demographics struct {
	AgeGroup        string            `json:"age_group"`
	AgeCitations    []MatchRecord     `json:"age_citations,omitempty"`
	Gender          string            `json:"gender"`
	GenderCitations []MatchRecord     `json:"gender_citations,omitempty"`
	Locations       []LocationMention `json:"locations,omitempty"`
}

// Stream names used in StreamReport and FetchError.
const (
	StreamSubmissions = "submissions"
	StreamComments    = "comments"
)

// StreamReport records how one content stream went. A partial stream means
// the retry budget was exhausted mid-pagination and counts derived from it
// may be undercounted; the report must say so rather than present partial
// data as complete.
type StreamReport struct {
	Stream    string `json:"stream"`
	Collected int    `json:"collected"`
	Partial   bool   `json:"partial"`
	Error     string `json:"error,omitempty"`
}

// Persona is the assembled profile handed to the report writer. Built once,
// read-only thereafter.
type Persona struct {
	Username    string    `json:"username"`
	ProfileURL  string    `json:"profile_url"`
	GeneratedAt time.Time `json:"generated_at"`

	Account  AccountInfo     `json:"account"`
	Activity ActivitySummary `json:"activity"`

	Interests    []CategoryResult `json:"interests"`
	Personality  []CategoryResult `json:"personality"`
	Demographics Demographics     `json:"demographics"`

	EngagementStyle string         `json:"engagement_style"`
	Streams         []StreamReport `json:"streams"`
}

// Partial reports whether any content stream was degraded.
func (p *Persona) Partial() bool {
	for _, s := range p.Streams {
		if s.Partial {
			return true
		}
	}
	return false
}
