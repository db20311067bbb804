package persona

import (
	"strings"
	"testing"
	"time"

	"github.com/laasya2505/reddit-persona/internal/model"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	orig := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = orig })
	return now
}

func samplePersona(t *testing.T) *model.Persona {
	now := fixedNow(t)

	account := model.AccountInfo{
		Username:     "alice",
		CreatedAt:    now.AddDate(-2, 0, 0),
		PostKarma:    120,
		CommentKarma: 3400,
		TotalKarma:   3520,
	}
	summary := model.ActivitySummary{
		SubredditCounts: map[string]int{"golang": 5, "cooking": 2},
		PostCount:       2,
		CommentCount:    7,
		AvgPostScore:    12.5,
		AvgCommentScore: 3.2,
	}
	summary.HourCounts[9] = 6
	summary.HourCounts[21] = 3

	interests := []model.CategoryResult{{
		Name:  "tech",
		Count: 4,
		Citations: []model.MatchRecord{{
			Category:  "tech",
			UnitID:    "t1_a",
			Keyword:   "code",
			Quote:     "I write code every day",
			SourceURL: "https://www.reddit.com/r/golang/comments/a/",
		}},
	}}
	demo := model.Demographics{
		AgeGroup:  "middle",
		Gender:    "unknown",
		Locations: []model.LocationMention{{Name: "Portland", Count: 2}},
	}
	streams := []model.StreamReport{
		{Stream: model.StreamSubmissions, Collected: 2, Partial: true, Error: "retries exhausted"},
		{Stream: model.StreamComments, Collected: 7},
	}

	return Assemble(account, summary, interests, nil, demo, streams)
}

func TestAssemble_Fields(t *testing.T) {
	p := samplePersona(t)

	if p.Username != "alice" {
		t.Errorf("Username = %q", p.Username)
	}
	if p.ProfileURL != "https://www.reddit.com/user/alice/" {
		t.Errorf("ProfileURL = %q", p.ProfileURL)
	}
	if p.EngagementStyle != "commenter" {
		t.Errorf("EngagementStyle = %q, want commenter", p.EngagementStyle)
	}
	if !p.Partial() {
		t.Error("Expected persona to report partial data")
	}
}

func TestEngagementStyle(t *testing.T) {
	tests := []struct {
		posts, comments int
		want            string
	}{
		{0, 10, "commenter"},
		{1, 10, "commenter"},
		{10, 2, "poster"},
		{0, 0, "poster"},
	}
	for _, tt := range tests {
		s := model.ActivitySummary{PostCount: tt.posts, CommentCount: tt.comments}
		if got := engagementStyle(s); got != tt.want {
			t.Errorf("engagementStyle(%d posts, %d comments) = %q, want %q",
				tt.posts, tt.comments, got, tt.want)
		}
	}
}

func TestText_SectionsAndCitations(t *testing.T) {
	p := samplePersona(t)
	r := NewRenderer(model.DefaultConfig().Analysis)
	text := r.Text(p)

	for _, want := range []string{
		"REDDIT USER PERSONA REPORT",
		"BASIC INFORMATION",
		"ACTIVITY PATTERNS",
		"DEMOGRAPHICS",
		"INTERESTS",
		"DATA STREAMS",
		"Likely Age Group: Middle",
		"Tech: 4 matching items",
		"\"I write code every day\"",
		"Source: https://www.reddit.com/r/golang/comments/a/",
		"Possible Locations: Portland (2)",
		"submissions: 2 items (PARTIAL: retries exhausted)",
		"comments: 7 items (complete)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Report missing %q", want)
		}
	}

	// Partial data must never be presented silently as complete.
	if !strings.Contains(text, "undercounted") {
		t.Error("Expected a partial-data notice")
	}
}

func TestDefaultFilename(t *testing.T) {
	if got := DefaultFilename("alice"); got != "alice_persona.txt" {
		t.Errorf("DefaultFilename = %q", got)
	}
}
