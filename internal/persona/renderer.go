package persona

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/laasya2505/reddit-persona/internal/activity"
	"github.com/laasya2505/reddit-persona/internal/model"
)

// Renderer formats an assembled persona as the plain-text report. Sizing of
// the ranked sections comes from configuration.
type Renderer struct {
	peakHours     int
	topSubreddits int
	topLocations  int
}

// NewRenderer creates a renderer with the given section sizes.
func NewRenderer(cfg model.AnalysisConfig) *Renderer {
	return &Renderer{
		peakHours:     cfg.PeakHours,
		topSubreddits: cfg.TopSubreddits,
		topLocations:  cfg.TopLocations,
	}
}

// DefaultFilename is the conventional report name for a user.
func DefaultFilename(username string) string {
	return username + "_persona.txt"
}

// Text renders the full report.
func (r *Renderer) Text(p *model.Persona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "REDDIT USER PERSONA REPORT\n")
	fmt.Fprintf(&b, "%s\n\n", strings.Repeat("=", 50))

	fmt.Fprintf(&b, "Username: %s\n", p.Username)
	fmt.Fprintf(&b, "Profile URL: %s\n", p.ProfileURL)
	fmt.Fprintf(&b, "Generated: %s\n\n", p.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	if p.Partial() {
		fmt.Fprintf(&b, "NOTE: one or more content streams failed mid-fetch; counts\n")
		fmt.Fprintf(&b, "below may be undercounted. See DATA STREAMS.\n\n")
	}

	r.basicInfo(&b, p)
	r.activityPatterns(&b, p)
	r.demographics(&b, p)
	r.categories(&b, "INTERESTS", p.Interests, true)
	r.categories(&b, "PERSONALITY TRAITS", p.Personality, false)
	r.streams(&b, p)

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, strings.Repeat("-", 20))
}

func (r *Renderer) basicInfo(b *strings.Builder, p *model.Persona) {
	section(b, "BASIC INFORMATION")
	age := p.Account.AgeDays(p.GeneratedAt)
	fmt.Fprintf(b, "Account Age: %.1f years (%d days)\n", p.Account.AgeYears(p.GeneratedAt), age)
	fmt.Fprintf(b, "Karma: %d total (%d post / %d comment)\n",
		p.Account.TotalKarma, p.Account.PostKarma, p.Account.CommentKarma)
	fmt.Fprintf(b, "Total Posts: %d\n", p.Activity.PostCount)
	fmt.Fprintf(b, "Total Comments: %d\n", p.Activity.CommentCount)
	fmt.Fprintf(b, "Engagement Style: %s\n\n", p.EngagementStyle)
}

func (r *Renderer) activityPatterns(b *strings.Builder, p *model.Persona) {
	section(b, "ACTIVITY PATTERNS")

	peaks := activity.PeakHours(p.Activity, r.peakHours)
	parts := make([]string, 0, len(peaks))
	for _, h := range peaks {
		parts = append(parts, fmt.Sprintf("%02d:00 UTC (%d items)", h.Hour, h.Count))
	}
	fmt.Fprintf(b, "Peak Activity Hours: %s\n", strings.Join(parts, ", "))

	subs := activity.TopSubreddits(p.Activity, r.topSubreddits)
	parts = parts[:0]
	for _, s := range subs {
		parts = append(parts, fmt.Sprintf("r/%s (%d)", s.Subreddit, s.Count))
	}
	fmt.Fprintf(b, "Top Subreddits: %s\n", strings.Join(parts, ", "))

	fmt.Fprintf(b, "Average Post Score: %.1f\n", p.Activity.AvgPostScore)
	fmt.Fprintf(b, "Average Comment Score: %.1f\n\n", p.Activity.AvgCommentScore)
}

func (r *Renderer) demographics(b *strings.Builder, p *model.Persona) {
	section(b, "DEMOGRAPHICS")

	fmt.Fprintf(b, "Likely Age Group: %s\n", titleCase(p.Demographics.AgeGroup))
	citations(b, p.Demographics.AgeCitations)

	fmt.Fprintf(b, "Likely Gender: %s\n", titleCase(p.Demographics.Gender))
	citations(b, p.Demographics.GenderCitations)

	if len(p.Demographics.Locations) > 0 {
		locs := p.Demographics.Locations
		if r.topLocations > 0 && len(locs) > r.topLocations {
			locs = locs[:r.topLocations]
		}
		parts := make([]string, 0, len(locs))
		for _, l := range locs {
			parts = append(parts, fmt.Sprintf("%s (%d)", l.Name, l.Count))
		}
		fmt.Fprintf(b, "Possible Locations: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintf(b, "\n")
}

func (r *Renderer) categories(b *strings.Builder, title string, results []model.CategoryResult, cite bool) {
	section(b, title)
	for _, res := range results {
		if res.Count == 0 {
			continue
		}
		fmt.Fprintf(b, "%s: %d matching items\n", titleCase(res.Name), res.Count)
		if cite {
			citations(b, res.Citations)
		}
	}
	fmt.Fprintf(b, "\n")
}

func (r *Renderer) streams(b *strings.Builder, p *model.Persona) {
	section(b, "DATA STREAMS")
	for _, s := range p.Streams {
		status := "complete"
		if s.Partial {
			status = "PARTIAL: " + s.Error
		}
		fmt.Fprintf(b, "%s: %d items (%s)\n", s.Stream, s.Collected, status)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func citations(b *strings.Builder, records []model.MatchRecord) {
	if len(records) == 0 {
		return
	}
	fmt.Fprintf(b, "  Citations:\n")
	for i, rec := range records {
		fmt.Fprintf(b, "    %d. %q\n", i+1, rec.Quote)
		fmt.Fprintf(b, "       Source: %s\n", rec.SourceURL)
	}
}

// WriteText writes the plain-text report to path.
func (r *Renderer) WriteText(p *model.Persona, path string) error {
	if err := os.WriteFile(path, []byte(r.Text(p)), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteJSON writes the persona structure as indented JSON.
func WriteJSON(p *model.Persona, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal persona: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
