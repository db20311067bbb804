// Package classify scans a normalized corpus against keyword taxonomies and
// produces per-category hit counts with ranked, bounded citations.
//
// Counting is per unit, not per occurrence: a unit containing five keywords
// of one category still counts once. This keeps one verbose post from
// dominating a category score and makes counts reproducible.
package classify

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/laasya2505/reddit-persona/internal/model"
)

// Options carries the report-sizing knobs; they live in configuration, not
// in classification logic.
type Options struct {
	MaxCitations  int
	SnippetLength int
	TopLocations  int
}

// OptionsFrom extracts classifier options from the analysis config.
func OptionsFrom(cfg model.AnalysisConfig) Options {
	return Options{
		MaxCitations:  cfg.MaxCitations,
		SnippetLength: cfg.SnippetLength,
		TopLocations:  cfg.TopLocations,
	}
}

// Classify evaluates every category independently over the same corpus. A
// single unit may hit zero, one, or many categories. Results are ordered by
// count descending, then name, so reports are deterministic.
func Classify(units []model.ContentUnit, categories []model.Category, opts Options) []model.CategoryResult {
	results := make([]model.CategoryResult, 0, len(categories))
	for _, cat := range categories {
		records := hitRecords(units, cat, opts.SnippetLength)
		results = append(results, model.CategoryResult{
			Name:      cat.Name,
			Count:     len(records),
			Citations: topCitations(records, opts.MaxCitations),
			Records:   records,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Name < results[j].Name
	})
	return results
}

// hitRecords produces one MatchRecord per hitting unit, capturing the first
// keyword that matched. An empty keyword set can never hit.
func hitRecords(units []model.ContentUnit, cat model.Category, snippetLen int) []model.MatchRecord {
	var records []model.MatchRecord
	for _, u := range units {
		for _, kw := range cat.Keywords {
			if kw == "" || !strings.Contains(u.MatchText, kw) {
				continue
			}
			records = append(records, model.MatchRecord{
				Category:  cat.Name,
				UnitID:    u.ID,
				Keyword:   kw,
				Quote:     Snippet(u.Text, kw, snippetLen),
				SourceURL: u.Permalink,
				Score:     u.Score,
				CreatedAt: u.CreatedAt,
			})
			break // one record per unit however many keywords match
		}
	}
	return records
}

// topCitations ranks records by unit score descending (higher-visibility
// evidence first), breaking ties by recency, then unit id for stability,
// and returns the top n.
func topCitations(records []model.MatchRecord, n int) []model.MatchRecord {
	if len(records) == 0 || n <= 0 {
		return nil
	}

	ranked := make([]model.MatchRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
		}
		return ranked[i].UnitID < ranked[j].UnitID
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Snippet cuts a bounded quote out of the original-case text, centered on
// the first occurrence of keyword when one is found, truncated from the
// start otherwise. Cuts are marked with an ellipsis and never split a rune.
func Snippet(text, keyword string, max int) string {
	if max <= 0 || len(text) <= max {
		return text
	}

	start, end := 0, max
	if idx := strings.Index(strings.ToLower(text), keyword); idx >= 0 {
		half := (max - len(keyword)) / 2
		start = idx - half
		if start < 0 {
			start = 0
		}
		end = start + max
		if end > len(text) {
			end = len(text)
			start = end - max
		}
	}

	// Snap to rune boundaries.
	for start > 0 && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}

	quote := text[start:end]
	if start > 0 {
		quote = "..." + quote
	}
	if end < len(text) {
		quote += "..."
	}
	return quote
}
