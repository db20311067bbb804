// Package activity computes posting-pattern statistics over the corpus.
package activity

import (
	"sort"

	"github.com/laasya2505/reddit-persona/internal/model"
)

// Aggregate is a pure function over the corpus: hour-of-day histogram (UTC,
// since Reddit timestamps are absolute), per-subreddit counts, and score
// means computed separately for posts and comments. The mean over zero
// items is zero, not an error.
func Aggregate(units []model.ContentUnit) model.ActivitySummary {
	summary := model.ActivitySummary{
		SubredditCounts: make(map[string]int),
	}

	var postScore, commentScore int
	for _, u := range units {
		summary.HourCounts[u.CreatedAt.UTC().Hour()]++
		if u.Subreddit != "" {
			summary.SubredditCounts[u.Subreddit]++
		}

		switch u.Kind {
		case model.KindPost:
			summary.PostCount++
			postScore += u.Score
		case model.KindComment:
			summary.CommentCount++
			commentScore += u.Score
		}
	}

	if summary.PostCount > 0 {
		summary.AvgPostScore = float64(postScore) / float64(summary.PostCount)
	}
	if summary.CommentCount > 0 {
		summary.AvgCommentScore = float64(commentScore) / float64(summary.CommentCount)
	}
	return summary
}

// PeakHours returns the n busiest hours, count descending with hour
// ascending as the deterministic tie-break.
func PeakHours(s model.ActivitySummary, n int) []model.HourCount {
	hours := make([]model.HourCount, 0, 24)
	for h, c := range s.HourCounts {
		if c > 0 {
			hours = append(hours, model.HourCount{Hour: h, Count: c})
		}
	}
	sort.Slice(hours, func(i, j int) bool {
		if hours[i].Count != hours[j].Count {
			return hours[i].Count > hours[j].Count
		}
		return hours[i].Hour < hours[j].Hour
	})

	if n > 0 && len(hours) > n {
		hours = hours[:n]
	}
	return hours
}

// TopSubreddits returns the n most active subreddits, count descending with
// name ascending as the tie-break.
func TopSubreddits(s model.ActivitySummary, n int) []model.SubredditCount {
	subs := make([]model.SubredditCount, 0, len(s.SubredditCounts))
	for name, count := range s.SubredditCounts {
		subs = append(subs, model.SubredditCount{Subreddit: name, Count: count})
	}
	sort.Slice(subs, func(i, j int) bool {
		if subs[i].Count != subs[j].Count {
			return subs[i].Count > subs[j].Count
		}
		return subs[i].Subreddit < subs[j].Subreddit
	})

	if n > 0 && len(subs) > n {
		subs = subs[:n]
	}
	return subs
}
