package classify

import (
	"regexp"
	"sort"
	"strings"

	"github.com/laasya2505/reddit-persona/internal/model"
	"github.com/laasya2505/reddit-persona/internal/taxonomy"
)

// Age and gender buckets are mutually exclusive, so winner selection needs
// an explicit, documented policy rather than map-iteration luck:
//
//   - the bucket with the most distinct hitting units wins;
//   - an exact tie between age buckets resolves to "middle", the neutral
//     default;
//   - an exact tie between gender buckets resolves to "unknown";
//   - zero hits everywhere is "unknown".
const (
	bucketUnknown    = "unknown"
	ageTieDefault    = "middle"
	genderTieDefault = bucketUnknown
)

// InferDemographics derives the exclusive bucket labels and the location
// frequency table from the corpus.
func InferDemographics(units []model.ContentUnit, tax *taxonomy.Taxonomy, opts Options) model.Demographics {
	ageResults := Classify(units, tax.AgeGroups, opts)
	genderResults := Classify(units, tax.Genders, opts)

	age := pickBucket(ageResults, ageTieDefault)
	gender := pickBucket(genderResults, genderTieDefault)

	return model.Demographics{
		AgeGroup:        age,
		AgeCitations:    bucketCitations(ageResults, age),
		Gender:          gender,
		GenderCitations: bucketCitations(genderResults, gender),
		Locations:       locationMentions(units, tax.LocationPatterns, opts.TopLocations),
	}
}

// pickBucket selects the winning bucket by hit count, applying tieDefault
// on an exact tie at the top.
func pickBucket(results []model.CategoryResult, tieDefault string) string {
	best := ""
	bestCount := 0
	tied := false

	for _, r := range results {
		switch {
		case r.Count > bestCount:
			best = r.Name
			bestCount = r.Count
			tied = false
		case r.Count == bestCount && bestCount > 0 && r.Name != best:
			tied = true
		}
	}

	if bestCount == 0 {
		return bucketUnknown
	}
	if tied {
		return tieDefault
	}
	return best
}

func bucketCitations(results []model.CategoryResult, winner string) []model.MatchRecord {
	for _, r := range results {
		if r.Name == winner {
			return r.Citations
		}
	}
	return nil
}

// locationMentions accumulates a frequency table of matched place names
// over the original-case text (capitalization is the signal) and returns
// the top mentions, count descending with name as the deterministic
// tie-break.
func locationMentions(units []model.ContentUnit, patterns []*regexp.Regexp, top int) []model.LocationMention {
	counts := make(map[string]int)
	for _, u := range units {
		for _, re := range patterns {
			for _, m := range re.FindAllStringSubmatch(u.Text, -1) {
				if place := lastGroup(m); place != "" {
					counts[place]++
				}
			}
		}
	}

	mentions := make([]model.LocationMention, 0, len(counts))
	for name, count := range counts {
		mentions = append(mentions, model.LocationMention{Name: name, Count: count})
	}
	sort.Slice(mentions, func(i, j int) bool {
		if mentions[i].Count != mentions[j].Count {
			return mentions[i].Count > mentions[j].Count
		}
		return mentions[i].Name < mentions[j].Name
	})

	if top > 0 && len(mentions) > top {
		mentions = mentions[:top]
	}
	return mentions
}

// lastGroup returns the last non-empty capture group; the patterns differ
// in which group holds the place name.
func lastGroup(m []string) string {
	for i := len(m) - 1; i >= 1; i-- {
		if s := strings.TrimSpace(m[i]); s != "" {
			return s
		}
	}
	return ""
}
