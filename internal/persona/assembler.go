// Package persona assembles the final profile and renders it. Assembly is
// the boundary of the analysis core: everything past it is formatting.
package persona

import (
	"time"

	"github.com/laasya2505/reddit-persona/internal/model"
)

// nowFunc is swapped out in tests.
var nowFunc = time.Now

// Assemble merges the analysis outputs into a single read-only Persona.
func Assemble(
	account model.AccountInfo,
	summary model.ActivitySummary,
	interests []model.CategoryResult,
	personality []model.CategoryResult,
	demographics model.Demographics,
	streams []model.StreamReport,
) *model.Persona {
	return &model.Persona{
		Username:        account.Username,
		ProfileURL:      account.ProfileURL(),
		GeneratedAt:     nowFunc().UTC(),
		Account:         account,
		Activity:        summary,
		Interests:       interests,
		Personality:     personality,
		Demographics:    demographics,
		EngagementStyle: engagementStyle(summary),
		Streams:         streams,
	}
}

// engagementStyle labels the account by its post-to-comment ratio.
func engagementStyle(s model.ActivitySummary) string {
	if float64(s.PostCount)/float64(s.CommentCount+1) < 0.5 {
		return "commenter"
	}
	return "poster"
}
