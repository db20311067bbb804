package model

import "time"

// AccountInfo holds account-level metadata fetched once before any content
// streams are requested. Immutable after fetch.
type AccountInfo struct {
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"created_at"`
	PostKarma    int       `json:"post_karma"`
	CommentKarma int       `json:"comment_karma"`
	TotalKarma   int       `json:"total_karma"`
	Verified     bool      `json:"verified"`
	IsGold       bool      `json:"is_gold"`
	IsMod        bool      `json:"is_mod"`
}

// AgeDays returns the account age in whole days at the given instant.
func (a AccountInfo) AgeDays(now time.Time) int {
	if a.CreatedAt.IsZero() || now.Before(a.CreatedAt) {
		return 0
	}
	return int(now.Sub(a.CreatedAt).Hours() / 24)
}

// AgeYears returns the account age in fractional years at the given instant.
func (a AccountInfo) AgeYears(now time.Time) float64 {
	return float64(a.AgeDays(now)) / 365.25
}

// ProfileURL returns the canonical profile URL for the account.
func (a AccountInfo) ProfileURL() string {
	return "https://www.reddit.com/user/" + a.Username + "/"
}
