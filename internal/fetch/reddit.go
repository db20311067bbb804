package fetch

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/laasya2505/reddit-persona/internal/model"
)

var userPathRe = regexp.MustCompile(`(?:^|/)(?:user|u)/([^/?#]+)`)

// ParseUsername accepts either a bare username (optionally prefixed with
// "u/") or a full profile URL and returns the username.
func ParseUsername(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("empty username")
	}

	if m := userPathRe.FindStringSubmatch(input); m != nil {
		return m[1], nil
	}
	if strings.Contains(input, "/") {
		return "", fmt.Errorf("no username in %q", input)
	}
	return input, nil
}

// aboutURL builds the account-metadata endpoint.
func aboutURL(base, username string) string {
	return fmt.Sprintf("%s/user/%s/about/.json", base, url.PathEscape(username))
}

// listingURL builds one page of a paginated content stream. after is the
// opaque cursor from the previous page, empty for the first page.
func listingURL(base, username string, kind model.ContentKind, pageSize int, after string) string {
	path := "comments"
	if kind == model.KindPost {
		path = "submitted"
	}

	u := fmt.Sprintf("%s/user/%s/%s/.json?limit=%d", base, url.PathEscape(username), path, pageSize)
	if after != "" {
		u += "&after=" + url.QueryEscape(after)
	}
	return u
}

// aboutEnvelope is the account-metadata response shape.
type aboutEnvelope struct {
	Data aboutData `json:"data"`
}

type aboutData struct {
	Name         string  `json:"name"`
	CreatedUTC   float64 `json:"created_utc"`
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	TotalKarma   int     `json:"total_karma"`
	IsSuspended  bool    `json:"is_suspended"`
	Verified     bool    `json:"verified"`
	IsGold       bool    `json:"is_gold"`
	IsMod        bool    `json:"is_mod"`
}

// listingEnvelope is the shared shape of the submissions and comments
// endpoints: a page of children plus the pagination cursor.
type listingEnvelope struct {
	Data listingData `json:"data"`
}

type listingData struct {
	After    string         `json:"after"`
	Children []listingChild `json:"children"`
}

type listingChild struct {
	Kind string  `json:"kind"`
	Data RawItem `json:"data"`
}

// RawItem is the kind-specific raw schema before normalization. Submissions
// carry Title/SelfText, comments carry Body; the remaining fields are shared.
type RawItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Title        string  `json:"title"`
	SelfText     string  `json:"selftext"`
	SelfTextHTML string  `json:"selftext_html"`
	Body         string  `json:"body"`
	BodyHTML     string  `json:"body_html"`
	Subreddit    string  `json:"subreddit"`
	Score        int     `json:"score"`
	CreatedUTC   float64 `json:"created_utc"`
	Permalink    string  `json:"permalink"`
}
