// Package normalize converts raw listing items into uniform content units:
// one text per unit, original casing kept for citations, a lowercased
// whitespace-collapsed copy prepared for keyword matching.
package normalize

import (
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/laasya2505/reddit-persona/internal/fetch"
	"github.com/laasya2505/reddit-persona/internal/model"
)

// titleBodyDelim joins a submission title with its body. It survives into
// citation quotes but collapses to a space in the matching text.
const titleBodyDelim = "\n\n"

// removal markers Reddit substitutes for moderated or deleted content.
var removalMarkers = map[string]struct{}{
	"[deleted]":           {},
	"[removed]":           {},
	"[deleted by user]":   {},
	"[removed by reddit]": {},
	"[unavailable]":       {},
}

// Units maps raw items of one kind to content units. Items whose text is
// empty or consists only of removal markers are dropped; they carry no
// signal and would pollute citations.
func Units(items []fetch.RawItem, kind model.ContentKind) []model.ContentUnit {
	units := make([]model.ContentUnit, 0, len(items))
	for _, item := range items {
		unit, ok := unit(item, kind)
		if ok {
			units = append(units, unit)
		}
	}
	return units
}

func unit(item fetch.RawItem, kind model.ContentKind) (model.ContentUnit, bool) {
	var text string
	switch kind {
	case model.KindPost:
		body := fieldText(item.SelfText, item.SelfTextHTML)
		title := strings.TrimSpace(item.Title)
		switch {
		case title != "" && body != "":
			text = title + titleBodyDelim + body
		case title != "":
			text = title
		default:
			text = body
		}
	default:
		text = fieldText(item.Body, item.BodyHTML)
	}

	if isRemoved(text) {
		return model.ContentUnit{}, false
	}

	id := item.Name
	if id == "" {
		id = item.ID
	}

	return model.ContentUnit{
		Kind:      kind,
		ID:        id,
		Subreddit: item.Subreddit,
		CreatedAt: time.Unix(int64(item.CreatedUTC), 0).UTC(),
		Score:     item.Score,
		Permalink: absolutePermalink(item.Permalink),
		Text:      text,
		MatchText: MatchText(text),
	}, true
}

// fieldText prefers the plain markdown field, falling back to stripping the
// HTML-rendered variant when only that is populated.
func fieldText(plain, rendered string) string {
	plain = strings.TrimSpace(plain)
	if plain != "" {
		return plain
	}
	return strings.TrimSpace(StripHTML(rendered))
}

// isRemoved reports whether text is empty or only a removal marker.
func isRemoved(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return true
	}
	_, marked := removalMarkers[trimmed]
	return marked
}

// MatchText produces the matching copy: lowercase with all whitespace runs
// collapsed to single spaces, so keyword scans never straddle the
// title/body delimiter.
func MatchText(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// StripHTML extracts visible text from an HTML fragment, skipping script
// and style subtrees.
func StripHTML(fragment string) string {
	if fragment == "" {
		return ""
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				if buf.Len() > 0 {
					buf.WriteString(" ")
				}
				buf.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}

// absolutePermalink turns Reddit's relative permalinks into absolute URLs.
func absolutePermalink(permalink string) string {
	if permalink == "" || strings.HasPrefix(permalink, "http") {
		return permalink
	}
	return "https://www.reddit.com" + permalink
}
