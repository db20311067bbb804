package normalize

import (
	"strings"
	"testing"

	"github.com/laasya2505/reddit-persona/internal/fetch"
	"github.com/laasya2505/reddit-persona/internal/model"
)

func TestUnits_PostJoinsTitleAndBody(t *testing.T) {
	items := []fetch.RawItem{{
		Name:       "t3_abc",
		Title:      "My Homelab Setup",
		SelfText:   "Running Proxmox on a NUC.",
		Subreddit:  "homelab",
		Score:      42,
		CreatedUTC: 1700000000,
		Permalink:  "/r/homelab/comments/abc/",
	}}

	units := Units(items, model.KindPost)
	if len(units) != 1 {
		t.Fatalf("Expected 1 unit, got %d", len(units))
	}

	u := units[0]
	if u.Text != "My Homelab Setup\n\nRunning Proxmox on a NUC." {
		t.Errorf("Text = %q", u.Text)
	}
	// The delimiter is preserved in the citation text but collapses in the
	// matching copy.
	if strings.Contains(u.MatchText, "\n") {
		t.Error("MatchText should not contain newlines")
	}
	if u.MatchText != "my homelab setup running proxmox on a nuc." {
		t.Errorf("MatchText = %q", u.MatchText)
	}
	if u.Permalink != "https://www.reddit.com/r/homelab/comments/abc/" {
		t.Errorf("Permalink = %q", u.Permalink)
	}
}

func TestUnits_TitleOnlyPostKept(t *testing.T) {
	items := []fetch.RawItem{{Name: "t3_x", Title: "Just a link post", CreatedUTC: 1}}

	units := Units(items, model.KindPost)
	if len(units) != 1 {
		t.Fatalf("Expected 1 unit, got %d", len(units))
	}
	if units[0].Text != "Just a link post" {
		t.Errorf("Text = %q", units[0].Text)
	}
}

func TestUnits_DropsRemovedAndEmpty(t *testing.T) {
	items := []fetch.RawItem{
		{Name: "t1_a", Body: "[deleted]"},
		{Name: "t1_b", Body: "[removed]"},
		{Name: "t1_c", Body: "   "},
		{Name: "t1_d", Body: ""},
		{Name: "t1_e", Body: "actual comment"},
	}

	units := Units(items, model.KindComment)
	if len(units) != 1 {
		t.Fatalf("Expected only the real comment to survive, got %d units", len(units))
	}
	if units[0].ID != "t1_e" {
		t.Errorf("Survivor = %s", units[0].ID)
	}
}

func TestUnits_FallsBackToRenderedHTML(t *testing.T) {
	items := []fetch.RawItem{{
		Name:     "t1_h",
		Body:     "",
		BodyHTML: `<div class="md"><p>I love <strong>programming</strong> in Go</p></div>`,
	}}

	units := Units(items, model.KindComment)
	if len(units) != 1 {
		t.Fatalf("Expected 1 unit, got %d", len(units))
	}
	if units[0].Text != "I love programming in Go" {
		t.Errorf("Text = %q", units[0].Text)
	}
}

func TestMatchText_CaseAndWhitespace(t *testing.T) {
	got := MatchText("  Mixed CASE\ttext\nacross   lines ")
	if got != "mixed case text across lines" {
		t.Errorf("MatchText = %q", got)
	}
}

func TestStripHTML_SkipsScripts(t *testing.T) {
	got := StripHTML(`<p>visible</p><script>alert("no")</script>`)
	if got != "visible" {
		t.Errorf("StripHTML = %q", got)
	}
}
