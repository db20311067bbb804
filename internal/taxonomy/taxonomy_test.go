package taxonomy

import (
	"strings"
	"testing"
)

func TestDefault_LoadsAllTables(t *testing.T) {
	tax, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	if len(tax.Interests) == 0 {
		t.Error("Expected interest categories")
	}
	if len(tax.Personality) == 0 {
		t.Error("Expected personality categories")
	}
	if len(tax.AgeGroups) != 3 {
		t.Errorf("Expected 3 age buckets, got %d", len(tax.AgeGroups))
	}
	if len(tax.Genders) != 2 {
		t.Errorf("Expected 2 gender buckets, got %d", len(tax.Genders))
	}
	if len(tax.LocationPatterns) == 0 {
		t.Error("Expected location patterns")
	}
}

func TestDefault_KeywordsAreLowercase(t *testing.T) {
	tax, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	check := func(name, kw string) {
		if kw != strings.ToLower(kw) {
			t.Errorf("Category %s has non-lowercase keyword %q", name, kw)
		}
		if kw == "" {
			t.Errorf("Category %s has empty keyword", name)
		}
	}

	for _, c := range tax.Interests {
		for _, kw := range c.Keywords {
			check(c.Name, kw)
		}
	}
	for _, c := range tax.AgeGroups {
		for _, kw := range c.Keywords {
			check(c.Name, kw)
		}
	}
}

func TestLocationPatterns_MatchCityState(t *testing.T) {
	tax, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	matched := false
	for _, re := range tax.LocationPatterns {
		if re.MatchString("I grew up in Austin, TX before moving.") {
			matched = true
		}
	}
	if !matched {
		t.Error("Expected a pattern to match a City, ST mention")
	}
}
