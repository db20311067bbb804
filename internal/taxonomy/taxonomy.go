// Package taxonomy loads the keyword tables the classifier runs against.
// Tables are plain YAML embedded at build time, loaded once at startup and
// shared read-only; swapping a table never requires touching classifier
// code.
package taxonomy

import (
	"embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/laasya2505/reddit-persona/internal/model"
)

//go:embed interests.yaml personality.yaml demographics.yaml
var files embed.FS

// Taxonomy bundles all static classification tables.
type Taxonomy struct {
	Interests   []model.Category
	Personality []model.Category

	AgeGroups []model.Category
	Genders   []model.Category

	LocationPatterns []*regexp.Regexp
}

type demographicsFile struct {
	AgeGroups        []model.Category `yaml:"age_groups"`
	Genders          []model.Category `yaml:"genders"`
	LocationPatterns []string         `yaml:"location_patterns"`
}

// Default loads the embedded tables.
func Default() (*Taxonomy, error) {
	interests, err := loadCategories("interests.yaml")
	if err != nil {
		return nil, err
	}

	personality, err := loadCategories("personality.yaml")
	if err != nil {
		return nil, err
	}

	raw, err := files.ReadFile("demographics.yaml")
	if err != nil {
		return nil, fmt.Errorf("read demographics.yaml: %w", err)
	}
	var demo demographicsFile
	if err := yaml.Unmarshal(raw, &demo); err != nil {
		return nil, fmt.Errorf("parse demographics.yaml: %w", err)
	}

	patterns := make([]*regexp.Regexp, 0, len(demo.LocationPatterns))
	for _, p := range demo.LocationPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compile location pattern %q: %w", p, err)
		}
		patterns = append(patterns, re)
	}

	return &Taxonomy{
		Interests:        lowercase(interests),
		Personality:      lowercase(personality),
		AgeGroups:        lowercase(demo.AgeGroups),
		Genders:          lowercase(demo.Genders),
		LocationPatterns: patterns,
	}, nil
}

func loadCategories(name string) ([]model.Category, error) {
	raw, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var categories []model.Category
	if err := yaml.Unmarshal(raw, &categories); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return categories, nil
}

// lowercase enforces the lowercase-keyword invariant regardless of how the
// table was written.
func lowercase(categories []model.Category) []model.Category {
	for i := range categories {
		for j, kw := range categories[i].Keywords {
			categories[i].Keywords[j] = strings.ToLower(kw)
		}
	}
	return categories
}
