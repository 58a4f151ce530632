// Package taxonomy holds the static skill knowledge base: categorized
// canonical skills, concept-to-skill inference and domain keyword tables.
// A Taxonomy is built once at startup and never mutated afterwards, so it is
// safe to share across concurrently scored postings without locking.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// SoftSkillsCategory is the category whose skills feed the soft-skill bonus.
const SoftSkillsCategory = "soft skills"

// Category is an ordered list of canonical skills under a common name.
type Category struct {
	Name   string
	Skills []string
}

// Domain is a coarse professional area detected through weighted keywords.
// Primary keywords count double compared to secondary ones.
type Domain struct {
	Name      string
	Primary   []string
	Secondary []string
}

type Taxonomy struct {
	categories []Category
	flat       map[string]struct{}
	skills     []string
	concepts   map[string][]string
	phrases    []string
	domains    []Domain
	soft       map[string]struct{}
}

// New builds a taxonomy from the provided tables. Skills are normalized to
// lowercase and deduplicated within their category. Every skill referenced by
// a concept must exist in the flat skill set.
func New(categories []Category, concepts map[string][]string, domains []Domain) (*Taxonomy, error) {
	t := &Taxonomy{
		flat:     make(map[string]struct{}),
		concepts: make(map[string][]string, len(concepts)),
		soft:     make(map[string]struct{}),
		domains:  domains,
	}

	for _, category := range categories {
		clean := Category{Name: category.Name}
		seen := make(map[string]struct{}, len(category.Skills))
		for _, skill := range category.Skills {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if skill == "" {
				continue
			}
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			clean.Skills = append(clean.Skills, skill)
			t.flat[skill] = struct{}{}
			if category.Name == SoftSkillsCategory {
				t.soft[skill] = struct{}{}
			}
		}
		t.categories = append(t.categories, clean)
	}

	for phrase, inferred := range concepts {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase == "" {
			continue
		}
		skills := make([]string, 0, len(inferred))
		for _, skill := range inferred {
			skill = strings.ToLower(strings.TrimSpace(skill))
			if _, ok := t.flat[skill]; !ok {
				return nil, fmt.Errorf("concept %q infers unknown skill %q", phrase, skill)
			}
			skills = append(skills, skill)
		}
		t.concepts[phrase] = skills
	}

	t.skills = make([]string, 0, len(t.flat))
	for skill := range t.flat {
		t.skills = append(t.skills, skill)
	}
	sort.Strings(t.skills)

	t.phrases = make([]string, 0, len(t.concepts))
	for phrase := range t.concepts {
		t.phrases = append(t.phrases, phrase)
	}
	sort.Strings(t.phrases)

	return t, nil
}

// Default returns the built-in knowledge base.
func Default() *Taxonomy {
	t, err := New(defaultCategories, defaultConcepts, defaultDomains)
	if err != nil {
		// The built-in tables are validated by tests; failing here means the
		// binary shipped with broken data.
		panic(fmt.Sprintf("taxonomy: invalid built-in knowledge base: %v", err))
	}
	return t
}

// Skills returns the full matching vocabulary, sorted.
func (t *Taxonomy) Skills() []string {
	return t.skills
}

// HasSkill reports whether the given string is a canonical skill.
func (t *Taxonomy) HasSkill(skill string) bool {
	_, ok := t.flat[skill]
	return ok
}

// ConceptPhrases returns all concept phrases, sorted.
func (t *Taxonomy) ConceptPhrases() []string {
	return t.phrases
}

// InferredSkills returns the skills implied by a concept phrase.
func (t *Taxonomy) InferredSkills(phrase string) []string {
	return t.concepts[phrase]
}

// Domains returns the domain table in its declaration order. The order is the
// tie-break when two domains score equally.
func (t *Taxonomy) Domains() []Domain {
	return t.domains
}

// IsSoftSkill reports whether a skill belongs to the soft-skill vocabulary.
func (t *Taxonomy) IsSoftSkill(skill string) bool {
	_, ok := t.soft[skill]
	return ok
}

// Categories returns the categorized skill lists.
func (t *Taxonomy) Categories() []Category {
	return t.categories
}
