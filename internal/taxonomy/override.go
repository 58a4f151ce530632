package taxonomy

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Override extends the built-in knowledge base from configuration. Category
// entries are appended to an existing category, or create a new one when the
// name is unknown. Concept entries replace the built-in inference list for
// that phrase.
type Override struct {
	Categories map[string][]string `mapstructure:"categories"`
	Concepts   map[string][]string `mapstructure:"concepts"`
}

// DefaultWith builds the default taxonomy extended with the raw override
// section from the config file. An empty override yields Default().
func DefaultWith(raw map[string]any) (*Taxonomy, error) {
	if len(raw) == 0 {
		return Default(), nil
	}

	var override Override
	if err := mapstructure.Decode(raw, &override); err != nil {
		return nil, fmt.Errorf("decoding taxonomy override: %w", err)
	}

	categories := make([]Category, len(defaultCategories))
	copy(categories, defaultCategories)

	for name, skills := range override.Categories {
		found := false
		for i := range categories {
			if categories[i].Name != name {
				continue
			}
			merged := make([]string, 0, len(categories[i].Skills)+len(skills))
			merged = append(merged, categories[i].Skills...)
			merged = append(merged, skills...)
			categories[i] = Category{Name: name, Skills: merged}
			found = true
			break
		}
		if !found {
			categories = append(categories, Category{Name: name, Skills: skills})
		}
	}

	concepts := make(map[string][]string, len(defaultConcepts)+len(override.Concepts))
	for phrase, skills := range defaultConcepts {
		concepts[phrase] = skills
	}
	for phrase, skills := range override.Concepts {
		concepts[phrase] = skills
	}

	t, err := New(categories, concepts, defaultDomains)
	if err != nil {
		return nil, fmt.Errorf("building taxonomy with overrides: %w", err)
	}
	return t, nil
}
