package match

import (
	"strings"

	"github.com/avasiliev/jobtailor/internal/jobboard"
)

// extractJobSkills builds the weighted skill map of a posting. A skill named
// in a field gets that field's weight; a skill only implied by a concept
// phrase gets the field weight scaled by the concept inference factor. When a
// skill shows up in several fields the highest weight wins.
func (m *Matcher) extractJobSkills(details jobboard.Details) map[string]float64 {
	weighted := make(map[string]float64)

	for _, field := range fieldOrder {
		weight, ok := m.cfg.FieldWeights[field]
		if !ok {
			continue
		}

		text := strings.ToLower(details.Text(field))
		if text == "" {
			continue
		}

		for _, skill := range m.skills.Match(text) {
			if weight > weighted[skill] {
				weighted[skill] = weight
			}
		}

		for _, concept := range m.concepts.Match(text) {
			inferred := weight * m.cfg.ConceptInference
			for _, skill := range m.tax.InferredSkills(concept) {
				if inferred > weighted[skill] {
					weighted[skill] = inferred
				}
			}
		}
	}

	return weighted
}
