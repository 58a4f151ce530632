package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiliev/jobtailor/internal/jobboard"
)

func TestExtractJobSkillsFieldWeights(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	details := jobboard.Details{
		RequiredSkills: "Python and Docker",
		JobDescription: "Experience with Python and Kubernetes",
	}

	got := m.extractJobSkills(details)

	// The highest field weight wins for skills named in several fields.
	assert.InDelta(t, 1.0, got["python"], 1e-9)
	assert.InDelta(t, 1.0, got["docker"], 1e-9)
	assert.InDelta(t, 0.7, got["kubernetes"], 1e-9)
}

func TestExtractJobSkillsConceptInference(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	details := jobboard.Details{JobTitle: "Data Scientist"}

	got := m.extractJobSkills(details)
	require.NotEmpty(t, got)

	// Inferred skills carry the field weight scaled by the inference factor.
	assert.InDelta(t, 0.9*0.7, got["pandas"], 1e-9)
	assert.InDelta(t, 0.9*0.7, got["machine learning"], 1e-9)
}

func TestExtractJobSkillsDirectBeatsInferred(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	details := jobboard.Details{
		JobTitle:       "Data Scientist",
		RequiredSkills: "pandas",
	}

	got := m.extractJobSkills(details)
	assert.InDelta(t, 1.0, got["pandas"], 1e-9)
}

func TestExtractJobSkillsEmptyDetails(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	assert.Empty(t, m.extractJobSkills(jobboard.Details{}))
	assert.Empty(t, m.extractJobSkills(jobboard.Details{JobDescription: "we want a friendly wizard"}))
}
