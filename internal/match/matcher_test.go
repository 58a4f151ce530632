package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiliev/jobtailor/internal/jobboard"
	"github.com/avasiliev/jobtailor/internal/taxonomy"
)

func TestNewRequiresResumeText(t *testing.T) {
	_, err := New("", taxonomy.Default(), nil, nil)
	require.ErrorIs(t, err, ErrEmptyResume)

	_, err = New("   \n\t ", taxonomy.Default(), nil, nil)
	require.ErrorIs(t, err, ErrEmptyResume)
}

func TestCalculateErroredDetails(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	report := m.Calculate(&jobboard.Posting{
		ID:      "1",
		Title:   "Go Developer",
		Company: "Acme",
		Details: jobboard.Details{Error: "timeout fetching page"},
	})

	assert.True(t, report.Errored)
	assert.Zero(t, report.Score)
	assert.Equal(t, ConfidenceLow, report.Confidence)
	assert.Equal(t, "Job details missing or errored in scraped data", report.Notes)
	assert.NotNil(t, report.MatchedSkills)
	assert.Empty(t, report.MatchedSkills)
	assert.Equal(t, "1", report.PostingID)
	assert.Equal(t, "Acme", report.Company)
}

func TestCalculateEmptyDetails(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	report := m.Calculate(&jobboard.Posting{ID: "1", Details: jobboard.Details{}})

	assert.True(t, report.Errored)
	assert.Zero(t, report.Score)
}

func TestCalculateNoRelevantSkills(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	report := m.Calculate(&jobboard.Posting{
		ID:      "1",
		Details: jobboard.Details{JobDescription: "we want a friendly wizard"},
	})

	assert.False(t, report.Errored)
	assert.Zero(t, report.Score)
	assert.Equal(t, "No relevant skills found", report.Notes)
}

func TestCalculateFullReport(t *testing.T) {
	m := newTestMatcher(t, "Senior software engineer. Technical skills: Python, Docker, Kubernetes, PostgreSQL, communication.")

	posting := &jobboard.Posting{
		ID:      "42",
		Title:   "Senior DevOps Engineer",
		Company: "Acme",
		Details: jobboard.Details{
			JobTitle:       "Senior DevOps Engineer",
			RequiredSkills: "Python, Docker, Terraform",
			JobDescription: "Automate infrastructure with Kubernetes and CI/CD pipelines",
		},
	}

	report := m.Calculate(posting)

	assert.False(t, report.Errored)
	assert.Greater(t, report.Score, 0.0)
	assert.LessOrEqual(t, report.Score, 100.0)

	assert.Contains(t, report.MatchedSkills, "python")
	assert.Contains(t, report.MatchedSkills, "docker")
	assert.Contains(t, report.MatchedSkills, "kubernetes")

	// terraform carries the full required_skills weight and is absent from the resume.
	assert.Contains(t, report.CriticalMissing, "terraform")
	assert.Contains(t, report.NiceToHaveMissing, "ci/cd")

	// Missing splits exactly into critical and nice-to-have.
	assert.ElementsMatch(t, report.MissingSkills,
		append(append([]string{}, report.CriticalMissing...), report.NiceToHaveMissing...))

	assert.Contains(t, report.Domains, "Tech")
	assert.True(t, strings.HasPrefix(report.Notes, "Matched "), "notes: %q", report.Notes)
	assert.NotEmpty(t, report.Confidence)
}

func TestCalculateDeterministic(t *testing.T) {
	m := newTestMatcher(t, "Senior software engineer. Technical skills: Python, Docker, Kubernetes, PostgreSQL, communication.")

	posting := &jobboard.Posting{
		ID: "42",
		Details: jobboard.Details{
			JobTitle:       "Senior DevOps Engineer",
			RequiredSkills: "Python, Docker, Terraform",
			JobDescription: "Automate infrastructure with Kubernetes and CI/CD pipelines",
		},
	}

	first := m.Calculate(posting)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, m.Calculate(posting))
	}
}

func TestRecommendations(t *testing.T) {
	strong := &Report{Score: 85, CriticalMissing: []string{"terraform"}}
	recs := strong.Recommendations()
	require.NotEmpty(t, recs)
	assert.Contains(t, recs[0], "Strong match")
	assert.Contains(t, recs[1], "terraform")

	moderate := &Report{Score: 55}
	recs = moderate.Recommendations()
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "Moderate match")

	low := &Report{Score: 10, CriticalMissing: []string{"a", "b", "c", "d", "e", "f"}}
	recs = low.Recommendations()
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0], "Low match")
	// At most five skills are surfaced.
	assert.Equal(t, "Key skills gap: a, b, c, d, e", recs[1])
}
