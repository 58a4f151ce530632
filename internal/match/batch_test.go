package match

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avasiliev/jobtailor/internal/jobboard"
)

func TestScoreAll(t *testing.T) {
	m := newTestMatcher(t, "Senior software engineer skilled in Python, Docker and Kubernetes.")

	postings := &jobboard.Postings{Items: []*jobboard.Posting{
		{ID: "good", Details: jobboard.Details{
			JobTitle:       "Python Engineer",
			RequiredSkills: "Python, Docker",
		}},
		{ID: "errored", Details: jobboard.Details{Error: "timeout"}},
		{ID: "weak", Details: jobboard.Details{
			JobTitle:       "Attorney",
			RequiredSkills: "litigation, contracts",
		}},
	}}

	reports, err := m.ScoreAll(context.Background(), postings, 2)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	assert.True(t, sort.SliceIsSorted(reports, func(i, j int) bool {
		return reports[i].Score > reports[j].Score
	}), "reports must be sorted by score, highest first")

	assert.Equal(t, "good", reports[0].PostingID)

	byID := make(map[string]*Report, len(reports))
	for _, report := range reports {
		byID[report.PostingID] = report
	}
	assert.True(t, byID["errored"].Errored)
	assert.Zero(t, byID["errored"].Score)
}

func TestScoreAllDefaultWorkers(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	postings := &jobboard.Postings{Items: []*jobboard.Posting{
		{ID: "1", Details: jobboard.Details{RequiredSkills: "Python"}},
	}}

	reports, err := m.ScoreAll(context.Background(), postings, 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
}

func TestScoreAllCanceledContext(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	postings := &jobboard.Postings{Items: []*jobboard.Posting{
		{ID: "1", Details: jobboard.Details{RequiredSkills: "Python"}},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.ScoreAll(ctx, postings, 2)
	require.Error(t, err)
}
