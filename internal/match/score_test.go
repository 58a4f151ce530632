package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreSkillsPartition(t *testing.T) {
	m := newTestMatcher(t, "python and react developer")

	jobSkills := map[string]float64{
		"python":    1.0,
		"react.js":  0.8,
		"terraform": 0.6,
	}

	base, matched, missing := m.scoreSkills(jobSkills)

	// python exact: 1.0 * 1.2; react.js partial: 0.8 * 0.5; terraform missed.
	assert.InDelta(t, (1.2+0.4)/2.4*100, base, 0.01)

	assert.Contains(t, matched, "python")
	assert.Contains(t, matched, "react.js")
	assert.Contains(t, missing, "terraform")

	// Every job skill lands in exactly one bucket.
	require.Equal(t, len(jobSkills), len(matched)+len(missing))
	for skill := range matched {
		assert.NotContains(t, missing, skill)
	}
}

func TestScoreSkillsEmpty(t *testing.T) {
	m := newTestMatcher(t, "python developer")

	base, matched, missing := m.scoreSkills(nil)
	assert.Zero(t, base)
	assert.Empty(t, matched)
	assert.Empty(t, missing)
}

func TestScoreSkillsDeterministic(t *testing.T) {
	m := newTestMatcher(t, "python and react developer")

	jobSkills := map[string]float64{
		"python": 1.0, "react.js": 0.8, "terraform": 0.6,
		"docker": 0.7, "kubernetes": 0.7, "aws": 0.63, "sql": 0.9,
	}

	first, _, _ := m.scoreSkills(jobSkills)
	for i := 0; i < 50; i++ {
		again, _, _ := m.scoreSkills(jobSkills)
		require.Equal(t, first, again)
	}
}

func TestHasPartialSkill(t *testing.T) {
	m := newTestMatcher(t, "react and java developer")
	profile := m.Profile()

	assert.True(t, profile.hasPartialSkill("react.js"))
	// Substring relation runs both ways.
	assert.True(t, profile.hasPartialSkill("javascript"))
	assert.False(t, profile.hasPartialSkill("terraform"))
}
