package match

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Confidence buckets derived from the final score.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Report is the explainable match result for a single posting. The field
// layout is stable: slices are always present (possibly empty) so downstream
// consumers can rely on the JSON shape.
type Report struct {
	PostingID         string   `json:"posting_id"`
	Title             string   `json:"title,omitempty"`
	Company           string   `json:"company,omitempty"`
	Score             float64  `json:"score"`
	MatchedSkills     []string `json:"matched_skills"`
	MissingSkills     []string `json:"missing_skills"`
	CriticalMissing   []string `json:"critical_missing"`
	NiceToHaveMissing []string `json:"nice_to_have_missing"`
	Domains           []string `json:"domains"`
	Confidence        string   `json:"confidence"`
	Notes             string   `json:"notes"`
	Errored           bool     `json:"errored,omitempty"`
}

func (m *Matcher) buildReport(
	posting postingRef,
	jobSkills map[string]float64,
	score float64,
	matched, missing map[string]struct{},
	jobDomains []string,
	notes []string,
) *Report {
	critical := make([]string, 0)
	niceToHave := make([]string, 0)
	for skill := range missing {
		if jobSkills[skill] >= m.cfg.CriticalThreshold {
			critical = append(critical, skill)
		} else {
			niceToHave = append(niceToHave, skill)
		}
	}
	sort.Strings(critical)
	sort.Strings(niceToHave)

	summary := fmt.Sprintf("Matched %d/%d skills", len(matched), len(jobSkills))
	if len(notes) > 0 {
		summary += ". " + strings.Join(notes, ". ")
	}

	return &Report{
		PostingID:         posting.id,
		Title:             posting.title,
		Company:           posting.company,
		Score:             round2(score),
		MatchedSkills:     sortedKeys(matched),
		MissingSkills:     sortedKeys(missing),
		CriticalMissing:   critical,
		NiceToHaveMissing: niceToHave,
		Domains:           topN(jobDomains, 2),
		Confidence:        m.confidence(score),
		Notes:             summary,
	}
}

func (m *Matcher) confidence(score float64) string {
	switch {
	case score > m.cfg.HighConfidence:
		return ConfidenceHigh
	case score > m.cfg.MediumConfidence:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// zeroReport produces the degraded result used for postings that cannot be
// scored: missing or errored details, empty skill maps, or an internal panic.
func zeroReport(posting postingRef, note string, errored bool) *Report {
	return &Report{
		PostingID:         posting.id,
		Title:             posting.title,
		Company:           posting.company,
		Score:             0,
		MatchedSkills:     []string{},
		MissingSkills:     []string{},
		CriticalMissing:   []string{},
		NiceToHaveMissing: []string{},
		Domains:           []string{},
		Confidence:        ConfidenceLow,
		Notes:             note,
		Errored:           errored,
	}
}

// Recommendations maps the score to textual advice, surfacing the most
// important missing skills as talking points. Purely advisory: it never
// changes the score.
func (r *Report) Recommendations() []string {
	var recommendations []string

	switch {
	case r.Score >= 70:
		recommendations = append(recommendations, "Strong match! Consider applying with confidence.")
		if len(r.CriticalMissing) > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Consider highlighting transferable skills related to: %s", strings.Join(topN(r.CriticalMissing, 3), ", ")))
		}
	case r.Score >= 40:
		recommendations = append(recommendations, "Moderate match. Consider applying if you're interested.")
		if len(r.CriticalMissing) > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Priority skills to develop: %s", strings.Join(topN(r.CriticalMissing, 3), ", ")))
		}
	default:
		recommendations = append(recommendations, "Low match. Consider gaining more relevant experience first.")
		if len(r.CriticalMissing) > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Key skills gap: %s", strings.Join(topN(r.CriticalMissing, 5), ", ")))
		}
	}

	return recommendations
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
