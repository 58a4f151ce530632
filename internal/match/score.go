package match

import (
	"sort"
	"strings"
)

// scoreSkills computes the base score from the weighted skill map. Every job
// skill lands in exactly one of matched or missing. Skills named verbatim in
// the resume contribute weight × ExactMatchBonus; skills related by the
// substring rule contribute weight × PartialMatchWeight.
func (m *Matcher) scoreSkills(jobSkills map[string]float64) (float64, map[string]struct{}, map[string]struct{}) {
	matched := make(map[string]struct{})
	missing := make(map[string]struct{})

	if len(jobSkills) == 0 {
		return 0, matched, missing
	}

	// Sorted iteration keeps the float accumulation order, and with it the
	// reported score, identical across runs.
	skills := make([]string, 0, len(jobSkills))
	for skill := range jobSkills {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	totalWeight := 0.0
	matchedWeight := 0.0
	for _, skill := range skills {
		weight := jobSkills[skill]
		totalWeight += weight
		switch {
		case m.profile.hasSkill(skill):
			matched[skill] = struct{}{}
			matchedWeight += weight * m.cfg.ExactMatchBonus
		case m.profile.hasPartialSkill(skill):
			matched[skill] = struct{}{}
			matchedWeight += weight * m.cfg.PartialMatchWeight
		default:
			missing[skill] = struct{}{}
		}
	}

	if totalWeight == 0 {
		return 0, matched, missing
	}
	return matchedWeight / totalWeight * 100, matched, missing
}

func (p *Profile) hasSkill(skill string) bool {
	_, ok := p.Skills[skill]
	return ok
}

// hasPartialSkill reports whether the job skill and any resume skill are
// substrings of each other. The relation links "react" to "react.js" but also
// "java" to "javascript"; kept as-is to stay score-compatible with the
// original matcher.
func (p *Profile) hasPartialSkill(skill string) bool {
	for resumeSkill := range p.Skills {
		if strings.Contains(resumeSkill, skill) || strings.Contains(skill, resumeSkill) {
			return true
		}
	}
	return false
}
