package match

import (
	"fmt"
	"strings"

	"github.com/avasiliev/jobtailor/internal/jobboard"
)

// applyModifiers layers domain alignment, experience alignment and the
// soft-skill bonus on top of the base score, in that order, and clamps the
// result to [0,100]. It returns the final score, the explanatory notes and
// the posting's ranked domains.
func (m *Matcher) applyModifiers(base float64, posting *jobboard.Posting, jobSkills map[string]float64) (float64, []string, []string) {
	score := base
	var notes []string

	skillSet := make(map[string]struct{}, len(jobSkills))
	for skill := range jobSkills {
		skillSet[skill] = struct{}{}
	}

	jobText := posting.Details.CombinedText()
	jobDomains := rankDomains(m.tax, jobText, skillSet)

	resumeDomains := m.profile.Domains
	if len(resumeDomains) > 0 && len(jobDomains) > 0 {
		switch {
		case resumeDomains[0] == jobDomains[0]:
			score *= 1.1
			notes = append(notes, fmt.Sprintf("Domain match: %s", resumeDomains[0]))
		case overlaps(topN(resumeDomains, 2), topN(jobDomains, 2)):
			score *= 1.05
		case !overlaps(resumeDomains, jobDomains):
			score *= 1 - m.cfg.DomainMismatchPenalty
			notes = append(notes, fmt.Sprintf("Domain mismatch: resume=%s, job=%s", resumeDomains[0], jobDomains[0]))
		}
	}

	title := strings.ToLower(posting.Details.JobTitle)
	if title == "" {
		title = strings.ToLower(posting.Title)
	}
	if strings.Contains(title, "senior") && m.profile.ExperienceLevel == LevelJunior {
		score *= m.cfg.ExperienceMismatchPenalty
		notes = append(notes, "Experience level mismatch (junior applying to senior role)")
	} else if strings.Contains(title, "junior") && m.profile.ExperienceLevel == LevelSenior {
		notes = append(notes, "Potentially overqualified")
	}

	softMatched := 0
	for skill := range skillSet {
		if m.tax.IsSoftSkill(skill) && m.profile.hasSkill(skill) {
			softMatched++
		}
	}
	if softMatched > 0 {
		bonus := float64(softMatched) * m.cfg.SoftSkillPerMatch
		if bonus > m.cfg.SoftSkillBonusMax {
			bonus = m.cfg.SoftSkillBonusMax
		}
		score += bonus
		notes = append(notes, fmt.Sprintf("Soft skills matched: %d", softMatched))
	}

	return clamp(score, 0, 100), notes, jobDomains
}

func overlaps(a, b []string) bool {
	for _, left := range a {
		for _, right := range b {
			if left == right {
				return true
			}
		}
	}
	return false
}

func topN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
