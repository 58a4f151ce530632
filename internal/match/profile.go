package match

import (
	"regexp"
	"sort"
	"strings"

	"github.com/avasiliev/jobtailor/internal/taxonomy"
	"github.com/avasiliev/jobtailor/internal/textmatch"
)

// Experience levels detected from resume text.
const (
	LevelSenior  = "senior"
	LevelMid     = "mid"
	LevelJunior  = "junior"
	LevelUnknown = "unknown"
)

// Profile is everything the engine knows about a resume. Built once, never
// mutated, shared read-only across all posting evaluations.
type Profile struct {
	Text            string
	Skills          map[string]struct{}
	Concepts        map[string]struct{}
	Domains         []string
	ExperienceLevel string
}

var (
	skillSectionHeaders = []string{"skills", "technical skills", "technologies", "tools", "competencies"}

	seniorIndicators = []string{"senior", "lead", "principal", "staff", "architect", "manager", "director", "10+ years", "15+ years"}
	midIndicators    = []string{"5+ years", "3-5 years", "mid-level", "intermediate"}
	juniorIndicators = []string{"junior", "entry level", "intern", "co-op", "student", "recent graduate", "0-2 years"}

	skillDelimiters = regexp.MustCompile(`[,;|•\t]+`)
)

func newProfile(text string, tax *taxonomy.Taxonomy, skills, concepts *textmatch.Matcher) *Profile {
	normalized := strings.ToLower(text)

	profile := &Profile{
		Text:     normalized,
		Skills:   make(map[string]struct{}),
		Concepts: make(map[string]struct{}),
	}

	for _, skill := range skills.Match(normalized) {
		profile.Skills[skill] = struct{}{}
	}
	for _, skill := range skillSectionSkills(normalized, tax) {
		profile.Skills[skill] = struct{}{}
	}

	for _, concept := range concepts.Match(normalized) {
		profile.Concepts[concept] = struct{}{}
	}

	profile.Domains = rankDomains(tax, normalized, profile.Skills)
	profile.ExperienceLevel = detectExperienceLevel(normalized)

	return profile
}

// skillSectionSkills scans for a skills section: lines after a header such as
// "Technical Skills" are split on common delimiters and kept when they name a
// canonical skill. A long line without delimiters ends the section.
func skillSectionSkills(text string, tax *taxonomy.Taxonomy) []string {
	var found []string
	inSection := false

	for _, line := range strings.Split(text, "\n") {
		line = strings.ToLower(strings.TrimSpace(line))

		isHeader := false
		for _, header := range skillSectionHeaders {
			if strings.Contains(line, header) {
				isHeader = true
				break
			}
		}
		if isHeader {
			inSection = true
			continue
		}

		if inSection && line != "" && !strings.ContainsAny(line, ",•|;") {
			if len(strings.Fields(line)) > 5 {
				inSection = false
			}
		}

		if !inSection {
			continue
		}

		for _, candidate := range skillDelimiters.Split(line, -1) {
			candidate = strings.TrimSpace(candidate)
			if candidate != "" && tax.HasSkill(candidate) {
				found = append(found, candidate)
			}
		}
	}

	return found
}

// rankDomains scores every domain over the given text and skill set and
// returns the names with a positive score, best first. The stable sort keeps
// the taxonomy declaration order on ties. Keyword presence is a plain
// substring check; domain keywords are coarse signals and "data" is meant to
// fire inside "database".
func rankDomains(tax *taxonomy.Taxonomy, text string, skills map[string]struct{}) []string {
	type domainScore struct {
		name  string
		score float64
	}

	scored := make([]domainScore, 0, len(tax.Domains()))
	for _, domain := range tax.Domains() {
		score := 0.0
		for _, keyword := range domain.Primary {
			if strings.Contains(text, keyword) {
				score += 2.0
			}
		}
		for _, keyword := range domain.Secondary {
			if strings.Contains(text, keyword) {
				score += 1.0
			}
			if _, ok := skills[keyword]; ok {
				score += 0.5
			}
		}
		if score > 0 {
			scored = append(scored, domainScore{name: domain.Name, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	names := make([]string, 0, len(scored))
	for _, entry := range scored {
		names = append(names, entry.name)
	}
	return names
}

// detectExperienceLevel scans for fixed indicator lists in priority order:
// the first senior indicator wins over any mid or junior one.
func detectExperienceLevel(text string) string {
	for _, indicator := range seniorIndicators {
		if strings.Contains(text, indicator) {
			return LevelSenior
		}
	}
	for _, indicator := range midIndicators {
		if strings.Contains(text, indicator) {
			return LevelMid
		}
	}
	for _, indicator := range juniorIndicators {
		if strings.Contains(text, indicator) {
			return LevelJunior
		}
	}
	return LevelUnknown
}
