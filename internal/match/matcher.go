// Package match scores job postings against a resume. A Matcher is built once
// per resume; Calculate is a pure function of the immutable profile, the
// taxonomy and the posting, so a batch can be scored concurrently without
// locking.
package match

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/avasiliev/jobtailor/internal/jobboard"
	"github.com/avasiliev/jobtailor/internal/taxonomy"
	"github.com/avasiliev/jobtailor/internal/textmatch"
)

// ErrEmptyResume is returned when the resume text is missing. This is a
// configuration error: no scoring can happen without a profile.
var ErrEmptyResume = errors.New("resume text is empty")

type Matcher struct {
	cfg      *Config
	tax      *taxonomy.Taxonomy
	logger   *zap.Logger
	profile  *Profile
	skills   *textmatch.Matcher
	concepts *textmatch.Matcher
}

// New builds the resume profile and the phrase matchers. The resume text is
// expected to be extracted upstream; an empty text fails construction.
func New(resumeText string, tax *taxonomy.Taxonomy, cfg *Config, logger *zap.Logger) (*Matcher, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, ErrEmptyResume
	}
	if tax == nil {
		tax = taxonomy.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Matcher{
		cfg:      cfg.withDefaults(),
		tax:      tax,
		logger:   logger,
		skills:   textmatch.New(tax.Skills()),
		concepts: textmatch.New(tax.ConceptPhrases()),
	}
	m.profile = newProfile(resumeText, tax, m.skills, m.concepts)

	logger.Info("resume profile built",
		zap.Int("skills", len(m.profile.Skills)),
		zap.Strings("primary_domains", topN(m.profile.Domains, 2)),
		zap.String("experience_level", m.profile.ExperienceLevel),
	)

	return m, nil
}

// Profile exposes the immutable resume profile.
func (m *Matcher) Profile() *Profile {
	return m.profile
}

// postingRef is the identifying slice of a posting carried into reports.
type postingRef struct {
	id      string
	title   string
	company string
}

// Calculate scores one posting. It never fails: postings with missing or
// errored details, postings without recognizable skills, and even internal
// panics all degrade to a zero-score report with an explanatory note.
func (m *Matcher) Calculate(posting *jobboard.Posting) (report *Report) {
	ref := postingRef{id: posting.ID, title: posting.Title, company: posting.Company}

	defer func() {
		if recovered := recover(); recovered != nil {
			m.logger.Error("match calculation panicked",
				zap.String("posting_id", posting.ID),
				zap.Any("panic", recovered),
			)
			report = zeroReport(ref, fmt.Sprintf("Error calculating match: %v", recovered), true)
		}
	}()

	if posting.Details.Error != "" || posting.Details.Empty() {
		return zeroReport(ref, "Job details missing or errored in scraped data", true)
	}

	jobSkills := m.extractJobSkills(posting.Details)
	if len(jobSkills) == 0 {
		return zeroReport(ref, "No relevant skills found", false)
	}

	base, matched, missing := m.scoreSkills(jobSkills)
	score, notes, jobDomains := m.applyModifiers(base, posting, jobSkills)

	return m.buildReport(ref, jobSkills, score, matched, missing, jobDomains, notes)
}
