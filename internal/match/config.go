package match

import "github.com/avasiliev/jobtailor/internal/jobboard"

// Config holds every scoring knob. Zero values fall back to the defaults so a
// sparse config file stays valid.
type Config struct {
	// FieldWeights maps a posting detail field to its salience in [0,1].
	FieldWeights map[string]float64 `mapstructure:"field-weights"`

	// ConceptInference scales a field weight when a skill is only implied by
	// a concept phrase rather than named outright.
	ConceptInference float64 `mapstructure:"concept-inference"`

	// ExactMatchBonus multiplies the weight of skills named verbatim in the
	// resume; PartialMatchWeight applies when skill and resume skill are
	// substrings of each other.
	ExactMatchBonus    float64 `mapstructure:"exact-match-bonus"`
	PartialMatchWeight float64 `mapstructure:"partial-match-weight"`

	// DomainMismatchPenalty is the fraction of the score removed when resume
	// and posting domains are fully disjoint.
	DomainMismatchPenalty float64 `mapstructure:"domain-mismatch-penalty"`

	// ExperienceMismatchPenalty multiplies the score when a junior profile
	// targets a senior posting.
	ExperienceMismatchPenalty float64 `mapstructure:"experience-mismatch-penalty"`

	SoftSkillPerMatch float64 `mapstructure:"soft-skill-per-match"`
	SoftSkillBonusMax float64 `mapstructure:"soft-skill-bonus-max"`

	// CriticalThreshold splits missing skills into critical and nice-to-have
	// by their posting weight.
	CriticalThreshold float64 `mapstructure:"critical-threshold"`

	// Confidence band cut-offs: score above High is "high", above Medium is
	// "medium", anything else "low".
	HighConfidence   float64 `mapstructure:"high-confidence"`
	MediumConfidence float64 `mapstructure:"medium-confidence"`
}

// fieldOrder fixes the extraction order; the max-rule makes results
// order-independent but deterministic iteration keeps logs reproducible.
var fieldOrder = []string{
	jobboard.FieldRequiredSkills,
	jobboard.FieldJobTitle,
	jobboard.FieldJobResponsibilities,
	jobboard.FieldJobDescription,
	jobboard.FieldJobSummary,
	jobboard.FieldAdditionalInfo,
}

func DefaultConfig() *Config {
	return &Config{
		FieldWeights: map[string]float64{
			jobboard.FieldRequiredSkills:      1.0,
			jobboard.FieldJobTitle:            0.9,
			jobboard.FieldJobResponsibilities: 0.8,
			jobboard.FieldJobDescription:      0.7,
			jobboard.FieldJobSummary:          0.6,
			jobboard.FieldAdditionalInfo:      0.4,
		},
		ConceptInference:          0.7,
		ExactMatchBonus:           1.2,
		PartialMatchWeight:        0.5,
		DomainMismatchPenalty:     0.3,
		ExperienceMismatchPenalty: 0.8,
		SoftSkillPerMatch:         2,
		SoftSkillBonusMax:         10,
		CriticalThreshold:         0.8,
		HighConfidence:            70,
		MediumConfidence:          40,
	}
}

// withDefaults returns a copy with zero-valued knobs replaced by defaults.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}

	merged := *c
	if len(merged.FieldWeights) == 0 {
		merged.FieldWeights = defaults.FieldWeights
	}
	if merged.ConceptInference == 0 {
		merged.ConceptInference = defaults.ConceptInference
	}
	if merged.ExactMatchBonus == 0 {
		merged.ExactMatchBonus = defaults.ExactMatchBonus
	}
	if merged.PartialMatchWeight == 0 {
		merged.PartialMatchWeight = defaults.PartialMatchWeight
	}
	if merged.DomainMismatchPenalty == 0 {
		merged.DomainMismatchPenalty = defaults.DomainMismatchPenalty
	}
	if merged.ExperienceMismatchPenalty == 0 {
		merged.ExperienceMismatchPenalty = defaults.ExperienceMismatchPenalty
	}
	if merged.SoftSkillPerMatch == 0 {
		merged.SoftSkillPerMatch = defaults.SoftSkillPerMatch
	}
	if merged.SoftSkillBonusMax == 0 {
		merged.SoftSkillBonusMax = defaults.SoftSkillBonusMax
	}
	if merged.CriticalThreshold == 0 {
		merged.CriticalThreshold = defaults.CriticalThreshold
	}
	if merged.HighConfidence == 0 {
		merged.HighConfidence = defaults.HighConfidence
	}
	if merged.MediumConfidence == 0 {
		merged.MediumConfidence = defaults.MediumConfidence
	}
	return &merged
}
