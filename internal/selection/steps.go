package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/avasiliev/jobtailor/internal/jobboard"
	"github.com/avasiliev/jobtailor/internal/match"
)

type erroredStep struct {
	disabled bool
	reason   string
	drop     bool
}

// NewErrored creates a step that drops reports produced from postings whose
// details were missing or broken. Off by default so every posting stays
// visible in the output.
func NewErrored() Step {
	return &erroredStep{}
}

func (s *erroredStep) Name() string { return "errored" }

func (s *erroredStep) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *erroredStep) IsEnabled() bool { return !s.disabled }

func (s *erroredStep) Validate(cfg *Config) error {
	s.drop = cfg != nil && cfg.DropErrored
	return nil
}

func (s *erroredStep) Apply(deps Deps, reports []*match.Report) ([]*match.Report, Stats, error) {
	initial := len(reports)
	if !s.drop {
		return reports, Stats{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*match.Report, 0, initial)
	var dropped []string
	for _, report := range reports {
		if report.Errored {
			dropped = append(dropped, report.PostingID)
			continue
		}
		kept = append(kept, report)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding postings with missing or errored details",
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", len(kept)),
		)
	}

	return kept, Stats{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (s *erroredStep) Status() Status {
	return Status{
		Name:    s.Name(),
		Enabled: s.IsEnabled(),
		Reason:  s.reason,
		Details: map[string]string{"drop_errored": strconv.FormatBool(s.drop)},
	}
}

type excludeFileStep struct {
	disabled bool
	reason   string
	path     string
}

// NewExcludeFile creates a step that removes postings recorded in the exclude file.
func NewExcludeFile() Step {
	return &excludeFileStep{}
}

func (s *excludeFileStep) Name() string { return "exclude_file" }

func (s *excludeFileStep) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *excludeFileStep) IsEnabled() bool { return !s.disabled }

func (s *excludeFileStep) Validate(*Config) error {
	s.path = strings.TrimSpace(viper.GetString("exclude-file"))
	return nil
}

func (s *excludeFileStep) Apply(deps Deps, reports []*match.Report) ([]*match.Report, Stats, error) {
	initial := len(reports)
	if s.path == "" {
		return reports, Stats{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	excluded, err := jobboard.ExcludedFromFile(s.path)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("getting excluded postings from file: %w", err)
	}

	ids := make(map[string]struct{})
	for _, id := range excluded.IDs() {
		ids[id] = struct{}{}
	}

	kept := make([]*match.Report, 0, initial)
	var dropped []string
	for _, report := range reports {
		if _, ok := ids[report.PostingID]; ok {
			dropped = append(dropped, report.PostingID)
			continue
		}
		kept = append(kept, report)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding postings based on exclude file",
			zap.String("path", s.path),
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", len(kept)),
		)
	}

	return kept, Stats{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (s *excludeFileStep) Status() Status {
	details := map[string]string{}
	if s.path != "" {
		details["path"] = s.path
	}
	return Status{Name: s.Name(), Enabled: s.IsEnabled(), Reason: s.reason, Details: details}
}

type minimumScoreStep struct {
	disabled bool
	reason   string
	minimum  float64
}

// NewMinimumScore creates a step that drops reports scoring below the configured floor.
func NewMinimumScore() Step {
	return &minimumScoreStep{}
}

func (s *minimumScoreStep) Name() string { return "min_score" }

func (s *minimumScoreStep) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *minimumScoreStep) IsEnabled() bool { return !s.disabled }

func (s *minimumScoreStep) Validate(cfg *Config) error {
	s.minimum = 0
	if cfg != nil {
		s.minimum = cfg.MinimumScore
	}
	if s.minimum < 0 || s.minimum > 100 {
		return fmt.Errorf("minimum score must be within [0, 100], got %v", s.minimum)
	}
	return nil
}

func (s *minimumScoreStep) Apply(deps Deps, reports []*match.Report) ([]*match.Report, Stats, error) {
	initial := len(reports)
	if s.minimum == 0 {
		return reports, Stats{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := make([]*match.Report, 0, initial)
	var dropped []string
	for _, report := range reports {
		if report.Score < s.minimum {
			dropped = append(dropped, report.PostingID)
			continue
		}
		kept = append(kept, report)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding postings below minimum score",
			zap.Float64("minimum_score", s.minimum),
			zap.Strings("excluded_postings", dropped),
			zap.Int("postings_left", len(kept)),
		)
	}

	return kept, Stats{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (s *minimumScoreStep) Status() Status {
	return Status{
		Name:    s.Name(),
		Enabled: s.IsEnabled(),
		Reason:  s.reason,
		Details: map[string]string{"minimum_score": fmt.Sprintf("%.2f", s.minimum)},
	}
}

type topStep struct {
	disabled bool
	reason   string
	top      int
}

// NewTop creates a step that keeps only the best-scored reports. Reports
// arrive already sorted by score, so keeping the head is enough.
func NewTop() Step {
	return &topStep{}
}

func (s *topStep) Name() string { return "top" }

func (s *topStep) Disable(reason string) {
	s.disabled = true
	s.reason = reason
}

func (s *topStep) IsEnabled() bool { return !s.disabled }

func (s *topStep) Validate(cfg *Config) error {
	s.top = 0
	if cfg != nil {
		s.top = cfg.Top
	}
	if s.top < 0 {
		return fmt.Errorf("top must be non-negative, got %d", s.top)
	}
	return nil
}

func (s *topStep) Apply(deps Deps, reports []*match.Report) ([]*match.Report, Stats, error) {
	initial := len(reports)
	if s.top == 0 || initial <= s.top {
		return reports, Stats{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept := reports[:s.top]
	if deps.Logger != nil {
		deps.Logger.Info("keeping only top scored postings",
			zap.Int("top", s.top),
			zap.Int("postings_left", len(kept)),
		)
	}

	return kept, Stats{Initial: initial, Dropped: initial - len(kept), Left: len(kept)}, nil
}

func (s *topStep) Status() Status {
	return Status{
		Name:    s.Name(),
		Enabled: s.IsEnabled(),
		Reason:  s.reason,
		Details: map[string]string{"top": strconv.Itoa(s.top)},
	}
}
