// Package selection narrows a scored report list down to the postings worth
// acting on. Steps run sequentially; each one reports how many entries it
// dropped so the whole pipeline stays auditable in the logs.
package selection

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/avasiliev/jobtailor/internal/match"
)

// Step represents a single selection step applied to scored reports.
type Step interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(deps Deps, reports []*match.Report) ([]*match.Report, Stats, error)
}

// Deps aggregates dependencies shared across all selection steps.
type Deps struct {
	Logger *zap.Logger
}

// Stats describes the result of executing a selection step.
type Stats struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the steps.
type Config struct {
	MinimumScore float64 `mapstructure:"minimum-score"`
	Top          int     `mapstructure:"top"`
	DropErrored  bool    `mapstructure:"drop-errored"`
}

// Status represents runtime information about a selection step.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by steps that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Steps returns the default pipeline in execution order.
func Steps() []Step {
	return []Step{
		NewErrored(),
		NewExcludeFile(),
		NewMinimumScore(),
		NewTop(),
	}
}

// DisableByName marks a step with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Step, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied steps sequentially and returns the surviving reports.
func Run(cfg *Config, deps Deps, steps []Step, reports []*match.Report) ([]*match.Report, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("selection step disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, stats, err := step.Apply(deps, reports)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("selection step",
				zap.String("name", step.Name()),
				zap.Int("initial", stats.Initial),
				zap.Int("dropped", stats.Dropped),
				zap.Int("left", stats.Left),
			)
		}

		reports = next
	}

	return reports, nil
}

// Describe returns status entries for the provided steps.
func Describe(steps []Step) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
