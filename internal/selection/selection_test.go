package selection

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/avasiliev/jobtailor/internal/jobboard"
	"github.com/avasiliev/jobtailor/internal/match"
)

func testReports() []*match.Report {
	return []*match.Report{
		{PostingID: "1", Score: 90},
		{PostingID: "2", Score: 55},
		{PostingID: "3", Score: 10},
		{PostingID: "4", Score: 0, Errored: true},
	}
}

func ids(reports []*match.Report) []string {
	result := make([]string, 0, len(reports))
	for _, report := range reports {
		result = append(result, report.PostingID)
	}
	return result
}

func TestErroredStepDrop(t *testing.T) {
	step := NewErrored()
	if err := step.Validate(&Config{DropErrored: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, stats, err := step.Apply(Deps{}, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Initial != 4 || stats.Dropped != 1 || stats.Left != 3 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	for _, report := range kept {
		if report.Errored {
			t.Fatalf("errored report %s survived", report.PostingID)
		}
	}
}

func TestErroredStepKeepsByDefault(t *testing.T) {
	step := NewErrored()
	if err := step.Validate(&Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, stats, err := step.Apply(Deps{}, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Dropped != 0 || len(kept) != 4 {
		t.Fatalf("expected all reports kept, got %+v", stats)
	}
}

func TestMinimumScoreStep(t *testing.T) {
	step := NewMinimumScore()
	if err := step.Validate(&Config{MinimumScore: 50}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, stats, err := step.Apply(Deps{}, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Dropped != 2 || len(kept) != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if kept[0].PostingID != "1" || kept[1].PostingID != "2" {
		t.Fatalf("unexpected survivors: %v", ids(kept))
	}
}

func TestMinimumScoreStepValidate(t *testing.T) {
	step := NewMinimumScore()
	if err := step.Validate(&Config{MinimumScore: 142}); err == nil {
		t.Fatalf("expected error for score above 100")
	}
	if err := step.Validate(&Config{MinimumScore: -1}); err == nil {
		t.Fatalf("expected error for negative score")
	}
}

func TestTopStep(t *testing.T) {
	step := NewTop()
	if err := step.Validate(&Config{Top: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, stats, err := step.Apply(Deps{}, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Dropped != 2 || len(kept) != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if kept[0].PostingID != "1" {
		t.Fatalf("top step must keep the head of the sorted list, got %v", ids(kept))
	}
}

func TestTopStepUnsetKeepsAll(t *testing.T) {
	step := NewTop()
	if err := step.Validate(&Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, _, err := step.Apply(Deps{}, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(kept) != 4 {
		t.Fatalf("expected all reports kept, got %d", len(kept))
	}
}

func TestExcludeFileStep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "excluded.json")

	excluded := (&jobboard.Postings{Items: []*jobboard.Posting{
		{ID: "2", Title: "Analyst", Company: "Initech"},
	}}).ToExcluded()
	if err := excluded.ToFile(path); err != nil {
		t.Fatalf("writing exclude file: %v", err)
	}

	viper.Set("exclude-file", path)
	defer viper.Set("exclude-file", "")

	step := NewExcludeFile()
	if err := step.Validate(&Config{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kept, stats, err := step.Apply(Deps{}, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Dropped != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	for _, report := range kept {
		if report.PostingID == "2" {
			t.Fatalf("excluded posting survived")
		}
	}
}

func TestRunPipeline(t *testing.T) {
	viper.Set("exclude-file", "")
	steps := Steps()
	DisableByName(steps, "exclude_file", "not configured in test")

	cfg := &Config{MinimumScore: 40, Top: 1}

	kept, err := Run(cfg, Deps{}, steps, testReports())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(kept) != 1 || kept[0].PostingID != "1" {
		t.Fatalf("unexpected pipeline result: %v", ids(kept))
	}
}

func TestRunValidatesSteps(t *testing.T) {
	steps := Steps()
	DisableByName(steps, "exclude_file", "not configured in test")

	if _, err := Run(&Config{MinimumScore: 200}, Deps{}, steps, testReports()); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestDescribe(t *testing.T) {
	steps := Steps()
	DisableByName(steps, "top", "testing disable")

	statuses := Describe(steps)
	if len(statuses) != len(steps) {
		t.Fatalf("expected %d statuses, got %d", len(steps), len(statuses))
	}

	for _, status := range statuses {
		if status.Name == "top" {
			if status.Enabled {
				t.Fatalf("top step must be disabled")
			}
			if status.Reason != "testing disable" {
				t.Fatalf("unexpected reason: %q", status.Reason)
			}
		}
	}
}
