package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/avasiliev/jobtailor/internal/jobboard"
	"github.com/avasiliev/jobtailor/internal/logger"
	"github.com/avasiliev/jobtailor/internal/match"
	"github.com/avasiliev/jobtailor/internal/selection"
	"github.com/avasiliev/jobtailor/internal/taxonomy"
)

const (
	PromptYes                 = "Yes, save the results"
	PromptNo                  = "No"
	PromptReportByCompanies   = "Report by companies"
	PromptPostingsToFile      = "Dump postings to file"
	PromptAppendToExcludeFile = "Append all postings to exclude file"

	defaultOutputFile = "jobs_with_scores.json"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptYes, PromptNo, PromptReportByCompanies, PromptPostingsToFile, PromptAppendToExcludeFile},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score the scraped postings against the resume and save the best matches",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation, save the results right away")
	runCmd.Flags().BoolP("drop-errored", "r", false, "drop postings with missing or errored details from the results")
	runCmd.Flags().StringP("exclude-file", "e", "", "special file with postings to exclude. Default is unset.")

	viper.BindPFlag("exclude-file", runCmd.Flags().Lookup("exclude-file"))
}

// scoredPosting is the output record: the match report enriched with advice.
type scoredPosting struct {
	*match.Report
	Recommendations []string `json:"recommendations"`
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the jobtailor", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if strings.TrimSpace(config.Resume) == "" {
		logger.Fatal("resume file is required under the resume key")
	}

	if strings.TrimSpace(config.Jobs) == "" {
		logger.Fatal("postings file is required under the jobs key")
	}

	resumeText, err := os.ReadFile(config.Resume)
	if err != nil {
		logger.Fatal("reading resume file", zap.Error(err))
	}

	tax, err := taxonomy.DefaultWith(config.Taxonomy)
	if err != nil {
		logger.Fatal("building skill taxonomy", zap.Error(err))
	}

	matcher, err := match.New(string(resumeText), tax, config.Scoring, logger)
	if err != nil {
		logger.Fatal("building matcher",
			zap.Error(err),
			zap.String("resume", config.Resume),
		)
	}

	postings, err := jobboard.FromFile(config.Jobs)
	if err != nil {
		logger.Fatal("loading postings", zap.Error(err))
	}

	logger.Info("loaded postings", zap.Int("count", postings.Len()))

	if postings.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings found"))
		return
	}

	reports, err := matcher.ScoreAll(ctx, postings, config.Workers)
	if err != nil {
		logger.Fatal("scoring postings", zap.Error(err))
	}

	selected, err := selection.Run(selectionConfig(cmd, config), selection.Deps{Logger: logger}, selection.Steps(), reports)
	if err != nil {
		logger.Fatal("selection failed", zap.Error(err))
	}

	if len(selected) == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after selection"))
		return
	}

	logTopMatches(logger, selected)

	action := PromptYes
	for {
		var err error
		if cmd.Flag("auto-approve").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		logger.Info("current list of matches", zap.Int("count", len(selected)))

		if err := handleAction(action, logger, config, postings, selected); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, config *Config, postings *jobboard.Postings, selected []*match.Report) error {
	switch action {
	case PromptYes:
		path, err := saveResults(config, selected)
		if err != nil {
			return fmt.Errorf("saving results: %w", err)
		}
		logger.Info("results saved",
			zap.String("filename", path),
			zap.Int("count", len(selected)),
		)
		return errExit
	case PromptNo:
		logger.Info("exiting", zap.String("reason", "got no from prompt"))
		return errExit
	case PromptReportByCompanies:
		subset := selectedPostings(postings, selected)
		pretty, _ := json.MarshalIndent(subset.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings count", subset.Len()))
		return nil
	case PromptPostingsToFile:
		filename, err := selectedPostings(postings, selected).DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(logger, postings, selected)
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// selectionConfig merges flag overrides into the config file selection section.
func selectionConfig(cmd *cobra.Command, config *Config) *selection.Config {
	cfg := config.Selection
	if cfg == nil {
		cfg = &selection.Config{}
	}

	if cmd != nil {
		flag := cmd.Flag("drop-errored")
		if flag != nil && strings.EqualFold(flag.Value.String(), "true") {
			cfg.DropErrored = true
		}
	}

	return cfg
}

func saveResults(config *Config, selected []*match.Report) (string, error) {
	path := strings.TrimSpace(config.Output)
	if path == "" {
		path = defaultOutputFile
	}

	results := make([]*scoredPosting, 0, len(selected))
	for _, report := range selected {
		results = append(results, &scoredPosting{
			Report:          report,
			Recommendations: report.Recommendations(),
		})
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}

	return path, nil
}

func appendToExcludeFile(logger *zap.Logger, postings *jobboard.Postings, selected []*match.Report) error {
	excludeFile := strings.TrimSpace(viper.GetString("exclude-file"))
	if excludeFile == "" {
		return errors.New("exclude file is not configured")
	}

	excluded, err := jobboard.ExcludedFromFile(excludeFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		excluded = &jobboard.ExcludedPostings{}
	}

	excluded.Append(selectedPostings(postings, selected).ToExcluded())

	if err := excluded.ToFile(excludeFile); err != nil {
		return err
	}

	logger.Info("appended to exclude file", zap.String("filename", excludeFile))
	return nil
}

// selectedPostings maps the surviving reports back to their postings.
func selectedPostings(postings *jobboard.Postings, selected []*match.Report) *jobboard.Postings {
	subset := &jobboard.Postings{}
	for _, report := range selected {
		if posting := postings.FindByID(report.PostingID); posting != nil {
			subset.Items = append(subset.Items, posting)
		}
	}
	return subset
}

func logTopMatches(log *zap.Logger, selected []*match.Report) {
	top := selected
	if len(top) > 5 {
		top = top[:5]
	}

	for _, report := range top {
		entry := logger.WithFields(log, logger.PostingFields(report.PostingID, report.Company)...)
		entry.Info("top match",
			zap.String("title", report.Title),
			zap.Float64("score", report.Score),
			zap.String("confidence", report.Confidence),
			zap.Strings("matched_skills", report.MatchedSkills),
			zap.Strings("missing_skills", report.MissingSkills),
			zap.String("notes", logger.TruncateForLog(report.Notes, 200)),
		)
	}
}
