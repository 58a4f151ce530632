package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avasiliev/jobtailor/internal/match"
	"github.com/avasiliev/jobtailor/internal/selection"
)

const (
	app = "jobtailor"
)

type Config struct {
	// Resume is the path to the plain-text resume extracted upstream.
	Resume string `mapstructure:"resume"`

	// Jobs is the path to the scraped postings JSON file.
	Jobs string `mapstructure:"jobs"`

	// Output is where the scored results are written. Defaults to
	// jobs_with_scores.json next to the input.
	Output string `mapstructure:"output"`

	ExcludeFile string `mapstructure:"exclude-file"`
	Workers     int    `mapstructure:"workers"`

	Scoring   *match.Config     `mapstructure:"scoring"`
	Selection *selection.Config `mapstructure:"selection"`

	// Taxonomy holds optional category and concept additions merged into the
	// built-in knowledge base.
	Taxonomy map[string]any `mapstructure:"taxonomy"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "jobtailor scores scraped job postings against your resume and explains every match",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is "+app+".yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
