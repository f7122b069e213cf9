// Package config loads surveyforge settings from an optional YAML file plus
// environment overrides. Everything has a working default; a missing config
// file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/surveyforge/internal/estimator"
	"gopkg.in/yaml.v3"
)

// EstimatorConfig holds the question-count policy knobs.
type EstimatorConfig struct {
	QuestionsPerMinute float64 `yaml:"questions_per_minute"`
}

// DistributionConfig holds the per-section multipliers and floors.
type DistributionConfig struct {
	ScreenerPerMinute     float64 `yaml:"screener_per_minute"`
	CorePerMinute         float64 `yaml:"core_per_minute"`
	DemographicsPerMinute float64 `yaml:"demographics_per_minute"`
	MinScreener           int     `yaml:"min_screener"`
	MinDemographics       int     `yaml:"min_demographics"`
}

// OutputConfig holds file output settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Config is the full surveyforge configuration.
type Config struct {
	Estimator    EstimatorConfig    `yaml:"estimator"`
	Distribution DistributionConfig `yaml:"distribution"`
	Output       OutputConfig       `yaml:"output"`
	LogCalls     bool               `yaml:"log_calls"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	policy := estimator.DefaultDistributionPolicy()
	return Config{
		Estimator: EstimatorConfig{
			QuestionsPerMinute: estimator.DefaultQuestionsPerMinute,
		},
		Distribution: DistributionConfig{
			ScreenerPerMinute:     policy.ScreenerPerMinute,
			CorePerMinute:         policy.CorePerMinute,
			DemographicsPerMinute: policy.DemographicsPerMinute,
			MinScreener:           policy.MinScreener,
			MinDemographics:       policy.MinDemographics,
		},
		Output:   OutputConfig{Dir: "."},
		LogCalls: false,
	}
}

// Load reads configuration from SURVEYFORGE_CONFIG or
// ~/.surveyforge/config.yaml, then applies environment overrides.
// A missing file yields the defaults.
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("SURVEYFORGE_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, ".surveyforge", "config.yaml")
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	sanitize(&cfg)
	return cfg, nil
}

// DistributionPolicy converts the configured multipliers into the
// estimator's policy type.
func (c Config) DistributionPolicy() estimator.DistributionPolicy {
	return estimator.DistributionPolicy{
		ScreenerPerMinute:     c.Distribution.ScreenerPerMinute,
		CorePerMinute:         c.Distribution.CorePerMinute,
		DemographicsPerMinute: c.Distribution.DemographicsPerMinute,
		MinScreener:           c.Distribution.MinScreener,
		MinDemographics:       c.Distribution.MinDemographics,
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SURVEYFORGE_QUESTIONS_PER_MINUTE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Estimator.QuestionsPerMinute = f
		}
	}
	if v := os.Getenv("SURVEYFORGE_SCREENER_PER_MINUTE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Distribution.ScreenerPerMinute = f
		}
	}
	if v := os.Getenv("SURVEYFORGE_CORE_PER_MINUTE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Distribution.CorePerMinute = f
		}
	}
	if v := os.Getenv("SURVEYFORGE_DEMOGRAPHICS_PER_MINUTE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.Distribution.DemographicsPerMinute = f
		}
	}
	if v := os.Getenv("SURVEYFORGE_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("SURVEYFORGE_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
}

// sanitize clamps nonsense values back to the defaults rather than failing.
func sanitize(cfg *Config) {
	def := Default()
	if cfg.Estimator.QuestionsPerMinute <= 0 {
		cfg.Estimator.QuestionsPerMinute = def.Estimator.QuestionsPerMinute
	}
	if cfg.Distribution.ScreenerPerMinute <= 0 {
		cfg.Distribution.ScreenerPerMinute = def.Distribution.ScreenerPerMinute
	}
	if cfg.Distribution.CorePerMinute <= 0 {
		cfg.Distribution.CorePerMinute = def.Distribution.CorePerMinute
	}
	if cfg.Distribution.DemographicsPerMinute <= 0 {
		cfg.Distribution.DemographicsPerMinute = def.Distribution.DemographicsPerMinute
	}
	if cfg.Distribution.MinScreener <= 0 {
		cfg.Distribution.MinScreener = def.Distribution.MinScreener
	}
	if cfg.Distribution.MinDemographics <= 0 {
		cfg.Distribution.MinDemographics = def.Distribution.MinDemographics
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
}
