// Package config loads the analyzer configuration from YAML with RM_*
// environment overrides and builds the lexicon-backed components from it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/readmetrics/pkg/readmetrics/internalerr"
)

// Config is the top-level configuration.
type Config struct {
	Paths    PathsConfig    `yaml:"paths"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Fetch    FetchConfig    `yaml:"fetch"`
}

// PathsConfig holds every file and directory the tools read or write.
type PathsConfig struct {
	StopWords string `yaml:"stopWords"`
	Sentiment string `yaml:"sentiment"`
	Texts     string `yaml:"texts"`
	JSONL     string `yaml:"jsonl"`
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Database  string `yaml:"database"`
}

// AnalysisConfig controls the batch worker pool.
type AnalysisConfig struct {
	Workers int `yaml:"workers"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig names the Prometheus textfile written after a run.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// FetchConfig controls the article downloader.
type FetchConfig struct {
	Rate      float64       `yaml:"rate"`
	Burst     int           `yaml:"burst"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"userAgent"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file is given. Paths are
// relative to the working directory.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			StopWords: "StopWords",
			Sentiment: "MasterDictionary",
			Texts:     "extracted_texts",
			Input:     "Input.csv",
			Output:    "Output.csv",
		},
		Analysis: AnalysisConfig{Workers: 4},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Fetch: FetchConfig{
			Rate:      2,
			Burst:     1,
			Timeout:   30 * time.Second,
			UserAgent: "readmetrics/1.0",
		},
	}
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("%w: analysis.workers must be >= 1, got %d", internalerr.ErrInvalidConfig, c.Analysis.Workers)
	}
	if c.Fetch.Rate <= 0 {
		return fmt.Errorf("%w: fetch.rate must be > 0", internalerr.ErrInvalidConfig)
	}
	if c.Fetch.Burst < 1 {
		c.Fetch.Burst = 1
	}
	return nil
}

// applyEnvOverrides reads RM_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RM_STOPWORDS_DIR"); v != "" {
		cfg.Paths.StopWords = v
	}
	if v := os.Getenv("RM_SENTIMENT_DIR"); v != "" {
		cfg.Paths.Sentiment = v
	}
	if v := os.Getenv("RM_TEXTS_DIR"); v != "" {
		cfg.Paths.Texts = v
	}
	if v := os.Getenv("RM_JSONL"); v != "" {
		cfg.Paths.JSONL = v
	}
	if v := os.Getenv("RM_INPUT"); v != "" {
		cfg.Paths.Input = v
	}
	if v := os.Getenv("RM_OUTPUT"); v != "" {
		cfg.Paths.Output = v
	}
	if v := os.Getenv("RM_DATABASE"); v != "" {
		cfg.Paths.Database = v
	}
	if v := os.Getenv("RM_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.Workers = n
		}
	}
	if v := os.Getenv("RM_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RM_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("RM_METRICS_FILE"); v != "" {
		cfg.Metrics.File = v
	}
	if v := os.Getenv("RM_FETCH_RATE"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Fetch.Rate = r
		}
	}
	if v := os.Getenv("RM_FETCH_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Fetch.Timeout = d
		}
	}
	if v := os.Getenv("RM_FETCH_USER_AGENT"); v != "" {
		cfg.Fetch.UserAgent = v
	}
}
