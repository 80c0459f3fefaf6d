// Package config provides YAML, environment and flag-backed configuration
// for the gitxray CLI.
package config

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Config is the top-level gitxray configuration.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Analysis AnalysisConfig `mapstructure:"analysis"`
	Git      GitConfig      `mapstructure:"git"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Output   OutputConfig   `mapstructure:"output"`
}

// AnalysisConfig holds the analyzer tuning knobs.
type AnalysisConfig struct {
	TopN        int     `mapstructure:"top_n"`
	DirDepth    int     `mapstructure:"dir_depth"`
	ActiveDays  int     `mapstructure:"active_days"`
	MinCommits  int     `mapstructure:"min_commits"`
	MinCoupling float64 `mapstructure:"min_coupling"`
}

// GitConfig holds repository access settings.
type GitConfig struct {
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxCommits int           `mapstructure:"max_commits"`
	SkipVendor bool          `mapstructure:"skip_vendor"`
}

// LoggingConfig holds progress logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig holds report output settings.
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// minCouplingMax is the upper bound for the coupling score threshold.
const minCouplingMax = 1.0

// Sentinel errors for configuration validation.
var (
	// ErrInvalidTopN indicates the row cap is not positive.
	ErrInvalidTopN = errors.New("analysis.top_n must be positive")
	// ErrInvalidDirDepth indicates the directory depth is not positive.
	ErrInvalidDirDepth = errors.New("analysis.dir_depth must be positive")
	// ErrInvalidActiveDays indicates the activity window is not positive.
	ErrInvalidActiveDays = errors.New("analysis.active_days must be positive")
	// ErrInvalidMinCommits indicates the coupling commit floor is not positive.
	ErrInvalidMinCommits = errors.New("analysis.min_commits must be positive")
	// ErrInvalidMinCoupling indicates the coupling threshold is out of range.
	ErrInvalidMinCoupling = errors.New("analysis.min_coupling must be between 0 and 1")
	// ErrInvalidMaxCommits indicates the commit limit is negative.
	ErrInvalidMaxCommits = errors.New("git.max_commits must be non-negative")
	// ErrInvalidLogLevel indicates an unknown logging level.
	ErrInvalidLogLevel = errors.New("logging.level must be debug, info, warn or error")
)

// Validate checks Config invariants and returns the first error found.
func (c *Config) Validate() error {
	analysisErr := c.validateAnalysis()
	if analysisErr != nil {
		return analysisErr
	}

	if c.Git.MaxCommits < 0 {
		return ErrInvalidMaxCommits
	}

	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopN <= 0 {
		return ErrInvalidTopN
	}

	if c.Analysis.DirDepth <= 0 {
		return ErrInvalidDirDepth
	}

	if c.Analysis.ActiveDays <= 0 {
		return ErrInvalidActiveDays
	}

	if c.Analysis.MinCommits <= 0 {
		return ErrInvalidMinCommits
	}

	if c.Analysis.MinCoupling <= 0 || c.Analysis.MinCoupling > minCouplingMax {
		return ErrInvalidMinCoupling
	}

	return nil
}

func (c *Config) validateLogging() error {
	if !slices.Contains(LogLevels(), strings.ToLower(c.Logging.Level)) {
		return ErrInvalidLogLevel
	}

	return nil
}

// LogLevels returns the accepted logging.level values.
func LogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// SlogLevel maps the configured level name onto a slog.Level.
// Unknown names fall back to info.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
