package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/analyze"
	"github.com/Sumatoshi-tech/gitxray/pkg/analyzers/coupling"
)

// configName is the config file name without extension.
const configName = "gitxray"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for gitxray settings.
const envPrefix = "GITXRAY"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// searchPaths are probed in order when no explicit config path is given.
var searchPaths = []string{".", "./config", "/etc/gitxray"}

// Load reads configuration from file, environment variables and defaults.
// If configPath is non-empty it is used as the explicit config file path;
// otherwise gitxray.yaml is searched along searchPaths. A missing config
// file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)

		for _, searchPath := range searchPaths {
			viperCfg.AddConfigPath(searchPath)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("analysis.top_n", analyze.DefaultTopN)
	viperCfg.SetDefault("analysis.dir_depth", analyze.DefaultDirDepth)
	viperCfg.SetDefault("analysis.active_days", analyze.DefaultActiveDays)
	viperCfg.SetDefault("analysis.min_commits", coupling.DefaultMinCommits)
	viperCfg.SetDefault("analysis.min_coupling", coupling.DefaultMinCoupling)

	viperCfg.SetDefault("git.timeout", DefaultGitTimeout)
	viperCfg.SetDefault("git.max_commits", DefaultMaxCommits)
	viperCfg.SetDefault("git.skip_vendor", DefaultSkipVendor)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)

	viperCfg.SetDefault("output.format", DefaultOutputFormat)
	viperCfg.SetDefault("output.no_color", DefaultNoColor)
}
