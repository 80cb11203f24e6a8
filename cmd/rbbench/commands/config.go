package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidSize      = errors.New("workload size must be positive")
	ErrInvalidRepeat    = errors.New("repeat count must be positive")
	ErrInvalidNth       = errors.New("nth must be in [0, size)")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Default configuration values.
const (
	defaultSize   = 1_000_000
	defaultSeed   = 1
	defaultNth    = 15
	defaultRepeat = 1_000_000
	envPrefix     = "RBBENCH"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds all configuration for rbbench.
type Config struct {
	Workload WorkloadConfig `mapstructure:"workload"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// WorkloadConfig describes the operations issued against the trees.
type WorkloadConfig struct {
	Size   int   `mapstructure:"size"`
	Seed   int64 `mapstructure:"seed"`
	Nth    int   `mapstructure:"nth"`
	Repeat int   `mapstructure:"repeat"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"size":       "workload.size",
	"seed":       "workload.seed",
	"nth":        "workload.nth",
	"repeat":     "workload.repeat",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// LoadConfig loads configuration from defaults, an optional file, environment
// variables and the flags of cmd, in increasing order of precedence. cmd may be nil.
func LoadConfig(configPath string, cmd *cobra.Command) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)

		readErr := viperCfg.ReadInConfig()
		if readErr != nil {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	if cmd != nil {
		for name, key := range flagKeys {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				continue
			}

			bindErr := viperCfg.BindPFlag(key, flag)
			if bindErr != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, bindErr)
			}
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("workload.size", defaultSize)
	viperCfg.SetDefault("workload.seed", defaultSeed)
	viperCfg.SetDefault("workload.nth", defaultNth)
	viperCfg.SetDefault("workload.repeat", defaultRepeat)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", FormatText)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Workload.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, config.Workload.Size)
	}

	if config.Workload.Repeat <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRepeat, config.Workload.Repeat)
	}

	if config.Workload.Nth < 0 || config.Workload.Nth >= config.Workload.Size {
		return fmt.Errorf("%w: %d", ErrInvalidNth, config.Workload.Nth)
	}

	var level slog.Level

	if err := level.UnmarshalText([]byte(config.Logging.Level)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	switch config.Logging.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}
