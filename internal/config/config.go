package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"sortsources/internal/logging"
)

const (
	// ConfigName is the base name of the config file searched in the working directory
	ConfigName = ".sortsources"
	// EnvPrefix prefixes environment overrides, e.g. SORTSOURCES_LOGGING_LEVEL
	EnvPrefix = "SORTSOURCES"
)

// Config represents the complete sortsources configuration
type Config struct {
	Confirm bool          `json:"confirm" mapstructure:"confirm"`
	Diff    DiffConfig    `json:"diff" mapstructure:"diff"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// DiffConfig contains diff display configuration
type DiffConfig struct {
	Context int `json:"context" mapstructure:"context"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Confirm: true,
		Diff: DiffConfig{
			Context: 3,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "warn",
		},
	}
}

// LoadResult holds a loaded configuration and where it came from
type LoadResult struct {
	Config       *Config
	ConfigPath   string
	UsedDefaults bool
}

// LoadConfig loads configuration from dir/.sortsources.{json,yaml,toml}, or from
// path when it is non-empty, then applies SORTSOURCES_* environment overrides.
// A missing file in dir is not an error; a missing explicit path is.
func LoadConfig(dir, path string) (*LoadResult, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("confirm", defaults.Confirm)
	v.SetDefault("diff.context", defaults.Diff.Context)
	v.SetDefault("logging.format", defaults.Logging.Format)
	v.SetDefault("logging.level", defaults.Logging.Level)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(dir)
	}

	result := &LoadResult{}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		result.UsedDefaults = true
	} else {
		result.ConfigPath = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	result.Config = &cfg

	return result, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return &ConfigError{Field: "logging.format", Message: err.Error()}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error()}
	}
	if c.Diff.Context < 0 {
		return &ConfigError{Field: "diff.context", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
