package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level studywatch configuration.
type Config struct {
	DatabasePath     string    `mapstructure:"database_path"`
	DefaultFilter    string    `mapstructure:"default_filter"`
	DefaultSubject   string    `mapstructure:"default_subject"`
	DailyGoalMinutes int       `mapstructure:"daily_goal_minutes"`
	Durations        Durations `mapstructure:"durations"`
	Output           Output    `mapstructure:"output"`
}

// Durations defines the default lengths, in minutes, used when logging
// sessions without an explicit duration.
type Durations struct {
	Study      int `mapstructure:"study"`
	ShortBreak int `mapstructure:"short_break"`
	LongBreak  int `mapstructure:"long_break"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	// Set defaults.
	v.SetDefault("default_filter", DefaultFilter)
	v.SetDefault("default_subject", DefaultSubject)
	v.SetDefault("daily_goal_minutes", DefaultDailyGoalMinutes)
	v.SetDefault("durations.study", DefaultDurations.Study)
	v.SetDefault("durations.short_break", DefaultDurations.ShortBreak)
	v.SetDefault("durations.long_break", DefaultDurations.LongBreak)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		configDir := expandPath(DefaultConfigDir)
		v.AddConfigPath(configDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Read config file if it exists; missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Only return error for problems other than file not found.
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.DatabasePath != "" {
		cfg.DatabasePath = expandPath(cfg.DatabasePath)
	}

	return &cfg, nil
}

// DBPath returns the configured database path, falling back to the default
// location under the config directory.
func (c *Config) DBPath() string {
	if c.DatabasePath != "" {
		return c.DatabasePath
	}
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
