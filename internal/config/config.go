// Package config loads restwatch settings from a TOML file under the
// user config directory, with RESTWATCH_* environment variable
// overrides. Configuration problems never abort the process; the
// loader logs a warning and falls back to built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"restwatch/internal/core/model"
)

const (
	appDirName     = "restwatch"
	configBaseName = "restwatch"
	envPrefix      = "RESTWATCH"
)

// Config holds all recognized restwatch options.
type Config struct {
	WarnThresholdSeconds  int  `mapstructure:"warn_threshold_seconds"`
	AlertThresholdSeconds int  `mapstructure:"alert_threshold_seconds"`
	StartRunning          bool `mapstructure:"start_running"`
	StoreSessions         bool `mapstructure:"store_sessions"`
	WindowWidth           int  `mapstructure:"window_width"`
	WindowHeight          int  `mapstructure:"window_height"`
}

// Default returns the built-in configuration.
func Default() Config {
	thresholds := model.DefaultThresholds()
	return Config{
		WarnThresholdSeconds:  int(thresholds.Warn / time.Second),
		AlertThresholdSeconds: int(thresholds.Alert / time.Second),
		StartRunning:          true,
		StoreSessions:         true,
		WindowWidth:           220,
		WindowHeight:          120,
	}
}

// Thresholds converts the configured seconds to durations.
func (config Config) Thresholds() model.Thresholds {
	return model.Thresholds{
		Warn:  time.Duration(config.WarnThresholdSeconds) * time.Second,
		Alert: time.Duration(config.AlertThresholdSeconds) * time.Second,
	}
}

// TimerConfig converts the configuration to timer construction settings.
func (config Config) TimerConfig() model.TimerConfig {
	return model.TimerConfig{
		Thresholds:   config.Thresholds(),
		StartRunning: config.StartRunning,
	}
}

// Load reads settings with precedence: environment variables, then
// restwatch.toml under the user config directory, then defaults.
func Load() Config {
	dir, err := Dir()
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		return Default()
	}

	config, err := loadFrom(dir)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		return Default()
	}
	return config
}

// Dir returns the restwatch directory under the user config dir.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// EnsureDefaultFile writes a default restwatch.toml on first run so the
// user has something to edit. An existing file is left alone. It
// returns the file path.
func EnsureDefaultFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return ensureDefaultFileIn(dir)
}

func loadFrom(dir string) (Config, error) {
	loader := viper.New()
	setDefaults(loader)

	loader.SetConfigName(configBaseName)
	loader.SetConfigType("toml")
	loader.AddConfigPath(dir)

	loader.SetEnvPrefix(envPrefix)
	loader.AutomaticEnv()

	if err := loader.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	config := Config{}
	if err := loader.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return config.sanitized(), nil
}

func ensureDefaultFileIn(dir string) (string, error) {
	path := filepath.Join(dir, configBaseName+".toml")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	writer := viper.New()
	setDefaults(writer)
	writer.SetConfigType("toml")
	if err := writer.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return path, nil
}

func setDefaults(loader *viper.Viper) {
	defaults := Default()
	loader.SetDefault("warn_threshold_seconds", defaults.WarnThresholdSeconds)
	loader.SetDefault("alert_threshold_seconds", defaults.AlertThresholdSeconds)
	loader.SetDefault("start_running", defaults.StartRunning)
	loader.SetDefault("store_sessions", defaults.StoreSessions)
	loader.SetDefault("window_width", defaults.WindowWidth)
	loader.SetDefault("window_height", defaults.WindowHeight)
}

// sanitized replaces unusable values with defaults. A bad threshold
// pair must never be fatal.
func (config Config) sanitized() Config {
	defaults := Default()
	if !config.Thresholds().Valid() {
		log.Printf("config: invalid thresholds warn=%ds alert=%ds, using defaults",
			config.WarnThresholdSeconds, config.AlertThresholdSeconds)
		config.WarnThresholdSeconds = defaults.WarnThresholdSeconds
		config.AlertThresholdSeconds = defaults.AlertThresholdSeconds
	}
	if config.WindowWidth <= 0 {
		config.WindowWidth = defaults.WindowWidth
	}
	if config.WindowHeight <= 0 {
		config.WindowHeight = defaults.WindowHeight
	}
	return config
}
