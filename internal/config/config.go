// Package config loads the schnorr CLI settings from YAML.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config holds CLI settings. Zero values fall back to Default.
type Config struct {
	Workers   int    `yaml:"workers"`    // Batch workers (0 = auto-detect)
	LogLevel  string `yaml:"log_level"`  // logrus level name
	LogFormat string `yaml:"log_format"` // "text" or "json"
	Mode      string `yaml:"mode"`       // Default batch mode
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Workers:   0,
		LogLevel:  "info",
		LogFormat: "text",
		Mode:      "joint",
	}
}

// Load reads path and fills unset fields from Default. An empty path
// returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var fileCfg Config
	if err := yaml.UnmarshalStrict(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if fileCfg.Workers < 0 {
		return cfg, fmt.Errorf("workers must not be negative, got %d", fileCfg.Workers)
	}
	cfg.Workers = fileCfg.Workers
	if fileCfg.LogLevel != "" {
		cfg.LogLevel = fileCfg.LogLevel
	}
	if fileCfg.LogFormat != "" {
		cfg.LogFormat = fileCfg.LogFormat
	}
	if fileCfg.Mode != "" {
		cfg.Mode = fileCfg.Mode
	}
	return cfg, nil
}

// Logger builds a logrus logger writing to stderr.
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)
	switch c.LogFormat {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return logger, nil
}
