package stlvec

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvConfig       = "STLVEC_CONFIG"
	EnvAbortOnError = "STLVEC_ABORT_ON_ERROR"
	EnvLogLevel     = "STLVEC_LOG_LEVEL"
	EnvLogFormat    = "STLVEC_LOG_FORMAT"
)

// Config expresses the knobs of a Library.
type Config struct {
	// AbortOnError makes every checked failure panic after logging it instead
	// of being recorded in the last-error slot. For C callers the panic
	// terminates the process.
	AbortOnError bool `yaml:"abort_on_error"`

	// LogLevel is a zap level name. Empty disables logging.
	LogLevel string `yaml:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `yaml:"log_format"`
}

// LoadConfig reads a YAML configuration file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("stlvec: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("stlvec: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ConfigFromEnv loads the file named by STLVEC_CONFIG, if set, and applies
// the individual STLVEC_* overrides on top of it.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if path := os.Getenv(EnvConfig); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if v, ok := os.LookupEnv(EnvAbortOnError); ok {
		abort, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("stlvec: %s: %w", EnvAbortOnError, err)
		}
		cfg.AbortOnError = abort
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		cfg.LogFormat = v
	}
	return cfg, nil
}
