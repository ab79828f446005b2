package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Exit codes of the gologic command.
const (
	exitSuccess = 0 // the answer is positive: true, consistent, valid
	exitFalse   = 1 // the answer is negative
	exitError   = 2 // the question could not be answered
)

// Config holds the settings that can be given in a YAML configuration file.
// Command-line flags take precedence over the file.
type Config struct {
	// Strict makes rules other than the eight rules of inference fail.
	Strict bool `yaml:"strict"`
	// MaxVariables bounds the number of variables of truth tables.
	// Tables are exponential in that number. 0 means no bound.
	MaxVariables int `yaml:"max_variables"`
	// Color is one of "auto", "always" or "never".
	Color string `yaml:"color"`
	// Verbose enables debug logs.
	Verbose bool `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{
		MaxVariables: 12,
		Color:        "auto",
	}
}

// loadConfig reads the configuration file at path.
// Settings missing from the file keep their default value.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read configuration: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("could not parse configuration %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration %q: %w", path, err)
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if err := validateColor(cfg.Color); err != nil {
		return err
	}
	if cfg.MaxVariables < 0 {
		return fmt.Errorf("max_variables must not be negative, got %d", cfg.MaxVariables)
	}
	return nil
}

func validateColor(mode string) error {
	switch mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", mode)
	}
}

// newLogger returns a console logger writing on w.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
