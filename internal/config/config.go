package config

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/edu-luc-cs-leo/comp-271-su-2025-week-05-jknott1/array"
)

const (
	EqualityValue    = "value"
	EqualityIdentity = "identity"

	DefaultLogLevel = "info"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

type Config struct {
	Capacity    int    `yaml:"capacity"`
	MaxCapacity int    `yaml:"max_capacity"`
	Equality    string `yaml:"equality"`
	EmptyMarker string `yaml:"empty_marker"`
	LogLevel    string `yaml:"log_level"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity:    array.DefaultCapacity,
		Equality:    EqualityValue,
		EmptyMarker: array.DefaultEmptyMarker,
		LogLevel:    DefaultLogLevel,
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate accepts any capacity, since the array coerces non-positive ones.
func (c *Config) Validate() error {
	switch c.Equality {
	case EqualityValue, EqualityIdentity:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown equality %q", c.Equality)
	}

	if c.MaxCapacity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative max capacity %d", c.MaxCapacity)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, errors.Wrapf(ErrInvalidConfig, "log level: %s", err)
	}
	return lvl, nil
}

// Options translates the config into array options.
func (c *Config) Options() []array.Option {
	return []array.Option{
		array.WithMaxCapacity(c.MaxCapacity),
		array.WithEmptyMarker(c.EmptyMarker),
	}
}
