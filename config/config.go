// Package config loads the wordladder YAML configuration.
//
// A missing field keeps its default, so an empty file is a valid config.
//
//	dictionary:
//	  path: /usr/share/dict/words
//	  min_length: 3
//	  max_length: 8
//	search:
//	  strategy: astar
//	  max_iterations: 10000
//	  max_time: 5s
//	  max_depth: 0
//	cache:
//	  capacity: 0
//	log:
//	  level: info
//	  format: text
//	metrics:
//	  enabled: false
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/dictionary"
	"github.com/katalvlaran/wordladder/search"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root document.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// DictionaryConfig locates and filters the word list.
type DictionaryConfig struct {
	Path      string `yaml:"path"`
	MinLength int    `yaml:"min_length"`
	MaxLength int    `yaml:"max_length"`
}

// SearchConfig holds the default strategy and bound.
type SearchConfig struct {
	Strategy      string        `yaml:"strategy"`
	MaxIterations int           `yaml:"max_iterations"`
	MaxTime       time.Duration `yaml:"max_time"`
	MaxDepth      int           `yaml:"max_depth"`
}

// CacheConfig sizes the neighbor cache; 0 is unbounded.
type CacheConfig struct {
	Capacity int `yaml:"capacity"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig toggles Prometheus collection.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Path:      "words.txt",
			MinLength: dictionary.DefaultMinLength,
			MaxLength: dictionary.DefaultMaxLength,
		},
		Search: SearchConfig{
			Strategy:      "bfs",
			MaxIterations: search.DefaultMaxIterations,
			MaxTime:       search.DefaultMaxTime,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes data on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Dictionary.MinLength < 1 || c.Dictionary.MaxLength < c.Dictionary.MinLength {
		errs = append(errs, fmt.Errorf("dictionary length range [%d, %d]", c.Dictionary.MinLength, c.Dictionary.MaxLength))
	}
	if _, err := search.ParseStrategy(c.Search.Strategy); err != nil {
		errs = append(errs, fmt.Errorf("search.strategy %q", c.Search.Strategy))
	}
	if c.Search.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("search.max_iterations %d", c.Search.MaxIterations))
	}
	if c.Search.MaxTime < 0 {
		errs = append(errs, fmt.Errorf("search.max_time %s", c.Search.MaxTime))
	}
	if c.Search.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("search.max_depth %d", c.Search.MaxDepth))
	}
	if c.Cache.Capacity < 0 {
		errs = append(errs, fmt.Errorf("cache.capacity %d", c.Cache.Capacity))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// SlogLevel maps Level to a slog.Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q", l.Level)
	}
	return lvl, nil
}

// ParsedStrategy returns the default strategy as a search.Strategy.
func (s SearchConfig) ParsedStrategy() (search.Strategy, error) {
	return search.ParseStrategy(s.Strategy)
}

// Options converts the bound into search options.
func (s SearchConfig) Options() []search.Option {
	return []search.Option{
		search.WithMaxIterations(s.MaxIterations),
		search.WithMaxTime(s.MaxTime),
		search.WithMaxDepth(s.MaxDepth),
	}
}

// LoadOptions converts the length filter into dictionary load options.
func (d DictionaryConfig) LoadOptions() []dictionary.LoadOption {
	return []dictionary.LoadOption{dictionary.WithLengthRange(d.MinLength, d.MaxLength)}
}
