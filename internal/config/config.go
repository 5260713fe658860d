// Package config loads the optional YAML config file that overrides the
// solver's built-in limits.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thomasdavis/jumble/internal/dict"
	"github.com/thomasdavis/jumble/internal/solver"
)

// Config collects every tunable limit. Each field has a documented
// default matching the classic solver behavior.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Solver     SolverConfig     `yaml:"solver"`
	Jumble     JumbleConfig     `yaml:"jumble"`
}

type DictionaryConfig struct {
	// Paths are tried in order; first that opens wins.
	Paths []string `yaml:"paths"`
	// MaxWords caps how many dictionary words are loaded.
	MaxWords int `yaml:"max_words"`
	// MaxWordLength truncates longer dictionary lines.
	MaxWordLength int `yaml:"max_word_length"`
	// MinWordLength drops shorter dictionary lines.
	MinWordLength int `yaml:"min_word_length"`
}

type SolverConfig struct {
	// MatchLimit caps how many matches a solve collects.
	MatchLimit int `yaml:"match_limit"`
}

type JumbleConfig struct {
	// Length of randomly generated jumbles.
	Length int `yaml:"length"`
	// MaxLength truncates user-supplied jumbles.
	MaxLength int `yaml:"max_length"`
}

const (
	DefaultJumbleLength    = 6
	DefaultMaxJumbleLength = 20
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Dictionary: DictionaryConfig{
			Paths:         append([]string(nil), dict.DefaultPaths...),
			MaxWords:      dict.DefaultMaxWords,
			MaxWordLength: dict.DefaultMaxWordLength,
			MinWordLength: dict.DefaultMinWordLength,
		},
		Solver: SolverConfig{
			MatchLimit: solver.DefaultLimit,
		},
		Jumble: JumbleConfig{
			Length:    DefaultJumbleLength,
			MaxLength: DefaultMaxJumbleLength,
		},
	}
}

// DefaultPath returns ~/.config/jumble/config.yaml, or an empty string
// when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "jumble", "config.yaml")
}

// Load reads the config file at path, falling back to DefaultPath when
// path is empty. A missing file is not an error: the defaults apply.
// Fields left unset in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg.sanitized(), nil
}

// sanitized replaces non-positive limits with their defaults.
func (c Config) sanitized() Config {
	def := Default()
	if len(c.Dictionary.Paths) == 0 {
		c.Dictionary.Paths = def.Dictionary.Paths
	}
	if c.Dictionary.MaxWords <= 0 {
		c.Dictionary.MaxWords = def.Dictionary.MaxWords
	}
	if c.Dictionary.MaxWordLength <= 0 {
		c.Dictionary.MaxWordLength = def.Dictionary.MaxWordLength
	}
	if c.Dictionary.MinWordLength <= 0 {
		c.Dictionary.MinWordLength = def.Dictionary.MinWordLength
	}
	if c.Solver.MatchLimit <= 0 {
		c.Solver.MatchLimit = def.Solver.MatchLimit
	}
	if c.Jumble.Length <= 0 {
		c.Jumble.Length = def.Jumble.Length
	}
	if c.Jumble.MaxLength <= 0 {
		c.Jumble.MaxLength = def.Jumble.MaxLength
	}
	return c
}

// DictOptions maps the dictionary section onto loader options.
func (c Config) DictOptions() dict.Options {
	return dict.Options{
		Paths:         c.Dictionary.Paths,
		MaxWords:      c.Dictionary.MaxWords,
		MaxWordLength: c.Dictionary.MaxWordLength,
		MinWordLength: c.Dictionary.MinWordLength,
	}
}
