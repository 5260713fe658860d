package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thomasdavis/jumble/internal/dict"
	"github.com/thomasdavis/jumble/internal/solver"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if len(cfg.Dictionary.Paths) != 2 {
		t.Errorf("Default has %d dictionary paths, want 2", len(cfg.Dictionary.Paths))
	}
	if cfg.Dictionary.MaxWords != dict.DefaultMaxWords {
		t.Errorf("MaxWords = %d, want %d", cfg.Dictionary.MaxWords, dict.DefaultMaxWords)
	}
	if cfg.Dictionary.MinWordLength != 4 {
		t.Errorf("MinWordLength = %d, want 4", cfg.Dictionary.MinWordLength)
	}
	if cfg.Solver.MatchLimit != solver.DefaultLimit {
		t.Errorf("MatchLimit = %d, want %d", cfg.Solver.MatchLimit, solver.DefaultLimit)
	}
	if cfg.Jumble.Length != 6 {
		t.Errorf("Jumble length = %d, want 6", cfg.Jumble.Length)
	}
	if cfg.Jumble.MaxLength != 20 {
		t.Errorf("Jumble max length = %d, want 20", cfg.Jumble.MaxLength)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if cfg.Solver.MatchLimit != solver.DefaultLimit {
		t.Errorf("MatchLimit = %d, want default %d", cfg.Solver.MatchLimit, solver.DefaultLimit)
	}
}

func TestLoadOverrides(t *testing.T) {
	content := `
dictionary:
  paths:
    - /tmp/mywords
  max_words: 500
solver:
  match_limit: 5
jumble:
  length: 8
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(cfg.Dictionary.Paths) != 1 || cfg.Dictionary.Paths[0] != "/tmp/mywords" {
		t.Errorf("Paths = %v, want [/tmp/mywords]", cfg.Dictionary.Paths)
	}
	if cfg.Dictionary.MaxWords != 500 {
		t.Errorf("MaxWords = %d, want 500", cfg.Dictionary.MaxWords)
	}
	if cfg.Solver.MatchLimit != 5 {
		t.Errorf("MatchLimit = %d, want 5", cfg.Solver.MatchLimit)
	}
	if cfg.Jumble.Length != 8 {
		t.Errorf("Jumble length = %d, want 8", cfg.Jumble.Length)
	}

	// Unset fields keep their defaults.
	if cfg.Dictionary.MaxWordLength != dict.DefaultMaxWordLength {
		t.Errorf("MaxWordLength = %d, want default %d",
			cfg.Dictionary.MaxWordLength, dict.DefaultMaxWordLength)
	}
	if cfg.Jumble.MaxLength != DefaultMaxJumbleLength {
		t.Errorf("Jumble max length = %d, want default %d",
			cfg.Jumble.MaxLength, DefaultMaxJumbleLength)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("solver: [not a mapping"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load of invalid YAML should fail")
	}
}

func TestSanitizedReplacesNonPositiveLimits(t *testing.T) {
	content := `
solver:
  match_limit: -1
jumble:
  length: 0
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Solver.MatchLimit != solver.DefaultLimit {
		t.Errorf("MatchLimit = %d, want default %d", cfg.Solver.MatchLimit, solver.DefaultLimit)
	}
	if cfg.Jumble.Length != DefaultJumbleLength {
		t.Errorf("Jumble length = %d, want default %d", cfg.Jumble.Length, DefaultJumbleLength)
	}
}

func TestDictOptions(t *testing.T) {
	cfg := Default()
	opts := cfg.DictOptions()

	if opts.MaxWords != cfg.Dictionary.MaxWords {
		t.Errorf("opts.MaxWords = %d, want %d", opts.MaxWords, cfg.Dictionary.MaxWords)
	}
	if len(opts.Paths) != len(cfg.Dictionary.Paths) {
		t.Errorf("opts.Paths has %d entries, want %d", len(opts.Paths), len(cfg.Dictionary.Paths))
	}
}
