// Package dict loads newline-delimited word lists from the filesystem.
package dict

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPaths are the well-known system word list locations, tried in
// order. The first path that opens wins.
var DefaultPaths = []string{
	"/usr/share/dict/words",
	"/usr/dict/words",
}

// Documented defaults for the loader limits. All of them can be
// overridden through Options (and the config file).
const (
	DefaultMaxWords      = 100000
	DefaultMaxWordLength = 30
	DefaultMinWordLength = 4
)

// ErrUnavailable is returned when none of the candidate paths could be
// opened for reading.
var ErrUnavailable = errors.New("could not open dictionary file")

// Options controls dictionary loading. Zero values fall back to the
// package defaults.
type Options struct {
	// Paths are tried in order; the first that opens is read.
	Paths []string
	// MaxWords caps how many words are retained.
	MaxWords int
	// MaxWordLength truncates longer lines.
	MaxWordLength int
	// MinWordLength drops shorter lines.
	MinWordLength int
}

func (o Options) withDefaults() Options {
	if len(o.Paths) == 0 {
		o.Paths = DefaultPaths
	}
	if o.MaxWords <= 0 {
		o.MaxWords = DefaultMaxWords
	}
	if o.MaxWordLength <= 0 {
		o.MaxWordLength = DefaultMaxWordLength
	}
	if o.MinWordLength <= 0 {
		o.MinWordLength = DefaultMinWordLength
	}
	return o
}

// Load reads the first available word list. Words keep file order; each
// line is stripped of its trailing newline, truncated to MaxWordLength,
// and kept only if it still has at least MinWordLength characters.
// Reading stops once MaxWords words are retained.
//
// The file handle is opened, fully read, and closed before Load returns;
// if no path opens, Load returns ErrUnavailable.
func Load(opts Options) ([]string, error) {
	opts = opts.withDefaults()

	for _, path := range opts.Paths {
		file, err := os.Open(path)
		if err != nil {
			continue
		}

		words, err := read(file, opts)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return words, nil
	}

	return nil, ErrUnavailable
}

func read(r io.Reader, opts Options) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() && len(words) < opts.MaxWords {
		word := strings.TrimRight(scanner.Text(), "\r\n")
		if len(word) > opts.MaxWordLength {
			word = word[:opts.MaxWordLength]
		}
		if len(word) >= opts.MinWordLength {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
