// Package scrabble provides Scrabble letter scoring, tile-pool
// formability checks, and weighted random jumble generation.
package scrabble

import (
	"math/rand"
	"strings"
	"time"
)

// letterScores holds the standard Scrabble point value for each letter,
// indexed a through z.
var letterScores = [26]int{
	1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
}

// Distribution approximates English letter frequency. Drawing uniformly
// from it makes common letters proportionally more likely.
const Distribution = "AAAAAAAAABBCCDDDDEEEEEEEEEFFGGHHIIIIIJJKKLLLLMMNNNNNNOOOOOOPPQQRRRRRRSSSSTTTTTTUUUUVVWWXYYZ"

// Score returns the Scrabble score of word: the sum of each letter's
// point value, case-insensitively. Non-letter characters score zero, so
// a word with no letters scores 0.
func Score(word string) int {
	score := 0
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			score += letterScores[r-'a']
		}
	}
	return score
}

// LetterValue returns the point value of a single letter, or 0 for
// anything that is not an ASCII letter.
func LetterValue(r rune) int {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0
	}
	return letterScores[r-'a']
}

// CanForm reports whether word can be spelled from the letters in pool
// without reusing a tile. Comparison is case-insensitive and non-letter
// characters on either side are ignored.
func CanForm(word, pool string) bool {
	poolCount := letterCounts(pool)
	wordCount := letterCounts(word)

	for i := 0; i < 26; i++ {
		if wordCount[i] > poolCount[i] {
			return false
		}
	}
	return true
}

func letterCounts(s string) [26]int {
	var counts [26]int
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			counts[r-'a']++
		}
	}
	return counts
}

// Generator produces random jumbles weighted by Distribution.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator backed by rng. A nil rng gets a
// time-seeded source, so tests can pass a fixed seed for deterministic
// jumbles while the CLI stays random per run.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Jumble draws length letters independently from Distribution.
func (g *Generator) Jumble(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = Distribution[g.rng.Intn(len(Distribution))]
	}
	return string(b)
}
