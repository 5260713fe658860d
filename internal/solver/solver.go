// Package solver finds and ranks dictionary words formable from a jumble.
package solver

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/thomasdavis/jumble/pkg/scrabble"
)

// DefaultLimit caps how many matches a solve collects before stopping.
const DefaultLimit = 21

// Match is a dictionary word together with its Scrabble score.
type Match struct {
	Word  string
	Score int
}

// Solver scans a loaded dictionary for words formable from a jumble.
type Solver struct {
	words []string
	limit int
}

// New returns a Solver over words. A limit <= 0 uses DefaultLimit.
func New(words []string, limit int) *Solver {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Solver{words: words, limit: limit}
}

// Solve scans the dictionary in load order, collecting formable words
// until the dictionary is exhausted or the match limit is reached, then
// sorts the matches by descending score. The stable sort keeps
// dictionary order for equal scores.
//
// Because collection stops at the limit, the result is a sample of the
// dictionary's prefix, not the globally best set: formable words later
// in the file are dropped once the limit is hit.
func (s *Solver) Solve(jumble string) []Match {
	matches := make([]Match, 0, s.limit)
	for _, word := range s.words {
		if len(matches) >= s.limit {
			break
		}
		if scrabble.CanForm(word, jumble) {
			matches = append(matches, Match{Word: word, Score: scrabble.Score(word)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// Lookup fuzzy-searches the dictionary for pattern and returns up to
// limit matches in relevance order, each carrying its Scrabble score.
func (s *Solver) Lookup(pattern string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := fuzzy.Find(pattern, s.words)
	if len(results) > limit {
		results = results[:limit]
	}

	matches := make([]Match, 0, len(results))
	for _, r := range results {
		matches = append(matches, Match{Word: r.Str, Score: scrabble.Score(r.Str)})
	}
	return matches
}
