// Package selector picks puzzle words by frequency.
package selector

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/verte-zerg/hangman/internal/corpus"
	"github.com/verte-zerg/hangman/internal/model"
)

// ErrConfig marks selection failures caused by the corpus or configuration,
// surfaced to the caller before a game starts.
var ErrConfig = errors.New("config error")

// Selector draws puzzle words from a corpus.
type Selector struct {
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time.
func New() *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithRand returns a Selector using the provided source.
func NewWithRand(rnd *rand.Rand) *Selector {
	return &Selector{rnd: rnd}
}

// Select picks one word: entries are ordered by distance between their
// frequency and the target (stable, so corpus order breaks ties), the
// closest SelectionRange entries form the pool, and one is drawn uniformly.
// With punctuation disallowed the draw is restricted to all-alphabetic pool
// entries; an empty restricted pool is an error rather than an endless
// resample.
func (s *Selector) Select(entries []corpus.Entry, cfg model.Config) (string, error) {
	if len(entries) == 0 {
		return "", fmt.Errorf("%w: corpus is empty", ErrConfig)
	}
	if cfg.SelectionRange <= 0 {
		return "", fmt.Errorf("%w: selection range must be > 0, got %d", ErrConfig, cfg.SelectionRange)
	}

	pool := make([]corpus.Entry, len(entries))
	copy(pool, entries)
	sort.SliceStable(pool, func(i, j int) bool {
		return math.Abs(pool[i].Frequency-cfg.TargetFrequency) < math.Abs(pool[j].Frequency-cfg.TargetFrequency)
	})
	size := cfg.SelectionRange
	if size > len(pool) {
		size = len(pool)
	}
	pool = pool[:size]

	if !cfg.AllowPunctuation {
		filtered := pool[:0]
		for _, entry := range pool {
			if isAlphabetic(entry.Word) {
				filtered = append(filtered, entry)
			}
		}
		if len(filtered) == 0 {
			return "", fmt.Errorf("%w: no all-alphabetic word within selection range %d", ErrConfig, cfg.SelectionRange)
		}
		pool = filtered
	}

	return pool[s.rnd.Intn(len(pool))].Word, nil
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
