// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	TargetFrequency     float64
	SelectionRange      int
	AllowPunctuation    bool
	Lives               int
	LoseLifeOnDuplicate bool
	CorpusPath          string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Outcome classifies a single guess against the puzzle.
type Outcome int

const (
	// OutcomeNeutral marks a repeated guess that costs nothing.
	OutcomeNeutral Outcome = iota
	// OutcomeCorrect marks a guess present in the word.
	OutcomeCorrect
	// OutcomeIncorrect marks a guess absent from the word.
	OutcomeIncorrect
)

// String returns the storage label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	default:
		return "neutral"
	}
}

// GuessRecord captures one evaluated guess. The outcome is assigned at
// evaluation time and never changes afterwards.
type GuessRecord struct {
	Char    rune
	Outcome Outcome
}

// GameRecord captures a completed game.
type GameRecord struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Word       string
	Won        bool
	Lives      int
	LivesLeft  int
	CorpusPath string
	DurationMs int64
}

// GameAggregate summarizes a game for reporting.
type GameAggregate struct {
	GameID     int64
	EndedAt    time.Time
	Won        bool
	Correct    int
	Incorrect  int
	DurationMs int64
}

// LetterAggregate aggregates guess outcomes per letter across games.
type LetterAggregate struct {
	Char      string
	Correct   int
	Incorrect int
}
