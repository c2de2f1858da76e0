// Package game holds the hangman session state machine and turn loop.
package game

import (
	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/puzzle"
)

// State is the session's position in the win/loss state machine.
type State int

const (
	// StateInProgress means the session accepts further guesses.
	StateInProgress State = iota
	// StateWon means every guessable cell has been revealed.
	StateWon
	// StateLost means lives ran out before the word was revealed.
	StateLost
)

// Rules are the session-scoped settings.
type Rules struct {
	Lives               int
	LoseLifeOnDuplicate bool
}

// Session owns one game's puzzle, guess history, and remaining lives.
// A session is used by a single goroutine for its whole lifetime.
type Session struct {
	Puzzle  *puzzle.Word
	History []model.GuessRecord
	Lives   int

	rules Rules
}

// NewSession starts a fresh session over the given word.
func NewSession(word string, rules Rules) *Session {
	return &Session{
		Puzzle: puzzle.New(word),
		Lives:  rules.Lives,
		rules:  rules,
	}
}

// TotalLives returns the lives the session started with.
func (s *Session) TotalLives() int {
	return s.rules.Lives
}

// State derives the current terminal or in-progress state. A puzzle solved
// on the last life still counts as won.
func (s *Session) State() State {
	if s.Puzzle.HasWon() {
		return StateWon
	}
	if s.Lives <= 0 {
		return StateLost
	}
	return StateInProgress
}

// Evaluate classifies a guess without recording it. Duplicates are Neutral
// (Incorrect when the rules charge for them); a present character is
// Correct and revealed in the puzzle as a side effect; anything else is
// Incorrect.
func (s *Session) Evaluate(r rune) model.Outcome {
	if s.alreadyGuessed(r) {
		if s.rules.LoseLifeOnDuplicate {
			return model.OutcomeIncorrect
		}
		return model.OutcomeNeutral
	}
	if s.Puzzle.Contains(r) {
		s.Puzzle.Reveal(r)
		return model.OutcomeCorrect
	}
	return model.OutcomeIncorrect
}

// Play evaluates a guess, appends it to the history, and charges a life
// for an Incorrect outcome.
func (s *Session) Play(r rune) model.GuessRecord {
	record := model.GuessRecord{Char: r, Outcome: s.Evaluate(r)}
	s.History = append(s.History, record)
	if record.Outcome == model.OutcomeIncorrect {
		s.Lives--
	}
	return record
}

func (s *Session) alreadyGuessed(r rune) bool {
	for _, record := range s.History {
		if record.Char == r {
			return true
		}
	}
	return false
}
