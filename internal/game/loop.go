package game

import "github.com/verte-zerg/hangman/internal/model"

// TurnView is the in-progress render request handed to the presenter.
type TurnView struct {
	Lives      int
	TotalLives int
	Masked     string
	History    []model.GuessRecord
}

// EndView is the terminal render request.
type EndView struct {
	Word string
	Won  bool
}

// Input yields one validated lowercase character per call. Implementations
// block until a character is available; format validation is theirs, not
// the loop's.
type Input interface {
	Next() (rune, error)
}

// Presenter accepts render requests. The loop consumes no return values.
type Presenter interface {
	RenderTurn(TurnView)
	RenderEnd(EndView)
}

// Loop drives a session turn by turn against its collaborators.
type Loop struct {
	input     Input
	presenter Presenter
}

// NewLoop wires the loop to its input and presentation collaborators.
func NewLoop(input Input, presenter Presenter) *Loop {
	return &Loop{input: input, presenter: presenter}
}

// Turn advances the session one step. Terminal states render the endgame
// view and stick; otherwise it renders the current state, solicits one
// guess, and applies it.
func (l *Loop) Turn(s *Session) (State, error) {
	switch s.State() {
	case StateWon:
		l.presenter.RenderEnd(EndView{Word: s.Puzzle.String(), Won: true})
		return StateWon, nil
	case StateLost:
		l.presenter.RenderEnd(EndView{Word: s.Puzzle.String(), Won: false})
		return StateLost, nil
	}

	l.presenter.RenderTurn(TurnView{
		Lives:      s.Lives,
		TotalLives: s.TotalLives(),
		Masked:     s.Puzzle.Display(),
		History:    append([]model.GuessRecord(nil), s.History...),
	})
	r, err := l.input.Next()
	if err != nil {
		return StateInProgress, err
	}
	s.Play(r)
	return StateInProgress, nil
}

// Run repeats Turn until the session terminates and reports the outcome.
func (l *Loop) Run(s *Session) (State, error) {
	for {
		state, err := l.Turn(s)
		if err != nil {
			return state, err
		}
		if state != StateInProgress {
			return state, nil
		}
	}
}
