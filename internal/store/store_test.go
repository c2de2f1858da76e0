package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/hangman/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "hangman.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func insertTestGame(t *testing.T, st *Store, i int, won bool, guesses []model.GuessRecord) int64 {
	t.Helper()
	start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
	end := start.Add(30 * time.Second)
	rec := model.GameRecord{
		StartedAt:  start,
		EndedAt:    end,
		Word:       "banana",
		Won:        won,
		Lives:      8,
		LivesLeft:  5,
		CorpusPath: "embedded",
		DurationMs: end.Sub(start).Milliseconds(),
	}
	id, err := st.InsertGame(context.Background(), rec, guesses)
	if err != nil {
		t.Fatalf("insert game: %v", err)
	}
	return id
}

func TestInsertAndListGames(t *testing.T) {
	st := openTestStore(t)
	guesses := []model.GuessRecord{
		{Char: 'b', Outcome: model.OutcomeCorrect},
		{Char: 'x', Outcome: model.OutcomeIncorrect},
		{Char: 'x', Outcome: model.OutcomeNeutral},
	}
	insertTestGame(t, st, 0, true, guesses)
	insertTestGame(t, st, 1, false, nil)

	games, err := st.ListGames(context.Background(), model.StatsConfig{})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
	first := games[0]
	if !first.Won || first.Correct != 1 || first.Incorrect != 1 {
		t.Fatalf("unexpected first aggregate: %+v", first)
	}
	if games[1].Won {
		t.Fatalf("expected second game lost")
	}
}

func TestListGamesSinceFilter(t *testing.T) {
	st := openTestStore(t)
	insertTestGame(t, st, 0, true, nil)
	insertTestGame(t, st, 10, false, nil)

	since := time.Unix(0, 0).Add(5 * time.Minute)
	games, err := st.ListGames(context.Background(), model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
}

func TestGetLetterAggregates(t *testing.T) {
	st := openTestStore(t)
	insertTestGame(t, st, 0, false, []model.GuessRecord{
		{Char: 'a', Outcome: model.OutcomeCorrect},
		{Char: 'z', Outcome: model.OutcomeIncorrect},
	})
	insertTestGame(t, st, 1, true, []model.GuessRecord{
		{Char: 'z', Outcome: model.OutcomeIncorrect},
	})

	aggs, err := st.GetLetterAggregates(context.Background(), 0)
	if err != nil {
		t.Fatalf("letter aggregates: %v", err)
	}
	byChar := map[string]model.LetterAggregate{}
	for _, agg := range aggs {
		byChar[agg.Char] = agg
	}
	if byChar["z"].Incorrect != 2 {
		t.Fatalf("expected z missed twice, got %+v", byChar["z"])
	}
	if byChar["a"].Correct != 1 {
		t.Fatalf("expected a correct once, got %+v", byChar["a"])
	}
}

func TestGetLetterAggregatesWindow(t *testing.T) {
	st := openTestStore(t)
	insertTestGame(t, st, 0, false, []model.GuessRecord{
		{Char: 'q', Outcome: model.OutcomeIncorrect},
	})
	insertTestGame(t, st, 1, true, []model.GuessRecord{
		{Char: 'a', Outcome: model.OutcomeCorrect},
	})

	aggs, err := st.GetLetterAggregates(context.Background(), 1)
	if err != nil {
		t.Fatalf("letter aggregates: %v", err)
	}
	if len(aggs) != 1 || aggs[0].Char != "a" {
		t.Fatalf("expected only the latest game's letters, got %+v", aggs)
	}
}

func TestListGameWordsNewestFirst(t *testing.T) {
	st := openTestStore(t)
	insertTestGame(t, st, 0, true, nil)
	insertTestGame(t, st, 1, false, nil)

	records, err := st.ListGameWords(context.Background(), 1)
	if err != nil {
		t.Fatalf("list game words: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Won {
		t.Fatalf("expected newest (lost) game first: %+v", records[0])
	}
}
