package stats

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "hangman.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(45 * time.Second)
		rec := model.GameRecord{
			StartedAt:  start,
			EndedAt:    end,
			Word:       "lantern",
			Won:        i != 1,
			Lives:      8,
			LivesLeft:  4,
			CorpusPath: "embedded",
			DurationMs: end.Sub(start).Milliseconds(),
		}
		guesses := []model.GuessRecord{
			{Char: 'l', Outcome: model.OutcomeCorrect},
			{Char: 'q', Outcome: model.OutcomeIncorrect},
		}
		if _, err := st.InsertGame(ctx, rec, guesses); err != nil {
			t.Fatalf("insert game: %v", err)
		}
	}

	report, err := BuildReport(ctx, st, model.StatsConfig{Last: 2})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(report.Games))
	}
	if len(report.Letters) == 0 {
		t.Fatalf("expected letter aggregates")
	}
}
