package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/hangman/internal/model"
)

func gamesFromResults(results ...bool) []model.GameAggregate {
	games := make([]model.GameAggregate, len(results))
	for i, won := range results {
		games[i] = model.GameAggregate{GameID: int64(i + 1), Won: won}
	}
	return games
}

func TestWinRate(t *testing.T) {
	games := gamesFromResults(true, false, true, true)
	if got := WinRate(games); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if got := WinRate(nil); got != 0 {
		t.Fatalf("expected 0 for no games, got %v", got)
	}
}

func TestStreaks(t *testing.T) {
	games := gamesFromResults(true, true, false, true, true, true)
	current, best := Streaks(games)
	if current != 3 {
		t.Fatalf("expected current streak 3, got %d", current)
	}
	if best != 3 {
		t.Fatalf("expected best streak 3, got %d", best)
	}

	current, best = Streaks(gamesFromResults(true, true, false))
	if current != 0 || best != 2 {
		t.Fatalf("unexpected streaks: current %d best %d", current, best)
	}
}

func TestMovingAverage(t *testing.T) {
	values := []float64{1, 0, 1, 1}
	out := MovingAverage(values, 2)
	expected := []float64{1, 0.5, 0.5, 1}
	for i := range expected {
		if out[i] != expected[i] {
			t.Fatalf("index %d: expected %v, got %v", i, expected[i], out[i])
		}
	}
}

func TestSparklineConstantSeries(t *testing.T) {
	out := Sparkline([]float64{1, 1, 1})
	if len(out) != 3 {
		t.Fatalf("expected 3 chars, got %q", out)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	games := gamesFromResults(true, false)
	games[1].Incorrect = 4
	if err := RenderSummary(&buf, games); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Games: 2", "Win Rate: 50.0%", "Avg Wrong Guesses: 2.00", "Best Streak: 1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderLetterTableSortsByMissRate(t *testing.T) {
	var buf bytes.Buffer
	aggs := []model.LetterAggregate{
		{Char: "a", Correct: 9, Incorrect: 1},
		{Char: "z", Correct: 0, Incorrect: 5},
	}
	if err := RenderLetterTable(&buf, aggs); err != nil {
		t.Fatalf("render letter table: %v", err)
	}
	out := buf.String()
	zIdx := strings.Index(out, "z")
	aIdx := strings.Index(out, "a")
	if zIdx < 0 || aIdx < 0 || zIdx > aIdx {
		t.Fatalf("expected z (most missed) before a:\n%s", out)
	}
}

func TestRenderWinCurveEmptyIsSilent(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderWinCurve(&buf, nil, 5); err != nil {
		t.Fatalf("render win curve: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
