// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/hangman/internal/model"
)

const sparkChars = " .:-=+*#%@"

// WinRate computes the fraction of games won.
func WinRate(games []model.GameAggregate) float64 {
	if len(games) == 0 {
		return 0
	}
	won := 0
	for _, g := range games {
		if g.Won {
			won++
		}
	}
	return float64(won) / float64(len(games))
}

// Streaks computes the current and best win streaks over games in
// chronological order.
func Streaks(games []model.GameAggregate) (current, best int) {
	run := 0
	for _, g := range games {
		if g.Won {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return run, best
}

// WinSeries maps games to 1/0 values for curve rendering.
func WinSeries(games []model.GameAggregate) []float64 {
	out := make([]float64, len(games))
	for i, g := range games {
		if g.Won {
			out[i] = 1
		}
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints a summary table for games.
func RenderSummary(w io.Writer, games []model.GameAggregate) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	var totalWrong int
	for _, g := range games {
		totalWrong += g.Incorrect
	}
	current, best := Streaks(games)
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Games: %d\n", len(games)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Win Rate: %.1f%%\n", WinRate(games)*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Wrong Guesses: %.2f\n", float64(totalWrong)/float64(len(games))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Current Streak: %d\n", current); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best Streak: %d\n", best); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderWinCurve prints the win-rate moving average as a sparkline.
func RenderWinCurve(w io.Writer, games []model.GameAggregate, window int) error {
	if len(games) == 0 {
		return nil
	}
	curve := MovingAverage(WinSeries(games), window)
	if _, err := fmt.Fprintln(w, "Win Rate Trend"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, Sparkline(curve)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderLetterTable prints per-letter aggregates, most-missed first.
func RenderLetterTable(w io.Writer, aggs []model.LetterAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No letter stats found.")
		return err
	}
	type row struct {
		char      string
		missRate  float64
		correct   int
		incorrect int
	}
	rows := make([]row, 0, len(aggs))
	for _, agg := range aggs {
		total := agg.Correct + agg.Incorrect
		missRate := 0.0
		if total > 0 {
			missRate = float64(agg.Incorrect) / float64(total)
		}
		rows = append(rows, row{
			char:      agg.Char,
			missRate:  missRate,
			correct:   agg.Correct,
			incorrect: agg.Incorrect,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].missRate == rows[j].missRate {
			return rows[i].char < rows[j].char
		}
		return rows[i].missRate > rows[j].missRate
	})

	if _, err := fmt.Fprintln(w, "Per-Letter"); err != nil {
		return err
	}

	headers := []string{"Letter", "Miss Rate", "Correct", "Incorrect"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.char,
			fmt.Sprintf("%.1f%%", r.missRate*100),
			fmt.Sprintf("%d", r.correct),
			fmt.Sprintf("%d", r.incorrect),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	lines := formatTable(headers, tableRows, rightAlign)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
