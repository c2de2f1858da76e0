// Package stats contains statistics calculations and reporting.
package stats

import (
	"context"

	"github.com/verte-zerg/hangman/internal/model"
	"github.com/verte-zerg/hangman/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Games   []model.GameAggregate
	Letters []model.LetterAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	games, err := st.ListGames(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(games) > cfg.Last {
		games = games[len(games)-cfg.Last:]
	}

	letters, err := st.GetLetterAggregates(ctx, cfg.Last)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Games:   games,
		Letters: letters,
	}, nil
}
