// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/hangman/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for game history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			word TEXT NOT NULL,
			won INTEGER NOT NULL,
			lives INTEGER NOT NULL,
			lives_left INTEGER NOT NULL,
			corpus_path TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS game_guesses (
			game_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			char TEXT NOT NULL,
			outcome TEXT NOT NULL,
			PRIMARY KEY (game_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_ended_at ON games(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_game_guesses_char ON game_guesses(char);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertGame stores a completed game and its guess history in order.
func (s *Store) InsertGame(ctx context.Context, rec model.GameRecord, guesses []model.GuessRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	won := 0
	if rec.Won {
		won = 1
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO games (started_at, ended_at, word, won, lives, lives_left, corpus_path, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Word,
		won,
		rec.Lives,
		rec.LivesLeft,
		rec.CorpusPath,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(guesses) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO game_guesses (game_id, position, char, outcome)
			 VALUES (?, ?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, g := range guesses {
			if _, err := stmt.ExecContext(ctx, id, i, string(g.Char), g.Outcome.String()); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListGames returns game aggregates filtered by stats config.
func (s *Store) ListGames(ctx context.Context, cfg model.StatsConfig) ([]model.GameAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "g.ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT g.id, g.ended_at, g.won, g.duration_ms,
			COALESCE(SUM(CASE WHEN gg.outcome = 'correct' THEN 1 ELSE 0 END), 0) AS correct,
			COALESCE(SUM(CASE WHEN gg.outcome = 'incorrect' THEN 1 ELSE 0 END), 0) AS incorrect
		FROM games g
		LEFT JOIN game_guesses gg ON gg.game_id = g.id
		WHERE %s
		GROUP BY g.id
		ORDER BY g.ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var games []model.GameAggregate
	for rows.Next() {
		var agg model.GameAggregate
		var endedAt string
		var won int
		if err := rows.Scan(&agg.GameID, &endedAt, &won, &agg.DurationMs, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		agg.Won = won != 0
		games = append(games, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return games, nil
}

// GetLetterAggregates sums guess outcomes per letter over the most recent games.
// A window of 0 or less means all games.
func (s *Store) GetLetterAggregates(ctx context.Context, window int) ([]model.LetterAggregate, error) {
	if window <= 0 {
		window = -1 // SQLite: LIMIT -1 is unlimited.
	}
	query := `WITH recent_games AS (
		SELECT id FROM games
		ORDER BY ended_at DESC
		LIMIT ?
	)
	SELECT gg.char,
		SUM(CASE WHEN gg.outcome = 'correct' THEN 1 ELSE 0 END) AS correct,
		SUM(CASE WHEN gg.outcome = 'incorrect' THEN 1 ELSE 0 END) AS incorrect
	FROM game_guesses gg
	JOIN recent_games r ON r.id = gg.game_id
	GROUP BY gg.char`

	rows, err := s.db.QueryContext(ctx, query, window)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.LetterAggregate
	for rows.Next() {
		var agg model.LetterAggregate
		if err := rows.Scan(&agg.Char, &agg.Correct, &agg.Incorrect); err != nil {
			return nil, err
		}
		result = append(result, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListGameWords returns recent games' words and results, newest first.
func (s *Store) ListGameWords(ctx context.Context, limit int) ([]model.GameRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT started_at, ended_at, word, won, lives, lives_left, corpus_path, duration_ms
		FROM games
		ORDER BY ended_at DESC
		LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		var startedAt, endedAt string
		var won int
		if err := rows.Scan(&startedAt, &endedAt, &rec.Word, &won, &rec.Lives, &rec.LivesLeft, &rec.CorpusPath, &rec.DurationMs); err != nil {
			return nil, err
		}
		started, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		ended, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		rec.StartedAt = started
		rec.EndedAt = ended
		rec.Won = won != 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
