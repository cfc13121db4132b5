package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS analyses (
	id              UUID PRIMARY KEY,
	goal            TEXT NOT NULL,
	messages        INTEGER NOT NULL,
	speakers        INTEGER NOT NULL,
	sentiment_score DOUBLE PRECISION NOT NULL,
	sentiment_label TEXT NOT NULL,
	bids            INTEGER NOT NULL,
	turning_toward  INTEGER NOT NULL,
	turning_away    INTEGER NOT NULL,
	turning_against INTEGER NOT NULL,
	criticism       INTEGER NOT NULL,
	defensiveness   INTEGER NOT NULL,
	stonewalling    INTEGER NOT NULL,
	repair_attempts INTEGER NOT NULL,
	source          TEXT NOT NULL,
	transport       TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_goal ON analyses(goal);`

// Postgres is the pgx-backed Repository.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (s *Postgres) RecordAnalysis(ctx context.Context, r Record) error {
	g := r.Gottman
	_, err := s.pool.Exec(ctx, `
		INSERT INTO analyses (id, goal, messages, speakers, sentiment_score, sentiment_label,
			bids, turning_toward, turning_away, turning_against, criticism, defensiveness,
			stonewalling, repair_attempts, source, transport, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		r.ID, string(r.Goal), r.Messages, r.Speakers, r.SentimentScore, r.SentimentLabel,
		g.Bids, g.TurningToward, g.TurningAway, g.TurningAgainst, g.Criticism, g.Defensiveness,
		g.Stonewalling, g.RepairAttempts, r.Source, r.Transport, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func (s *Postgres) GoalStats(ctx context.Context) ([]GoalStats, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT goal, COUNT(*), COALESCE(AVG(sentiment_score), 0)
		FROM analyses
		GROUP BY goal
		ORDER BY goal`)
	if err != nil {
		return nil, fmt.Errorf("query goal stats: %w", err)
	}
	defer rows.Close()

	stats := []GoalStats{}
	for rows.Next() {
		var gs GoalStats
		if err := rows.Scan(&gs.Goal, &gs.Analyses, &gs.MeanSentiment); err != nil {
			return nil, fmt.Errorf("scan goal stats: %w", err)
		}
		stats = append(stats, gs)
	}
	return stats, rows.Err()
}

func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Postgres) Close() error {
	s.pool.Close()
	return nil
}
