package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
PRAGMA busy_timeout = 5000;
CREATE TABLE IF NOT EXISTS analyses (
	id              TEXT PRIMARY KEY,
	goal            TEXT NOT NULL,
	messages        INTEGER NOT NULL,
	speakers        INTEGER NOT NULL,
	sentiment_score REAL NOT NULL,
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
	created_at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_analyses_goal ON analyses(goal);`

// SQLite is the single-file Repository used when no Postgres is configured.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) RecordAnalysis(ctx context.Context, r Record) error {
	g := r.Gottman
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analyses (id, goal, messages, speakers, sentiment_score, sentiment_label,
			bids, turning_toward, turning_away, turning_against, criticism, defensiveness,
			stonewalling, repair_attempts, source, transport, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID.String(), string(r.Goal), r.Messages, r.Speakers, r.SentimentScore, r.SentimentLabel,
		g.Bids, g.TurningToward, g.TurningAway, g.TurningAgainst, g.Criticism, g.Defensiveness,
		g.Stonewalling, g.RepairAttempts, r.Source, r.Transport, r.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}
	return nil
}

func (s *SQLite) GoalStats(ctx context.Context) ([]GoalStats, error) {
	rows, err := s.db.QueryContext(ctx, `
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

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
