// Package store persists anonymous analysis telemetry. Only counts and
// scores are written; transcript text and speaker names never are.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/conversation"
	"github.com/MikeSquared-Agency/betterfriend/internal/engine"
)

// Record summarizes one served analysis.
type Record struct {
	ID             uuid.UUID
	Goal           analysis.Goal
	Messages       int
	Speakers       int
	SentimentScore float64
	SentimentLabel string
	Gottman        analysis.Gottman
	Source         string
	Transport      string
	CreatedAt      time.Time
}

// GoalStats aggregates the records of one goal.
type GoalStats struct {
	Goal          string  `json:"goal"`
	Analyses      int     `json:"analyses"`
	MeanSentiment float64 `json:"mean_sentiment"`
}

// Repository is implemented by the Postgres and SQLite stores.
type Repository interface {
	// RecordAnalysis stores one record.
	RecordAnalysis(ctx context.Context, r Record) error

	// GoalStats returns per-goal aggregates ordered by goal name.
	GoalStats(ctx context.Context) ([]GoalStats, error)

	Ping(ctx context.Context) error
	Close() error
}

// NewRecord builds the telemetry record for a served bundle.
func NewRecord(b *engine.Bundle, goal analysis.Goal, transport string) Record {
	speakers := make(map[string]bool)
	for _, m := range b.ParsedMessages {
		if m.Speaker != conversation.UnknownSpeaker {
			speakers[m.Speaker] = true
		}
	}
	return Record{
		ID:             uuid.New(),
		Goal:           goal,
		Messages:       len(b.ParsedMessages),
		Speakers:       len(speakers),
		SentimentScore: b.Analysis.Sentiment.Score,
		SentimentLabel: b.Analysis.Sentiment.Label,
		Gottman:        b.Analysis.Frameworks.Gottman,
		Source:         b.Source,
		Transport:      transport,
		CreatedAt:      time.Now().UTC(),
	}
}
