package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/engine"
	"github.com/MikeSquared-Agency/betterfriend/internal/hermes"
	"github.com/MikeSquared-Agency/betterfriend/internal/store"
)

// Transports recorded with each analysis.
const (
	TransportHTTP = "http"
	TransportNATS = "nats"
	TransportCLI  = "cli"
)

// Publisher is the subset of hermes.Client the processor needs.
type Publisher interface {
	Publish(subject string, data any) error
}

// Processor serves analyses to every transport and records their telemetry.
type Processor struct {
	analyzer  engine.Analyzer
	store     store.Repository
	publisher Publisher
	logger    *slog.Logger
}

// New builds a Processor. The store and publisher are optional.
func New(a engine.Analyzer, s store.Repository, pub Publisher, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		analyzer:  a,
		store:     s,
		publisher: pub,
		logger:    logger,
	}
}

// Analyze runs one analysis and records it. Telemetry failures are logged and
// never fail the analysis.
func (p *Processor) Analyze(ctx context.Context, text string, goal analysis.Goal, transport string) (*engine.Bundle, error) {
	b, err := p.analyzer.Analyze(ctx, text, goal)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}
	p.record(ctx, b, goal, transport)
	return b, nil
}

// HandleAnalysisRequest is the NATS handler for betterfriend.analysis.request.
func (p *Processor) HandleAnalysisRequest(ctx context.Context, subject string, data []byte) (any, error) {
	var req hermes.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		p.logger.Warn("failed to parse analysis request", "subject", subject, "error", err)
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	goal, err := analysis.ParseGoal(req.Goal)
	if err != nil {
		p.logger.Warn("rejected analysis request", "goal", req.Goal, "error", err)
		return nil, err
	}

	b, err := p.Analyze(ctx, req.Text, goal, TransportNATS)
	if err != nil {
		p.logger.Error("analysis request failed", "goal", goal, "error", err)
		return nil, err
	}
	return b, nil
}

func (p *Processor) record(ctx context.Context, b *engine.Bundle, goal analysis.Goal, transport string) {
	rec := store.NewRecord(b, goal, transport)

	if p.store != nil {
		if err := p.store.RecordAnalysis(ctx, rec); err != nil {
			p.logger.Error("failed to record analysis", "id", rec.ID, "error", err)
		}
	}

	if p.publisher != nil {
		if err := p.publisher.Publish(hermes.SubjectAnalysisCompleted, completedEvent(rec)); err != nil {
			p.logger.Warn("failed to publish analysis event", "id", rec.ID, "error", err)
		}
	}

	p.logger.Info("analysis served",
		"id", rec.ID,
		"goal", goal,
		"source", rec.Source,
		"transport", transport,
		"messages", rec.Messages,
	)
}

func completedEvent(r store.Record) hermes.AnalysisCompleted {
	g := r.Gottman
	return hermes.AnalysisCompleted{
		ID:             r.ID.String(),
		Goal:           string(r.Goal),
		Source:         r.Source,
		Transport:      r.Transport,
		Messages:       r.Messages,
		SentimentScore: r.SentimentScore,
		SentimentLabel: r.SentimentLabel,
		Bids:           g.Bids,
		TurningToward:  g.TurningToward,
		TurningAway:    g.TurningAway,
		TurningAgainst: g.TurningAgainst,
		Criticism:      g.Criticism,
		Defensiveness:  g.Defensiveness,
		Stonewalling:   g.Stonewalling,
		RepairAttempts: g.RepairAttempts,
		Timestamp:      r.CreatedAt.Format(time.RFC3339),
	}
}
