package processor

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/engine"
	"github.com/MikeSquared-Agency/betterfriend/internal/hermes"
	"github.com/MikeSquared-Agency/betterfriend/internal/store"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type memStore struct {
	mu      sync.Mutex
	records []store.Record
	err     error
}

func (m *memStore) RecordAnalysis(_ context.Context, r store.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, r)
	return nil
}

func (m *memStore) GoalStats(context.Context) ([]store.GoalStats, error) { return nil, nil }
func (m *memStore) Ping(context.Context) error                           { return nil }
func (m *memStore) Close() error                                         { return nil }

type capturePublisher struct {
	mu       sync.Mutex
	subjects []string
	events   []any
}

func (c *capturePublisher) Publish(subject string, data any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subjects = append(c.subjects, subject)
	c.events = append(c.events, data)
	return nil
}

type failingAnalyzer struct{}

func (failingAnalyzer) Analyze(context.Context, string, analysis.Goal) (*engine.Bundle, error) {
	return nil, context.DeadlineExceeded
}

func newTestProcessor(s store.Repository, pub Publisher) *Processor {
	local := engine.NewLocal(engine.New(nil, discardLogger()), 0)
	return New(local, s, pub, discardLogger())
}

func TestAnalyze_RecordsAndPublishes(t *testing.T) {
	s := &memStore{}
	pub := &capturePublisher{}
	p := newTestProcessor(s, pub)

	b, err := p.Analyze(context.Background(), "Me: How are you?\nPartner: Fine.", analysis.GoalReconnect, TransportHTTP)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(b.ParsedMessages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(b.ParsedMessages))
	}

	if len(s.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(s.records))
	}
	rec := s.records[0]
	if rec.Goal != analysis.GoalReconnect || rec.Transport != TransportHTTP || rec.Source != engine.SourceLocal {
		t.Errorf("unexpected record %+v", rec)
	}

	if len(pub.subjects) != 1 || pub.subjects[0] != hermes.SubjectAnalysisCompleted {
		t.Fatalf("expected one completed event, got %v", pub.subjects)
	}
	evt, ok := pub.events[0].(hermes.AnalysisCompleted)
	if !ok {
		t.Fatalf("unexpected event type %T", pub.events[0])
	}
	if evt.ID != rec.ID.String() || evt.Bids != b.Analysis.Frameworks.Gottman.Bids || evt.Messages != 2 {
		t.Errorf("event does not match record: %+v", evt)
	}
}

func TestAnalyze_TelemetryErrorIgnored(t *testing.T) {
	p := newTestProcessor(&memStore{err: errors.New("disk full")}, nil)

	if _, err := p.Analyze(context.Background(), "Me: hi", analysis.GoalGeneral, TransportCLI); err != nil {
		t.Fatalf("telemetry failure must not fail the analysis: %v", err)
	}
}

func TestAnalyze_NoStoreNoPublisher(t *testing.T) {
	p := newTestProcessor(nil, nil)

	b, err := p.Analyze(context.Background(), "", analysis.GoalGeneral, TransportCLI)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if len(b.Suggestions) != 3 {
		t.Errorf("expected 3 filler suggestions, got %d", len(b.Suggestions))
	}
}

func TestAnalyze_AnalyzerError(t *testing.T) {
	s := &memStore{}
	p := New(failingAnalyzer{}, s, nil, discardLogger())

	_, err := p.Analyze(context.Background(), "Me: hi", analysis.GoalGeneral, TransportHTTP)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped deadline error, got %v", err)
	}
	if len(s.records) != 0 {
		t.Errorf("failed analysis must not be recorded")
	}
}

func TestHandleAnalysisRequest(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"valid", `{"text":"Me: Thank you!","goal":"reconnect"}`, ""},
		{"empty goal means general", `{"text":"Me: hi"}`, ""},
		{"unknown goal", `{"text":"Me: hi","goal":"party"}`, "unknown goal"},
		{"bad json", `{"text":`, "invalid request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &memStore{}
			p := newTestProcessor(s, nil)

			reply, err := p.HandleAnalysisRequest(context.Background(), hermes.SubjectAnalysisRequest, []byte(tt.payload))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			b, ok := reply.(*engine.Bundle)
			if !ok {
				t.Fatalf("unexpected reply type %T", reply)
			}
			if _, err := json.Marshal(b); err != nil {
				t.Fatalf("reply must encode: %v", err)
			}
			if len(s.records) != 1 || s.records[0].Transport != TransportNATS {
				t.Errorf("expected one nats record, got %+v", s.records)
			}
		})
	}
}
