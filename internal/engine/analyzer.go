package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
)

// Local is the Analyzer backed by the in-process Engine. A non-zero delay is
// waited out before the result is returned.
type Local struct {
	engine *Engine
	delay  time.Duration
}

func NewLocal(e *Engine, delay time.Duration) *Local {
	return &Local{engine: e, delay: delay}
}

func (l *Local) Analyze(ctx context.Context, text string, goal analysis.Goal) (*Bundle, error) {
	b := l.engine.Run(text, goal)
	if l.delay <= 0 {
		return b, nil
	}

	timer := time.NewTimer(l.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return b, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Fallback tries the primary analyzer once and falls back to local on any
// error, cancellation included. A nil primary always uses local.
type Fallback struct {
	primary Analyzer
	local   Analyzer
	logger  *slog.Logger
}

func NewFallback(primary, local Analyzer, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{primary: primary, local: local, logger: logger}
}

func (f *Fallback) Analyze(ctx context.Context, text string, goal analysis.Goal) (*Bundle, error) {
	if f.primary != nil {
		b, err := f.primary.Analyze(ctx, text, goal)
		if err == nil {
			return b, nil
		}
		f.logger.Warn("remote analysis failed, falling back to local analysis", "error", err)
	}
	return f.local.Analyze(ctx, text, goal)
}
