package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MikeSquared-Agency/betterfriend/internal/config"
	"github.com/MikeSquared-Agency/betterfriend/internal/engine"
	"github.com/MikeSquared-Agency/betterfriend/internal/lexicon"
	"github.com/MikeSquared-Agency/betterfriend/internal/remote"
	"github.com/MikeSquared-Agency/betterfriend/internal/store"
)

// Analyzer modes reported by the status endpoint.
const (
	modeLocal  = "local"
	modeRemote = "remote"
)

func loadLexicon(path string) (*lexicon.Lexicon, error) {
	if path == "" {
		return lexicon.Default(), nil
	}
	overlay, err := lexicon.LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	lex, err := lexicon.WithOverlay(lexicon.Default(), overlay)
	if err != nil {
		return nil, fmt.Errorf("apply lexicon overlay %s: %w", path, err)
	}
	return lex, nil
}

// buildAnalyzer returns the remote-first analyzer when a remote URL is set,
// otherwise the local pipeline alone.
func buildAnalyzer(cfg config.Config, lex *lexicon.Lexicon, logger *slog.Logger) (engine.Analyzer, string) {
	local := engine.NewLocal(engine.New(lex, logger), cfg.LocalDelay)
	if cfg.RemoteURL == "" {
		return local, modeLocal
	}
	client := remote.NewClient(cfg.RemoteURL, cfg.RemoteTimeout)
	return engine.NewFallback(client, local, logger), modeRemote
}

// openStore picks Postgres, then SQLite, then no store.
func openStore(ctx context.Context, cfg config.Config) (store.Repository, string, error) {
	switch {
	case cfg.DatabaseURL != "":
		pg, err := store.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, "", err
		}
		return pg, "postgres", nil
	case cfg.SQLitePath != "":
		lite, err := store.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, "", err
		}
		return lite, "sqlite", nil
	default:
		return nil, "", nil
	}
}
