package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/betterfriend/internal/api"
	"github.com/MikeSquared-Agency/betterfriend/internal/config"
	"github.com/MikeSquared-Agency/betterfriend/internal/hermes"
	"github.com/MikeSquared-Agency/betterfriend/internal/processor"
)

func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the optional NATS responder",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	envFound := loadEnv()
	cfg := config.Load()
	logger := setupLogging(cfg.LogLevel, os.Stdout)
	if !envFound {
		logger.Info("no .env file found, using environment variables")
	}

	logger.Info("betterfriend starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lex, err := loadLexicon(cfg.LexiconPath)
	if err != nil {
		logger.Error("failed to load lexicon", "error", err)
		return err
	}

	analyzer, mode := buildAnalyzer(cfg, lex, logger)
	logger.Info("analyzer ready", "mode", mode, "remote_url", cfg.RemoteURL)

	// Telemetry store (optional)
	repo, backend, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open telemetry store", "error", err)
		return err
	}
	if repo != nil {
		defer repo.Close()
		logger.Info("telemetry store connected", "backend", backend)
	} else {
		logger.Warn("no telemetry store configured, stats disabled")
	}

	// NATS/Hermes (optional)
	var hermesClient *hermes.Client
	var publisher processor.Publisher
	if cfg.NatsURL != "" {
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, logger)
		if err != nil {
			logger.Error("failed to connect to NATS", "error", err)
			return err
		}
		defer hermesClient.Close()
		publisher = hermesClient
		logger.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		logger.Warn("NATS not configured, running HTTP only")
	}

	proc := processor.New(analyzer, repo, publisher, logger)

	if hermesClient != nil {
		timeout := cfg.RemoteTimeout + cfg.LocalDelay + 5*time.Second
		if err := hermesClient.Serve(hermes.SubjectAnalysisRequest, timeout, proc.HandleAnalysisRequest); err != nil {
			logger.Error("failed to serve analysis requests", "error", err)
			return err
		}
		if err := hermesClient.Publish(hermes.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
			"mode":      mode,
		}); err != nil {
			logger.Warn("failed to publish registration", "error", err)
		}
	}

	// HTTP API
	srv := api.NewServer(api.Options{
		Port:        cfg.Port,
		Mode:        mode,
		CORSOrigins: cfg.CORSOrigins,
		Processor:   proc,
		Store:       repo,
		Logger:      logger,
	})
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	logger.Info("betterfriend ready", "port", cfg.Port, "mode", mode)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server error", "error", err)
			return fmt.Errorf("http server: %w", err)
		}
	}
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP shutdown incomplete", "error", err)
	}
	cancel()
	logger.Info("betterfriend stopped")
	return nil
}
