package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := NewRoot().Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "betterfriend",
		Short:        "Conversation coach: analyze chat transcripts and suggest next messages",
		SilenceUsage: true,
	}
	root.AddCommand(
		ServeCmd(),
		AnalyzeCmd(),
		ScriptsCmd(),
	)
	return root
}

// loadEnv reads a local .env file if present. It reports whether one was found.
func loadEnv() bool {
	return godotenv.Load() == nil
}

func setupLogging(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
