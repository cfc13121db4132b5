package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          int
	LogLevel      string
	NatsURL       string
	NatsToken     string
	DatabaseURL   string
	SQLitePath    string
	RemoteURL     string
	RemoteTimeout time.Duration
	LocalDelay    time.Duration
	LexiconPath   string
	CORSOrigins   []string
}

func Load() Config {
	return Config{
		Port:          envInt("BETTERFRIEND_PORT", 8760),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		NatsURL:       envStr("NATS_URL", ""),
		NatsToken:     envStr("NATS_TOKEN", ""),
		DatabaseURL:   envStr("DATABASE_URL", ""),
		SQLitePath:    envStr("SQLITE_PATH", ""),
		RemoteURL:     envStr("REMOTE_ANALYZER_URL", ""),
		RemoteTimeout: envDuration("REMOTE_TIMEOUT", 10*time.Second),
		LocalDelay:    envDuration("LOCAL_DELAY", 0),
		LexiconPath:   envStr("LEXICON_OVERLAY", ""),
		CORSOrigins:   envList("CORS_ORIGINS", []string{"*"}),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// envDuration accepts Go duration strings ("1s", "250ms").
func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return fallback
}

// envList splits a comma-separated value, dropping empty items.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
