package config

import (
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress  string
	DatabaseURI string
	LogLevel    slog.Level
}

// New reads flags from args, then lets non-empty environment variables
// (optionally seeded from a .env file) override them.
func New(args []string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	var level string

	fs := flag.NewFlagSet("coffeeshop", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", "localhost:3000", "server address and port")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI; orders are kept in memory when empty")
	fs.StringVar(&level, "l", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DatabaseURI = getEnv("DATABASE_URI", cfg.DatabaseURI)
	level = getEnv("LOG_LEVEL", level)

	if port := getEnv("PORT", ""); port != "" {
		addr, err := withPort(cfg.RunAddress, port)
		if err != nil {
			return nil, err
		}
		cfg.RunAddress = addr
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return cfg, nil
}

func withPort(addr, port string) (string, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("invalid run address %q: %w", addr, err)
	}
	return net.JoinHostPort(host, port), nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
