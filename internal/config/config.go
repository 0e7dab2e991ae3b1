package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/danmuck/bitsctl/internal/logging"
	"github.com/danmuck/bitsctl/internal/packet"
	"github.com/danmuck/bitsctl/internal/report"
)

// DefaultMaxInputLen caps accepted transmissions, in hex characters.
const DefaultMaxInputLen = 1 << 20

type Config struct {
	Input       string
	Format      string
	LogLevel    string
	MaxDepth    int
	MaxInputLen int
	Server      ServerConfig
}

type ServerConfig struct {
	Addr            string
	Node            string
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		Format:      string(report.FormatText),
		LogLevel:    "info",
		MaxDepth:    packet.DefaultMaxDepth,
		MaxInputLen: DefaultMaxInputLen,
		Server: ServerConfig{
			Addr:            ":9160",
			Node:            "bitsctl",
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

func Validate(cfg Config) error {
	if _, err := report.ParseFormat(cfg.Format); err != nil {
		return fmt.Errorf("config format invalid: %w", err)
	}
	if strings.TrimSpace(cfg.LogLevel) != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config log_level unknown: %q", cfg.LogLevel)
		}
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("config max_depth must not be negative")
	}
	if cfg.MaxInputLen <= 0 {
		return fmt.Errorf("config max_input_len must be positive")
	}
	if err := ValidateServer(cfg.Server); err != nil {
		return fmt.Errorf("server invalid: %w", err)
	}
	return nil
}

func ValidateServer(cfg ServerConfig) error {
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("addr is required")
	}
	if strings.TrimSpace(cfg.Node) == "" {
		return fmt.Errorf("node is required")
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}
