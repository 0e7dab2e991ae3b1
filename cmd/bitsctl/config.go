package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/bitsctl/internal/config"
)

// bitsctl config.toml key mapping to runtime settings.
type fileConfig struct {
	Input       string           `toml:"input"`
	Format      string           `toml:"format"`
	LogLevel    string           `toml:"log_level"`
	MaxDepth    int              `toml:"max_depth"`
	MaxInputLen int              `toml:"max_input_len"`
	Server      serverFileConfig `toml:"server"`
}

type serverFileConfig struct {
	Addr            string `toml:"addr"`
	Node            string `toml:"node"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

// loadConfig overlays the TOML file at path onto config.Default. An empty
// path yields the defaults.
func loadConfig(path string) (config.Config, error) {
	cfg := config.Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config.Config{}, fmt.Errorf("load bitsctl config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config.Config{}, fmt.Errorf("load bitsctl config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("input") {
		cfg.Input = strings.TrimSpace(raw.Input)
	}
	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("max_depth") {
		cfg.MaxDepth = raw.MaxDepth
	}
	if meta.IsDefined("max_input_len") {
		cfg.MaxInputLen = raw.MaxInputLen
	}
	if meta.IsDefined("server", "addr") {
		cfg.Server.Addr = strings.TrimSpace(raw.Server.Addr)
	}
	if meta.IsDefined("server", "node") {
		cfg.Server.Node = strings.TrimSpace(raw.Server.Node)
	}
	if meta.IsDefined("server", "shutdown_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.Server.ShutdownTimeout))
		if err != nil {
			return config.Config{}, fmt.Errorf("parse server.shutdown_timeout: %w", err)
		}
		cfg.Server.ShutdownTimeout = d
	}

	return cfg, nil
}

// fileConfigOf is the inverse of loadConfig.
func fileConfigOf(cfg config.Config) fileConfig {
	return fileConfig{
		Input:       cfg.Input,
		Format:      cfg.Format,
		LogLevel:    cfg.LogLevel,
		MaxDepth:    cfg.MaxDepth,
		MaxInputLen: cfg.MaxInputLen,
		Server: serverFileConfig{
			Addr:            cfg.Server.Addr,
			Node:            cfg.Server.Node,
			ShutdownTimeout: cfg.Server.ShutdownTimeout.String(),
		},
	}
}
