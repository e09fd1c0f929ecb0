package svcimage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/closedworld/svcimage-go/host"
	"github.com/closedworld/svcimage-go/scan"
	"github.com/joeshaw/envdecode"
)

// Config carries the environment-tunable settings of a build pass. Defaults
// can be loaded via envdecode.
type Config struct {
	// CompanionSuffix is appended to candidate names when probing for
	// companion types. ENV: SVCIMAGE_COMPANION_SUFFIX
	CompanionSuffix string `env:"SVCIMAGE_COMPANION_SUFFIX,default=$Exec"`

	// LogLevel for pass diagnostics: debug, info, warn, or error.
	// ENV: SVCIMAGE_LOG_LEVEL
	LogLevel string `env:"SVCIMAGE_LOG_LEVEL,default=info"`
}

// NewFromEnv builds a Feature using envdecode to populate Config. Environment
// settings become options applied before opts, so explicit options win.
func NewFromEnv(img host.Image, src scan.Source, opts ...Option) (*Feature, error) {
	var cfg Config
	// Defaults are provided via struct tags.
	_ = envdecode.Decode(&cfg)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	merged := make([]Option, 0, 2+len(opts))
	merged = append(merged, WithCompanionSuffix(cfg.CompanionSuffix), WithLogger(logger))
	merged = append(merged, opts...)
	return New(img, src, merged...)
}
