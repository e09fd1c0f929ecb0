package svcimage

import (
	"log/slog"

	"github.com/closedworld/svcimage-go/configurer"
	"github.com/closedworld/svcimage-go/registry"
)

// Option customizes a Feature.
type Option func(*newConfig)

type newConfig struct {
	logger          *slog.Logger
	companionSuffix string
	loader          configurer.Loader
	publish         func(*registry.StaticDefinitions)
}

// WithLogger overrides the logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *newConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCompanionSuffix overrides the suffix appended to each candidate name
// when probing for a companion type to initialize at build time. The default
// is "$Exec".
func WithCompanionSuffix(suffix string) Option {
	return func(c *newConfig) {
		if suffix != "" {
			c.companionSuffix = suffix
		}
	}
}

// WithConfigurerLoader sets the loader that discovers reflection configurers
// for the pass. Without one, the configurer pass is empty.
func WithConfigurerLoader(l configurer.Loader) Option {
	return func(c *newConfig) {
		if l != nil {
			c.loader = l
		}
	}
}

// WithPublish overrides how the pruned definitions are published. The default
// is registry.Publish, the process-wide write-once cell. Embedding builders
// that stage publication themselves pass their own hook; passing a no-op is
// how tests run the pass without touching process-wide state.
func WithPublish(publish func(*registry.StaticDefinitions)) Option {
	return func(c *newConfig) {
		if publish != nil {
			c.publish = publish
		}
	}
}
