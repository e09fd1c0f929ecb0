package svcimage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/closedworld/svcimage-go/configurer"
	"github.com/closedworld/svcimage-go/host"
	"github.com/closedworld/svcimage-go/internal/logctx"
	"github.com/closedworld/svcimage-go/registry"
	"github.com/closedworld/svcimage-go/scan"
	"github.com/google/uuid"
)

const defaultCompanionSuffix = "$Exec"

// Feature is one build pass over the declared pluggable services. It owns no
// state beyond its wiring; all side effects land in the host image, and the
// pruned definitions are the return value of Run.
type Feature struct {
	img             host.Image
	src             scan.Source
	loader          configurer.Loader
	log             *slog.Logger
	id              string // process-unique pass ID for diagnostics
	companionSuffix string
	publish         func(*registry.StaticDefinitions)
}

// New wires a Feature against the surrounding image builder and the raw
// declaration source.
func New(img host.Image, src scan.Source, opts ...Option) (*Feature, error) {
	if img == nil {
		return nil, fmt.Errorf("image is required")
	}
	if src == nil {
		return nil, fmt.Errorf("scan source is required")
	}

	cfg := &newConfig{
		logger:          slog.New(slog.DiscardHandler),
		companionSuffix: defaultCompanionSuffix,
		publish:         registry.Publish,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	return &Feature{
		img:             img,
		src:             src,
		loader:          cfg.loader,
		log:             slog.New(logctx.Handler{Handler: cfg.logger.Handler()}),
		id:              uuid.NewString(),
		companionSuffix: cfg.companionSuffix,
		publish:         cfg.publish,
	}, nil
}

// Run executes the build pass: configurers first, then one scan of the
// declarations, then pruning, then publication of the frozen definitions.
// The pass is single-threaded and synchronous; every host call completes
// before the next candidate is considered. Either the whole pass completes
// and exactly one StaticDefinitions is published, or Run returns an error
// before publication — there is no partial publication.
func (f *Feature) Run(ctx context.Context) (*registry.StaticDefinitions, error) {
	ctx = logctx.WithPassData(ctx, &logctx.PassData{PassID: f.id})

	if err := f.runConfigurers(ctx); err != nil {
		return nil, err
	}

	declared, err := f.src.Scan()
	if err != nil {
		return nil, &ScanError{Err: err}
	}

	pruned := make(map[string][]string, len(declared))
	removed := 0
	for contract, names := range declared {
		kept := make([]string, 0, len(names))
		for _, name := range names {
			cctx := logctx.WithCandidateData(ctx, &logctx.CandidateData{
				Contract: contract,
				TypeName: name,
			})
			outcome := f.resolveCandidate(cctx, name)

			// The companion probe runs for every declared name, including
			// removed ones.
			f.probeCompanion(name)

			if outcome == candidateRemoved {
				removed++
				continue
			}
			kept = append(kept, name)
		}
		pruned[contract] = kept
	}

	defs := registry.NewStaticDefinitions(pruned)
	f.publish(defs)

	f.log.InfoContext(ctx, "prune.complete",
		slog.Int("contracts", defs.NumContracts()),
		slog.Int("survived", defs.NumCandidates()),
		slog.Int("removed", removed))
	return defs, nil
}

// runConfigurers discovers and invokes reflection configurers in discovery
// order. Each configurer's own type is initialized at build time before its
// callback runs. Nothing here is isolated: loader errors, nil instances, and
// callback failures all abort the build.
func (f *Feature) runConfigurers(ctx context.Context) error {
	if f.loader == nil {
		return nil
	}

	discovered, err := f.loader.Load()
	if err != nil {
		return fmt.Errorf("loading reflection configurers: %w", err)
	}

	cctx := &configurerContext{img: f.img}
	for _, d := range discovered {
		var name string
		if d.Type != nil {
			name = d.Type.Name()
		}
		if d.Configurer == nil {
			return &ConfigurerError{TypeName: name, Err: fmt.Errorf("nil configurer instance")}
		}

		f.img.InitializeAtBuildTime(d.Type)

		lctx := logctx.WithConfigurerData(ctx, &logctx.ConfigurerData{TypeName: name})
		f.log.DebugContext(lctx, "configurer.run")
		if err := f.invokeConfigurer(cctx, d.Configurer); err != nil {
			return &ConfigurerError{TypeName: name, Err: err}
		}
	}
	return nil
}

// invokeConfigurer converts a callback panic into an error. Either way the
// build aborts; the conversion only gives the invoker a usable error value.
func (f *Feature) invokeConfigurer(cctx configurer.Context, c configurer.ReflectionConfigurer) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback panic: %v", r)
		}
	}()
	return c.ConfigureReflection(cctx)
}

// configurerContext is the bounded registration surface handed to each
// configurer callback. It delegates straight to the host image.
type configurerContext struct {
	img host.Image
}

var _ configurer.Context = (*configurerContext)(nil)

func (c *configurerContext) TypeByName(name string) (host.Type, bool) {
	return c.img.TypeByName(name)
}

func (c *configurerContext) RegisterTypes(types ...host.Type) {
	for _, t := range types {
		c.img.RegisterType(t)
	}
}

func (c *configurerContext) RegisterMethods(methods ...host.Member) {
	c.img.RegisterMethods(methods...)
}

func (c *configurerContext) RegisterFields(fields ...host.Member) {
	c.img.RegisterFields(fields...)
}
