package svcimage

import (
	"context"
	"log/slog"

	"github.com/closedworld/svcimage-go/configurer"
	"github.com/closedworld/svcimage-go/meta"
)

// candidateOutcome is the terminal result of resolving one candidate.
type candidateOutcome int

const (
	// candidateRemoved drops the candidate from its contract's set.
	candidateRemoved candidateOutcome = iota

	// candidateSurvives keeps the candidate; its reflection registration
	// already happened as a side effect of resolution.
	candidateSurvives

	// candidateSkipped keeps the candidate untouched: it is a reflection
	// configurer and was handled before pruning began, so this pass neither
	// initializes nor registers it.
	candidateSkipped
)

// resolveCandidate runs one candidate through resolution, metadata
// instantiation, and requirement checks. Faults are isolated to the
// candidate: any panic out of the host or metadata collaborators removes the
// candidate rather than aborting the pass.
func (f *Feature) resolveCandidate(ctx context.Context, name string) (outcome candidateOutcome) {
	defer func() {
		if r := recover(); r != nil {
			f.log.WarnContext(ctx, "candidate.resolve.panic", slog.Any("cause", r))
			outcome = candidateRemoved
		}
	}()

	t, ok := f.img.TypeByName(name)
	if !ok {
		f.log.DebugContext(ctx, "candidate.removed", slog.String("reason", "unresolved"))
		return candidateRemoved
	}

	if _, isConfigurer := t.(configurer.Provider); isConfigurer {
		return candidateSkipped
	}

	if ct, hasMeta := t.(meta.ComponentType); hasMeta {
		// Auxiliary build-init names are best-effort: unresolved names are
		// skipped, never fatal.
		if dir, ok := t.(meta.BuildInitDirective); ok {
			for _, aux := range dir.BuildInitTypeNames() {
				if at, ok := f.img.TypeByName(aux); ok {
					f.img.InitializeAtBuildTime(at)
				}
			}
		}
		f.img.InitializeAtBuildTime(t)

		def, err := ct.NewDefinition()
		if err != nil {
			f.log.DebugContext(ctx, "candidate.removed",
				slog.String("reason", "instantiation"),
				slog.String("err", err.Error()))
			return candidateRemoved
		}

		for _, req := range f.extractRequirements(def.Metadata()) {
			if holds, missing := f.requirementHolds(req); !holds {
				f.log.DebugContext(ctx, "candidate.removed",
					slog.String("reason", "requirement"),
					slog.String("missing", missing))
				return candidateRemoved
			}
		}
	}

	f.img.RegisterConstructible(t)
	f.img.RegisterType(t)
	return candidateSurvives
}

// probeCompanion marks the candidate's companion type for build-time
// initialization when it resolves. The probe runs for every candidate name,
// whatever the candidate's own outcome, and cannot remove anything.
func (f *Feature) probeCompanion(name string) {
	if t, ok := f.img.TypeByName(name + f.companionSuffix); ok {
		f.img.InitializeAtBuildTime(t)
	}
}
