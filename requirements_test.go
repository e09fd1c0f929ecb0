package svcimage

import (
	"reflect"
	"testing"

	"github.com/closedworld/svcimage-go/host"
	"github.com/closedworld/svcimage-go/host/hosttest"
	"github.com/closedworld/svcimage-go/meta"
	"github.com/closedworld/svcimage-go/scan"
)

func newTestFeature(t *testing.T, img host.Image) *Feature {
	t.Helper()
	f, err := New(img, scan.Static(nil), WithPublish(discardPublish))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return f
}

func requirementNames(reqs []requirement) [][]string {
	out := make([][]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.typeNames
	}
	return out
}

func TestExtractRequirementsPrimaryTakesPrecedence(t *testing.T) {
	f := newTestFeature(t, hosttest.NewImage())

	md := meta.MapMetadata{
		meta.AnnRequires: {
			meta.MapAnnotation{meta.MemberTypes: []string{"FromPrimary"}},
		},
		meta.AnnRequirements: {
			meta.MapAnnotation{meta.MemberValue: []meta.Annotation{
				meta.MapAnnotation{meta.MemberTypes: []string{"FromGroup"}},
			}},
		},
	}

	got := requirementNames(f.extractRequirements(md))
	want := [][]string{{"FromPrimary"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("requirements = %v, want %v", got, want)
	}
}

func TestExtractRequirementsGroupingFallback(t *testing.T) {
	f := newTestFeature(t, hosttest.NewImage())

	md := meta.MapMetadata{
		meta.AnnRequirements: {
			meta.MapAnnotation{meta.MemberValue: []meta.Annotation{
				meta.MapAnnotation{meta.MemberTypes: []string{"A"}},
				meta.MapAnnotation{meta.MemberTypes: []string{"B"}},
			}},
		},
	}

	got := requirementNames(f.extractRequirements(md))
	want := [][]string{{"A"}, {"B"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("requirements = %v, want %v", got, want)
	}
}

func TestExtractRequirementsConcatenatesTypesAndComponents(t *testing.T) {
	f := newTestFeature(t, hosttest.NewImage())

	md := meta.MapMetadata{
		meta.AnnRequires: {
			meta.MapAnnotation{
				meta.MemberTypes:      []string{"T1", "T2"},
				meta.MemberComponents: []string{"C1"},
			},
		},
	}

	got := requirementNames(f.extractRequirements(md))
	want := [][]string{{"T1", "T2", "C1"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("requirements = %v, want %v", got, want)
	}
}

func TestExtractRequirementsEmptyMetadata(t *testing.T) {
	f := newTestFeature(t, hosttest.NewImage())

	if got := f.extractRequirements(meta.MapMetadata{}); len(got) != 0 {
		t.Fatalf("requirements = %v, want none", got)
	}
}

func TestExtractRequirementsConditionEvaluatorInit(t *testing.T) {
	img := hosttest.NewImage(&hosttest.PlainType{TypeName: "KnownEval"})
	f := newTestFeature(t, img)

	md := meta.MapMetadata{
		meta.AnnRequires: {
			meta.MapAnnotation{meta.MemberCondition: "KnownEval"},
			meta.MapAnnotation{meta.MemberCondition: "GhostEval"},
		},
	}

	f.extractRequirements(md)

	if !img.InitializedAtBuildTime("KnownEval") {
		t.Error("resolvable evaluator must be initialized at build time")
	}
	// Unresolvable evaluator names are skipped, never fatal.
	if img.InitializedAtBuildTime("GhostEval") {
		t.Error("unresolvable evaluator must not be marked")
	}
}

func TestRequirementHoldsShortCircuits(t *testing.T) {
	rec := &recordingResolver{Image: hosttest.NewImage(
		&hosttest.PlainType{TypeName: "First"},
		&hosttest.PlainType{TypeName: "Third"},
	)}
	f := newTestFeature(t, rec)

	ok, missing := f.requirementHolds(requirement{typeNames: []string{"First", "Second", "Third"}})
	if ok {
		t.Fatal("requirement with an absent name must not hold")
	}
	if missing != "Second" {
		t.Errorf("missing = %q, want Second", missing)
	}
	if got := rec.lookups; !reflect.DeepEqual(got, []string{"First", "Second"}) {
		t.Errorf("lookups = %v, want [First Second]", got)
	}
}

func TestRequirementHoldsEmpty(t *testing.T) {
	f := newTestFeature(t, hosttest.NewImage())

	if ok, _ := f.requirementHolds(requirement{}); !ok {
		t.Fatal("empty requirement must hold")
	}
}
