// Package meta defines read access to the component metadata that service
// implementations carry, plus the optional capabilities the pruning pass
// probes on resolved closed-world types. The metadata representation itself
// (how annotations are generated, stored, and parsed) belongs to the
// surrounding framework; this package only fixes the names and the narrow
// read surface the pass depends on.
//
// MapMetadata and MapAnnotation are in-memory implementations suitable for
// tests, examples, and hosts without a generated metadata model.
package meta

import "github.com/closedworld/svcimage-go/host"

// Fixed annotation and member names read by the pruning pass.
const (
	// AnnRequires is the annotation listing a component's availability
	// requirements. Each value is one requirement; all must hold.
	AnnRequires = "Requires"

	// AnnRequirements is the grouping annotation consulted only when
	// AnnRequires is absent. Its MemberValue member nests the requirement
	// list.
	AnnRequirements = "Requirements"

	// MemberValue nests the requirement annotations inside AnnRequirements.
	MemberValue = "value"

	// MemberTypes lists type names a requirement needs resolvable.
	MemberTypes = "types"

	// MemberComponents lists component type names a requirement needs
	// resolvable. Checked identically to MemberTypes.
	MemberComponents = "components"

	// MemberCondition optionally names a condition evaluator type. The pass
	// initializes the evaluator at build time; it never invokes it.
	MemberCondition = "condition"
)

// Annotation is read access to a single annotation instance's members. Absent
// members read as zero values; implementations never fail.
type Annotation interface {
	// Strings returns the string-list member, or nil when absent.
	Strings(member string) []string

	// Annotations returns the nested annotation-list member, or nil when
	// absent.
	Annotations(member string) []Annotation

	// TypeName returns the type-valued member's name. ok is false when the
	// member is absent or not type-valued.
	TypeName(member string) (name string, ok bool)
}

// Metadata is read access to one component's annotation metadata.
type Metadata interface {
	// AnnotationsByName returns every value of the named repeatable
	// annotation, or nil when none are present.
	AnnotationsByName(name string) []Annotation

	// Annotation returns the single value of the named annotation.
	Annotation(name string) (a Annotation, ok bool)
}

// Definition describes one instantiated component: the metadata carrier the
// pass obtains by no-argument construction of a ComponentType. Richer
// component descriptors in the surrounding framework extend this interface;
// the pass needs only the metadata.
type Definition interface {
	Metadata() Metadata
}

// ComponentType is the capability implemented by closed-world types that
// carry component metadata. The pruning pass asserts it once per candidate.
type ComponentType interface {
	host.Type

	// NewDefinition models no-argument instantiation of the metadata
	// carrier. Construction failures of any kind (no usable constructor,
	// a failure thrown during construction, a linkage problem surfacing at
	// construction time) are reported as errors and cause the candidate to
	// be pruned.
	NewDefinition() (Definition, error)
}

// BuildInitDirective is the capability implemented by closed-world types
// annotated with additional type names whose static initialization must run
// during the build alongside the component's own.
type BuildInitDirective interface {
	host.Type

	// BuildInitTypeNames returns the extra type names. Names that do not
	// resolve are skipped; the directive is best-effort by contract.
	BuildInitTypeNames() []string
}

// MapAnnotation is an Annotation backed by a member map. Member values may be
// []string (string-list members), []Annotation (nested members), or string
// (type-valued members); lookups with a mismatched shape read as absent.
type MapAnnotation map[string]any

var _ Annotation = MapAnnotation(nil)

// Strings implements Annotation.
func (a MapAnnotation) Strings(member string) []string {
	v, _ := a[member].([]string)
	return v
}

// Annotations implements Annotation.
func (a MapAnnotation) Annotations(member string) []Annotation {
	v, _ := a[member].([]Annotation)
	return v
}

// TypeName implements Annotation.
func (a MapAnnotation) TypeName(member string) (string, bool) {
	v, ok := a[member].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// MapMetadata is a Metadata backed by a name → values map.
type MapMetadata map[string][]Annotation

var _ Metadata = MapMetadata(nil)

// AnnotationsByName implements Metadata.
func (m MapMetadata) AnnotationsByName(name string) []Annotation {
	return m[name]
}

// Annotation implements Metadata. Repeated values collapse to the first.
func (m MapMetadata) Annotation(name string) (Annotation, bool) {
	vs := m[name]
	if len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// StaticDefinition wraps fixed metadata into a Definition.
func StaticDefinition(md Metadata) Definition {
	return staticDefinition{md: md}
}

type staticDefinition struct{ md Metadata }

func (d staticDefinition) Metadata() Metadata { return d.md }
