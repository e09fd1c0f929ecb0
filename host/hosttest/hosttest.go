// Package hosttest provides a recording in-memory image builder plus fake
// closed-world types for exercising the build pass in tests and examples.
package hosttest

import (
	"fmt"
	"sort"

	"github.com/closedworld/svcimage-go/configurer"
	"github.com/closedworld/svcimage-go/host"
	"github.com/closedworld/svcimage-go/meta"
)

// Image is a host.Image whose closed world is the set of types added to it
// and whose directives record into observable sets. The build pass is
// single-threaded, so Image does no locking.
type Image struct {
	types map[string]host.Type

	buildInit     map[string]int
	constructible map[string]int
	reflectable   map[string]int
	methods       []host.Member
	fields        []host.Member
	ctors         []host.Member
}

var _ host.Image = (*Image)(nil)

// NewImage creates an Image whose closed world contains the given types.
func NewImage(types ...host.Type) *Image {
	img := &Image{
		types:         make(map[string]host.Type),
		buildInit:     make(map[string]int),
		constructible: make(map[string]int),
		reflectable:   make(map[string]int),
	}
	for _, t := range types {
		img.Add(t)
	}
	return img
}

// Add registers t in the closed world, replacing any type of the same name.
func (img *Image) Add(t host.Type) *Image {
	img.types[t.Name()] = t
	return img
}

func (img *Image) TypeByName(name string) (host.Type, bool) {
	t, ok := img.types[name]
	return t, ok
}

func (img *Image) InitializeAtBuildTime(t host.Type) {
	if t == nil {
		return
	}
	img.buildInit[t.Name()]++
}

func (img *Image) RegisterConstructible(t host.Type) {
	if t == nil {
		return
	}
	img.constructible[t.Name()]++
}

func (img *Image) RegisterType(t host.Type) {
	if t == nil {
		return
	}
	img.reflectable[t.Name()]++
}

func (img *Image) RegisterMethods(methods ...host.Member) {
	img.methods = append(img.methods, methods...)
}

func (img *Image) RegisterFields(fields ...host.Member) {
	img.fields = append(img.fields, fields...)
}

func (img *Image) RegisterConstructors(ctors ...host.Member) {
	img.ctors = append(img.ctors, ctors...)
}

// InitializedAtBuildTime reports whether the named type was marked for
// build-time initialization.
func (img *Image) InitializedAtBuildTime(name string) bool {
	return img.buildInit[name] > 0
}

// Constructible reports whether the named type was registered for reflective
// instantiation.
func (img *Image) Constructible(name string) bool {
	return img.constructible[name] > 0
}

// Reflectable reports whether the named type was registered for general
// runtime reflection.
func (img *Image) Reflectable(name string) bool {
	return img.reflectable[name] > 0
}

// BuildInitNames returns the sorted set of type names marked for build-time
// initialization. Repeated directives collapse: the set is the observable.
func (img *Image) BuildInitNames() []string { return sortedKeys(img.buildInit) }

// ReflectableNames returns the sorted set of type names registered for
// runtime reflection.
func (img *Image) ReflectableNames() []string { return sortedKeys(img.reflectable) }

// ConstructibleNames returns the sorted set of type names registered for
// reflective instantiation.
func (img *Image) ConstructibleNames() []string { return sortedKeys(img.constructible) }

// Methods returns every method registration in call order, duplicates kept.
func (img *Image) Methods() []host.Member { return img.methods }

// Fields returns every field registration in call order, duplicates kept.
func (img *Image) Fields() []host.Member { return img.fields }

// Constructors returns every constructor registration in call order.
func (img *Image) Constructors() []host.Member { return img.ctors }

func sortedKeys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// PlainType is a closed-world type with no capabilities. A surviving
// PlainType candidate passes through the metadata steps untouched.
type PlainType struct {
	TypeName string
}

func (t *PlainType) Name() string { return t.TypeName }

// ComponentType is a closed-world type carrying component metadata. A nil
// Meta reads as empty metadata; a non-nil NewErr makes instantiation fail,
// which prunes the candidate.
type ComponentType struct {
	TypeName  string
	Meta      meta.Metadata
	NewErr    error
	InitNames []string // auxiliary build-init type names
}

var (
	_ meta.ComponentType      = (*ComponentType)(nil)
	_ meta.BuildInitDirective = (*ComponentType)(nil)
)

func (t *ComponentType) Name() string { return t.TypeName }

func (t *ComponentType) NewDefinition() (meta.Definition, error) {
	if t.NewErr != nil {
		return nil, t.NewErr
	}
	md := t.Meta
	if md == nil {
		md = meta.MapMetadata{}
	}
	return meta.StaticDefinition(md), nil
}

func (t *ComponentType) BuildInitTypeNames() []string { return t.InitNames }

// PanicType is a component type whose instantiation panics, modelling a
// linkage failure surfacing only at construction time.
type PanicType struct {
	TypeName string
}

var _ meta.ComponentType = (*PanicType)(nil)

func (t *PanicType) Name() string { return t.TypeName }

func (t *PanicType) NewDefinition() (meta.Definition, error) {
	panic("link failure constructing " + t.TypeName)
}

// ConfigurerType is a closed-world type whose underlying type is a
// reflection configurer implementation.
type ConfigurerType struct {
	TypeName string
	New      func() (configurer.ReflectionConfigurer, error)
}

var _ configurer.Provider = (*ConfigurerType)(nil)

func (t *ConfigurerType) Name() string { return t.TypeName }

func (t *ConfigurerType) NewConfigurer() (configurer.ReflectionConfigurer, error) {
	if t.New == nil {
		return nil, fmt.Errorf("no configurer factory for %s", t.TypeName)
	}
	return t.New()
}
