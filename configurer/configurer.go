// Package configurer defines the contract for components that contribute
// reflection registrations to an image build by hand. Configurers cover the
// cases declared metadata cannot: third-party types, members reached only
// through serialization, and similar build-author knowledge. They are
// discovered through the same declaration mechanism as every other pluggable
// service and run exactly once, before any pruning happens.
//
// Unlike candidate resolution, configurer failures are never isolated: a
// configurer that cannot run means the build author's own registration code
// is broken, and the build must fail loudly rather than produce an image with
// silently missing reflection facts.
package configurer

import "github.com/closedworld/svcimage-go/host"

// ReflectionConfigurer contributes reflection facts during the build pass.
// Implementations own no state after ConfigureReflection returns.
type ReflectionConfigurer interface {
	// ConfigureReflection is invoked exactly once per build pass. Returned
	// errors abort the build.
	ConfigureReflection(ctx Context) error
}

// Func adapts a function to a ReflectionConfigurer.
type Func func(ctx Context) error

// ConfigureReflection implements ReflectionConfigurer.
func (f Func) ConfigureReflection(ctx Context) error { return f(ctx) }

// Context is the bounded surface a configurer registers through. It exposes
// exactly four operations; constructor registration goes through the host's
// reflection registry directly and is not part of the callback surface.
type Context interface {
	// TypeByName resolves a name against the build's closed world.
	TypeByName(name string) (t host.Type, ok bool)

	// RegisterTypes makes the given types visible to runtime reflection.
	RegisterTypes(types ...host.Type)

	// RegisterMethods makes the given methods reflectively accessible.
	RegisterMethods(methods ...host.Member)

	// RegisterFields makes the given fields reflectively accessible.
	RegisterFields(fields ...host.Member)
}

// Provider is the capability implemented by closed-world types whose
// underlying type is a ReflectionConfigurer implementation. The pruning pass
// uses the assertion alone (configurer candidates are kept untouched);
// discovery loaders additionally use NewConfigurer to build the instance.
type Provider interface {
	host.Type

	NewConfigurer() (ReflectionConfigurer, error)
}

// Discovered couples a configurer instance with its closed-world type. The
// type handle is initialized at build time before the instance runs.
type Discovered struct {
	Type       host.Type
	Configurer ReflectionConfigurer
}

// Loader discovers configurer implementations for a build. Discovery order is
// preserved by the pass. Load errors abort the build.
type Loader interface {
	Load() ([]Discovered, error)
}

// LoaderFunc adapts a function to a Loader.
type LoaderFunc func() ([]Discovered, error)

// Load implements Loader.
func (f LoaderFunc) Load() ([]Discovered, error) { return f() }

// Static returns a Loader over a fixed configurer list, preserving argument
// order. It is the usual choice for hosts that assemble configurers
// themselves rather than discovering them from declarations.
func Static(configurers ...Discovered) Loader {
	snapshot := make([]Discovered, len(configurers))
	copy(snapshot, configurers)
	return LoaderFunc(func() ([]Discovered, error) {
		out := make([]Discovered, len(snapshot))
		copy(out, snapshot)
		return out, nil
	})
}
