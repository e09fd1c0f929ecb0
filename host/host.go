package host

// Type is a handle to a single type in the image's closed world. Handles are
// produced by a Resolver and passed back into the directive interfaces below;
// the build pass never inspects a type beyond its name and the optional
// capability interfaces it satisfies (see the meta and configurer packages).
//
// Implementations MUST be comparable by identity for the lifetime of a build
// pass: resolving the same name twice may return distinct handles, but every
// handle remains valid until the pass completes.
type Type interface {
	// Name returns the fully qualified type name as it appears in service
	// declarations.
	Name() string
}

// Member identifies a method, field, or constructor of a closed-world type.
// The registration call a Member is passed to determines which kind of member
// it names; the struct itself carries no kind tag.
type Member struct {
	// Type is the declaring type's handle.
	Type Type

	// Name is the member name. Constructors conventionally leave it empty.
	Name string

	// Signature optionally disambiguates overloaded members. Its format is
	// host-defined and opaque to this library.
	Signature string
}

// Resolver resolves type names against the build's closed world. Names
// outside the fixed universe report ok == false rather than deferring to any
// dynamic loading mechanism.
type Resolver interface {
	TypeByName(name string) (t Type, ok bool)
}

// Initializer directs the surrounding builder to run a type's static
// initialization during the build rather than at process start.
type Initializer interface {
	// InitializeAtBuildTime marks t for build-time initialization. The
	// directive is idempotent; nil handles are ignored.
	InitializeAtBuildTime(t Type)
}

// ReflectionRegistry records reflection facts that must survive into the
// output image. Unregistered types and members are eliminated or inaccessible
// in the built artifact. All directives are idempotent and additive; there is
// no removal operation, and directives cannot fail.
type ReflectionRegistry interface {
	// RegisterConstructible makes t instantiable through reflective APIs in
	// the built image.
	RegisterConstructible(t Type)

	// RegisterType makes t visible to general runtime reflection.
	RegisterType(t Type)

	RegisterMethods(methods ...Member)
	RegisterFields(fields ...Member)
	RegisterConstructors(ctors ...Member)
}

// Image is the full surface the build pass needs from the surrounding image
// builder. The hosttest subpackage provides a recording in-memory
// implementation for tests and examples.
type Image interface {
	Resolver
	Initializer
	ReflectionRegistry
}
