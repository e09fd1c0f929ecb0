// Package host defines the contracts between the service pruning pass and the
// ahead-of-time image builder it runs inside. The builder owns the closed
// world: it resolves type names against the fixed set of types reachable in
// the target image, and it accepts directives that shape the built artifact.
//
// Layers & Roles
//
//	Resolver           -> closed-world name lookup (absent, never deferred)
//	Initializer        -> build-time static initialization directives
//	ReflectionRegistry -> reflection reachability directives
//	Image              -> composite of the three, consumed by svcimage.Feature
//
// Directive semantics
//
// Directives are write-only accumulators on the builder's side: idempotent,
// additive, duplicate-tolerant, and irrevocable. Issuing the same directive
// twice is indistinguishable from issuing it once. Nothing in this package
// reads a directive back; tests observe them through hosttest.
//
// Implementations
//
//	hosttest.Image : recording in-memory builder for tests and examples
//
// Real builders live with the surrounding toolchain, not in this module.
package host
