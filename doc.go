// Package svcimage prunes declared pluggable-service implementations down to
// the set a statically-compiled image can actually use, and freezes the
// survivors into a process-wide read-only registry for the built image's
// runtime.
//
// The build pass runs inside an ahead-of-time image builder, which supplies
// the closed-world type resolution and the build directives (build-time
// static initialization, reflection registration) through the host package's
// interfaces. The raw contract → implementation-names declarations come from
// a scan.Source. Both are collaborators: this package decides which
// candidates survive and which directives to issue, not how the builder
// executes them.
//
// A pass proceeds in a fixed order. Reflection configurers run first and
// contribute hand-written registrations; then the declarations are scanned
// once and every candidate is resolved, instantiated for its metadata, and
// checked against its availability requirements. Candidates that cannot be
// resolved or constructed are dropped; survivors are registered for
// reflective use. The pruned map is frozen into a registry.StaticDefinitions
// and published.
//
//	img := ...                       // the surrounding builder's host.Image
//	src := scan.Static(declarations) // or the toolchain's descriptor scanner
//	f, err := svcimage.New(img, src)
//	if err != nil { ... }
//	defs, err := f.Run(ctx)
//
// Per-candidate failures are isolated: a broken implementation is pruned,
// never fatal. Configurer and scan failures abort the build.
package svcimage
