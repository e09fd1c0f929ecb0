// Package scan defines the source of raw service declarations consumed by the
// pruning pass. Declarations map a service contract name to the set of
// implementation type names declared against it; how they are produced (the
// descriptor format and its scanner) belongs to the surrounding toolchain.
package scan

// Source produces the declared contract → implementation-names mapping. Scan
// is called exactly once per build pass; a Scan error aborts the build before
// any pruning begins.
//
// Candidate names within one contract are unique by the scanner's contract;
// the pass does not re-validate uniqueness. Order within a contract carries
// no meaning.
type Source interface {
	Scan() (map[string][]string, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() (map[string][]string, error)

// Scan implements Source.
func (f SourceFunc) Scan() (map[string][]string, error) { return f() }

// Static returns a Source over a fixed declaration snapshot. The snapshot is
// copied; later mutation of the argument does not leak into the pass.
func Static(services map[string][]string) Source {
	snapshot := make(map[string][]string, len(services))
	for contract, names := range services {
		cp := make([]string, len(names))
		copy(cp, names)
		snapshot[contract] = cp
	}
	return SourceFunc(func() (map[string][]string, error) {
		out := make(map[string][]string, len(snapshot))
		for contract, names := range snapshot {
			cp := make([]string, len(names))
			copy(cp, names)
			out[contract] = cp
		}
		return out, nil
	})
}
