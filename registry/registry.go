// Package registry holds the pruned service definitions an image build
// produces and the process-wide cell they are published through. The
// definitions are frozen at construction: the type exposes no mutation API,
// so the instance the running image reads is structurally immutable and safe
// for concurrent use without synchronization.
package registry

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// StaticDefinitions is the frozen mapping from service contract names to the
// implementation type names that survived pruning. A contract whose
// candidates were all pruned away remains present with an empty set.
type StaticDefinitions struct {
	services map[string]map[string]struct{}
	total    int
}

// NewStaticDefinitions freezes the given contract → candidate-names mapping.
// The input is deep-copied; callers may keep mutating their map afterwards.
func NewStaticDefinitions(services map[string][]string) *StaticDefinitions {
	defs := &StaticDefinitions{services: make(map[string]map[string]struct{}, len(services))}
	for contract, names := range services {
		set := make(map[string]struct{}, len(names))
		for _, name := range names {
			set[name] = struct{}{}
		}
		defs.services[contract] = set
		defs.total += len(set)
	}
	return defs
}

// Contracts returns every known contract name, sorted.
func (d *StaticDefinitions) Contracts() []string {
	out := make([]string, 0, len(d.services))
	for contract := range d.services {
		out = append(out, contract)
	}
	sort.Strings(out)
	return out
}

// CandidatesFor returns the surviving implementation type names declared for
// the contract, sorted. Unknown contracts return nil.
func (d *StaticDefinitions) CandidatesFor(contract string) []string {
	set, ok := d.services[contract]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Contains reports whether typeName survived pruning for the contract.
func (d *StaticDefinitions) Contains(contract, typeName string) bool {
	_, ok := d.services[contract][typeName]
	return ok
}

// NumContracts returns the number of known contracts, including those whose
// candidate sets pruned to empty.
func (d *StaticDefinitions) NumContracts() int { return len(d.services) }

// NumCandidates returns the total number of surviving candidates across all
// contracts.
func (d *StaticDefinitions) NumCandidates() int { return d.total }

// published is the process-wide cell. Exactly one StaticDefinitions instance
// is ever published per process; the running image reads it for the remainder
// of the process lifetime.
var published atomic.Pointer[StaticDefinitions]

// Publish installs defs as the process-wide definitions. Publishing nil or
// publishing twice is a programmer error and panics: there is no legitimate
// build that produces two registries, and readers must never observe a
// replacement.
func Publish(defs *StaticDefinitions) {
	if defs == nil {
		panic("registry: Publish called with nil definitions")
	}
	if !published.CompareAndSwap(nil, defs) {
		panic(fmt.Sprintf("registry: definitions already published (%d contracts)", published.Load().NumContracts()))
	}
}

// Published returns the process-wide definitions, if a build pass has
// published them.
func Published() (*StaticDefinitions, bool) {
	defs := published.Load()
	return defs, defs != nil
}
