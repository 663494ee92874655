// Package reconciler implements the two-pass convergence that narrows both
// lockfile universes to a comparable set of package names.
package reconciler

import (
	"go.trai.ch/lockcmp/internal/core/domain"
)

// Side carries one lockfile through a comparison run. Universe is populated
// by Reconcile and holds the verified bindings afterwards.
type Side struct {
	Spec     *domain.Spec
	Lockfile *domain.Lockfile
	Universe *domain.Universe
}

// Sink receives progress events while the universes converge. The reporter
// implements it; tests use a recording stub.
type Sink interface {
	// Discovered fires once per package inserted into a universe, tagged
	// with the lockfile source it came from.
	Discovered(source string, pkg *domain.Package)
	// UniverseSizes reports the sizes once per pass: after discovery and
	// again after verification.
	UniverseSizes(a, b, common int)
	// Narrowing reports how many packages each side drops before the
	// verification pass.
	Narrowing(excludedA, excludedB int)
}

// Reconciler converges two lockfile universes onto their common package
// names.
type Reconciler struct{}

// New creates a Reconciler.
func New() *Reconciler {
	return &Reconciler{}
}

// Reconcile runs both convergence passes and returns the sorted names common
// to both sides.
//
// The discovery pass builds each universe keyed by name only, tolerating
// duplicate versions. The names outside the first intersection are then
// injected into each side's exclusion set and both universes are rebuilt from
// scratch under the strict name-and-version policy. Rebuilding rather than
// filtering matters: dropping a package can prune its exclusive dependents,
// and a version conflict hidden behind a now-excluded name must not fail the
// run.
func (r *Reconciler) Reconcile(a, b *Side, sink Sink) ([]string, error) {
	if err := discover(a, sink); err != nil {
		return nil, err
	}
	if err := discover(b, sink); err != nil {
		return nil, err
	}

	common := a.Universe.Intersect(b.Universe)
	sink.UniverseSizes(a.Universe.Len(), b.Universe.Len(), len(common))

	sink.Narrowing(narrow(a, common), narrow(b, common))

	if err := verify(a, sink); err != nil {
		return nil, err
	}
	if err := verify(b, sink); err != nil {
		return nil, err
	}

	// Narrowing can shrink the sides asymmetrically, so the verified sizes
	// are reported again; the final intersection may be smaller than the
	// first one.
	names := a.Universe.Intersect(b.Universe)
	sink.UniverseSizes(a.Universe.Len(), b.Universe.Len(), len(names))

	return names, nil
}

func discover(s *Side, sink Sink) error {
	u, err := domain.BuildUniverse(s.Lockfile, s.Spec, domain.PhaseNameOnly, func(p *domain.Package) {
		sink.Discovered(s.Spec.Source, p)
	})
	if err != nil {
		return err
	}
	s.Universe = u
	return nil
}

// narrow excludes every name of s's universe that is absent from common and
// returns how many names were added to the exclusion set.
func narrow(s *Side, common []string) int {
	keep := make(map[string]struct{}, len(common))
	for _, name := range common {
		keep[name] = struct{}{}
	}

	excluded := 0
	for _, name := range s.Universe.Names() {
		if _, ok := keep[name]; ok {
			continue
		}
		s.Spec.Exclude(name)
		excluded++
	}
	return excluded
}

func verify(s *Side, sink Sink) error {
	u, err := domain.BuildUniverse(s.Lockfile, s.Spec, domain.PhaseNameAndVersion, func(p *domain.Package) {
		sink.Discovered(s.Spec.Source, p)
	})
	if err != nil {
		return err
	}
	s.Universe = u
	return nil
}
