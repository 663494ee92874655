package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// BuildUniverse walks lf's dependency graph as directed by spec and returns
// the resulting universe for the given phase.
//
// With a root constraint set, the first package in stored order matching
// every set constraint seeds the universe and its dependency tree is walked
// recursively; no matching package is ErrRootNotFound. Without one, every
// non-excluded package enters the universe directly.
//
// onDiscover, when non-nil, is invoked once per newly bound package, in
// discovery order. The root seed itself is not announced; callers already
// named it. It must not mutate the universe.
func BuildUniverse(lf *Lockfile, spec *Spec, phase Phase, onDiscover func(*Package)) (*Universe, error) {
	b := &universeBuilder{
		lf:         lf,
		spec:       spec,
		phase:      phase,
		onDiscover: onDiscover,
		universe:   NewUniverse(),
	}

	var err error
	if spec.Rooted() {
		err = b.seedFromRoot()
	} else {
		err = b.seedAll()
	}
	if err != nil {
		return nil, err
	}
	return b.universe, nil
}

type universeBuilder struct {
	lf         *Lockfile
	spec       *Spec
	phase      Phase
	onDiscover func(*Package)
	universe   *Universe
}

// seedFromRoot scans the lockfile in stored order for the first package
// satisfying all set root constraints, binds it, and walks its tree.
func (b *universeBuilder) seedFromRoot() error {
	for i := range b.lf.Packages {
		pkg := &b.lf.Packages[i]
		if b.spec.Excluded(pkg.Name.String()) {
			continue
		}
		if b.spec.RootName != "" && pkg.Name.String() != b.spec.RootName {
			continue
		}
		if b.spec.RootHash != "" && !pkg.MatchesHash(b.spec.RootHash) {
			continue
		}

		path := []Package{*pkg}
		if _, err := b.insert(pkg, path, false); err != nil {
			return err
		}
		return b.walk(pkg, path)
	}

	err := zerr.With(ErrRootNotFound, "source", b.spec.Source)
	if b.spec.RootName != "" {
		err = zerr.With(err, "name", b.spec.RootName)
	}
	if b.spec.RootHash != "" {
		err = zerr.With(err, "hash", b.spec.RootHash)
	}
	return err
}

// seedAll binds every non-excluded package in stored order. No recursion is
// needed: an unrooted universe already spans the whole lockfile, and the
// insertion policy alone decides whether repeated names are tolerated.
func (b *universeBuilder) seedAll() error {
	for i := range b.lf.Packages {
		pkg := &b.lf.Packages[i]
		if b.spec.Excluded(pkg.Name.String()) {
			continue
		}
		if _, err := b.insert(pkg, []Package{*pkg}, true); err != nil {
			return err
		}
	}
	return nil
}

// walk recursively follows pkg's dependency edges. It only descends into a
// dependency whose insertion created a new binding, so every reachable name
// is visited at most once and the walk terminates even on cyclic input.
func (b *universeBuilder) walk(pkg *Package, path []Package) error {
	for _, dep := range pkg.Dependencies {
		if b.spec.Excluded(dep.Name.String()) {
			continue
		}
		target, ok := b.lf.Resolve(dep)
		if !ok {
			// Optional or platform-specific dependency not present in this
			// lockfile.
			continue
		}

		path = append(path, *target)
		inserted, err := b.insert(target, path, true)
		if err != nil {
			return err
		}
		if inserted {
			if err := b.walk(target, path); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
	}
	return nil
}

// insert attempts to bind pkg under its name, applying the phase's policy.
// It returns true when a new binding was created. notify gates the discovery
// callback so the rooted seed stays silent.
func (b *universeBuilder) insert(pkg *Package, path []Package, notify bool) (bool, error) {
	name := pkg.Name.String()
	if existing, ok := b.universe.bindings[name]; ok {
		if b.phase == PhaseNameAndVersion && existing.Package.Version != pkg.Version {
			err := zerr.With(ErrVersionConflict, "package", name)
			err = zerr.With(err, "source", b.spec.Source)
			err = zerr.With(err, "first_version", existing.Package.Version)
			err = zerr.With(err, "second_version", pkg.Version)
			err = zerr.With(err, "path", PathString(path))
			return false, err
		}
		return false, nil
	}

	b.universe.bindings[name] = Binding{Package: *pkg, Path: slices.Clone(path)}
	if notify && b.onDiscover != nil {
		b.onDiscover(pkg)
	}
	return true, nil
}
