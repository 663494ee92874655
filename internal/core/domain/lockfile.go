package domain

// Lockfile is the parsed dependency graph of one lockfile. It is read-only
// to the comparison; only the Spec changes between passes.
type Lockfile struct {
	// FormatVersion is the lockfile format version recorded on disk.
	FormatVersion int

	// Source is the location string the lockfile was loaded from.
	Source string

	// Fingerprint is the xxh64 digest of the raw lockfile bytes, stamped by
	// the source loader. Used only for diagnostics.
	Fingerprint uint64

	// Packages holds every package entry in stored order. Stored order is
	// significant: matcher resolution and root selection both take the first
	// match in this order.
	Packages []Package

	byName map[InternedString][]int
}

// Resolve finds the first package in stored order satisfying dep. The bool
// result is false when the edge has no target in this lockfile; callers
// treat that as an optional or platform-specific dependency and skip it.
func (l *Lockfile) Resolve(dep Dependency) (*Package, bool) {
	if l.byName == nil {
		l.byName = make(map[InternedString][]int, len(l.Packages))
		for i := range l.Packages {
			name := l.Packages[i].Name
			l.byName[name] = append(l.byName[name], i)
		}
	}
	for _, i := range l.byName[dep.Name] {
		if dep.Matches(&l.Packages[i]) {
			return &l.Packages[i], true
		}
	}
	return nil, false
}
