package domain

// Spec configures how one side's package universe is selected from its
// lockfile: where the lockfile lives, an optional root constraint, and the
// names excluded from traversal.
//
// A Spec is built once from user input and mutated exactly once afterwards,
// by the reconciler injecting additional exclusions between the discovery
// and verification passes.
type Spec struct {
	// Source is the lockfile location: a filesystem path, a file:// URL, or
	// an http(s):// URL.
	Source string

	// RootName limits the universe to the dependency tree rooted at the
	// first package with this name. Empty means unconstrained by name.
	RootName string

	// RootHash limits the universe to the dependency tree rooted at the
	// first package whose checksum or pinned source revision equals this
	// hash. Empty means unconstrained by hash. RootName and RootHash are
	// independent filters; when both are set the root must satisfy both.
	RootHash string

	exclude map[string]struct{}
}

// NewSpec creates a Spec for the lockfile at source with no root constraint
// and no exclusions.
func NewSpec(source string) *Spec {
	return &Spec{
		Source:  source,
		exclude: make(map[string]struct{}),
	}
}

// Rooted reports whether the universe is scoped to a single root package.
func (s *Spec) Rooted() bool {
	return s.RootName != "" || s.RootHash != ""
}

// Exclude adds names to the exclusion set.
func (s *Spec) Exclude(names ...string) {
	if s.exclude == nil {
		s.exclude = make(map[string]struct{}, len(names))
	}
	for _, name := range names {
		s.exclude[name] = struct{}{}
	}
}

// Excluded reports whether name is excluded from traversal.
func (s *Spec) Excluded(name string) bool {
	_, ok := s.exclude[name]
	return ok
}

// Comparison holds the fully-parsed inputs of one run: one Spec per side
// plus the verbosity switch.
type Comparison struct {
	A       *Spec
	B       *Spec
	Verbose bool
}
