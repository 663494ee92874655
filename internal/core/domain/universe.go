package domain

import "sort"

// Phase selects the insertion policy of a universe build.
type Phase int

const (
	// PhaseNameOnly ignores a repeated name; the first occurrence wins.
	// Used for the lenient discovery pass.
	PhaseNameOnly Phase = iota

	// PhaseNameAndVersion rejects a repeated name carrying a different
	// version with ErrVersionConflict. The same version repeated is a no-op.
	PhaseNameAndVersion
)

// Binding records the package selected for a name and the dependency path
// from the traversal root to it (root first). The path exists only for
// diagnostics: it shows where a version came from.
type Binding struct {
	Package Package
	Path    []Package
}

// Universe maps package names to the package selected for them under one
// Spec and Phase. At most one binding exists per name; the phase decides
// whether a conflicting rebinding attempt is ignored or fatal.
type Universe struct {
	bindings map[string]Binding
}

// NewUniverse creates an empty Universe.
func NewUniverse() *Universe {
	return &Universe{bindings: make(map[string]Binding)}
}

// Len returns the number of bound names.
func (u *Universe) Len() int {
	return len(u.bindings)
}

// Lookup returns the binding for name.
func (u *Universe) Lookup(name string) (Binding, bool) {
	b, ok := u.bindings[name]
	return b, ok
}

// Names returns every bound name in ascending order.
func (u *Universe) Names() []string {
	names := make([]string, 0, len(u.bindings))
	for name := range u.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Intersect returns the names bound in both universes, ascending.
func (u *Universe) Intersect(other *Universe) []string {
	common := make([]string, 0)
	for name := range u.bindings {
		if _, ok := other.bindings[name]; ok {
			common = append(common, name)
		}
	}
	sort.Strings(common)
	return common
}
