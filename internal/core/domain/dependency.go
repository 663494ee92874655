package domain

// Dependency is an edge from one package to another within the same
// lockfile, expressed as a matcher rather than a direct pointer. Version and
// Source narrow the match only when present; lockfiles omit them when the
// name alone is unambiguous.
type Dependency struct {
	Name    InternedString
	Version string
	Source  string
}

// Matches reports whether pkg satisfies this matcher.
func (d Dependency) Matches(pkg *Package) bool {
	if d.Name != pkg.Name {
		return false
	}
	if d.Version != "" && d.Version != pkg.Version {
		return false
	}
	if d.Source != "" && d.Source != pkg.Source {
		return false
	}
	return true
}
