// Package domain contains the core domain models and the universe
// construction logic for lockfile comparison.
package domain

import "strings"

// Package is one resolved package entry in a lockfile. It is immutable once
// parsed; the comparison never rewrites lockfile contents.
type Package struct {
	// Name is the package name. It is unique within one universe but not
	// within a lockfile, which may carry several versions of the same name.
	Name InternedString

	// Version is the resolved version string, compared only by equality.
	Version string

	// Source is the raw source URL the package was resolved from
	// (e.g. a registry index or a git URL with a pinned revision fragment).
	// Empty for path dependencies.
	Source string

	// Checksum is the registry content hash, when the format records one.
	Checksum string

	// Dependencies are the outgoing edges of this package, as matchers.
	Dependencies []Dependency
}

// Ref returns the "name@version" form used in dependency paths and
// diagnostics.
func (p *Package) Ref() string {
	return p.Name.String() + "@" + p.Version
}

// SourcePrecise returns the exact revision pinned in the source URL fragment
// (the commit of a git source), or "" when the source carries none.
func (p *Package) SourcePrecise() string {
	if i := strings.IndexByte(p.Source, '#'); i >= 0 {
		return p.Source[i+1:]
	}
	return ""
}

// MatchesHash reports whether hash identifies this package's content, either
// as its registry checksum or as its pinned source revision.
func (p *Package) MatchesHash(hash string) bool {
	if hash == "" {
		return false
	}
	if p.Checksum != "" && p.Checksum == hash {
		return true
	}
	if precise := p.SourcePrecise(); precise != "" && precise == hash {
		return true
	}
	return false
}

// PathString renders a dependency path as "a@1.0 -> b@2.0".
func PathString(path []Package) string {
	refs := make([]string, len(path))
	for i := range path {
		refs[i] = path[i].Ref()
	}
	return strings.Join(refs, " -> ")
}
