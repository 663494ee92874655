// Package cargo parses Cargo.lock files into the domain lockfile graph.
package cargo

import (
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/lockcmp/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parser implements ports.LockfileParser for the Cargo lockfile format.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes lockfile TOML. Package order on disk is preserved, since
// matcher resolution and root selection are first-match-in-stored-order.
func (p *Parser) Parse(data []byte) (*domain.Lockfile, error) {
	var dto lockfileDTO
	if err := toml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lockfile")
	}

	lf := &domain.Lockfile{
		FormatVersion: dto.Version,
		Packages:      make([]domain.Package, 0, len(dto.Packages)),
	}
	for _, entry := range dto.Packages {
		if entry.Name == "" || entry.Version == "" {
			return nil, zerr.With(zerr.New("lockfile package entry missing name or version"), "name", entry.Name)
		}

		pkg := domain.Package{
			Name:     domain.NewInternedString(entry.Name),
			Version:  entry.Version,
			Source:   entry.Source,
			Checksum: entry.Checksum,
		}
		if len(entry.Dependencies) > 0 {
			pkg.Dependencies = make([]domain.Dependency, 0, len(entry.Dependencies))
			for _, raw := range entry.Dependencies {
				dep, err := parseDependency(raw)
				if err != nil {
					return nil, zerr.With(err, "package", entry.Name)
				}
				pkg.Dependencies = append(pkg.Dependencies, dep)
			}
		}
		lf.Packages = append(lf.Packages, pkg)
	}
	return lf, nil
}

// parseDependency splits a dependency matcher string. Cargo writes one of
// "name", "name version", or "name version (source)".
func parseDependency(raw string) (domain.Dependency, error) {
	fields := strings.Fields(raw)
	switch len(fields) {
	case 1:
		return domain.Dependency{Name: domain.NewInternedString(fields[0])}, nil
	case 2:
		return domain.Dependency{
			Name:    domain.NewInternedString(fields[0]),
			Version: fields[1],
		}, nil
	case 3:
		source := strings.TrimSuffix(strings.TrimPrefix(fields[2], "("), ")")
		return domain.Dependency{
			Name:    domain.NewInternedString(fields[0]),
			Version: fields[1],
			Source:  source,
		}, nil
	}
	return domain.Dependency{}, zerr.With(zerr.New("malformed dependency entry"), "entry", raw)
}
