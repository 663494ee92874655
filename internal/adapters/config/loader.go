// Package config provides the comparison manifest loader for lockcmp.
package config

import (
	"os"

	"go.trai.ch/lockcmp/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// Load reads the manifest at path and returns the parsed comparison inputs.
func (l *FileConfigLoader) Load(path string) (*domain.Comparison, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	a, err := buildSpec(manifest.A, "a")
	if err != nil {
		return nil, err
	}
	b, err := buildSpec(manifest.B, "b")
	if err != nil {
		return nil, err
	}

	return &domain.Comparison{
		A:       a,
		B:       b,
		Verbose: manifest.Verbose,
	}, nil
}

func buildSpec(dto SideDTO, side string) (*domain.Spec, error) {
	if dto.Source == "" {
		return nil, zerr.With(zerr.New("side is missing a lockfile source"), "side", side)
	}

	spec := domain.NewSpec(dto.Source)
	spec.RootName = dto.Root.Name
	spec.RootHash = dto.Root.Hash
	spec.Exclude(dto.Exclude...)
	return spec, nil
}
