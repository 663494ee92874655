package ports

import "go.trai.ch/lockcmp/internal/core/domain"

// ConfigLoader reads a comparison manifest describing both lockfile sides.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path and returns the parsed
	// comparison inputs.
	Load(path string) (*domain.Comparison, error)
}
