package ports

import (
	"context"

	"go.trai.ch/lockcmp/internal/core/domain"
)

// LockfileSource loads a lockfile graph from a location string.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type LockfileSource interface {
	// Load fetches and parses the lockfile at location, which may be a plain
	// filesystem path, a file:// URL, or an http(s):// URL. Loading is a
	// single blocking call; any failure is fatal to the run.
	Load(ctx context.Context, location string) (*domain.Lockfile, error)
}
