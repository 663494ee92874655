package ports

import "go.trai.ch/lockcmp/internal/core/domain"

// LockfileParser turns raw lockfile text into a lockfile graph.
//
//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type LockfileParser interface {
	Parse(data []byte) (*domain.Lockfile, error)
}
