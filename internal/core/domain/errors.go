package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceUnavailable is returned when a lockfile cannot be fetched,
	// read, or parsed. Fatal; there is no retry.
	ErrSourceUnavailable = zerr.New("lockfile source unavailable")

	// ErrUnsupportedScheme is returned for lockfile locations with a URL
	// scheme other than file, http, or https.
	ErrUnsupportedScheme = zerr.New("unsupported URL scheme")

	// ErrRootNotFound is returned when no package in the lockfile matches
	// the requested root name and hash.
	ErrRootNotFound = zerr.New("root package not found in lockfile")

	// ErrVersionConflict is returned when a universe holds two different
	// versions of the same name during the strict verification pass.
	ErrVersionConflict = zerr.New("package has multiple versions in lockfile")

	// ErrVersionMismatch is the overall failure when at least one common
	// package resolves to different versions across the two lockfiles. It is
	// raised only after the full report has been printed.
	ErrVersionMismatch = zerr.New("some packages have different versions")
)
