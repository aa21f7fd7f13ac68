package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrSeasonUnusable means the feed was fetched but could not be ingested.
	ErrSeasonUnusable = errors.New("season data unusable")
)
