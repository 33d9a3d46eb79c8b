package domain

import "errors"

var (
	// ErrNoData is returned when an operation needs an ingested working set
	// and none exists yet
	ErrNoData = errors.New("no products ingested yet")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")
)
