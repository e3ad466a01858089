package domain

import "errors"

var (
	// ErrImageRequired is returned when an analyze request carries no images
	ErrImageRequired = errors.New("image required")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoCatalogMatch is returned when no catalog entry matches the query
	ErrNoCatalogMatch = errors.New("no matching catalog entry")

	// ErrModelCallFailed is returned when a Gemini call fails outright
	ErrModelCallFailed = errors.New("model call failed")

	// ErrEmptyModelResponse is returned when the model produced no candidates
	ErrEmptyModelResponse = errors.New("empty model response")

	// ErrRateLimited is returned when the outbound rate limiter rejects a call
	ErrRateLimited = errors.New("rate limit exceeded")
)
