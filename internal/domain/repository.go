package domain

import "context"

// ModelClient defines the interface to the external vision/language model.
// Both methods return the raw response text; parsing and validation belong
// to the caller, which treats any failure as data absence.
type ModelClient interface {
	// GenerateFromImages sends one instruction plus the inline images and
	// returns the model's text response.
	GenerateFromImages(ctx context.Context, prompt string, images []Image) (string, error)

	// GenerateText sends a system instruction and a user prompt and returns
	// the model's text response.
	GenerateText(ctx context.Context, system, prompt string) (string, error)
}

// CatalogRepository defines read-only access to the static product catalog.
type CatalogRepository interface {
	// Lookup returns the single best entry for the query, or false when no
	// tier matched.
	Lookup(q LookupQuery) (*CatalogEntry, bool)

	// Entries returns the full immutable table.
	Entries() []CatalogEntry
}
