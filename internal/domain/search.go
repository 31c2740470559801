package domain

import "context"

// SearchResult buckets matches by entity kind. Results are capped by the
// caller's limit and not deduplicated (search has no multi-source overlap).
type SearchResult struct {
	Events []*Event   `json:"events"`
	Clubs  []*Account `json:"clubs"`
}

// SearchService filters events and clubs by case-insensitive substring match.
// Events match on title, location, description, or category; clubs on name.
// A blank query is ErrInvalidInput, never "match everything".
type SearchService interface {
	Search(ctx context.Context, query string, limit int) (*SearchResult, error)
}
