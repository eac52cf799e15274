package extract

import "github.com/Coding-4A11j/chatbot-Scrape-Website/internal/fetch"

// Strategy defines a minimal interface for content extraction approaches.
// Implementations can swap main-content tactics without changing callers.
type Strategy interface {
	// Extract converts a fetched document into Facets. Implementations
	// should be deterministic and avoid side effects.
	Extract(doc *fetch.RawDocument) (*Facets, error)
}

// HeuristicStrategy uses the priority search in Extract: <main>, <article>,
// "content"-named container, then the pruned body.
type HeuristicStrategy struct{}

func (HeuristicStrategy) Extract(doc *fetch.RawDocument) (*Facets, error) {
	return Extract(doc)
}
