package extract

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/fetch"
)

// ReadabilityStrategy swaps the main-content facet for go-readability's
// reader-view text. The other facets come from the same pruned-tree pass as
// the heuristic strategy, so caps and ordering behave identically. When
// readability finds nothing usable it falls back to the heuristic result
// rather than returning an empty facet.
type ReadabilityStrategy struct{}

func (ReadabilityStrategy) Extract(doc *fetch.RawDocument) (*Facets, error) {
	facets, err := Extract(doc)
	if err != nil {
		return nil, err
	}

	pageURL, uerr := url.Parse(doc.URL)
	if uerr != nil {
		return facets, nil
	}
	article, rerr := readability.FromReader(strings.NewReader(doc.HTML), pageURL)
	if rerr != nil {
		return facets, nil
	}
	if text := normalizeWhitespace(article.TextContent); strings.TrimSpace(text) != "" {
		facets.MainContent = truncateBytes(text, MaxMainContentBytes)
	}
	if facets.Title == "" && strings.TrimSpace(article.Title) != "" {
		facets.Title = strings.TrimSpace(article.Title)
	}
	return facets, nil
}
