package extract

import (
	"strings"
	"testing"

	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/fetch"
)

func articleHTML() string {
	para := "The migration service copies every table in dependency order and verifies row counts after each batch. "
	var sb strings.Builder
	sb.WriteString(`<html><head><title>Migration Guide</title></head><body><article><h1>Migration Guide</h1>`)
	for i := 0; i < 8; i++ {
		sb.WriteString("<p>")
		sb.WriteString(strings.Repeat(para, 3))
		sb.WriteString("</p>")
	}
	sb.WriteString(`</article></body></html>`)
	return sb.String()
}

func TestReadabilityStrategy_PopulatesMainContent(t *testing.T) {
	d := &fetch.RawDocument{URL: "https://example.com/guide", HTML: articleHTML()}
	f, err := ReadabilityStrategy{}.Extract(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Title != "Migration Guide" {
		t.Fatalf("expected title facet, got %q", f.Title)
	}
	if !strings.Contains(f.MainContent, "dependency order") {
		t.Fatalf("expected article text in main content, got %q", f.MainContent)
	}
	if len(f.MainContent) > MaxMainContentBytes {
		t.Fatalf("readability output must respect the cap: %d bytes", len(f.MainContent))
	}
}

func TestReadabilityStrategy_FallsBackOnThinPages(t *testing.T) {
	d := &fetch.RawDocument{URL: "https://example.com/x", HTML: `<html><body><main><p>Tiny</p></main></body></html>`}
	f, err := ReadabilityStrategy{}.Extract(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(f.MainContent, "Tiny") {
		t.Fatalf("expected heuristic fallback text, got %q", f.MainContent)
	}
}

func TestReadabilityStrategy_OtherFacetsUnchanged(t *testing.T) {
	html := `<html><head><title>T</title><meta name="description" content="D"></head><body>
		<article><p>` + strings.Repeat("Body text. ", 50) + `</p></article>
		<a href="#frag">Frag</a><a href="/about">About</a></body></html>`
	d := &fetch.RawDocument{URL: "https://example.com/y", HTML: html}
	f, err := ReadabilityStrategy{}.Extract(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Description != "D" {
		t.Fatalf("expected description facet, got %q", f.Description)
	}
	if len(f.Links) != 1 || f.Links[0].Href != "/about" {
		t.Fatalf("expected link facet to behave as in the heuristic strategy, got %+v", f.Links)
	}
}
