package extract

import (
	"fmt"
	"strings"
)

// FormatContext assembles the present facets into the single grounding string
// handed to the conversation. Sections appear in a fixed order — title,
// description, headings, main content, links — so structure precedes prose.
// Absent or empty facets contribute nothing; no empty label is ever emitted.
// The result is deterministic for a given Facets value.
func FormatContext(f *Facets) string {
	var parts []string

	if f.Title != "" {
		parts = append(parts, "Title: "+f.Title)
	}
	if f.Description != "" {
		parts = append(parts, "Description: "+f.Description)
	}
	if len(f.Headings) > 0 {
		parts = append(parts, "Headings:\n"+formatHeadings(f.Headings))
	}
	if f.MainContent != "" {
		parts = append(parts, "Main Content:\n"+f.MainContent)
	}
	if len(f.Links) > 0 {
		parts = append(parts, "Important Links:\n"+formatLinks(f.Links))
	}

	return strings.Join(parts, "\n")
}

func formatHeadings(hs []Heading) string {
	lines := make([]string, 0, len(hs))
	for _, h := range hs {
		lines = append(lines, fmt.Sprintf("H%d: %s", h.Level, h.Text))
	}
	return strings.Join(lines, "\n")
}

func formatLinks(ls []Link) string {
	lines := make([]string, 0, len(ls))
	for _, l := range ls {
		lines = append(lines, fmt.Sprintf("%s: %s", l.Text, l.Href))
	}
	return strings.Join(lines, "\n")
}
