package app

import "time"

// Extraction strategy names accepted by Config.ExtractStrategy.
const (
	StrategyHeuristic   = "heuristic"
	StrategyReadability = "readability"
)

// Config holds runtime configuration for the application.
type Config struct {
	// URL is the page to ground on. Empty means prompt interactively.
	URL string

	// LLM
	LLMBaseURL string
	LLMModel   string
	LLMAPIKey  string

	// Fetch
	FetchTimeout time.Duration
	UserAgent    string

	// ExtractStrategy selects the main-content tactic: "heuristic" (default)
	// or "readability".
	ExtractStrategy string

	Verbose bool
}
