package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/chat"
	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/console"
	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/extract"
	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/fetch"
	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/llm"
)

// App wires fetcher, extractor, and conversation together for one run:
// one URL in, one grounding context, then an interactive session over it.
type App struct {
	cfg      Config
	ai       *openai.Client
	fetcher  *fetch.Client
	strategy extract.Strategy

	// ui streams are swappable for tests.
	in  io.Reader
	out io.Writer
}

func New(ctx context.Context, cfg Config) (*App, error) {
	transportCfg := openai.DefaultConfig(cfg.LLMAPIKey)
	if cfg.LLMBaseURL != "" {
		transportCfg.BaseURL = cfg.LLMBaseURL
	}
	client := openai.NewClientWithConfig(transportCfg)

	strategy, err := strategyFor(cfg.ExtractStrategy)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg: cfg,
		ai:  client,
		fetcher: &fetch.Client{
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.FetchTimeout,
		},
		strategy: strategy,
		in:       os.Stdin,
		out:      os.Stdout,
	}

	// Connectivity preflight by listing models. Best-effort: a local or
	// keyless endpoint may not support it, so only warn.
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if models, err := a.ai.ListModels(pctx); err != nil {
		log.Warn().Err(err).Msg("LLM model list failed; continuing")
	} else {
		log.Info().Int("count", len(models.Models)).Msg("LLM models available")
	}

	return a, nil
}

func strategyFor(name string) (extract.Strategy, error) {
	switch name {
	case "", StrategyHeuristic:
		return extract.HeuristicStrategy{}, nil
	case StrategyReadability:
		return extract.ReadabilityStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown extract strategy %q", name)
	}
}

// Run executes the whole pipeline: resolve URL, fetch, extract, assemble the
// context, then hand it to the console loop. The context is built exactly
// once and reused read-only for the session's lifetime.
func (a *App) Run(ctx context.Context) error {
	ui := console.NewWithStreams(a.in, a.out)

	pageURL := a.cfg.URL
	if pageURL == "" {
		var err error
		pageURL, err = ui.ReadURL()
		if err != nil {
			return fmt.Errorf("read url: %w", err)
		}
	}

	log.Info().Str("url", pageURL).Msg("fetching page")
	doc, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	facets, err := a.strategy.Extract(doc)
	if err != nil {
		return fmt.Errorf("extract %s: %w", pageURL, err)
	}
	pageContext := extract.FormatContext(facets)

	log.Debug().
		Int("context_chars", len(pageContext)).
		Int("main_content_chars", len(facets.MainContent)).
		Int("full_text_chars", len(facets.FullText)).
		Int("headings", len(facets.Headings)).
		Int("links", len(facets.Links)).
		Msg("page context assembled")
	log.Info().Str("title", titleForDisplay(facets)).Msg("page context loaded")

	session := &chat.Session{
		Client:  &llm.OpenAIProvider{Inner: a.ai},
		Model:   a.cfg.LLMModel,
		Context: pageContext,
	}

	ui.Welcome(titleForDisplay(facets))
	return ui.Run(ctx, session)
}

// titleForDisplay surfaces the explicit no-title sentinel instead of an
// empty string in banners and logs.
func titleForDisplay(f *extract.Facets) string {
	if f.Title == "" {
		return extract.NoTitleSentinel
	}
	return f.Title
}

// SetStreams overrides the console input/output, primarily for tests.
func (a *App) SetStreams(in io.Reader, out io.Writer) {
	if in != nil {
		a.in = in
	}
	if out != nil {
		a.out = out
	}
}

func (a *App) Close() {
	// nothing yet
}
