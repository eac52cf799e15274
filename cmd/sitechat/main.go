package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Make OPENAI_API_KEY and friends loadable from a local .env before the
	// flag defaults below read the environment.
	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("loading .env failed; continuing")
	}

	var (
		pageURL      string
		llmBaseURL   string
		llmModel     string
		llmKey       string
		fetchTimeout time.Duration
		userAgent    string
		strategy     string
		configPath   string
		verbose      bool
	)

	flag.StringVar(&pageURL, "url", "", "Website URL to ground the chat on (prompted interactively if empty)")
	flag.StringVar(&llmBaseURL, "llm.base", os.Getenv("OPENAI_BASE_URL"), "OpenAI-compatible base URL (empty uses the default endpoint)")
	flag.StringVar(&llmModel, "llm.model", envOr("OPENAI_MODEL", "gpt-3.5-turbo"), "Model name")
	flag.StringVar(&llmKey, "llm.key", os.Getenv("OPENAI_API_KEY"), "API key for the completion endpoint")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", 10*time.Second, "Bound on the page fetch including body read")
	flag.StringVar(&userAgent, "fetch.ua", "", "Override the browser-like User-Agent")
	flag.StringVar(&strategy, "extract.strategy", app.StrategyHeuristic, "Main-content extraction strategy: heuristic or readability")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file; flags take precedence")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		URL:             pageURL,
		LLMBaseURL:      llmBaseURL,
		LLMModel:        llmModel,
		LLMAPIKey:       llmKey,
		FetchTimeout:    fetchTimeout,
		UserAgent:       userAgent,
		ExtractStrategy: strategy,
		Verbose:         verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file unreadable")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Nonzero exit only when no grounding context could be built or the
		// session loop itself failed; the loop reports per-question errors
		// to the user and keeps going.
		os.Exit(2)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
