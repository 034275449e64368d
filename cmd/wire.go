package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/concierge"
	"github.com/goodfin/concierge/internal/config"
	"github.com/goodfin/concierge/internal/llm"
	"github.com/goodfin/concierge/pkg/anthropic"
	"github.com/goodfin/concierge/pkg/brave"
	"github.com/goodfin/concierge/pkg/openrouter"
)

// newPipeline builds the concierge pipeline from configuration. The
// generation credential is mandatory (validated here); the search
// credential is optional and its absence only disables grounding.
func newPipeline(cfg *config.Config, metrics *concierge.Metrics) (*concierge.Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var gen llm.Client
	switch cfg.Concierge.Provider {
	case "anthropic":
		gen = llm.NewAnthropic(anthropic.NewClient(cfg.Anthropic.Key), cfg.Anthropic.Model)
	default:
		opts := []openrouter.Option{
			openrouter.WithBaseURL(cfg.OpenRouter.BaseURL),
			openrouter.WithModel(cfg.OpenRouter.Model),
			openrouter.WithReferrer(cfg.OpenRouter.AppURL),
		}
		if cfg.OpenRouter.MaxRPS > 0 {
			opts = append(opts, openrouter.WithRateLimit(cfg.OpenRouter.MaxRPS, cfg.OpenRouter.MaxBurst))
		}
		gen = llm.NewOpenRouter(openrouter.NewClient(cfg.OpenRouter.Key, opts...), cfg.OpenRouter.Model)
	}

	var search brave.Client
	if cfg.Brave.Key != "" {
		search = brave.NewClient(cfg.Brave.Key, brave.WithBaseURL(cfg.Brave.BaseURL))
	} else {
		zap.L().Warn("no brave search key configured, web grounding disabled")
	}

	timeout := time.Duration(cfg.Concierge.SearchTimeoutMs) * time.Millisecond

	return concierge.New(gen, search, timeout, metrics), nil
}
