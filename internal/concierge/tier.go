// Package concierge implements the two-stage request pipeline behind the
// deal concierge: tier classification, conditional web-search grounding,
// tier-specific prompt assembly and answer generation.
package concierge

import (
	"fmt"
	"strings"
)

// Tier is the classification bucket assigned to an incoming question. It
// determines answer depth, the output token budget and whether the
// answer is grounded with web search results.
type Tier string

const (
	// TierSimple covers quick factual questions, definitions and yes/no
	// answers. Never grounded with search.
	TierSimple Tier = "simple"
	// TierIndustry covers sector or market-level questions.
	TierIndustry Tier = "industry"
	// TierDetail covers deep analysis, allocation and risk deep-dives.
	TierDetail Tier = "detail"
)

// AllTiers lists every tier, in classification priority order.
var AllTiers = []Tier{TierSimple, TierIndustry, TierDetail}

// TierConfig holds the per-tier generation settings.
type TierConfig struct {
	SystemPrompt   string
	MaxTokens      int
	RequiresSearch bool
	MaxResults     int
}

const simpleSystemPrompt = `You are a concise concierge for private market secondary deals. Stay on private markets, secondaries, and venture-backed companies; politely decline anything else.
Answer the question directly in 1-3 short sentences. No preamble, no bullet lists. Be tactical.`

const industrySystemPrompt = `You are a concierge for private market secondary deals giving a sector or market-level read. Stay on private markets, secondaries, and venture-backed companies; politely decline anything else.
Answer in 2-4 short sentences. Reference concrete signals (demand, pricing, recent rounds) where you have them. Be tactical.`

const detailSystemPrompt = `You are a concierge for private market secondary deals producing a deep, multi-factor read. Stay on private markets, secondaries, and venture-backed companies; politely decline anything else.
Structure the answer exactly as:
Summary: one or two sentences.
Key Factors: 2-4 short bullets.
Risks: 2-3 short bullets.
Suggested Approach: one or two sentences, tactical.`

// tierConfigs maps each tier to its prompt and budget. Token budgets
// scale with expected answer depth; only grounded tiers carry a result
// bound.
var tierConfigs = map[Tier]TierConfig{
	TierSimple: {
		SystemPrompt:   simpleSystemPrompt,
		MaxTokens:      256,
		RequiresSearch: false,
		MaxResults:     0,
	},
	TierIndustry: {
		SystemPrompt:   industrySystemPrompt,
		MaxTokens:      512,
		RequiresSearch: true,
		MaxResults:     5,
	},
	TierDetail: {
		SystemPrompt:   detailSystemPrompt,
		MaxTokens:      1024,
		RequiresSearch: true,
		MaxResults:     5,
	},
}

func init() {
	// Every tier must have a config entry; a missing one is a
	// programming error caught at startup, not per-request.
	for _, tier := range AllTiers {
		cfg, ok := tierConfigs[tier]
		if !ok {
			panic(fmt.Sprintf("concierge: no config for tier %q", tier))
		}
		if cfg.SystemPrompt == "" || cfg.MaxTokens <= 0 {
			panic(fmt.Sprintf("concierge: incomplete config for tier %q", tier))
		}
	}
}

// ConfigFor returns the generation settings for a tier.
func ConfigFor(tier Tier) TierConfig {
	return tierConfigs[tier]
}

// ParseTier maps raw classifier output to a tier. Matching is by
// substring on the lowercased, trimmed output, checked in fixed priority
// order: industry, then detail, with simple as the fallback for
// everything else. The order is a contract: output naming multiple
// tiers (e.g. "industry detail") always resolves the same way.
func ParseTier(raw string) Tier {
	t := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(t, "industry") {
		return TierIndustry
	}
	if strings.Contains(t, "detail") {
		return TierDetail
	}
	return TierSimple
}
