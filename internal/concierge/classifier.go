package concierge

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/llm"
)

const (
	classifyTemperature = 0
	classifyMaxTokens   = 16
)

const classifyPrompt = `You are a classifier for a private market deal concierge. Classify the user's question into exactly one tier:

- simple: quick factual questions, definitions, yes/no, or very short answers (e.g. "What is a secondary?", "Summarize this deal", "Is this Pre-IPO?"). Not simple: anything asking for market context or a recommendation.
- industry: sector or market-level questions (e.g. "How is AI valuation trending?", "Compare to Stripe", "What's happening in aerospace secondaries?"). Not industry: questions about a single deal's terms.
- detail: deep analysis, multi-factor reasoning, allocation or risk deep-dives (e.g. "Should I allocate $50k?", "Key risks and mitigations", "Walk me through entry pricing").

Tie-breaks: if unsure between industry and detail, choose detail. If unsure between simple and any other tier, choose the other tier.

Reply with exactly one word: simple, industry, or detail.

User question: `

// Classify assigns a tier to the user's question via a single
// deterministic generation call. The mapping from model output to tier
// is total: unrecognized output falls back to the simple tier. Gateway
// errors propagate; there is no retry here.
func (p *Pipeline) Classify(ctx context.Context, requestID, message string) (Tier, error) {
	start := time.Now()

	resp, err := p.gen.Complete(ctx, requestID, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: classifyPrompt + message},
		},
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
	})
	if err != nil {
		return "", eris.Wrap(err, "concierge: classify")
	}

	tier := ParseTier(resp.Content)
	zap.L().Info("concierge.classify.done",
		zap.String("request_id", requestID),
		zap.String("tier", string(tier)),
		zap.String("raw", resp.Content),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)

	return tier, nil
}
