package concierge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/llm"
	"github.com/goodfin/concierge/internal/model"
)

// answerTemperature gives prose some variety while classification stays
// deterministic.
const answerTemperature = 0.3

// Answer generates the tier-specific response, grounding it with the
// supplied search results when present. Gateway errors propagate.
func (p *Pipeline) Answer(ctx context.Context, requestID, message string, tier Tier, company *model.Company, results []model.SearchResult) (string, error) {
	cfg := ConfigFor(tier)
	system := buildSystemPrompt(cfg.SystemPrompt, tier, company, results)

	userContent := message
	if len(results) > 0 {
		userContent = message + "\n\n[Use the web results above where they help.]"
	}

	start := time.Now()
	resp, err := p.gen.Complete(ctx, requestID, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: system},
			{Role: llm.RoleUser, Content: userContent},
		},
		Temperature: answerTemperature,
		MaxTokens:   cfg.MaxTokens,
	})
	if err != nil {
		return "", eris.Wrap(err, "concierge: answer")
	}

	zap.L().Info("concierge.answer.done",
		zap.String("request_id", requestID),
		zap.String("tier", string(tier)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		zap.String("preview", preview(resp.Content, 120)),
	)

	return resp.Content, nil
}

// buildSystemPrompt assembles the tier template, the deal context block
// and, when results exist, the formatted search block with usage rules.
func buildSystemPrompt(template string, tier Tier, company *model.Company, results []model.SearchResult) string {
	var sb strings.Builder
	sb.WriteString(template)
	sb.WriteString("\nClassification for this question: ")
	sb.WriteString(string(tier))
	sb.WriteString(". ")
	sb.WriteString(contextBlock(company))

	if block := FormatSearchResults(results); block != "" {
		sb.WriteString("\nUse the following web search results to ground your answer in current data when relevant. Disregard results that are not about private markets or the deal in question. If none apply, answer from general knowledge.")
		sb.WriteString("\n\n--- Web search results ---\n")
		sb.WriteString(block)
		sb.WriteString("\n---")
	}

	return sb.String()
}

func contextBlock(company *model.Company) string {
	if company == nil {
		return "No specific deal selected; answer in general terms."
	}
	return fmt.Sprintf("Current deal context: %s (%s), demand %d/100, supply %d/100.",
		company.ShortName, company.Sector, company.DemandIndex, company.SupplyIndex)
}

// FormatSearchResults renders results as numbered entries. An empty
// slice yields an empty string so no search section is appended at all.
func FormatSearchResults(results []model.SearchResult) string {
	if len(results) == 0 {
		return ""
	}
	entries := make([]string, len(results))
	for i, r := range results {
		entries[i] = fmt.Sprintf("[%d] %s\n%s\n%s", i+1, r.Title, r.URL, r.Snippet)
	}
	return strings.Join(entries, "\n\n")
}

func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
