package concierge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/model"
	"github.com/goodfin/concierge/pkg/brave"
)

const noSnippetPlaceholder = "No description available"

// marketKeywords mark a message as already carrying domain context, so
// the search query is not padded with extra terms.
var marketKeywords = []string{"market", "valuation", "secondary", "secondaries", "pre-ipo", "private"}

// buildSearchQuery synthesizes the web search query: the deal short name
// prefixes the message when a deal is selected, and generic domain terms
// are appended when the message has none of its own.
func buildSearchQuery(message string, company *model.Company) string {
	query := message
	if company != nil && company.ShortName != "" {
		query = strings.TrimSpace(company.ShortName + " " + message)
	}

	lower := strings.ToLower(query)
	for _, kw := range marketKeywords {
		if strings.Contains(lower, kw) {
			return query
		}
	}
	return query + " private markets"
}

// searchWeb fetches grounding results for the query, bounded to maxResults.
// Search is an enrichment, never a hard dependency: a missing credential,
// timeout, upstream error or malformed body all degrade to an empty
// slice, logged but never surfaced to the caller.
func (p *Pipeline) searchWeb(ctx context.Context, requestID, query string, maxResults int) []model.SearchResult {
	if p.search == nil {
		zap.L().Warn("concierge.search.skipped",
			zap.String("request_id", requestID),
			zap.String("reason", "no search credential configured"),
		)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.searchTimeout)
	defer cancel()

	start := time.Now()
	resp, err := p.search.Search(ctx, query, brave.WithCount(maxResults))
	if err != nil {
		zap.L().Warn("concierge.search.failed",
			zap.String("request_id", requestID),
			zap.String("query", query),
			zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
			zap.Error(err),
		)
		return nil
	}

	results := normalizeResults(resp.Web.Results, maxResults)
	zap.L().Info("concierge.search.done",
		zap.String("request_id", requestID),
		zap.String("query", query),
		zap.Int("result_count", len(results)),
		zap.Int64("elapsed_ms", time.Since(start).Milliseconds()),
	)
	return results
}

// normalizeResults coalesces heterogeneous upstream fields into the
// {title, url, snippet} shape and truncates to maxResults. Order is
// upstream relevance order.
func normalizeResults(raw []brave.WebResult, maxResults int) []model.SearchResult {
	if len(raw) > maxResults {
		raw = raw[:maxResults]
	}

	results := make([]model.SearchResult, 0, len(raw))
	for i, r := range raw {
		title := r.Title
		if title == "" {
			title = fmt.Sprintf("Result %d", i+1)
		}
		snippet := r.Description
		if snippet == "" {
			snippet = noSnippetPlaceholder
		}
		results = append(results, model.SearchResult{
			Title:   title,
			URL:     r.URL,
			Snippet: snippet,
		})
	}
	return results
}
