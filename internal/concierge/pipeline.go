package concierge

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/llm"
	"github.com/goodfin/concierge/internal/model"
	"github.com/goodfin/concierge/pkg/brave"
)

const defaultSearchTimeout = 8 * time.Second

// Request is one concierge question with its optional deal context. The
// message has already been validated non-empty by the HTTP boundary.
type Request struct {
	RequestID string
	Message   string
	Company   *model.Company
}

// Result is the generated answer plus its classification.
type Result struct {
	Content string
	Tier    Tier
}

// Pipeline runs validate → classify → (search) → answer strictly in
// sequence for each request. It holds no per-request state; all fields
// are read-only after construction.
type Pipeline struct {
	gen           llm.Client
	search        brave.Client // nil when no search credential is configured
	searchTimeout time.Duration
	metrics       *Metrics
}

// New creates a pipeline. search may be nil (search degrades to empty
// results); metrics may be nil (telemetry is log-only).
func New(gen llm.Client, search brave.Client, searchTimeout time.Duration, metrics *Metrics) *Pipeline {
	if searchTimeout <= 0 {
		searchTimeout = defaultSearchTimeout
	}
	return &Pipeline{
		gen:           gen,
		search:        search,
		searchTimeout: searchTimeout,
		metrics:       metrics,
	}
}

// Handle runs the full pipeline for one request. Search runs only for
// tiers configured to need grounding, and its failures never fail the
// request; classification and generation errors propagate to the caller.
func (p *Pipeline) Handle(ctx context.Context, req Request) (*Result, error) {
	t0 := time.Now()

	tier, err := p.Classify(ctx, req.RequestID, req.Message)
	classifyElapsed := time.Since(t0)
	p.metrics.observeStage(StageClassify, classifyElapsed)
	if err != nil {
		return nil, err
	}

	cfg := ConfigFor(tier)

	var results []model.SearchResult
	if cfg.RequiresSearch {
		tSearch := time.Now()
		query := buildSearchQuery(req.Message, req.Company)
		results = p.searchWeb(ctx, req.RequestID, query, cfg.MaxResults)
		p.metrics.observeStage(StageSearch, time.Since(tSearch))
	}

	tAnswer := time.Now()
	content, err := p.Answer(ctx, req.RequestID, req.Message, tier, req.Company, results)
	p.metrics.observeStage(StageAnswer, time.Since(tAnswer))
	if err != nil {
		return nil, err
	}

	total := time.Since(t0)
	p.metrics.observeStage(StageTotal, total)
	zap.L().Info("concierge.request.done",
		zap.String("request_id", req.RequestID),
		zap.String("tier", string(tier)),
		zap.Int("result_count", len(results)),
		zap.Int64("classify_ms", classifyElapsed.Milliseconds()),
		zap.Int64("total_ms", total.Milliseconds()),
	)

	return &Result{Content: content, Tier: tier}, nil
}
