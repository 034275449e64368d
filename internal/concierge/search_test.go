package concierge

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/goodfin/concierge/internal/model"
	"github.com/goodfin/concierge/pkg/brave"
)

func TestBuildSearchQuery(t *testing.T) {
	spacex := &model.Company{ShortName: "SpaceX", Sector: "Aerospace"}

	tests := []struct {
		name    string
		message string
		company *model.Company
		want    string
	}{
		{
			name:    "no_company_with_domain_terms",
			message: "How is AI valuation trending?",
			company: nil,
			want:    "How is AI valuation trending?",
		},
		{
			name:    "company_prefix",
			message: "secondary pricing outlook",
			company: spacex,
			want:    "SpaceX secondary pricing outlook",
		},
		{
			name:    "domain_terms_appended",
			message: "Should I allocate $50k?",
			company: nil,
			want:    "Should I allocate $50k? private markets",
		},
		{
			name:    "company_prefix_and_domain_terms",
			message: "Should I allocate $50k?",
			company: spacex,
			want:    "SpaceX Should I allocate $50k? private markets",
		},
		{
			name:    "empty_short_name_ignored",
			message: "pre-ipo demand",
			company: &model.Company{},
			want:    "pre-ipo demand",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildSearchQuery(tt.message, tt.company))
		})
	}
}

func TestSearchWebDegradesToEmpty(t *testing.T) {
	tests := []struct {
		name  string
		setup func() *Pipeline
	}{
		{
			name: "no_credential",
			setup: func() *Pipeline {
				return New(&mockLLM{}, nil, time.Second, nil)
			},
		},
		{
			name: "upstream_error",
			setup: func() *Pipeline {
				search := &mockBrave{}
				search.On("Search", mock.Anything, mock.Anything).
					Return(nil, assert.AnError)
				return New(&mockLLM{}, search, time.Second, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.setup()
			results := p.searchWeb(context.Background(), "req-1", "query", 5)
			assert.Empty(t, results)
		})
	}
}

func TestSearchWebTimeoutDegradesToEmpty(t *testing.T) {
	search := &mockBrave{}
	search.On("Search", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			<-ctx.Done()
		}).
		Return(nil, context.DeadlineExceeded)

	p := New(&mockLLM{}, search, 10*time.Millisecond, nil)
	results := p.searchWeb(context.Background(), "req-1", "query", 5)
	assert.Empty(t, results)
}

func TestSearchWebNormalizesAndTruncates(t *testing.T) {
	search := &mockBrave{}
	search.On("Search", mock.Anything, "spacex valuation").
		Return(&brave.SearchResponse{Web: brave.WebResults{Results: []brave.WebResult{
			{Title: "A", URL: "https://a", Description: "first"},
			{Title: "", URL: "https://b", Description: ""},
			{Title: "C", URL: "https://c", Description: "third"},
		}}}, nil)

	p := New(&mockLLM{}, search, time.Second, nil)
	results := p.searchWeb(context.Background(), "req-1", "spacex valuation", 2)

	assert.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Title)
	assert.Equal(t, "first", results[0].Snippet)
	// Missing fields coalesce to placeholders.
	assert.Equal(t, "Result 2", results[1].Title)
	assert.Equal(t, noSnippetPlaceholder, results[1].Snippet)
}

func TestNormalizeResultsOrderPreserving(t *testing.T) {
	raw := []brave.WebResult{
		{Title: "first", URL: "https://1", Description: "d1"},
		{Title: "second", URL: "https://2", Description: "d2"},
		{Title: "third", URL: "https://3", Description: "d3"},
	}
	results := normalizeResults(raw, 10)
	assert.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Title)
	assert.Equal(t, "second", results[1].Title)
	assert.Equal(t, "third", results[2].Title)
}
