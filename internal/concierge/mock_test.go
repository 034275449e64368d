package concierge

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/goodfin/concierge/internal/llm"
	"github.com/goodfin/concierge/pkg/brave"
)

// --- Generation gateway mock ---

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Complete(ctx context.Context, requestID string, req llm.Request) (*llm.Response, error) {
	args := m.Called(ctx, requestID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// --- Search gateway mock ---

type mockBrave struct {
	mock.Mock
}

func (m *mockBrave) Search(ctx context.Context, query string, opts ...brave.SearchOption) (*brave.SearchResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*brave.SearchResponse), args.Error(1)
}

// isClassifyCall matches the deterministic single-message classification
// request shape.
func isClassifyCall(req llm.Request) bool {
	return len(req.Messages) == 1 &&
		req.Messages[0].Role == llm.RoleUser &&
		req.Temperature == 0 &&
		req.MaxTokens == classifyMaxTokens
}

// isAnswerCall matches the system+user answer request shape.
func isAnswerCall(req llm.Request) bool {
	return len(req.Messages) == 2 &&
		req.Messages[0].Role == llm.RoleSystem &&
		req.Messages[1].Role == llm.RoleUser &&
		req.Temperature == answerTemperature
}
