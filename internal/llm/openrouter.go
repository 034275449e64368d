package llm

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/goodfin/concierge/pkg/openrouter"
)

// openRouterClient adapts pkg/openrouter to the Client interface.
type openRouterClient struct {
	api   openrouter.Client
	model string
}

// NewOpenRouter wraps an OpenRouter client. An empty model uses the
// client's default.
func NewOpenRouter(api openrouter.Client, model string) Client {
	return &openRouterClient{api: api, model: model}
}

func (c *openRouterClient) Complete(ctx context.Context, requestID string, req Request) (*Response, error) {
	msgs := make([]openrouter.Message, len(req.Messages))
	for i, m := range req.Messages {
		msgs[i] = openrouter.Message{Role: m.Role, Content: m.Content}
	}

	temp := req.Temperature
	maxTokens := req.MaxTokens

	start := time.Now()
	zap.L().Info("openrouter.chat.start",
		zap.String("request_id", requestID),
		zap.String("model", c.model),
		zap.Int("message_count", len(msgs)),
	)

	resp, err := c.api.ChatCompletion(ctx, openrouter.ChatCompletionRequest{
		Model:       c.model,
		Messages:    msgs,
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	elapsed := time.Since(start)
	if err != nil {
		zap.L().Error("openrouter.chat.failed",
			zap.String("request_id", requestID),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, eris.Wrap(err, "llm: openrouter completion")
	}

	if len(resp.Choices) == 0 {
		return nil, eris.New("llm: openrouter returned no choices")
	}
	choice := resp.Choices[0]

	zap.L().Info("openrouter.chat.done",
		zap.String("request_id", requestID),
		zap.Duration("elapsed", elapsed),
		zap.String("finish_reason", choice.FinishReason),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)

	return &Response{
		Content:      strings.TrimSpace(choice.Message.Content),
		FinishReason: choice.FinishReason,
		InputTokens:  int64(resp.Usage.PromptTokens),
		OutputTokens: int64(resp.Usage.CompletionTokens),
	}, nil
}
