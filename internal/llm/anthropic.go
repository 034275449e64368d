package llm

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/goodfin/concierge/pkg/anthropic"
)

// anthropicClient adapts pkg/anthropic to the Client interface. System
// messages are lifted out of the message list into the dedicated system
// field the Messages API expects.
type anthropicClient struct {
	api   anthropic.Client
	model string
}

// NewAnthropic wraps an Anthropic client.
func NewAnthropic(api anthropic.Client, model string) Client {
	return &anthropicClient{api: api, model: model}
}

func (c *anthropicClient) Complete(ctx context.Context, requestID string, req Request) (*Response, error) {
	var system string
	msgs := make([]anthropic.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		msgs = append(msgs, anthropic.Message{Role: m.Role, Content: m.Content})
	}

	temp := req.Temperature

	start := time.Now()
	zap.L().Info("anthropic.message.start",
		zap.String("request_id", requestID),
		zap.String("model", c.model),
		zap.Int("message_count", len(msgs)),
	)

	resp, err := c.api.CreateMessage(ctx, anthropic.MessageRequest{
		Model:       c.model,
		MaxTokens:   int64(req.MaxTokens),
		System:      system,
		Messages:    msgs,
		Temperature: &temp,
	})
	elapsed := time.Since(start)
	if err != nil {
		zap.L().Error("anthropic.message.failed",
			zap.String("request_id", requestID),
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, eris.Wrap(err, "llm: anthropic completion")
	}

	zap.L().Info("anthropic.message.done",
		zap.String("request_id", requestID),
		zap.Duration("elapsed", elapsed),
		zap.String("stop_reason", resp.StopReason),
		zap.Int64("input_tokens", resp.Usage.InputTokens),
		zap.Int64("output_tokens", resp.Usage.OutputTokens),
	)

	return &Response{
		Content:      strings.TrimSpace(resp.Text()),
		FinishReason: resp.StopReason,
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}
