package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/goodfin/concierge/internal/concierge"
	"github.com/goodfin/concierge/internal/model"
)

const genericErrorMessage = "Concierge request failed"

// conciergeRequest is the inbound JSON body. The effective message is
// the message field if set, else the content of the last user-role
// entry in messages.
type conciergeRequest struct {
	Message        string             `json:"message"`
	Messages       []conciergeMessage `json:"messages"`
	ContextCompany *model.Company     `json:"contextCompany"`
}

type conciergeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type conciergeResponse struct {
	Content        string         `json:"content"`
	Classification classification `json:"classification"`
}

type classification struct {
	Tier string `json:"tier"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// effectiveMessage derives the question text from the body; ok is false
// when no usable message exists.
func effectiveMessage(req conciergeRequest) (string, bool) {
	if req.Message != "" {
		return req.Message, true
	}
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == "user" && req.Messages[i].Content != "" {
			return req.Messages[i].Content, true
		}
	}
	return "", false
}

func (s *Server) handleConcierge(w http.ResponseWriter, r *http.Request) {
	requestID := RequestIDFromContext(r.Context())

	var req conciergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		zap.L().Warn("concierge.bad_request",
			zap.String("request_id", requestID),
			zap.String("reason", "malformed body"),
		)
		s.metrics.CountRequest("bad_request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing or invalid message"})
		return
	}

	message, ok := effectiveMessage(req)
	if !ok {
		zap.L().Warn("concierge.bad_request",
			zap.String("request_id", requestID),
			zap.String("reason", "missing message"),
		)
		s.metrics.CountRequest("bad_request")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing or invalid message"})
		return
	}

	result, err := s.pipeline.Handle(r.Context(), concierge.Request{
		RequestID: requestID,
		Message:   message,
		Company:   req.ContextCompany,
	})
	if err != nil {
		zap.L().Error("concierge.request.failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		s.metrics.CountRequest("error")
		msg := err.Error()
		if msg == "" {
			msg = genericErrorMessage
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msg})
		return
	}

	s.metrics.CountRequest("ok")
	writeJSON(w, http.StatusOK, conciergeResponse{
		Content:        result.Content,
		Classification: classification{Tier: string(result.Tier)},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
