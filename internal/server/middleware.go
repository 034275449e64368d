package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries the caller-supplied trace identifier.
const RequestIDHeader = "X-Concierge-Request-Id"

type ctxKey int

const requestIDKey ctxKey = 0

// requestID middleware honors the inbound trace header or generates a
// readable identifier, stores it on the context and echoes it on the
// response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = newRequestID()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns the trace identifier, or a fresh one if
// the middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		return id
	}
	return newRequestID()
}

func newRequestID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("concierge_%d_%s", time.Now().UnixMilli(), suffix)
}
