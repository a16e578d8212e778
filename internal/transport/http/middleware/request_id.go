package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	reqctx "github.com/internsnow/campus-match/internal/pkg/context"
)

const (
	HeaderXRequestID     = "X-Request-Id"
	HeaderXCorrelationID = "X-Correlation-Id"

	maxRequestIDLen = 128
)

// RequestID adopts the caller's id when it is a safe token and mints a uuid
// otherwise. The id is echoed back, stored in the context and bound to a
// request-scoped logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := incomingRequestID(r)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		w.Header().Set(HeaderXRequestID, reqID)
		ctx := reqctx.WithRequestID(r.Context(), reqID)
		ctx = zlog.With().Str("request_id", reqID).Logger().WithContext(ctx)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// incomingRequestID prefers X-Request-Id and falls back to X-Correlation-Id.
// Ids go into log lines and response headers, so only token characters pass.
func incomingRequestID(r *http.Request) string {
	for _, h := range []string{HeaderXRequestID, HeaderXCorrelationID} {
		if id := r.Header.Get(h); validRequestID(id) {
			return id
		}
	}
	return ""
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.', c == ':':
		default:
			return false
		}
	}
	return true
}

// Logger returns the request-scoped logger, or the global one outside RequestID.
func Logger(ctx context.Context) *zerolog.Logger {
	if lg := zerolog.Ctx(ctx); lg.GetLevel() != zerolog.Disabled {
		return lg
	}
	return &zlog.Logger
}
