package response

import (
	"net/http"

	reqctx "github.com/internsnow/campus-match/internal/pkg/context"
)

// RequestID prefers the id stored by the request id middleware, then the inbound header.
func RequestID(r *http.Request) string {
	if id := reqctx.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	if v := r.Header.Get("X-Request-Id"); v != "" {
		return v
	}
	return r.Header.Get("X-Request-ID")
}
