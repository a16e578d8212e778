package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	reqctx "github.com/internsnow/campus-match/internal/pkg/context"
)

func TestRequestID(t *testing.T) {
	t.Run("generates_when_missing", func(t *testing.T) {
		rr := httptest.NewRecorder()
		var seen string
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = reqctx.RequestIDFromContext(r.Context())
		})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(HeaderXRequestID))
	})

	t.Run("keeps_incoming", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, "req-abc")
		rr := httptest.NewRecorder()
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)
		assert.Equal(t, "req-abc", rr.Header().Get(HeaderXRequestID))
	})

	t.Run("replaces_oversized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, strings.Repeat("x", 200))
		rr := httptest.NewRecorder()
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)
		assert.Len(t, rr.Header().Get(HeaderXRequestID), 36)
	})

	t.Run("replaces_unsafe_characters", func(t *testing.T) {
		for _, id := range []string{"abc def", "<script>", "id\"quoted", "ünïcode"} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(HeaderXRequestID, id)
			rr := httptest.NewRecorder()
			RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)
			assert.NotEqual(t, id, rr.Header().Get(HeaderXRequestID))
			assert.Len(t, rr.Header().Get(HeaderXRequestID), 36, id)
		}
	})

	t.Run("falls_back_to_correlation_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, "not valid!")
		req.Header.Set(HeaderXCorrelationID, "trace:42.a_b")
		rr := httptest.NewRecorder()
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rr, req)
		assert.Equal(t, "trace:42.a_b", rr.Header().Get(HeaderXRequestID))
	})

	t.Run("binds_request_logger", func(t *testing.T) {
		var buf bytes.Buffer
		prev := zlog.Logger
		zlog.Logger = zerolog.New(&buf)
		t.Cleanup(func() { zlog.Logger = prev })

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderXRequestID, "req-log")
		RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Logger(r.Context()).Info().Msg("inside")
		})).ServeHTTP(httptest.NewRecorder(), req)

		assert.Contains(t, buf.String(), `"request_id":"req-log"`)
		assert.Contains(t, buf.String(), `"message":"inside"`)
	})
}

func TestLogger_FallsBackToGlobal(t *testing.T) {
	assert.Same(t, &zlog.Logger, Logger(context.Background()))
}

func TestSecurityHeaders(t *testing.T) {
	rr := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Contains(t, rr.Header().Get("Content-Security-Policy"), "default-src 'none'")
}

func TestAccessLog(t *testing.T) {
	r := chi.NewRouter()
	r.Use(AccessLog)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/{id}", routePattern(r))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}

func TestStatusWriter_DefaultsToOK(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, sw.statusCode())
	_, _ = sw.Write([]byte("hi"))
	assert.Equal(t, http.StatusOK, sw.status)
	assert.Equal(t, 2, sw.bytes)
}

func TestEduGate(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name     string
		enabled  bool
		cookie   string
		status   int
		location string
	}{
		{"disabled_passes", false, "", http.StatusOK, ""},
		{"edu_passes", true, "true", http.StatusOK, ""},
		{"non_edu_redirects", true, "false", http.StatusSeeOther, NotEduPath},
		{"unknown_goes_to_login", true, "", http.StatusSeeOther, StudentLoginPath},
		{"garbage_goes_to_login", true, "maybe", http.StatusSeeOther, StudentLoginPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/student/events/evt-001", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: EduCookieName, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			EduGate(tt.enabled)(next).ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.location, rr.Header().Get("Location"))
		})
	}
}
