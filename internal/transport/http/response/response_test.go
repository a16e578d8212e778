package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internsnow/campus-match/internal/domain"
	reqctx "github.com/internsnow/campus-match/internal/pkg/context"
)

type failEnvelope struct {
	Error struct {
		Code      string            `json:"code"`
		Message   string            `json:"message"`
		Meta      map[string]string `json:"meta"`
		RequestID string            `json:"request_id"`
	} `json:"error"`
}

func TestErr(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not_found", domain.ErrNotFound("Event not found"), http.StatusNotFound, "not_found"},
		{"validation", domain.ErrValidation("Missing required fields"), http.StatusBadRequest, "validation_error"},
		{"forbidden", domain.ErrForbidden("no access"), http.StatusForbidden, "forbidden"},
		{"unauthorized", domain.ErrUnauthorized("Unauthorized"), http.StatusUnauthorized, "unauthorized"},
		{"conflict", domain.ErrConflict("dup"), http.StatusConflict, "conflict"},
		{"invalid_state", domain.ErrInvalidState("bad"), http.StatusConflict, "invalid_state"},
		{"generic_error", errors.New("db crash"), http.StatusInternalServerError, "internal_error"},
		{"nil_error", nil, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "http://example.com/x", nil)
			Err(rr, req, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			var body failEnvelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}

	t.Run("internal_details_are_hidden", func(t *testing.T) {
		rr := httptest.NewRecorder()
		Err(rr, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password=hunter2"))
		assert.NotContains(t, rr.Body.String(), "hunter2")
	})

	t.Run("meta_and_request_id_are_included", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(reqctx.WithRequestID(req.Context(), "req-42"))
		Err(rr, req, domain.ErrValidationMeta("invalid body", map[string]string{"title": "required"}))

		var body failEnvelope
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "req-42", body.Error.RequestID)
		assert.Equal(t, "required", body.Error.Meta["title"])
	})
}

func TestData(t *testing.T) {
	rr := httptest.NewRecorder()
	Data(rr, http.StatusCreated, map[string]string{"id": "1"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"id":"1"}}`, rr.Body.String())
}

func TestRequestID_FallsBackToHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "hdr-1")
	assert.Equal(t, "hdr-1", RequestID(req))
}
