package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/internsnow/campus-match/internal/domain"
)

type stubRoles struct {
	role string
	err  error
}

func (s stubRoles) RoleFor(_ context.Context, _ string) (string, error) { return s.role, s.err }

func signToken(t *testing.T, secret, iss, sub string, roles []string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		Email: "u@school.edu",
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    iss,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	ss, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return ss
}

func TestSessions_Require(t *testing.T) {
	secret, issuer := "test-secret", "campus-match"
	valid := func(t *testing.T) string {
		return signToken(t, secret, issuer, "auth0|u1", []string{"Student"}, time.Now().Add(time.Hour))
	}

	t.Run("bearer_token_sets_actor", func(t *testing.T) {
		s := NewSessions(secret, issuer, "session", stubRoles{role: "employer"})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+valid(t))
		rr := httptest.NewRecorder()

		s.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := ActorFrom(r.Context())
			require.True(t, ok)
			assert.Equal(t, "auth0|u1", a.Sub)
			assert.Equal(t, []string{"student", "employer"}, a.Roles)
			assert.False(t, a.IsAdmin)
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("host_cookie_preferred", func(t *testing.T) {
		s := NewSessions(secret, issuer, "session", nil)
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "__Host-session", Value: valid(t)})
		req.AddCookie(&http.Cookie{Name: "session", Value: "garbage"})
		rr := httptest.NewRecorder()

		s.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("role_lookup_failure_is_ignored", func(t *testing.T) {
		s := NewSessions(secret, issuer, "session", stubRoles{err: errors.New("db down")})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "session", Value: valid(t)})
		rr := httptest.NewRecorder()

		s.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, _ := ActorFrom(r.Context())
			assert.Equal(t, []string{"student"}, a.Roles)
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	rejected := map[string]string{
		"missing":      "",
		"expired":      signToken(t, secret, issuer, "auth0|u1", nil, time.Now().Add(-time.Hour)),
		"wrong_secret": signToken(t, "other", issuer, "auth0|u1", nil, time.Now().Add(time.Hour)),
		"wrong_issuer": signToken(t, secret, "someone-else", "auth0|u1", nil, time.Now().Add(time.Hour)),
		"missing_sub":  signToken(t, secret, issuer, " ", nil, time.Now().Add(time.Hour)),
	}
	for name, tok := range rejected {
		t.Run("rejects_"+name, func(t *testing.T) {
			s := NewSessions(secret, issuer, "session", nil)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tok != "" {
				req.Header.Set("Authorization", "Bearer "+tok)
			}
			rr := httptest.NewRecorder()

			called := false
			s.Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })).ServeHTTP(rr, req)
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Body.String(), `"code":"unauthorized"`)
		})
	}
}

func TestSessions_Optional(t *testing.T) {
	s := NewSessions("secret", "", "session", nil)

	t.Run("anonymous_passes_without_actor", func(t *testing.T) {
		rr := httptest.NewRecorder()
		s.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := ActorFrom(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("valid_token_attaches_actor", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "secret", "", "auth0|x", []string{"admin"}, time.Now().Add(time.Hour)))
		rr := httptest.NewRecorder()
		s.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a, ok := ActorFrom(r.Context())
			assert.True(t, ok)
			assert.True(t, a.IsAdmin)
		})).ServeHTTP(rr, req)
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	tests := []struct {
		name   string
		actor  *domain.Actor
		status int
	}{
		{"no_actor", nil, http.StatusUnauthorized},
		{"student_forbidden", &domain.Actor{Sub: "s", Roles: []string{"student"}}, http.StatusForbidden},
		{"employer_allowed", &domain.Actor{Sub: "e", Roles: []string{"employer"}}, http.StatusOK},
		{"admin_allowed", &domain.Actor{Sub: "a", IsAdmin: true}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.actor != nil {
				req = req.WithContext(WithActor(req.Context(), *tt.actor))
			}
			rr := httptest.NewRecorder()
			RequireRole(domain.RoleEmployer)(next).ServeHTTP(rr, req)
			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestSessionCookieName(t *testing.T) {
	assert.Equal(t, "__Host-session", SessionCookieName("session", true))
	assert.Equal(t, "session", SessionCookieName("session", false))
}
