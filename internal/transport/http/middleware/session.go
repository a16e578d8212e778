package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/transport/http/response"
)

type ctxKey string

const ctxActor ctxKey = "actor"

const hostCookiePrefix = "__Host-"

// Claims carried by the session token. Subject is the identity provider id.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// RoleLookup returns the role stored for a subject; "" when unknown.
type RoleLookup interface {
	RoleFor(ctx context.Context, sub string) (string, error)
}

type Sessions struct {
	secret     []byte
	issuer     string
	cookieName string
	roles      RoleLookup
}

func NewSessions(secret, issuer, cookieName string, roles RoleLookup) *Sessions {
	if cookieName == "" {
		cookieName = "session"
	}
	return &Sessions{
		secret:     []byte(secret),
		issuer:     issuer,
		cookieName: cookieName,
		roles:      roles,
	}
}

// Optional attaches the actor when a valid session is present and otherwise
// lets the request through untouched.
func (s *Sessions) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if actor, err := s.resolve(r); err == nil {
			r = r.WithContext(WithActor(r.Context(), actor))
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Sessions) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := s.resolve(r)
		if err != nil {
			zlog.Debug().Err(err).Str("path", r.URL.Path).Msg("session rejected")
			response.Fail(w, http.StatusUnauthorized, "unauthorized", "Unauthorized",
				map[string]string{"reason": err.Error()}, response.RequestID(r))
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireRole must run after Require. Admins always pass.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok {
				response.Fail(w, http.StatusUnauthorized, "unauthorized", "Unauthorized", nil, response.RequestID(r))
				return
			}
			if !actor.IsAdmin && !actor.HasAnyRole(roles...) {
				response.Fail(w, http.StatusForbidden, "forbidden", "Forbidden", nil, response.RequestID(r))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Sessions) resolve(r *http.Request) (domain.Actor, error) {
	raw := s.token(r)
	if raw == "" {
		return domain.Actor{}, errors.New("missing session")
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second))
	if err != nil {
		return domain.Actor{}, err
	}
	if !tok.Valid {
		return domain.Actor{}, errors.New("invalid token")
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return domain.Actor{}, errors.New("invalid issuer")
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return domain.Actor{}, errors.New("missing sub")
	}

	dbRole := ""
	if s.roles != nil {
		role, err := s.roles.RoleFor(r.Context(), sub)
		if err != nil {
			zlog.Warn().Err(err).Str("sub", sub).Msg("role lookup failed")
		} else {
			dbRole = role
		}
	}
	return domain.NewActor(sub, claims.Email, claims.Roles, dbRole), nil
}

// token reads the secure cookie first, then the plain cookie, then a bearer header.
func (s *Sessions) token(r *http.Request) string {
	if c, err := r.Cookie(hostCookiePrefix + s.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if c, err := r.Cookie(s.cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// SessionCookieName is the cookie a login flow should set for this config.
func SessionCookieName(name string, secure bool) string {
	if secure {
		return hostCookiePrefix + name
	}
	return name
}

func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, ctxActor, a)
}

func ActorFrom(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(ctxActor).(domain.Actor)
	return a, ok
}
