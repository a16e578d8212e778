package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/metrics"
	"github.com/internsnow/campus-match/internal/transport/http/response"
)

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	response.Data(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz runs every check and answers 503 when any of them fails.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	status := http.StatusOK
	deps := make(map[string]string, len(names))
	for _, name := range names {
		err := h.checks[name](ctx)
		metrics.SetDependencyHealth(name, err == nil)
		if err != nil {
			zlog.Warn().Err(err).Str("dependency", name).Msg("readiness check failed")
			deps[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "up"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	response.Data(w, status, map[string]any{"status": overall, "dependencies": deps})
}
