package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/internsnow/campus-match/internal/config"
	"github.com/internsnow/campus-match/internal/domain"
	"github.com/internsnow/campus-match/internal/metrics"
	"github.com/internsnow/campus-match/internal/transport/http/handlers"
	appmw "github.com/internsnow/campus-match/internal/transport/http/middleware"
)

type Handlers struct {
	Intake      *handlers.IntakeHandler
	Internships *handlers.InternshipsHandler
	Events      *handlers.EventsHandler
	Fluency     *handlers.FluencyHandler
	Health      *handlers.HealthHandler
}

func New(h Handlers, sessions *appmw.Sessions, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.AccessLog)

	// limited wraps the visitor-facing and write endpoints; health checks stay unlimited.
	limited := func(next http.Handler) http.Handler { return next }
	if cfg.RLEnabled {
		limited = httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow)
	}

	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(limited)

		r.Get("/intake", h.Intake.Match)
		r.Get("/intake/majors", h.Intake.Majors)

		r.Route("/api/internships", func(r chi.Router) {
			r.Get("/", h.Internships.List)
			r.Get("/{id}", h.Internships.Get)

			r.Group(func(r chi.Router) {
				r.Use(sessions.Require)
				r.Use(appmw.RequireRole(domain.RoleEmployer))
				r.Post("/", h.Internships.Create)
				r.Put("/{id}", h.Internships.Update)
				r.Delete("/{id}", h.Internships.Delete)
			})
		})

		r.Route("/api/events", func(r chi.Router) {
			r.Get("/", h.Events.ListLive)

			r.Group(func(r chi.Router) {
				r.Use(sessions.Require)
				r.Get("/manage", h.Events.ListManage)
				r.Post("/", h.Events.Create)
				r.Put("/{id}", h.Events.Update)
				r.Delete("/{id}", h.Events.Archive)
			})

			r.Get("/{id}", h.Events.Get)
		})

		r.Route("/api/fluency", func(r chi.Router) {
			r.Get("/questions", h.Fluency.Questions)
			r.With(sessions.Optional).Post("/submit", h.Fluency.Submit)

			r.Group(func(r chi.Router) {
				r.Use(sessions.Require)
				r.Get("/results", h.Fluency.Results)
				r.Get("/results/latest", h.Fluency.Latest)
			})

			r.Route("/admin/questions", func(r chi.Router) {
				r.Use(sessions.Require)
				r.Use(appmw.RequireRole(domain.RoleAdmin))
				r.Get("/", h.Fluency.AdminList)
				r.Post("/", h.Fluency.AdminCreate)
				r.Put("/{id}", h.Fluency.AdminUpdate)
				r.Delete("/{id}", h.Fluency.AdminDeactivate)
			})
		})
	})

	r.Route("/student", func(r chi.Router) {
		r.Use(appmw.EduGate(cfg.EduEnforcement))
		r.Use(sessions.Optional)
		r.Get("/find-opportunities/{id}", h.Internships.Get)
		r.Get("/events/{id}", h.Events.Get)
	})

	return r
}
