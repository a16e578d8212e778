package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/internsnow/campus-match/internal/application/event"
	"github.com/internsnow/campus-match/internal/application/fluency"
	"github.com/internsnow/campus-match/internal/application/intake"
	"github.com/internsnow/campus-match/internal/application/internship"
	"github.com/internsnow/campus-match/internal/config"
	rediscache "github.com/internsnow/campus-match/internal/infrastructure/caching/redis"
	"github.com/internsnow/campus-match/internal/infrastructure/db/postgres"
	rabbitpub "github.com/internsnow/campus-match/internal/infrastructure/messaging/rabbitmq"
	"github.com/internsnow/campus-match/internal/logger"
	"github.com/internsnow/campus-match/internal/transport/http/handlers"
	appmw "github.com/internsnow/campus-match/internal/transport/http/middleware"
	"github.com/internsnow/campus-match/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App holds the wired service and the resources it must release.
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Publisher *rabbitpub.Publisher
	Cache     *rediscache.Client
}

func (a *App) Close() {
	if a.Publisher != nil {
		_ = a.Publisher.Close()
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
}

// httpServer is the part of *http.Server that Run drives.
type httpServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
	Close() error
	Addr() string
}

type realServer struct{ *http.Server }

func (r realServer) Addr() string { return r.Server.Addr }

type serverBuilder func() (httpServer, func(), error)

// Run serves until a signal arrives or the server fails, then shuts down
// within shutdownTimeout. The return value is the process exit code.
func Run(build serverBuilder, sigCh <-chan os.Signal, lg zerolog.Logger, shutdownTimeout time.Duration) int {
	srv, cleanup, err := build()
	if err != nil {
		lg.Error().Err(err).Msg("bootstrap failed")
		return 1
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("addr", srv.Addr()).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-sigCh:
		lg.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		lg.Error().Err(err).Msg("server crashed")
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
	}

	lg.Info().Msg("shutdown complete")
	return 0
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	os.Exit(Run(func() (httpServer, func(), error) { return bootstrap(cfg) }, sigCh, zlog.Logger, cfg.ShutdownTimeout))
}

// bootstrap opens the database, prepares the schema and wires the app.
func bootstrap(cfg *config.Config) (httpServer, func(), error) {
	if u, err := url.Parse(cfg.DatabaseURL); err == nil {
		zlog.Info().
			Str("db_user", u.User.Username()).
			Str("db_host", u.Host).
			Str("db_db", u.Path).
			Msg("db config loaded")
	}

	db, err := config.NewDB(cfg.DatabaseURL, 25, 25, "15m")
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if cfg.SeedSampleData {
		res, err := postgres.Seed(ctx, db, sysClock{}.Now())
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		zlog.Debug().Int("internships", res.Internships).Int("events", res.Events).Int("fluency_questions", res.FluencyQuestions).Msg("seed finished")
	}

	app := NewApp(cfg, db)
	cleanup := func() {
		app.Close()
		_ = db.Close()
	}
	return realServer{app.Server}, cleanup, nil
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	internshipRepo := postgres.NewInternshipRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	fluencyRepo := postgres.NewFluencyRepo(db)
	userRoles := postgres.NewUserRoles(db)

	var rdb *rediscache.Client
	var cache internship.Cache
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL, cfg.RedisKeyPrefix)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unavailable: listings will not be cached")
		} else {
			rdb = c
			cache = c
		}
	}

	var rabbit *rabbitpub.Publisher
	var pub event.Publisher = rabbitpub.Discard{}
	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: domain events will not be published")
	}

	// 2) Application
	internshipSvc := internship.New(internshipRepo, sysClock{}, pub, cache, cfg.CacheTTLListings)
	eventSvc := event.New(eventRepo, sysClock{}, pub, cache, cfg.CacheTTLListings)
	fluencySvc := fluency.New(fluencyRepo, sysClock{}, pub)
	intakeSvc := intake.New(internshipSvc, eventSvc, cfg.IntakeMaxOpportunities, cfg.IntakeMaxEvents)

	// 3) Transport
	checks := map[string]handlers.Check{"postgres": db.PingContext}
	if rdb != nil {
		checks["redis"] = rdb.Ping
	}
	h := router.Handlers{
		Intake:      handlers.NewIntakeHandler(intakeSvc),
		Internships: handlers.NewInternshipsHandler(internshipSvc),
		Events:      handlers.NewEventsHandler(eventSvc),
		Fluency:     handlers.NewFluencyHandler(fluencySvc),
		Health:      handlers.NewHealthHandler(checks),
	}
	sessions := appmw.NewSessions(cfg.SessionSecret, cfg.SessionIssuer, cfg.SessionCookie, userRoles)
	zlog.Info().
		Str("cookie", appmw.SessionCookieName(cfg.SessionCookie, cfg.CookieSecure)).
		Bool("edu_enforcement", cfg.EduEnforcement).
		Msg("session verification ready")

	// 4) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router.New(h, sessions, cfg),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Publisher: rabbit,
		Cache:     rdb,
	}
}
