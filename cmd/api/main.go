// Package main is the entry point for the trip planner API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tripplan/internal/catalog"
	"tripplan/internal/config"
	"tripplan/internal/handler"
	"tripplan/internal/metrics"
	"tripplan/internal/middleware"
	"tripplan/internal/service"
	"tripplan/internal/store"
	"tripplan/migrations"
	"tripplan/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger introduced in Go 1.21.
	// JSON handler writes machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// Postgres when DATABASE_URL is set, a local JSON file otherwise. The
	// file store is the default so the server runs with zero setup.
	var docs store.DocumentStore
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to create database pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		// Verify the DB is reachable before accepting traffic.
		if err := pool.Ping(context.Background()); err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}

		if err := migrate(cfg.DatabaseURL); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("database connection established")
		docs = store.NewPostgres(pool)
	} else {
		slog.Info("using file store", "path", cfg.DataFile)
		docs = store.NewFile(cfg.DataFile)
	}

	// --- Recommendations feed --------------------------------------------
	// Feed loading failures degrade to the embedded defaults; the planner
	// itself never depends on the feed being reachable.
	cat := catalog.New()
	switch {
	case cfg.RecommendedURL != "":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := cat.LoadURL(ctx, nil, cfg.RecommendedURL); err != nil {
			slog.Warn("recommendations feed fetch failed, using embedded feed", "url", cfg.RecommendedURL, "error", err)
		}
		cancel()
	case cfg.RecommendedFile != "":
		if err := cat.LoadFile(cfg.RecommendedFile); err != nil {
			slog.Warn("recommendations file load failed, using embedded feed", "path", cfg.RecommendedFile, "error", err)
		}
	}

	// --- Metrics ----------------------------------------------------------
	metrics.Register()

	// --- Services ---------------------------------------------------------
	view := service.NewViewService()
	itinerarySvc := service.NewItineraryService(docs, view)
	server := handler.NewServer(handler.Deps{
		Documents: service.NewDocumentService(docs),
		Cities:    service.NewCityService(docs, view),
		Itinerary: itinerarySvc,
		Budget:    service.NewBudgetService(docs),
		Checklist: service.NewChecklistService(docs),
		Notes:     service.NewNoteService(docs),
		Recommend: service.NewRecommendService(docs, cat, itinerarySvc),
		Share:     service.NewShareService(docs, cfg.ShareBaseURL),
		Templates: service.NewTemplateService(docs),
	})

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → rate limit → metrics → body cap → read-only guard.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewRateLimiter(50, 100))
	r.Use(middleware.NewMetrics())
	r.Use(middleware.NewMaxBodySizeHandler(8 << 20))
	r.Use(middleware.NewReadOnlyGuard(cfg.ReadOnly))

	r.Mount("/", server.Routes())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(spec.OpenAPI)
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "read_only", cfg.ReadOnly)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending schema migrations. Goose needs database/sql, so
// it gets its own short-lived connection rather than the pgx pool.
func migrate(dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(context.Background())
	return err
}
