package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/portfolio/portfolio-api/internal/config"
	"github.com/portfolio/portfolio-api/internal/domain/certificate"
	"github.com/portfolio/portfolio-api/internal/domain/experience"
	"github.com/portfolio/portfolio-api/internal/middleware"
	"github.com/portfolio/portfolio-api/internal/pkg/database"
	"github.com/portfolio/portfolio-api/internal/pkg/logger"
	"github.com/portfolio/portfolio-api/internal/pkg/response"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env, Service: "api"}, os.Stdout)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting portfolio content API")

	store, err := database.Open(context.Background(), cfg.DatabaseURL, database.Options{MongoDatabase: cfg.MongoDatabase})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to store")
	}
	defer store.Close(context.Background())

	if err := database.MigrateStore(context.Background(), store); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate store")
	}

	// ---------- Repositories ----------
	certificateRepo, experienceRepo := newRepositories(store)

	// ---------- Handlers ----------
	certificateHandler := certificate.NewHandler(certificateRepo)
	experienceHandler := experience.NewHandler(experienceRepo)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      newRouter(cfg.AllowedOrigins, certificateHandler, experienceHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

// newRepositories picks the repository implementations matching the store backend.
func newRepositories(store *database.Store) (certificate.Repository, experience.Repository) {
	if store.Mongo != nil {
		return certificate.NewMongoRepository(store.Mongo), experience.NewMongoRepository(store.Mongo)
	}
	return certificate.NewRepository(store.SQL), experience.NewRepository(store.SQL)
}

func newRouter(allowedOrigins []string, certificates *certificate.Handler, experiences *experience.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(allowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Resource not found")
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/certificates", certificates.Routes())
		r.Mount("/experiences", experiences.Routes())
	})

	return r
}
