package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/afristyle/afristyle/internal/logging"
	"github.com/afristyle/afristyle/internal/server/config"
	"github.com/afristyle/afristyle/internal/server/httpapi"
	"github.com/afristyle/afristyle/internal/server/repository"
	"github.com/afristyle/afristyle/internal/server/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	log := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	ctx := context.Background()

	repos, err := repository.NewManager(cfg.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "database init failed", "error", err)
		os.Exit(1)
	}
	defer repos.Close()

	authService := services.NewAuthService(repos.Users(), &cfg)
	catalogService := services.NewCatalogService(repos.Outfits(), repos.Blogs())
	lookbookService := services.NewLookbookService(repos.Lookbooks(), repos.Outfits())
	mediaService := services.NewMediaService(&cfg)

	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:      httpapi.NewAuthHandler(authService),
		Catalog:   httpapi.NewCatalogHandler(catalogService, mediaService, log),
		Lookbooks: httpapi.NewLookbookHandler(lookbookService, log),
		Media:     httpapi.NewMediaHandler(mediaService, log),
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info(ctx, "server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error(ctx, "server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server forced shutdown", "error", err)
		os.Exit(1)
	}

	log.Info(ctx, "server stopped")
}
