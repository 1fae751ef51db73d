package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"libraryapi/internal/auth"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/httpx"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("cannot load configuration", "error", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(cfg.JWTSecret, cfg.AdminPassword, cfg.UserPassword)
	if err != nil {
		logger.Error("cannot seed user accounts", "error", err)
		os.Exit(1)
	}

	repo := book.NewMemoryRepository()
	catalogService := book.NewService(repo)

	if cfg.SeedFile != "" {
		n, err := seedCatalog(catalogService, cfg.SeedFile)
		if err != nil {
			logger.Error("cannot seed catalog", "file", cfg.SeedFile, "error", err)
			os.Exit(1)
		}
		logger.Info("catalog seeded", "file", cfg.SeedFile, "books", n)
	}

	bookHandler := book.NewHandler(catalogService)
	authHandler := auth.NewHandler(authService)

	handler := routes(bookHandler, authHandler, authService)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	handler = rateLimit.Middleware(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server", "address", cfg.Addr, "environment", cfg.Env)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
