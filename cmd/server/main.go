// Package main boots the dealership backend: configuration, logging,
// tracing, the SQLite database, the image store, and the HTTP server, with
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/jrautos/go-dealer-backend/internal/config"
	httpapi "github.com/jrautos/go-dealer-backend/internal/http"
	"github.com/jrautos/go-dealer-backend/internal/observability"
	"github.com/jrautos/go-dealer-backend/internal/repo"
	"github.com/jrautos/go-dealer-backend/internal/storage"
	"github.com/jrautos/go-dealer-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

const shutdownTimeout = 10 * time.Second

// @title           Dealer Backend API
// @version         1.0
// @description     Inventory, contact, and FAQ API for a used-car dealership site.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("database open failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	store, err := buildImageStore(ctx, cfg.Upload)
	if err != nil {
		log.Fatal().Err(err).Msg("image store setup failed")
	}

	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	httpapi.RegisterRoutes(engine, db, store, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info().Msg("server stopped cleanly")
}

// buildImageStore picks S3 when a bucket is configured, local disk otherwise.
func buildImageStore(ctx context.Context, up config.UploadConfig) (storage.ImageStore, error) {
	if up.S3Bucket != "" {
		return storage.NewS3(ctx, storage.S3Options{
			Bucket:    up.S3Bucket,
			Region:    up.S3Region,
			Prefix:    up.S3Prefix,
			Endpoint:  up.S3Endpoint,
			AccessKey: up.S3AccessKey,
			SecretKey: up.S3SecretKey,
			BaseURL:   publicBaseURL(up),
		})
	}
	return storage.NewLocal(up.Dir, up.PublicBaseURL)
}

// publicBaseURL only overrides the S3 default when the operator set an
// absolute URL; the local-serving default "/uploads" makes no sense for S3.
func publicBaseURL(up config.UploadConfig) string {
	if up.PublicBaseURL == "/uploads" {
		return ""
	}
	return up.PublicBaseURL
}
