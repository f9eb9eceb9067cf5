// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns:
// tracing, correlation IDs, logging, panic recovery, metrics, rate limiting,
// CORS, and security headers.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per user/IP)
//  8. CORS and security headers
//
// Admin routes additionally pass through BearerAuth; public read routes are
// gzip-compressed.
package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/jrautos/go-dealer-backend/docs"
	"github.com/jrautos/go-dealer-backend/internal/chatbot"
	"github.com/jrautos/go-dealer-backend/internal/config"
	"github.com/jrautos/go-dealer-backend/internal/http/handlers"
	"github.com/jrautos/go-dealer-backend/internal/http/middleware"
	"github.com/jrautos/go-dealer-backend/internal/notify"
	"github.com/jrautos/go-dealer-backend/internal/services"
	"github.com/jrautos/go-dealer-backend/internal/storage"
)

// RegisterRoutes attaches all middleware and endpoints to the given engine.
// db is the opened inventory database; store receives image uploads.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.ImageStore, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit; uploads carry images, so the cap follows
	// the configured per-file maximum plus multipart overhead.
	r.Use(limitBody(cfg.Upload.MaxBytes + 64<<10))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Dependency injection: services ← db/store/config
	vehicleSvc := &services.VehicleService{DB: db}
	contactSvc := &services.ContactService{
		DB:     db,
		Mailer: notify.NewResend(cfg.Mail.APIKey, cfg.Mail.Sender, cfg.Mail.Recipient),
	}
	authSvc := services.NewAuthService(cfg.Admin.Password, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
	statusSvc := &services.StatusService{DB: db}

	h := handlers.New(vehicleSvc, contactSvc, authSvc, statusSvc, store, chatbot.Bot{}, cfg.DefaultLang)

	// Liveness/health
	r.GET("/health", h.Health)

	// Local image store: serve the upload directory at its public path.
	if local, okLocal := store.(*storage.Local); okLocal && strings.HasPrefix(local.BaseURL, "/") {
		r.Static(local.BaseURL, local.Dir)
	}

	// Swagger UI (behind SWAGGER_ENABLED)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := groupWithPrefix(r, cfg.APIBasePath) // e.g. "/api"
	{
		// Public reads are compressed; the dealership site fetches the full
		// vehicle list on every visit.
		pub := api.Group("", gzip.Gzip(gzip.DefaultCompression))
		{
			pub.GET("", h.Root)
			pub.GET("/health", h.Health)
			pub.GET("/vehicles", h.ListPublicVehicles)
			pub.GET("/vehicles/:id", h.GetVehicle)
			pub.GET("/faq", h.FAQMenu)
			pub.GET("/faq/:id", h.FAQAnswer)
			pub.GET("/status", h.ListStatusChecks)
		}

		api.POST("/contact", h.SubmitContact)
		api.POST("/status", h.CreateStatusCheck)
		api.POST("/admin/login", h.Login)

		admin := api.Group("/admin", middleware.BearerAuth(authSvc))
		{
			admin.GET("/vehicles", h.ListAdminVehicles)
			admin.POST("/vehicles", h.CreateVehicle)
			admin.PUT("/vehicles/:id", h.UpdateVehicle)
			admin.DELETE("/vehicles/:id", h.DeleteVehicle)
			admin.GET("/contacts", h.ListContacts)
			admin.POST("/upload", h.UploadImage)
		}
	}
}

// limitBody caps the request body size for all endpoints using
// http.MaxBytesReader; reads beyond the cap error downstream.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
