// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes application settings
// such as server timeouts, logging, database paths, admin authentication,
// image storage, rate limiting, and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// AdminConfig defines admin panel authentication settings.
type AdminConfig struct {
	Password  string        // ADMIN_PASSWORD (required to enable the admin API)
	JWTSecret string        // ADMIN_JWT_SECRET (HMAC signing key)
	TokenTTL  time.Duration // ADMIN_TOKEN_TTL (bearer token lifetime)
}

// UploadConfig defines image upload storage settings. When S3Bucket is set,
// uploads go to S3; otherwise they are written under Dir and served from
// PublicBaseURL.
type UploadConfig struct {
	Dir           string // UPLOAD_DIR (local storage root)
	PublicBaseURL string // PUBLIC_BASE_URL (prefix for returned image URLs)
	MaxBytes      int64  // UPLOAD_MAX_BYTES (per-file cap)
	S3Bucket      string // S3_BUCKET (enables the S3 store when non-empty)
	S3Region      string // S3_REGION
	S3Prefix      string // S3_PREFIX (key prefix inside the bucket)
	S3Endpoint    string // S3_ENDPOINT (optional, for MinIO-style deployments)
	S3AccessKey   string // S3_ACCESS_KEY (optional; default AWS chain when empty)
	S3SecretKey   string // S3_SECRET_KEY
}

// MailConfig defines contact-notification email settings (Resend API).
// Notifications are disabled when APIKey is empty.
type MailConfig struct {
	APIKey    string // RESEND_API_KEY
	Sender    string // SENDER_EMAIL
	Recipient string // RECIPIENT_EMAIL
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // e.g. 20s
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	DBPath      string // SQLite path
	DefaultLang string // site default language: "es" or "en"

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Admin auth / uploads / mail
	Admin  AdminConfig
	Upload UploadConfig
	Mail   MailConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api")),

		// App
		DBPath:      getenv("DB_PATH", "dealer.db"),
		DefaultLang: strings.ToLower(getenv("DEFAULT_LANG", "es")),

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Admin auth
		Admin: AdminConfig{
			Password:  getenv("ADMIN_PASSWORD", ""),
			JWTSecret: getenv("ADMIN_JWT_SECRET", ""),
			TokenTTL:  getdur("ADMIN_TOKEN_TTL", 24*time.Hour),
		},

		// Uploads
		Upload: UploadConfig{
			Dir:           getenv("UPLOAD_DIR", "uploads"),
			PublicBaseURL: getenv("PUBLIC_BASE_URL", "/uploads"),
			MaxBytes:      int64(getint("UPLOAD_MAX_BYTES", 10<<20)),
			S3Bucket:      getenv("S3_BUCKET", ""),
			S3Region:      getenv("S3_REGION", "us-east-1"),
			S3Prefix:      getenv("S3_PREFIX", "vehicles"),
			S3Endpoint:    getenv("S3_ENDPOINT", ""),
			S3AccessKey:   getenv("S3_ACCESS_KEY", ""),
			S3SecretKey:   getenv("S3_SECRET_KEY", ""),
		},

		// Contact notifications
		Mail: MailConfig{
			APIKey:    getenv("RESEND_API_KEY", ""),
			Sender:    getenv("SENDER_EMAIL", "onboarding@resend.dev"),
			Recipient: getenv("RECIPIENT_EMAIL", ""),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-dealer-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return cfg, errors.New("DB_PATH must not be empty")
	}
	switch cfg.DefaultLang {
	case "es", "en":
	default:
		return cfg, errors.New(`DEFAULT_LANG must be "es" or "en"`)
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.Admin.Password != "" && cfg.Admin.JWTSecret == "" {
		return cfg, errors.New("ADMIN_JWT_SECRET is required when ADMIN_PASSWORD is set")
	}
	if cfg.Admin.TokenTTL <= 0 {
		return cfg, errors.New("ADMIN_TOKEN_TTL must be > 0")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return cfg, errors.New("UPLOAD_MAX_BYTES must be > 0")
	}
	if strings.TrimSpace(cfg.Upload.Dir) == "" && cfg.Upload.S3Bucket == "" {
		return cfg, errors.New("UPLOAD_DIR must not be empty when S3_BUCKET is unset")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// AdminEnabled reports whether the admin API can issue tokens.
func (c Config) AdminEnabled() bool {
	return strings.TrimSpace(c.Admin.Password) != ""
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
