package config

import (
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"nexuraPortal/internal/origin"
)

// Config is resolved once at start-up and passed down explicitly.
type Config struct {
	Port string `env:"PORT" envDefault:"3333"`

	// RuntimeBackendURL is injected by the deployment at run time and wins
	// over BackendURL, which is fixed per environment.
	RuntimeBackendURL string        `env:"NEXURA_RUNTIME_BACKEND_URL"`
	BackendURL        string        `env:"BACKEND_URL"`
	BackendTimeout    time.Duration `env:"BACKEND_TIMEOUT" envDefault:"0s"`

	// PublicOrigin is the origin backend paths resolve against when no
	// backend URL is set. Without it only request origins listed in
	// AllowedOrigins are used.
	PublicOrigin string `env:"PUBLIC_ORIGIN"`

	// TrustProxy honours X-Forwarded-* headers from a reverse proxy.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"30"`

	MetricsUser string `env:"METRICS_USER"`
	MetricsPass string `env:"METRICS_PASS"`

	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	AssetBaseURL string `env:"ASSET_BASE_URL"`
}

// Load reads an optional .env file, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	return Parse()
}

func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimSpace(origin)
	}
	if cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", cfg.RateLimitBurst)
	}
	if cfg.PublicOrigin != "" && !validOrigin(cfg.PublicOrigin) {
		return Config{}, fmt.Errorf("PUBLIC_ORIGIN must be an absolute http(s) origin, got %q", cfg.PublicOrigin)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// ResolvedBackendURL picks the runtime value, then the configured one. An
// empty result means requests go to the current origin.
func (c Config) ResolvedBackendURL() string {
	return ResolveBackendURL(c.RuntimeBackendURL, c.BackendURL)
}

func ResolveBackendURL(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return ""
}

// OriginResolver decides which origin a request may resolve backend paths
// against.
func (c Config) OriginResolver() origin.Resolver {
	return origin.Resolver{
		Public:     c.PublicOrigin,
		Allowed:    c.AllowedOrigins,
		TrustProxy: c.TrustProxy,
	}
}

func validOrigin(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" && strings.Trim(u.Path, "/") == ""
}

func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
