package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "3333", cfg.Port)
	assert.Equal(t, ":3333", cfg.Addr())
	assert.Equal(t, time.Duration(0), cfg.BackendTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 30, cfg.RateLimitBurst)
	assert.Empty(t, cfg.ResolvedBackendURL())
	assert.Empty(t, cfg.PublicOrigin)
	assert.False(t, cfg.TrustProxy)
}

func TestOriginResolver(t *testing.T) {
	t.Setenv("PUBLIC_ORIGIN", "https://nexura.example")
	t.Setenv("TRUST_PROXY", "true")
	t.Setenv("ALLOWED_ORIGINS", "https://nexura.example")

	cfg, err := Parse()
	require.NoError(t, err)
	res := cfg.OriginResolver()
	assert.Equal(t, "https://nexura.example", res.Public)
	assert.True(t, res.TrustProxy)
	assert.Equal(t, []string{"https://nexura.example"}, res.Allowed)
}

func TestParseFromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":8080")
	t.Setenv("BACKEND_URL", "https://api.example.com")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("SESSION_TTL", "1h")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "https://api.example.com", cfg.ResolvedBackendURL())
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestRuntimeBackendURLWins(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://build.example.com")
	t.Setenv("NEXURA_RUNTIME_BACKEND_URL", "https://runtime.example.com")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "https://runtime.example.com", cfg.ResolvedBackendURL())
}

func TestResolveBackendURL(t *testing.T) {
	assert.Equal(t, "b", ResolveBackendURL("", "  ", "b", "c"))
	assert.Equal(t, "", ResolveBackendURL("", ""))
	assert.Equal(t, "", ResolveBackendURL())
}

func TestParseErrors(t *testing.T) {
	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("BACKEND_TIMEOUT", "soon")
		_, err := Parse()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env:")
	})
	t.Run("zero burst", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_BURST", "0")
		_, err := Parse()
		assert.ErrorContains(t, err, "RATE_LIMIT_BURST")
	})
	t.Run("public origin with a path", func(t *testing.T) {
		t.Setenv("PUBLIC_ORIGIN", "https://nexura.example/app")
		_, err := Parse()
		assert.ErrorContains(t, err, "PUBLIC_ORIGIN")
	})
	t.Run("public origin without scheme", func(t *testing.T) {
		t.Setenv("PUBLIC_ORIGIN", "nexura.example")
		_, err := Parse()
		assert.ErrorContains(t, err, "PUBLIC_ORIGIN")
	})
	t.Run("zero session ttl", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "0s")
		_, err := Parse()
		assert.ErrorContains(t, err, "SESSION_TTL")
	})
}
