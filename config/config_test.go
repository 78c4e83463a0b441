package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Store.Backend)
	assert.Equal(t, AuthAccounts, cfg.Auth.Mode)
	assert.Equal(t, 12*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 90*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "0 */5 * * * *", cfg.Cron.MetricsSpec)
	assert.False(t, cfg.UsesRedis())
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("GATEWAY_RATE_LIMIT", "2.5")
	t.Setenv("GATEWAY_GOOGLE_AUTH", "true")
	t.Setenv("SYNTHESIS_TIMEOUT", "45s")
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, StoreRedis, cfg.Store.Backend)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, 2.5, cfg.Gateway.RateLimit)
	assert.True(t, cfg.Gateway.GoogleAuth)
	assert.Equal(t, 45*time.Second, cfg.Synthesis.Timeout)
	assert.Equal(t, 0, cfg.Redis.DB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown store", map[string]string{"STORE_BACKEND": "mongo"}},
		{"unknown auth", map[string]string{"AUTH_MODE": "ldap"}},
		{"firebase without credentials", map[string]string{"AUTH_MODE": "firebase"}},
		{"firebase emulator without project", map[string]string{"AUTH_MODE": "firebase", "FIREBASE_AUTH_EMULATOR_HOST": "localhost:9099"}},
		{"zero session ttl", map[string]string{"SESSION_TTL": "0s"}},
		{"negative session ttl", map[string]string{"SESSION_TTL": "-1m"}},
		{"unknown db driver", map[string]string{"STORE_BACKEND": "postgres", "DB_DRIVER": "mysql"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_FirebaseEmulator(t *testing.T) {
	t.Setenv("AUTH_MODE", "firebase")
	t.Setenv("FIREBASE_AUTH_EMULATOR_HOST", "localhost:9099")
	t.Setenv("FIREBASE_PROJECT_ID", "zerobuild-dev")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "zerobuild-dev", cfg.Auth.Firebase.ProjectID)
	assert.Empty(t, cfg.Auth.Firebase.CredentialsPath)
}
