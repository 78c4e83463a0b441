package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zerobuild-ai/zerobuild-backend/config"
)

func TestDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "db", Port: 5433, User: "zb", Password: "pw", Name: "zerobuild"}
	assert.Equal(t, "host=db port=5433 user=zb password=pw dbname=zerobuild sslmode=disable", DSN(cfg))

	cfg.SSLMode = "require"
	assert.Contains(t, DSN(cfg), "sslmode=require")
}
